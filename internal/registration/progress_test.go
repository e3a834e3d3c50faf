// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Steps(t *testing.T) {
	assert.Equal(t, 0, Progress(Values{}))
	assert.Equal(t, 12, Progress(Values{Name: "a"}))
	assert.Equal(t, 25, Progress(Values{Name: "a", AcceptTerms: true}))
	// the avatar is not tracked
	assert.Equal(t, 0, Progress(Values{Avatar: "/tmp/a.png"}))
}

func TestBandFor(t *testing.T) {
	cases := map[int]Band{
		0:   BandDanger,
		12:  BandDanger,
		20:  BandDanger,
		25:  BandWarning,
		50:  BandWarning,
		62:  BandSuccess,
		100: BandSuccess,
	}
	for p, want := range cases {
		assert.Equal(t, want, BandFor(p), "percent %d", p)
	}
}
