// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package registration

// TrackedFields is the fixed denominator of the completion percentage.
const TrackedFields = 8

// tracked are the fields counted by Progress. The avatar is optional and
// does not count.
var tracked = [TrackedFields]Field{
	FieldName,
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
	FieldDateOfBirth,
	FieldGender,
	FieldCountry,
	FieldAcceptTerms,
}

// Progress returns the completion percentage of v in [0,100]. It is a
// display value only and never gates submission.
func Progress(v Values) int {
	filled := 0
	for _, f := range tracked {
		if v.Filled(f) {
			filled++
		}
	}
	return min(max(filled*100/TrackedFields, 0), 100)
}

// Band is the colour band of a progress value.
type Band string

const (
	BandDanger  Band = "danger"
	BandWarning Band = "warning"
	BandSuccess Band = "success"
)

var colorStops = []struct {
	band Band
	stop int
}{
	{BandDanger, 20},
	{BandWarning, 50},
	{BandSuccess, 100},
}

// BandFor returns the first band whose stop percent does not exceed.
func BandFor(percent int) Band {
	for _, cs := range colorStops {
		if percent <= cs.stop {
			return cs.band
		}
	}
	return BandSuccess
}
