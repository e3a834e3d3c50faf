// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package registration

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState() *FormState {
	return New(WithClock(func() time.Time { return fixedNow }))
}

func fillValid(s *FormState) {
	s.SetName("Иван")
	s.SetEmail("ivan@example.com")
	s.SetPassword("secret")
	s.SetConfirmPassword("secret")
	s.SetDate(time.Date(1990, time.May, 4, 0, 0, 0, 0, time.UTC))
	s.SetGender(GenderMale)
	s.SetCountry("Russia")
	s.SetAcceptTerms(true)
}

func TestSubmit_EmptyFormGoesToEditingWithErrors(t *testing.T) {
	s := newState()

	sub, ok := s.Submit()
	assert.False(t, ok)
	assert.Nil(t, sub)
	assert.Equal(t, PhaseEditingWithErrors, s.Phase())
	assert.True(t, s.DateInvalid())
	for _, f := range []Field{FieldName, FieldEmail, FieldConfirmPassword, FieldDateOfBirth, FieldGender, FieldAcceptTerms} {
		assert.NotEmpty(t, s.Error(f), "field %s", f)
	}
}

func TestSubmit_ValidFormSucceeds(t *testing.T) {
	s := newState()
	fillValid(s)

	sub, ok := s.Submit()
	require.True(t, ok)
	require.NotNil(t, sub)
	assert.Equal(t, PhaseSuccess, s.Phase())
	assert.Empty(t, s.Errors())
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, fixedNow, sub.SubmittedAt)
	assert.Equal(t, "********", sub.Values.Password)
	assert.Same(t, sub, s.LastSubmission())

	// Editing after success returns to Editing.
	s.SetName("Пётр")
	assert.Equal(t, PhaseEditing, s.Phase())
	assert.Nil(t, s.LastSubmission())
}

func TestErrorsClearAfterFixing(t *testing.T) {
	s := newState()
	s.Submit()
	require.Equal(t, PhaseEditingWithErrors, s.Phase())

	fillValid(s)
	assert.Empty(t, s.Errors())
	assert.Equal(t, PhaseEditing, s.Phase())
}

func TestConfirmPasswordRecheckedWhenPasswordChanges(t *testing.T) {
	s := newState()
	s.SetPassword("one")
	s.SetConfirmPassword("one")
	assert.Empty(t, s.Blur(FieldConfirmPassword))

	s.SetPassword("two")
	assert.Equal(t, "Пароли не совпадают", s.Error(FieldConfirmPassword))

	s.SetConfirmPassword("two")
	assert.Empty(t, s.Error(FieldConfirmPassword))
}

func TestBlurValidatesOnlyThatField(t *testing.T) {
	s := newState()
	s.SetEmail("a@b")

	assert.Equal(t, "Некорректный email", s.Blur(FieldEmail))
	assert.Empty(t, s.Error(FieldName))
	assert.True(t, s.Touched(FieldEmail))
	assert.True(t, s.Dirty(FieldEmail))
	assert.False(t, s.Touched(FieldName))

	s.SetEmail("a@b.com")
	assert.Empty(t, s.Error(FieldEmail))
}

func TestSetDate_RejectsOutsideWindow(t *testing.T) {
	s := newState()
	w := s.Window()

	assert.True(t, s.SetDate(w.Max))
	assert.False(t, s.DateInvalid())
	assert.Equal(t, w.Max, s.Values().DateOfBirth)

	assert.False(t, s.SetDate(w.Max.AddDate(0, 0, 1)))
	assert.True(t, s.DateInvalid())
	assert.True(t, s.Values().DateOfBirth.IsZero())

	assert.True(t, s.SetDate(w.Min))
	assert.False(t, s.DateInvalid())

	assert.False(t, s.SetDate(w.Min.AddDate(0, 0, -1)))
	assert.True(t, s.DateInvalid())

	assert.False(t, s.SetDate(time.Time{}))
	assert.True(t, s.DateInvalid())
}

func TestProgress_MonotonicAndReachesHundredOnlyWhenFull(t *testing.T) {
	s := newState()
	steps := []func(){
		func() { s.SetName("Иван") },
		func() { s.SetEmail("ivan@example.com") },
		func() { s.SetPassword("secret") },
		func() { s.SetConfirmPassword("secret") },
		func() { s.SetDate(time.Date(1990, time.May, 4, 0, 0, 0, 0, time.UTC)) },
		func() { s.SetGender(GenderFemale) },
		func() { s.SetAvatar("/tmp/me.png") },
		func() { s.SetCountry("Russia") },
		func() { s.SetAcceptTerms(true) },
	}

	prev := s.Progress()
	assert.Equal(t, 0, prev)
	for i, step := range steps {
		step()
		got := s.Progress()
		assert.GreaterOrEqual(t, got, prev, "step %d", i)
		if i < len(steps)-1 {
			assert.Less(t, got, 100, "step %d", i)
		}
		prev = got
	}
	assert.Equal(t, 100, prev)
}

func TestReset_RestoresDefaults(t *testing.T) {
	s := newState()
	fillValid(s)
	s.SetAvatar("/tmp/me.png")
	s.Submit()

	s.Reset()
	if diff := cmp.Diff(Values{}, s.Values()); diff != "" {
		t.Fatalf("values not reset (-want +got):\n%s", diff)
	}
	assert.Equal(t, PhaseEditing, s.Phase())
	assert.Empty(t, s.Errors())
	assert.False(t, s.DateInvalid())
	assert.False(t, s.Touched(FieldName))
	assert.Nil(t, s.LastSubmission())
	assert.Equal(t, 0, s.Progress())
}

func TestApply_SetsChangedFieldsOnly(t *testing.T) {
	s := newState()
	s.SetName("Иван")

	next := s.Values()
	next.Email = "x@y.ru"
	next.Gender = GenderFemale
	changed := s.Apply(next)

	assert.ElementsMatch(t, []Field{FieldEmail, FieldGender}, changed)
	assert.Equal(t, "x@y.ru", s.Values().Email)
	assert.Equal(t, GenderFemale, s.Values().Gender)
	assert.Empty(t, s.Apply(next))
}

func TestApply_RejectedDateIsNotReportedAsChange(t *testing.T) {
	s := newState()
	next := s.Values()
	next.DateOfBirth = s.Window().Max.AddDate(1, 0, 0)

	assert.Empty(t, s.Apply(next))
	assert.True(t, s.DateInvalid())
	assert.True(t, s.Values().DateOfBirth.IsZero())
	assert.Empty(t, s.Apply(next))

	s.SetDate(s.Window().Max)
	assert.Equal(t, []Field{FieldDateOfBirth}, s.Apply(next))
	assert.True(t, s.Values().DateOfBirth.IsZero())
}

func TestSet_TypeErrors(t *testing.T) {
	s := newState()
	assert.Error(t, s.Set(FieldName, 5))
	assert.Error(t, s.Set(FieldAcceptTerms, "yes"))
	assert.Error(t, s.Set(Field("nope"), "x"))
	assert.NoError(t, s.Set(FieldGender, "female"))
	assert.Equal(t, GenderFemale, s.Values().Gender)
	assert.NoError(t, s.Set(FieldGender, "robot"))
	assert.Equal(t, Gender(""), s.Values().Gender)
}

func TestSubmissionJSON(t *testing.T) {
	s := newState()
	fillValid(s)
	sub, ok := s.Submit()
	require.True(t, ok)

	out, err := sub.JSON()
	require.NoError(t, err)
	assert.NotContains(t, out, "secret")
	assert.True(t, strings.Contains(out, `"dateOfBirth": "1990-05-04"`), out)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, sub.ID, decoded["id"])
}
