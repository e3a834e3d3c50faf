// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package registration

import (
	"fmt"
	"maps"
	"time"
)

// Phase is the position of the form in its submit cycle.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseValidating
	PhaseSuccess
	PhaseEditingWithErrors
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseValidating:
		return "validating"
	case PhaseSuccess:
		return "success"
	case PhaseEditingWithErrors:
		return "editing-with-errors"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// FormState owns the current values, per-field dirty/touched flags and the
// per-field error messages.
type FormState struct {
	values      Values
	touched     map[Field]bool
	dirty       map[Field]bool
	errors      map[Field]string
	dateInvalid bool
	submitted   bool
	phase       Phase
	last        *Submission

	rules Ruleset
	now   func() time.Time
}

type Option func(*FormState)

// WithClock replaces time.Now, which anchors the date-of-birth window.
func WithClock(now func() time.Time) Option {
	return func(s *FormState) {
		s.now = now
	}
}

// WithRules replaces DefaultRules.
func WithRules(rules Ruleset) Option {
	return func(s *FormState) {
		s.rules = rules
	}
}

// New creates an empty form in the Editing phase.
func New(opts ...Option) *FormState {
	s := &FormState{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.rules == nil {
		s.rules = DefaultRules(s.Window)
	}
	s.clear()
	return s
}

func (s *FormState) clear() {
	s.values = Values{}
	s.touched = make(map[Field]bool)
	s.dirty = make(map[Field]bool)
	s.errors = make(map[Field]string)
	s.dateInvalid = false
	s.submitted = false
	s.phase = PhaseEditing
	s.last = nil
}

// Window returns the date-of-birth window for today.
func (s *FormState) Window() DateWindow {
	return WindowAt(s.now())
}

func (s *FormState) Values() Values { return s.values }

func (s *FormState) Phase() Phase { return s.phase }

// Errors returns a copy of the current error messages.
func (s *FormState) Errors() map[Field]string {
	return maps.Clone(s.errors)
}

// Error returns the current message of f, or "".
func (s *FormState) Error(f Field) string { return s.errors[f] }

func (s *FormState) Touched(f Field) bool { return s.touched[f] }

func (s *FormState) Dirty(f Field) bool { return s.dirty[f] }

// DateInvalid reports the date picker's "invalid" state: the last date
// selection was cleared or rejected.
func (s *FormState) DateInvalid() bool { return s.dateInvalid }

// Progress returns the completion percentage of the current values.
func (s *FormState) Progress() int { return Progress(s.values) }

// LastSubmission returns the report of the last successful submit.
func (s *FormState) LastSubmission() *Submission { return s.last }

// SetName and the other setters mutate one field each.
func (s *FormState) SetName(v string) { s.setString(FieldName, &s.values.Name, v) }

func (s *FormState) SetEmail(v string) { s.setString(FieldEmail, &s.values.Email, v) }

func (s *FormState) SetPassword(v string) { s.setString(FieldPassword, &s.values.Password, v) }

func (s *FormState) SetConfirmPassword(v string) {
	s.setString(FieldConfirmPassword, &s.values.ConfirmPassword, v)
}

func (s *FormState) SetCountry(v string) { s.setString(FieldCountry, &s.values.Country, v) }

func (s *FormState) SetAvatar(v string) { s.setString(FieldAvatar, &s.values.Avatar, v) }

func (s *FormState) SetGender(g Gender) {
	if !g.Valid() {
		g = ""
	}
	if s.values.Gender == g {
		return
	}
	s.values.Gender = g
	s.changed(FieldGender)
}

func (s *FormState) SetAcceptTerms(v bool) {
	if s.values.AcceptTerms == v {
		return
	}
	s.values.AcceptTerms = v
	s.changed(FieldAcceptTerms)
}

// SetDate selects a date of birth. A zero time clears the selection and a
// date outside the window is rejected; both leave the date unset and flag
// the invalid state. It reports whether the date was accepted.
func (s *FormState) SetDate(t time.Time) bool {
	accepted := !t.IsZero() && s.Window().Contains(t)
	next := time.Time{}
	if accepted {
		next = Day(t)
	}
	s.dateInvalid = !accepted
	if !s.values.DateOfBirth.Equal(next) {
		s.values.DateOfBirth = next
		s.changed(FieldDateOfBirth)
	} else {
		s.dirty[FieldDateOfBirth] = true
	}
	return accepted
}

func (s *FormState) setString(f Field, dst *string, v string) {
	if *dst == v {
		return
	}
	*dst = v
	s.changed(f)
}

// Set assigns a field from an untyped value, as produced by form inputs.
func (s *FormState) Set(f Field, value any) error {
	switch f {
	case FieldName, FieldEmail, FieldPassword, FieldConfirmPassword, FieldCountry, FieldAvatar:
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s: expected string, got %T", f, value)
		}
		switch f {
		case FieldName:
			s.SetName(str)
		case FieldEmail:
			s.SetEmail(str)
		case FieldPassword:
			s.SetPassword(str)
		case FieldConfirmPassword:
			s.SetConfirmPassword(str)
		case FieldCountry:
			s.SetCountry(str)
		case FieldAvatar:
			s.SetAvatar(str)
		}
	case FieldGender:
		switch g := value.(type) {
		case Gender:
			s.SetGender(g)
		case string:
			s.SetGender(Gender(g))
		default:
			return fmt.Errorf("%s: expected gender, got %T", f, value)
		}
	case FieldDateOfBirth:
		t, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("%s: expected time, got %T", f, value)
		}
		s.SetDate(t)
	case FieldAcceptTerms:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%s: expected bool, got %T", f, value)
		}
		s.SetAcceptTerms(b)
	default:
		return fmt.Errorf("unknown field %q", f)
	}
	return nil
}

// Apply copies every field of next that differs from the current values.
// It returns the fields whose stored value changed; a rejected date is
// flagged invalid but not reported.
func (s *FormState) Apply(next Values) []Field {
	var changed []Field
	for _, f := range Fields {
		if s.values.Equal(next, f) {
			continue
		}
		before := s.values
		_ = s.Set(f, next.Get(f))
		if !s.values.Equal(before, f) {
			changed = append(changed, f)
		}
	}
	return changed
}

// changed runs after a field value changed. Once a field shows an error, or
// once the form was submitted, edits re-validate it immediately. The
// confirmation is re-checked whenever the password moves under it.
func (s *FormState) changed(f Field) {
	s.dirty[f] = true
	if s.phase == PhaseSuccess {
		s.phase = PhaseEditing
		s.last = nil
	}
	if s.submitted || s.touched[f] || s.errors[f] != "" {
		s.validate(f)
	}
	if f == FieldPassword && (s.submitted || s.touched[FieldConfirmPassword]) {
		s.validate(FieldConfirmPassword)
	}
	if s.phase == PhaseEditingWithErrors && len(s.errors) == 0 {
		s.phase = PhaseEditing
	}
}

// Blur marks f as touched and validates it, as when focus leaves an input.
func (s *FormState) Blur(f Field) string {
	s.touched[f] = true
	s.validate(f)
	return s.errors[f]
}

func (s *FormState) validate(f Field) {
	if verr := s.rules.Check(s.values, f); verr != nil {
		s.errors[f] = verr.Message
		if f == FieldDateOfBirth {
			s.dateInvalid = true
		}
		return
	}
	delete(s.errors, f)
	if f == FieldDateOfBirth {
		s.dateInvalid = false
	}
}

// Submit validates every field. On success the form enters PhaseSuccess and
// the returned submission is non-nil; otherwise it enters
// PhaseEditingWithErrors and Errors holds a message per failing field.
func (s *FormState) Submit() (*Submission, bool) {
	s.phase = PhaseValidating
	s.submitted = true
	for _, f := range Fields {
		s.touched[f] = true
	}
	s.errors = s.rules.CheckAll(s.values)
	if _, bad := s.errors[FieldDateOfBirth]; bad {
		s.dateInvalid = true
	}
	if len(s.errors) > 0 {
		s.phase = PhaseEditingWithErrors
		s.last = nil
		return nil, false
	}
	s.phase = PhaseSuccess
	s.last = NewSubmission(s.values, s.now())
	return s.last, true
}

// Reset restores the empty form and returns to PhaseEditing.
func (s *FormState) Reset() {
	s.clear()
}
