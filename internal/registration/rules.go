// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package registration

import (
	"errors"
	"regexp"
	"time"

	"github.com/toeirei/regform/internal/i18n"
)

// ValidationError is a field-scoped, recoverable validation failure.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Rule checks one aspect of the form. It receives all values so that
// cross-field rules (password confirmation) need no extra context.
// A nil return means valid.
type Rule func(v Values) error

// emailPattern is deliberately loose: something, an @, something, a dot,
// something.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

func fail(f Field, messageID string) error {
	return &ValidationError{Field: f, Message: i18n.T(messageID)}
}

// Required fails when f is not filled.
func Required(f Field, messageID string) Rule {
	return func(v Values) error {
		if !v.Filled(f) {
			return fail(f, messageID)
		}
		return nil
	}
}

// Pattern fails when a non-empty string value of f does not match re.
// Empty values pass; pair it with Required.
func Pattern(f Field, re *regexp.Regexp, messageID string) Rule {
	return func(v Values) error {
		s, _ := v.Get(f).(string)
		if s == "" {
			return nil
		}
		if !re.MatchString(s) {
			return fail(f, messageID)
		}
		return nil
	}
}

// EqualTo fails when f differs from other.
func EqualTo(f, other Field, messageID string) Rule {
	return func(v Values) error {
		if v.Get(f) != v.Get(other) {
			return fail(f, messageID)
		}
		return nil
	}
}

// Checked fails when the boolean f is false.
func Checked(f Field, messageID string) Rule {
	return func(v Values) error {
		if b, _ := v.Get(f).(bool); !b {
			return fail(f, messageID)
		}
		return nil
	}
}

// DateWithin fails when f is unset or falls outside the window returned by
// window at evaluation time.
func DateWithin(f Field, window func() DateWindow, messageID string) Rule {
	return func(v Values) error {
		t, _ := v.Get(f).(time.Time)
		if t.IsZero() || !window().Contains(t) {
			return fail(f, messageID)
		}
		return nil
	}
}

// Ruleset maps each field to its rules, evaluated in order.
type Ruleset map[Field][]Rule

// DefaultRules returns the registration rules. window supplies the current
// date-of-birth window.
func DefaultRules(window func() DateWindow) Ruleset {
	return Ruleset{
		FieldName: {
			Required(FieldName, "error.name_required"),
		},
		FieldEmail: {
			Required(FieldEmail, "error.email_required"),
			Pattern(FieldEmail, emailPattern, "error.email_invalid"),
		},
		FieldConfirmPassword: {
			Required(FieldConfirmPassword, "error.confirm_required"),
			EqualTo(FieldConfirmPassword, FieldPassword, "error.password_mismatch"),
		},
		FieldDateOfBirth: {
			DateWithin(FieldDateOfBirth, window, "error.date_required"),
		},
		FieldGender: {
			Required(FieldGender, "error.gender_required"),
		},
		FieldAcceptTerms: {
			Checked(FieldAcceptTerms, "error.terms_required"),
		},
	}
}

// Check runs the rules of f and returns the first failure.
func (rs Ruleset) Check(v Values, f Field) *ValidationError {
	for _, rule := range rs[f] {
		if err := rule(v); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				return verr
			}
			return &ValidationError{Field: f, Message: err.Error()}
		}
	}
	return nil
}

// CheckAll validates every field and returns the messages of the failing
// ones.
func (rs Ruleset) CheckAll(v Values) map[Field]string {
	errs := make(map[Field]string)
	for _, f := range Fields {
		if verr := rs.Check(v, f); verr != nil {
			errs[f] = verr.Message
		}
	}
	return errs
}
