// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package registration

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/toeirei/regform/internal/i18n"
)

// Gender is the enumerated gender choice. The zero value means "not chosen".
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Genders lists the selectable options in display order.
var Genders = []Gender{GenderMale, GenderFemale}

// Valid reports whether g is one of Genders.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

var genderLabelIDs = map[Gender]string{
	GenderMale:   "gender.male",
	GenderFemale: "gender.female",
}

// Label returns the localized option text.
func (g Gender) Label() string {
	if id, ok := genderLabelIDs[g]; ok {
		return i18n.T(id)
	}
	return ""
}

// DateLayout is the textual form of DateOfBirth.
const DateLayout = "2006-01-02"

// Values is the content of the registration form. The zero value is the
// empty form; a zero DateOfBirth means no date is selected.
type Values struct {
	Name            string    `mapstructure:"name" yaml:"name" json:"name"`
	Email           string    `mapstructure:"email" yaml:"email" json:"email"`
	Password        string    `mapstructure:"password" yaml:"password" json:"password"`
	ConfirmPassword string    `mapstructure:"confirmPassword" yaml:"confirmPassword" json:"confirmPassword"`
	DateOfBirth     time.Time `mapstructure:"dateOfBirth" yaml:"-" json:"-"`
	Gender          Gender    `mapstructure:"gender" yaml:"gender" json:"gender"`
	Country         string    `mapstructure:"country" yaml:"country" json:"country"`
	Avatar          string    `mapstructure:"avatar" yaml:"avatar" json:"avatar,omitempty"`
	AcceptTerms     bool      `mapstructure:"acceptTerms" yaml:"acceptTerms" json:"acceptTerms"`
}

// Get returns the raw value of f.
func (v Values) Get(f Field) any {
	switch f {
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldPassword:
		return v.Password
	case FieldConfirmPassword:
		return v.ConfirmPassword
	case FieldDateOfBirth:
		return v.DateOfBirth
	case FieldGender:
		return v.Gender
	case FieldCountry:
		return v.Country
	case FieldAvatar:
		return v.Avatar
	case FieldAcceptTerms:
		return v.AcceptTerms
	}
	return nil
}

// Filled reports whether f holds a truthy value.
func (v Values) Filled(f Field) bool {
	switch f {
	case FieldDateOfBirth:
		return !v.DateOfBirth.IsZero()
	case FieldAcceptTerms:
		return v.AcceptTerms
	case FieldGender:
		return v.Gender != ""
	}
	s, _ := v.Get(f).(string)
	return s != ""
}

// Equal reports whether f holds the same value in v and o.
func (v Values) Equal(o Values, f Field) bool {
	if f == FieldDateOfBirth {
		return v.DateOfBirth.Equal(o.DateOfBirth)
	}
	return v.Get(f) == o.Get(f)
}

// DateString formats DateOfBirth, or returns "" when unset.
func (v Values) DateString() string {
	if v.DateOfBirth.IsZero() {
		return ""
	}
	return v.DateOfBirth.Format(DateLayout)
}

// Masked returns a copy safe for logs and clipboards.
func (v Values) Masked() Values {
	if v.Password != "" {
		v.Password = strings.Repeat("*", 8)
	}
	if v.ConfirmPassword != "" {
		v.ConfirmPassword = strings.Repeat("*", 8)
	}
	return v
}

// MarshalJSON renders DateOfBirth in DateLayout and omits it when unset.
func (v Values) MarshalJSON() ([]byte, error) {
	type plain Values
	return json.Marshal(struct {
		plain
		DateOfBirth string `json:"dateOfBirth,omitempty"`
	}{plain(v), v.DateString()})
}
