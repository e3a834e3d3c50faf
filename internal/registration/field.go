// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package registration

import "github.com/toeirei/regform/internal/i18n"

// Field names one independently validated input of the form. The string
// value doubles as the mapstructure key used by the form renderers.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
	FieldDateOfBirth     Field = "dateOfBirth"
	FieldGender          Field = "gender"
	FieldCountry         Field = "country"
	FieldAvatar          Field = "avatar"
	FieldAcceptTerms     Field = "acceptTerms"
)

// Fields lists every field in display order.
var Fields = []Field{
	FieldName,
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
	FieldDateOfBirth,
	FieldGender,
	FieldCountry,
	FieldAvatar,
	FieldAcceptTerms,
}

var labelIDs = map[Field]string{
	FieldName:            "field.name",
	FieldEmail:           "field.email",
	FieldPassword:        "field.password",
	FieldConfirmPassword: "field.confirm_password",
	FieldDateOfBirth:     "field.date_of_birth",
	FieldGender:          "field.gender",
	FieldCountry:         "field.country",
	FieldAvatar:          "field.avatar",
	FieldAcceptTerms:     "field.accept_terms",
}

// Label returns the localized label of f.
func (f Field) Label() string {
	if id, ok := labelIDs[f]; ok {
		return i18n.T(id)
	}
	return string(f)
}

// ParseField maps a field key back to a Field.
func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}
