// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package registration

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/toeirei/regform/internal/logging"
)

// Submission is the report of a successful submit. Nothing is sent anywhere;
// the submission is logged and kept for copying.
type Submission struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
	Values      Values    `json:"values"`
}

// NewSubmission builds a submission of v with masked passwords.
func NewSubmission(v Values, at time.Time) *Submission {
	return &Submission{
		ID:          uuid.NewString(),
		SubmittedAt: at,
		Values:      v.Masked(),
	}
}

// JSON renders s as indented JSON.
func (s *Submission) JSON() (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Log writes s to the application log.
func (s *Submission) Log() {
	logging.L.Info("Submitted data",
		"id", s.ID,
		"name", s.Values.Name,
		"email", s.Values.Email,
		"dateOfBirth", s.Values.DateString(),
		"gender", string(s.Values.Gender),
		"country", s.Values.Country,
		"avatar", s.Values.Avatar,
		"acceptTerms", s.Values.AcceptTerms,
	)
}
