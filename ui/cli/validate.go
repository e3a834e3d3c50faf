// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/toeirei/regform/internal/i18n"
	"github.com/toeirei/regform/internal/registration"
)

// ErrInvalidForm is returned by validate when at least one field fails.
var ErrInvalidForm = errors.New("form has errors")

// valuesFile is the YAML layout read by validate. Keys match the field names.
type valuesFile struct {
	Name            string `yaml:"name"`
	Email           string `yaml:"email"`
	Password        string `yaml:"password"`
	ConfirmPassword string `yaml:"confirmPassword"`
	DateOfBirth     string `yaml:"dateOfBirth"`
	Gender          string `yaml:"gender"`
	Country         string `yaml:"country"`
	Avatar          string `yaml:"avatar"`
	AcceptTerms     bool   `yaml:"acceptTerms"`
}

func newValidateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a YAML file of form values",
		Long: `Reads form values from a YAML file (or stdin with -f -), runs the
submit validation and prints one line per failing field together with the
progress. Exits with status 1 when any field fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readValuesFile(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			var vf valuesFile
			if err := yaml.Unmarshal(data, &vf); err != nil {
				return fmt.Errorf("could not parse %s: %w", file, err)
			}
			st := registration.New()
			dateErr := vf.applyTo(st)
			return reportValidation(cmd.OutOrStdout(), st, dateErr)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "values file (YAML), - for stdin")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readValuesFile(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read values file: %w", err)
	}
	return data, nil
}

// applyTo copies the file into st. It returns a message when the date string
// could not be used.
func (vf valuesFile) applyTo(st *registration.FormState) string {
	st.SetName(strings.TrimSpace(vf.Name))
	st.SetEmail(strings.TrimSpace(vf.Email))
	st.SetPassword(vf.Password)
	st.SetConfirmPassword(vf.ConfirmPassword)
	st.SetGender(registration.Gender(strings.ToLower(strings.TrimSpace(vf.Gender))))
	st.SetCountry(strings.TrimSpace(vf.Country))
	st.SetAvatar(strings.TrimSpace(vf.Avatar))
	st.SetAcceptTerms(vf.AcceptTerms)

	raw := strings.TrimSpace(vf.DateOfBirth)
	if raw == "" {
		return ""
	}
	t, err := registration.ParseDate(raw, nil)
	if err != nil || !st.SetDate(t) {
		return i18n.T("date.invalid")
	}
	return ""
}

func reportValidation(w io.Writer, st *registration.FormState, dateErr string) error {
	_, ok := st.Submit()
	errs := st.Errors()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range registration.Fields {
		msg, bad := errs[f]
		if !bad {
			continue
		}
		if f == registration.FieldDateOfBirth && dateErr != "" {
			msg = msg + " (" + dateErr + ")"
		}
		fmt.Fprintf(tw, "%s\t%s\n", f, msg)
	}
	fmt.Fprintf(tw, "progress\t%d%%\n", st.Progress())
	if err := tw.Flush(); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidForm, len(errs))
	}
	return nil
}
