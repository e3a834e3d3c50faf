// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/toeirei/regform/internal/prompt"
	"github.com/toeirei/regform/internal/registration"
)

func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Fill the form with line prompts",
		Long: `Asks for every field in turn with the same rules as the interactive
form. Failing fields are asked again after submit. Interrupting with
ctrl+c leaves without a submission.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := prompt.NewRunner(prompt.NewSurveyDriver(), registration.New(), countryLoader())
			sub, err := r.Run(cmd.Context())
			if errors.Is(err, prompt.ErrAborted) {
				log.Info("prompt aborted")
				return nil
			}
			if err != nil {
				return err
			}
			return printSubmission(cmd.OutOrStdout(), sub)
		},
	}
}
