// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/toeirei/regform/internal/theme"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [show|toggle|dark|light]",
		Short:     "Show or change the stored theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"show", "toggle", "dark", "light"},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := themeStore()
			if err != nil {
				return err
			}
			action := "show"
			if len(args) == 1 {
				action = args[0]
			}
			t, err := applyThemeAction(store, action, lipgloss.HasDarkBackground)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t)
			return err
		},
	}
}

// applyThemeAction runs one theme subcommand against store and returns the
// resulting theme.
func applyThemeAction(store theme.Store, action string, detectDark func() bool) (theme.Theme, error) {
	switch action {
	case "show":
		return theme.Resolve(store, detectDark), nil
	case "toggle":
		return theme.Switch(store, theme.Resolve(store, detectDark))
	default:
		t, err := theme.Parse(action)
		if err != nil {
			return "", err
		}
		if err := store.Save(t); err != nil {
			return "", fmt.Errorf("save theme: %w", err)
		}
		return t, nil
	}
}
