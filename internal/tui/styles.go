// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/regform/internal/theme"
	"github.com/toeirei/regform/internal/tui/form"
)

// formStyles derives the input styles of the form from a theme palette.
func formStyles(p theme.Palette) *form.Styles {
	return &form.Styles{
		Label:        lipgloss.NewStyle().Foreground(p.Subtle),
		FocusedLabel: p.FocusedLabel,
		Value:        lipgloss.NewStyle().Foreground(p.Text),
		Placeholder:  lipgloss.NewStyle().Foreground(p.Subtle),
		Error:        p.ErrorText,
		Hint:         p.Help,
		Button:       p.ButtonStyle,
		ActiveButton: p.ActiveButton,
		Accent:       lipgloss.NewStyle().Foreground(p.Highlight),
	}
}
