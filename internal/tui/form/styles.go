// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import "github.com/charmbracelet/lipgloss"

// Styles is shared by every input of a form. Inputs keep a pointer to it, so
// replacing the content restyles the whole form.
type Styles struct {
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Value        lipgloss.Style
	Placeholder  lipgloss.Style
	Error        lipgloss.Style
	Hint         lipgloss.Style
	Button       lipgloss.Style
	ActiveButton lipgloss.Style
	Accent       lipgloss.Style
}

// DefaultStyles are used until the form is themed.
func DefaultStyles() *Styles {
	return &Styles{
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		FocusedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Value:        lipgloss.NewStyle(),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Hint:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Button:       lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("237")).Padding(0, 3),
		ActiveButton: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("81")).Padding(0, 3).Underline(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
	}
}

// LabelFor renders text with the focused or plain label style.
func (s *Styles) LabelFor(text string, focused bool) string {
	if focused {
		return s.FocusedLabel.Render(text)
	}
	return s.Label.Render(text)
}

// ErrorLine renders msg below an input, or nothing when msg is empty.
func (s *Styles) ErrorLine(msg string) string {
	if msg == "" {
		return ""
	}
	return s.Error.Render(msg)
}
