// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/regform/internal/registration"
)

// Palette holds the colours and derived styles of one theme.
type Palette struct {
	Subtle    lipgloss.Color
	Highlight lipgloss.Color
	Special   lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Text      lipgloss.Color
	Button    lipgloss.Color

	Doc          lipgloss.Style
	Title        lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Help         lipgloss.Style
	ErrorText    lipgloss.Style
	SuccessText  lipgloss.Style
	Status       lipgloss.Style
	Dialog       lipgloss.Style
	ButtonStyle  lipgloss.Style
	ActiveButton lipgloss.Style
}

var (
	dark = newPalette(Palette{
		Subtle:    lipgloss.Color("240"),
		Highlight: lipgloss.Color("81"),
		Special:   lipgloss.Color("208"),
		Error:     lipgloss.Color("196"),
		Success:   lipgloss.Color("40"),
		Text:      lipgloss.Color("231"),
		Button:    lipgloss.Color("237"),
	})
	light = newPalette(Palette{
		Subtle:    lipgloss.Color("245"),
		Highlight: lipgloss.Color("25"),
		Special:   lipgloss.Color("166"),
		Error:     lipgloss.Color("160"),
		Success:   lipgloss.Color("28"),
		Text:      lipgloss.Color("16"),
		Button:    lipgloss.Color("252"),
	})
)

func newPalette(p Palette) Palette {
	p.Doc = lipgloss.NewStyle().Margin(1, 2)
	p.Title = lipgloss.NewStyle().Foreground(p.Highlight).Bold(true).Padding(0, 1)
	p.Label = lipgloss.NewStyle().Foreground(p.Text)
	p.FocusedLabel = lipgloss.NewStyle().Foreground(p.Highlight).Bold(true)
	p.Help = lipgloss.NewStyle().Foreground(p.Subtle)
	p.ErrorText = lipgloss.NewStyle().Foreground(p.Error)
	p.SuccessText = lipgloss.NewStyle().Foreground(p.Success)
	p.Status = lipgloss.NewStyle().Padding(0, 1).Foreground(p.Text).Background(p.Highlight)
	p.Dialog = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(p.Highlight).
		Padding(1, 2).
		Width(60)
	p.ButtonStyle = lipgloss.NewStyle().Foreground(p.Text).Background(p.Button).Padding(0, 3)
	p.ActiveButton = p.ButtonStyle.Background(p.Highlight).Underline(true)
	return p
}

// PaletteFor returns the palette of t.
func PaletteFor(t Theme) Palette {
	if t == Light {
		return light
	}
	return dark
}

// BandColor is the progress bar colour of band.
func (p Palette) BandColor(band registration.Band) lipgloss.Color {
	switch band {
	case registration.BandDanger:
		return p.Error
	case registration.BandWarning:
		return p.Special
	}
	return p.Success
}
