// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package frame

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// Dialog is a modal box with a title, a scrollable message and a single
// closing button.
type Dialog struct {
	title  string
	button string
	width  int
	vp     viewport.Model
}

// NewDialog creates a dialog with the given title, message and button label.
func NewDialog(title, message, button string) *Dialog {
	d := &Dialog{
		title:  title,
		button: button,
		width:  60,
		vp:     viewport.New(56, 8),
	}
	d.SetMessage(message)
	return d
}

// SetMessage replaces the body text, wrapped to the dialog width.
func (d *Dialog) SetMessage(message string) {
	body := lipgloss.NewStyle().Width(d.width - 4).Render(message)
	d.vp.SetContent(body)
	d.vp.Height = min(lipgloss.Height(body), 12)
	d.vp.GotoTop()
}

// SetWidth sets the outer width of the dialog.
func (d *Dialog) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	d.width = width
	d.vp.Width = width - 4
}

// ScrollUp and ScrollDown move the message body.
func (d *Dialog) ScrollUp()   { d.vp.ScrollUp(1) }
func (d *Dialog) ScrollDown() { d.vp.ScrollDown(1) }

// Render produces the dialog box output.
func (d *Dialog) Render() string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("60")).
		Bold(true).
		Width(d.width - 2).
		Render(" " + d.title)

	message := lipgloss.NewStyle().Padding(1, 1, 0, 1).Render(d.vp.View())
	buttons := lipgloss.NewStyle().Padding(1, 1, 0, 1).Render(renderButton(d.button, true, 0))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Width(d.width).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, message, buttons))
}
