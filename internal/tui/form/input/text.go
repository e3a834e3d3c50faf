// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/regform/internal/tui/form"
)

type Text struct {
	Label       string
	Placeholder string
	KeyMap      TextKeyMap

	input   textinput.Model
	focused bool
	err     string
	styles  *form.Styles
}

type TextKeyMap struct {
	Next key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next} }

func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next}} }

func NewText(label, placeholder string) *Text {
	return &Text{
		Label:       label,
		Placeholder: placeholder,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "next"),
			),
		},
		input:  textinput.New(),
		styles: form.DefaultStyles(),
	}
}

// NewPassword is a Text input that echoes bullets.
func NewPassword(label string) *Text {
	t := NewText(label, "")
	t.input.EchoMode = textinput.EchoPassword
	t.input.EchoCharacter = '•'
	return t
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return t.input.Focus(), t.KeyMap
}

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Reset() {
	t.input.SetValue("")
}

func (t *Text) Set(value any) {
	if value, ok := value.(string); ok {
		t.input.SetValue(value)
	}
}

func (t *Text) SetError(msg string) { t.err = msg }

func (t *Text) SetStyles(s *form.Styles) { t.styles = s }

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, t.KeyMap.Next) {
		return nil, form.ActionNext
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

func (t *Text) View(width int) string {
	t.input.Width = max(width-4, 1)
	t.input.Placeholder = t.Placeholder
	t.input.PlaceholderStyle = t.styles.Placeholder

	return joinField(t.styles, t.Label, t.focused, t.input.View(), t.err)
}

// joinField stacks a label, the input line and an optional error line.
func joinField(s *form.Styles, label string, focused bool, body, err string) string {
	parts := []string{s.LabelFor(label, focused), body}
	if err != "" {
		parts = append(parts, s.ErrorLine(err))
	}
	return lipgloss.NewStyle().MarginBottom(1).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

var (
	_ form.FormInput   = (*Text)(nil)
	_ form.ErrorSetter = (*Text)(nil)
	_ form.Styled      = (*Text)(nil)
)
