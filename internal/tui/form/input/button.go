// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/regform/internal/tui/form"
)

type Button struct {
	Label    string
	Action   form.Action
	Disabled bool
	KeyMap   ButtonKeyMap

	focused bool
	styles  *form.Styles
}

type ButtonKeyMap struct {
	Click key.Binding
}

func (k ButtonKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Click} }

func (k ButtonKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Click}} }

// NewButton returns a button that emits action when pressed.
func NewButton(label string, action form.Action) *Button {
	return &Button{
		Label:  label,
		Action: action,
		KeyMap: ButtonKeyMap{
			Click: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", strings.ToLower(label)),
			),
		},
		styles: form.DefaultStyles(),
	}
}

func (b *Button) Focus() (tea.Cmd, help.KeyMap) {
	b.focused = true
	return nil, b.KeyMap
}

func (b *Button) Blur() {
	b.focused = false
}

func (b *Button) SetStyles(s *form.Styles) { b.styles = s }

func (b *Button) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.Disabled && key.Matches(msg, b.KeyMap.Click) {
		return nil, b.Action
	}
	return nil, form.ActionNone
}

func (b *Button) View(width int) string {
	style := b.styles.Button
	if b.focused && !b.Disabled {
		style = b.styles.ActiveButton
	}
	return style.MarginRight(2).MaxWidth(max(width, 1)).Render(b.Label)
}

// not needed
func (b *Button) Get() any      { return nil }
func (b *Button) Init() tea.Cmd { return nil }
func (b *Button) Reset()        {}
func (b *Button) Set(any)       {}

var _ form.FormInput = (*Button)(nil)
