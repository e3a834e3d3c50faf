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

// Option is one choice of a Radio or Select input.
type Option struct {
	Value string
	Label string
}

// Radio is a horizontal single choice. Nothing is chosen until the user
// picks an option.
type Radio struct {
	Label   string
	Options []Option
	KeyMap  RadioKeyMap

	cursor  int
	chosen  int
	focused bool
	err     string
	styles  *form.Styles
}

type RadioKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Choose key.Binding
}

func (k RadioKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Left, k.Right, k.Choose} }

func (k RadioKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func NewRadio(label string, options ...Option) *Radio {
	return &Radio{
		Label:   label,
		Options: options,
		KeyMap: RadioKeyMap{
			Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev option")),
			Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next option")),
			Choose: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "choose")),
		},
		chosen: -1,
		styles: form.DefaultStyles(),
	}
}

func (r *Radio) Focus() (tea.Cmd, help.KeyMap) {
	r.focused = true
	return nil, r.KeyMap
}

func (r *Radio) Blur() { r.focused = false }

func (r *Radio) Init() tea.Cmd { return nil }

func (r *Radio) Reset() {
	r.cursor, r.chosen = 0, -1
}

func (r *Radio) Get() any {
	if r.chosen < 0 || r.chosen >= len(r.Options) {
		return ""
	}
	return r.Options[r.chosen].Value
}

func (r *Radio) Set(value any) {
	s, _ := value.(string)
	r.chosen = -1
	for i, o := range r.Options {
		if o.Value == s && s != "" {
			r.chosen, r.cursor = i, i
		}
	}
}

func (r *Radio) SetError(msg string) { r.err = msg }

func (r *Radio) SetStyles(s *form.Styles) { r.styles = s }

// Moving the cursor also chooses, so arrows alone fill the field.
func (r *Radio) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(r.Options) == 0 {
		return nil, form.ActionNone
	}
	switch {
	case key.Matches(kmsg, r.KeyMap.Left):
		r.cursor = (r.cursor - 1 + len(r.Options)) % len(r.Options)
		r.chosen = r.cursor
	case key.Matches(kmsg, r.KeyMap.Right):
		r.cursor = (r.cursor + 1) % len(r.Options)
		r.chosen = r.cursor
	case key.Matches(kmsg, r.KeyMap.Choose):
		if r.chosen == r.cursor && kmsg.String() == "enter" {
			return nil, form.ActionNext
		}
		r.chosen = r.cursor
	}
	return nil, form.ActionNone
}

func (r *Radio) View(width int) string {
	parts := make([]string, 0, len(r.Options))
	for i, o := range r.Options {
		mark := "( )"
		if i == r.chosen {
			mark = "(•)"
		}
		item := mark + " " + o.Label
		if r.focused && i == r.cursor {
			item = r.styles.Accent.Render(item)
		}
		parts = append(parts, item)
	}
	return joinField(r.styles, r.Label, r.focused, strings.Join(parts, "   "), r.err)
}

var (
	_ form.FormInput   = (*Radio)(nil)
	_ form.ErrorSetter = (*Radio)(nil)
)
