// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/regform/internal/tui/form"
)

// Checkbox is a boolean toggle. Link, when set, is rendered after the label
// and opened with the Open binding.
type Checkbox struct {
	Label  string
	Link   string
	KeyMap CheckboxKeyMap

	checked bool
	focused bool
	err     string
	styles  *form.Styles
}

type CheckboxKeyMap struct {
	Toggle key.Binding
	Open   key.Binding
}

func (k CheckboxKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Toggle, k.Open} }

func (k CheckboxKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func NewCheckbox(label, link string) *Checkbox {
	c := &Checkbox{
		Label: label,
		Link:  link,
		KeyMap: CheckboxKeyMap{
			Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
			Open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open "+link)),
		},
		styles: form.DefaultStyles(),
	}
	c.KeyMap.Open.SetEnabled(link != "")
	return c
}

func (c *Checkbox) Focus() (tea.Cmd, help.KeyMap) {
	c.focused = true
	return nil, c.KeyMap
}

func (c *Checkbox) Blur()         { c.focused = false }
func (c *Checkbox) Init() tea.Cmd { return nil }
func (c *Checkbox) Reset()        { c.checked = false }
func (c *Checkbox) Get() any      { return c.checked }

func (c *Checkbox) Set(value any) {
	if b, ok := value.(bool); ok {
		c.checked = b
	}
}

func (c *Checkbox) SetError(msg string) { c.err = msg }

func (c *Checkbox) SetStyles(s *form.Styles) { c.styles = s }

func (c *Checkbox) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, form.ActionNone
	}
	switch {
	case key.Matches(kmsg, c.KeyMap.Toggle):
		c.checked = !c.checked
	case key.Matches(kmsg, c.KeyMap.Open):
		return nil, form.ActionOpen
	}
	return nil, form.ActionNone
}

func (c *Checkbox) View(width int) string {
	box := "[ ]"
	if c.checked {
		box = "[x]"
	}
	line := c.styles.LabelFor(box+" "+c.Label, c.focused)
	if c.Link != "" {
		line += " " + c.styles.Accent.Underline(true).Render(c.Link)
	}
	if c.err != "" {
		line += "\n" + c.styles.ErrorLine(c.err)
	}
	return line + "\n"
}

var (
	_ form.FormInput   = (*Checkbox)(nil)
	_ form.ErrorSetter = (*Checkbox)(nil)
)
