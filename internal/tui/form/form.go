// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form lays out a column of inputs, moves focus between them and
// decodes their values into a typed result.
package form

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"

	"github.com/toeirei/regform/util/slicest"
)

type FormInput interface {
	Focus() (tea.Cmd, help.KeyMap)
	Blur()
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

// ErrorSetter is implemented by inputs that display a validation message.
type ErrorSetter interface {
	SetError(msg string)
}

// Capturer is implemented by inputs that temporarily take every key, such
// as an open picker. The form does not move focus while Capturing is true.
type Capturer interface {
	Capturing() bool
}

// Styled is implemented by inputs that render with the form styles.
type Styled interface {
	SetStyles(*Styles)
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

type Form[T any] struct {
	OnSubmit func(result T, err error) tea.Cmd
	OnReset  func() tea.Cmd
	OnBlur   func(id string) tea.Cmd
	OnOpen   func(id string) tea.Cmd

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	keyMap      help.KeyMap
	styles      *Styles
	width       int
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		f.width = msg.Width
		return f, nil
	}
	if !f.focused || len(f.items) == 0 {
		return f, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && !f.capturing() {
		switch {
		case key.Matches(kmsg, DefaultKeyMap.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(kmsg, DefaultKeyMap.Prev):
			return f, f.changeActiveIndex(-1)
		}
	}

	return f, f.updateActiveInput(msg)
}

// UpdateAll passes msg to every input, not only the focused one. Used for
// messages addressed to a specific input, such as loaded options.
func (f *Form[T]) UpdateAll(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(f.items))
	for _, item := range f.items {
		cmd, _ := item.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (f Form[T]) View() string {
	width := f.width
	if width <= 0 {
		width = 60
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, func(row formRow) string {
			return lipgloss.JoinHorizontal(
				lipgloss.Top,
				slicest.Map(row.items, func(itemIndex int) string {
					return f.items[itemIndex].input.View(width / len(row.items))
				})...,
			)
		})...,
	)
}

// Focus gives keyboard focus to the form and its active input.
func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	if len(f.items) == 0 {
		return nil, DefaultKeyMap
	}
	return f.focusActive(), f.KeyMap()
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// KeyMap is the help of the active input followed by the form navigation.
func (f *Form[T]) KeyMap() help.KeyMap {
	return MergeKeyMaps(f.keyMap, DefaultKeyMap)
}

// ActiveID returns the id of the focused input.
func (f *Form[T]) ActiveID() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

// Capturing reports whether the active input holds every key.
func (f *Form[T]) Capturing() bool { return f.capturing() }

func (f *Form[T]) capturing() bool {
	if len(f.items) == 0 {
		return false
	}
	c, ok := f.items[f.activeIndex].input.(Capturer)
	return ok && c.Capturing()
}

// Reset clears every input and focuses the first one.
func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
		if es, ok := item.input.(ErrorSetter); ok {
			es.SetError("")
		}
	}
	if len(f.items) == 0 {
		return nil
	}
	return f.changeActiveIndex(-f.activeIndex)
}

func (f *Form[T]) Submit() tea.Cmd {
	if f.OnSubmit == nil {
		return nil
	}
	return f.OnSubmit(f.Get())
}

// SetErrors shows msgs by input id. Inputs without an entry are cleared.
func (f *Form[T]) SetErrors(msgs map[string]string) {
	for _, item := range f.items {
		if es, ok := item.input.(ErrorSetter); ok {
			es.SetError(msgs[item.id])
		}
	}
}

// SetStyles replaces the shared styles of every styled input.
func (f *Form[T]) SetStyles(s *Styles) {
	if f.styles == nil {
		f.styles = s
		for _, item := range f.items {
			if st, ok := item.input.(Styled); ok {
				st.SetStyles(f.styles)
			}
		}
		return
	}
	*f.styles = *s
}

// Input returns the input registered under id.
func (f *Form[T]) Input(id string) (FormInput, bool) {
	for _, item := range f.items {
		if item.id == id {
			return item.input, true
		}
	}
	return nil, false
}

// SetValue sets the input registered under id.
func (f *Form[T]) SetValue(id string, value any) error {
	in, ok := f.Input(id)
	if !ok {
		return fmt.Errorf("no input %q", id)
	}
	in.Set(value)
	return nil
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var actionCmd tea.Cmd

	updateCmd, action := f.items[f.activeIndex].input.Update(msg)

	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionReset:
		if f.OnReset != nil {
			actionCmd = f.OnReset()
		}
	case ActionOpen:
		if f.OnOpen != nil {
			actionCmd = f.OnOpen(f.ActiveID())
		}
	}

	return tea.Batch(updateCmd, actionCmd)
}

func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	var blurCmd tea.Cmd
	delta = delta % len(f.items)

	if delta != 0 && f.focused {
		old := f.activeIndex
		f.activeIndex = (f.activeIndex + delta + len(f.items)) % len(f.items)
		f.items[old].input.Blur()
		if f.OnBlur != nil {
			blurCmd = f.OnBlur(f.items[old].id)
		}
	}

	return tea.Batch(blurCmd, f.focusActive())
}

func (f *Form[T]) focusActive() tea.Cmd {
	cmd, km := f.items[f.activeIndex].input.Focus()
	f.keyMap = km
	return cmd
}

// Get decodes the current input values into T by input id.
func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if v := item.input.Get(); v != nil {
			values[item.id] = v
		}
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}
