// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/regform/internal/tui/form"
)

type optionItem Option

func (o optionItem) FilterValue() string { return o.Label }
func (o optionItem) Title() string       { return o.Label }
func (o optionItem) Description() string { return "" }

// Select is a single choice from a long, filterable list. It starts in the
// loading state until SetOptions is called.
type Select struct {
	Label       string
	LoadingText string
	EmptyText   string
	Placeholder string
	Hint        string
	KeyMap      SelectKeyMap

	list    list.Model
	spinner spinner.Model
	options []Option
	value   string
	loading bool
	open    bool
	focused bool
	err     string
	styles  *form.Styles
}

type SelectKeyMap struct {
	Open  key.Binding
	Clear key.Binding
	Pick  key.Binding
	Close key.Binding
}

func (k SelectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Clear, k.Pick, k.Close}
}

func (k SelectKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func NewSelect(label, placeholder, loadingText, emptyText string) *Select {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(nil, delegate, 40, 10)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	s := &Select{
		Label:       label,
		Placeholder: placeholder,
		LoadingText: loadingText,
		EmptyText:   emptyText,
		KeyMap: SelectKeyMap{
			Open:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open list")),
			Clear: key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("backspace", "clear")),
			Pick:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose"), key.WithDisabled()),
			Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close"), key.WithDisabled()),
		},
		list:    l,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		loading: true,
		styles:  form.DefaultStyles(),
	}
	return s
}

// Loading reports whether options are still awaited.
func (s *Select) Loading() bool { return s.loading }

// Options returns the current options.
func (s *Select) Options() []Option { return s.options }

// SetOptions ends the loading state. An empty slice leaves the select with
// nothing to choose.
func (s *Select) SetOptions(opts []Option) {
	s.loading = false
	s.options = opts
	items := make([]list.Item, len(opts))
	for i, o := range opts {
		items[i] = optionItem(o)
	}
	s.list.SetItems(items)
}

// Capturing is true while the list is open.
func (s *Select) Capturing() bool { return s.open }

func (s *Select) Focus() (tea.Cmd, help.KeyMap) {
	s.focused = true
	return nil, s.KeyMap
}

func (s *Select) Blur() {
	s.focused = false
	s.setOpen(false)
}

func (s *Select) Init() tea.Cmd {
	if s.loading {
		return s.spinner.Tick
	}
	return nil
}

func (s *Select) Reset() {
	s.value = ""
	s.setOpen(false)
	s.list.ResetFilter()
	s.list.Select(0)
}

func (s *Select) Get() any { return s.value }

func (s *Select) Set(value any) {
	if v, ok := value.(string); ok {
		s.value = v
	}
}

func (s *Select) SetError(msg string) { s.err = msg }

func (s *Select) SetStyles(st *form.Styles) { s.styles = st }

func (s *Select) setOpen(open bool) {
	s.open = open
	s.KeyMap.Open.SetEnabled(!open)
	s.KeyMap.Clear.SetEnabled(!open)
	s.KeyMap.Pick.SetEnabled(open)
	s.KeyMap.Close.SetEnabled(open)
}

func (s *Select) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		if !s.loading {
			return nil, form.ActionNone
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(tick)
		return cmd, form.ActionNone
	}

	kmsg, isKey := msg.(tea.KeyMsg)
	if !s.open {
		if !isKey || s.loading {
			return nil, form.ActionNone
		}
		switch {
		case key.Matches(kmsg, s.KeyMap.Open) && len(s.options) > 0:
			s.setOpen(true)
			s.selectValue()
		case key.Matches(kmsg, s.KeyMap.Clear):
			s.value = ""
		}
		return nil, form.ActionNone
	}

	if isKey && s.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(kmsg, s.KeyMap.Pick):
			if it, ok := s.list.SelectedItem().(optionItem); ok {
				s.value = it.Value
			}
			s.setOpen(false)
			return nil, form.ActionNone
		case key.Matches(kmsg, s.KeyMap.Close) && s.list.FilterState() == list.Unfiltered:
			s.setOpen(false)
			return nil, form.ActionNone
		}
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return cmd, form.ActionNone
}

func (s *Select) selectValue() {
	for i, it := range s.list.Items() {
		if o, ok := it.(optionItem); ok && o.Value == s.value {
			s.list.Select(i)
			return
		}
	}
}

func (s *Select) labelOf(value string) string {
	for _, o := range s.options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func (s *Select) View(width int) string {
	var body string
	switch {
	case s.loading:
		body = s.spinner.View() + " " + s.LoadingText
	case s.open:
		s.list.SetSize(max(width-2, 10), 10)
		body = s.list.View()
		if s.Hint != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, body, s.styles.Hint.Render(s.Hint))
		}
	case s.value != "":
		body = s.styles.Value.Render("▾ " + s.labelOf(s.value))
	case len(s.options) == 0:
		body = s.styles.Placeholder.Render(s.EmptyText)
	default:
		body = s.styles.Placeholder.Render("▾ " + s.Placeholder)
	}
	return joinField(s.styles, s.Label, s.focused, body, s.err)
}

var (
	_ form.FormInput   = (*Select)(nil)
	_ form.ErrorSetter = (*Select)(nil)
	_ form.Capturer    = (*Select)(nil)
)
