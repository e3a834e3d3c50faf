// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/regform/internal/tui/form"
	"github.com/toeirei/regform/internal/tui/frame"
)

// DateTexts holds the localized strings of a Date input.
type DateTexts struct {
	Placeholder string
	Invalid     string
	Hint        string
}

// Date selects a day through a frame.DatePicker. Dates outside the bounds
// can be confirmed; they are returned as chosen and shown as invalid.
type Date struct {
	Label  string
	Texts  DateTexts
	Bounds func() (minDate, maxDate time.Time)
	KeyMap DateKeyMap

	value   time.Time
	picker  *frame.DatePicker
	invalid bool
	focused bool
	err     string
	styles  *form.Styles
}

type DateKeyMap struct {
	Open   key.Binding
	Clear  key.Binding
	Adjust key.Binding
	Field  key.Binding
	Close  key.Binding
}

func (k DateKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Clear, k.Adjust, k.Field, k.Close}
}

func (k DateKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func NewDate(label string, texts DateTexts, bounds func() (time.Time, time.Time)) *Date {
	d := &Date{
		Label:  label,
		Texts:  texts,
		Bounds: bounds,
		KeyMap: DateKeyMap{
			Open:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick date")),
			Clear:  key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("backspace", "clear")),
			Adjust: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "adjust")),
			Field:  key.NewBinding(key.WithKeys("left", "right", "tab", "shift+tab"), key.WithHelp("←/→", "field")),
			Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		},
		styles: form.DefaultStyles(),
	}
	d.setOpen(false)
	return d
}

// Capturing is true while the picker is open.
func (d *Date) Capturing() bool { return d.picker != nil }

// Invalid reports whether the chosen date lies outside the bounds, or an
// error was set for the field.
func (d *Date) Invalid() bool { return d.invalid || d.err != "" }

func (d *Date) Focus() (tea.Cmd, help.KeyMap) {
	d.focused = true
	return nil, d.KeyMap
}

func (d *Date) Blur() {
	d.focused = false
	d.setOpen(false)
}

func (d *Date) Init() tea.Cmd { return nil }

func (d *Date) Reset() {
	d.value = time.Time{}
	d.invalid = false
	d.setOpen(false)
}

func (d *Date) Get() any { return d.value }

func (d *Date) Set(value any) {
	if t, ok := value.(time.Time); ok {
		d.value = t
		d.invalid = !t.IsZero() && !d.inBounds(t)
	}
}

// SetError also drives the invalid marker, so an empty submitted date shows
// as invalid.
func (d *Date) SetError(msg string) { d.err = msg }

func (d *Date) SetStyles(s *form.Styles) { d.styles = s }

func (d *Date) bounds() (time.Time, time.Time) {
	if d.Bounds == nil {
		return time.Time{}, time.Time{}
	}
	return d.Bounds()
}

func (d *Date) inBounds(t time.Time) bool {
	minDate, maxDate := d.bounds()
	p := frame.DatePicker{Min: minDate, Max: maxDate}
	p.SetDate(t)
	return p.Valid()
}

func (d *Date) setOpen(open bool) {
	if open {
		minDate, maxDate := d.bounds()
		d.picker = frame.NewDatePicker(d.value, minDate, maxDate)
	} else {
		d.picker = nil
	}
	d.KeyMap.Open.SetEnabled(!open)
	d.KeyMap.Clear.SetEnabled(!open)
	d.KeyMap.Adjust.SetEnabled(open)
	d.KeyMap.Field.SetEnabled(open)
	d.KeyMap.Close.SetEnabled(open)
}

func (d *Date) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, form.ActionNone
	}

	if d.picker == nil {
		switch {
		case key.Matches(kmsg, d.KeyMap.Open):
			d.setOpen(true)
		case key.Matches(kmsg, d.KeyMap.Clear):
			d.value = time.Time{}
			d.invalid = false
		}
		return nil, form.ActionNone
	}

	switch kmsg.String() {
	case "up", "k":
		d.picker.IncrementField()
	case "down", "j":
		d.picker.DecrementField()
	case "right", "l", "tab":
		d.picker.FocusNext()
	case "left", "h", "shift+tab":
		d.picker.FocusPrev()
	case "esc":
		d.setOpen(false)
	case "enter":
		switch {
		case d.picker.IsFocusedCancel():
			d.setOpen(false)
		case d.picker.IsFocusedOk():
			d.value = d.picker.GetDate()
			d.invalid = !d.picker.Valid()
			d.setOpen(false)
		default:
			d.picker.FocusOk()
		}
	}
	return nil, form.ActionNone
}

func (d *Date) View(width int) string {
	if d.picker != nil {
		d.picker.Width = min(max(width-2, 30), 44)
		return joinField(d.styles, d.Label, d.focused,
			d.picker.Render(d.Label, d.Texts.Hint, d.Texts.Invalid), d.err)
	}

	body := d.styles.Placeholder.Render(d.Texts.Placeholder)
	if !d.value.IsZero() {
		body = d.styles.Value.Render(d.value.Format("2006-01-02"))
	}
	if d.Invalid() {
		body += " " + d.styles.Error.Bold(true).Render(d.Texts.Invalid)
	}
	return joinField(d.styles, d.Label, d.focused, body, d.err)
}

var (
	_ form.FormInput   = (*Date)(nil)
	_ form.ErrorSetter = (*Date)(nil)
	_ form.Capturer    = (*Date)(nil)
)
