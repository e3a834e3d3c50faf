// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/regform/internal/avatar"
	"github.com/toeirei/regform/internal/tui/form"
	"github.com/toeirei/regform/internal/tui/frame"
)

// FileTexts holds the localized strings of a File input. FileFormat takes
// the file name.
type FileTexts struct {
	Choose     string
	FileFormat string
	PreviewAlt string
	Hint       string
	DeleteHint string
}

// File picks an avatar through a frame.FilePicker and keeps it in an
// avatar.Handler, which derives the preview.
type File struct {
	Label   string
	Texts   FileTexts
	StartIn string
	KeyMap  FileKeyMap

	handler *avatar.Handler
	picker  *frame.FilePicker
	focused bool
	err     string
	styles  *form.Styles
}

type FileKeyMap struct {
	Open   key.Binding
	Delete key.Binding
	Move   key.Binding
	Pick   key.Binding
	Up     key.Binding
	Close  key.Binding
}

func (k FileKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Delete, k.Move, k.Pick, k.Up, k.Close}
}

func (k FileKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func NewFile(label string, texts FileTexts, handler *avatar.Handler) *File {
	if handler == nil {
		handler = &avatar.Handler{}
	}
	f := &File{
		Label:   label,
		Texts:   texts,
		handler: handler,
		KeyMap: FileKeyMap{
			Open:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose file")),
			Delete: key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("backspace", "remove")),
			Move:   key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("j/k", "move")),
			Pick:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
			Up:     key.NewBinding(key.WithKeys("u", "backspace"), key.WithHelp("u", "parent dir")),
			Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		},
		styles: form.DefaultStyles(),
	}
	f.setOpen(false)
	return f
}

// Handler returns the avatar handler backing the input.
func (f *File) Handler() *avatar.Handler { return f.handler }

// Capturing is true while the picker is open.
func (f *File) Capturing() bool { return f.picker != nil }

func (f *File) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	return nil, f.KeyMap
}

func (f *File) Blur() {
	f.focused = false
	f.setOpen(false)
}

func (f *File) Init() tea.Cmd { return nil }

// Reset drops the file and its preview.
func (f *File) Reset() {
	f.handler.Clear()
	f.err = ""
	f.setOpen(false)
}

func (f *File) Get() any { return f.handler.Path() }

// Set selects path, or clears the selection for "".
func (f *File) Set(value any) {
	path, ok := value.(string)
	if !ok {
		return
	}
	if path == "" {
		f.handler.Clear()
		return
	}
	f.choose(path)
}

func (f *File) SetError(msg string) {
	if msg != "" {
		f.err = msg
	}
}

func (f *File) SetStyles(s *form.Styles) { f.styles = s }

func (f *File) choose(path string) {
	if err := f.handler.Select(path); err != nil {
		f.err = err.Error()
		return
	}
	f.err = ""
}

func (f *File) setOpen(open bool) {
	if open {
		start := f.StartIn
		if f.handler.Selected() {
			start = dirOf(f.handler.Path())
		}
		f.picker = frame.NewFilePicker(start)
	} else {
		f.picker = nil
	}
	f.KeyMap.Open.SetEnabled(!open)
	f.KeyMap.Delete.SetEnabled(!open && f.handler.Selected())
	f.KeyMap.Move.SetEnabled(open)
	f.KeyMap.Pick.SetEnabled(open)
	f.KeyMap.Up.SetEnabled(open)
	f.KeyMap.Close.SetEnabled(open)
}

func (f *File) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, form.ActionNone
	}

	if f.picker == nil {
		switch {
		case key.Matches(kmsg, f.KeyMap.Open):
			f.setOpen(true)
		case key.Matches(kmsg, f.KeyMap.Delete):
			f.handler.Clear()
			f.err = ""
			f.setOpen(false)
		}
		return nil, form.ActionNone
	}

	switch kmsg.String() {
	case "up", "k":
		f.picker.MoveUp()
	case "down", "j":
		f.picker.MoveDown()
	case "u", "backspace":
		f.picker.GoUp()
	case "tab":
		f.picker.FocusNext()
	case "shift+tab":
		f.picker.FocusPrev()
	case "esc":
		f.setOpen(false)
	case "enter":
		switch f.picker.Focused {
		case frame.FileFocusCancel:
			f.setOpen(false)
		case frame.FileFocusOk, frame.FileFocusList:
			if path := f.picker.SelectCurrent(); path != "" {
				f.choose(path)
				f.setOpen(false)
			}
		}
	}
	return nil, form.ActionNone
}

func (f *File) View(width int) string {
	if f.picker != nil {
		f.picker.Width = min(max(width-2, 40), 70)
		return joinField(f.styles, f.Label, f.focused, f.picker.Render(f.Texts.Hint), f.err)
	}

	if !f.handler.Selected() {
		button := f.styles.Button
		if f.focused {
			button = f.styles.ActiveButton
		}
		return joinField(f.styles, f.Label, f.focused, button.Render(f.Texts.Choose), f.err)
	}

	lines := []string{
		f.styles.Value.Render(fmt.Sprintf(f.Texts.FileFormat, f.handler.File().Name)),
	}
	if p := f.handler.Preview(); p != nil {
		if p.Thumbnail != "" {
			lines = append(lines, p.Thumbnail)
		}
		lines = append(lines, f.styles.Hint.Render(f.Texts.PreviewAlt+": "+p.URI))
	}
	if f.focused && f.Texts.DeleteHint != "" {
		lines = append(lines, f.styles.Hint.Render(f.Texts.DeleteHint))
	}
	return joinField(f.styles, f.Label, f.focused, lipgloss.JoinVertical(lipgloss.Left, lines...), f.err)
}

var (
	_ form.FormInput   = (*File)(nil)
	_ form.ErrorSetter = (*File)(nil)
	_ form.Capturer    = (*File)(nil)
)

func dirOf(path string) string {
	return filepath.Dir(path)
}
