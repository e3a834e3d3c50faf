// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package frame

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// Focus positions of the file picker.
const (
	FileFocusList = iota
	FileFocusOk
	FileFocusCancel
)

// FilePicker is a directory browser for choosing one existing file.
type FilePicker struct {
	Focused    int
	Width      int
	Height     int
	ShowHidden bool

	currentPath string
	entries     []os.DirEntry
	selected    int // index into entries, 0 is ".."
	vp          viewport.Model
	err         error
}

// NewFilePicker creates a file picker starting at path. An empty path starts
// in the working directory.
func NewFilePicker(path string) *FilePicker {
	if path == "" {
		path, _ = os.Getwd()
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	fp := &FilePicker{
		Focused:     FileFocusList,
		Width:       60,
		Height:      16,
		currentPath: path,
		vp:          viewport.New(40, 10),
	}
	fp.loadFiles()
	return fp
}

// CurrentPath returns the directory being browsed.
func (fp *FilePicker) CurrentPath() string { return fp.currentPath }

// Err returns the error of the last directory read.
func (fp *FilePicker) Err() error { return fp.err }

// loadFiles reads the current directory, directories first. A synthetic
// ".." entry leads to the parent.
func (fp *FilePicker) loadFiles() {
	entries, err := os.ReadDir(fp.currentPath)
	fp.err = err
	fp.entries = fp.entries[:0]
	fp.entries = append(fp.entries, parentEntry{})
	for _, e := range entries {
		if !fp.ShowHidden && strings.HasPrefix(e.Name(), ".") {
			continue
		}
		fp.entries = append(fp.entries, e)
	}
	rest := fp.entries[1:]
	sort.Slice(rest, func(i, j int) bool {
		if rest[i].IsDir() != rest[j].IsDir() {
			return rest[i].IsDir()
		}
		return rest[i].Name() < rest[j].Name()
	})
	fp.selected = 0
	fp.vp.GotoTop()
}

type parentEntry struct{}

func (parentEntry) Name() string               { return ".." }
func (parentEntry) IsDir() bool                { return true }
func (parentEntry) Type() os.FileMode          { return os.ModeDir }
func (parentEntry) Info() (os.FileInfo, error) { return nil, os.ErrNotExist }

// MoveUp moves the selection up in the file list.
func (fp *FilePicker) MoveUp() {
	if fp.Focused == FileFocusList && fp.selected > 0 {
		fp.selected--
		if fp.selected < fp.vp.YOffset {
			fp.vp.ScrollUp(1)
		}
	}
}

// MoveDown moves the selection down in the file list.
func (fp *FilePicker) MoveDown() {
	if fp.Focused == FileFocusList && fp.selected < len(fp.entries)-1 {
		fp.selected++
		if fp.selected >= fp.vp.YOffset+fp.vp.Height {
			fp.vp.ScrollDown(1)
		}
	}
}

// SelectCurrent enters the selected directory, or returns the full path of
// the selected file.
func (fp *FilePicker) SelectCurrent() string {
	if fp.selected < 0 || fp.selected >= len(fp.entries) {
		return ""
	}
	e := fp.entries[fp.selected]
	if _, ok := e.(parentEntry); ok {
		fp.GoUp()
		return ""
	}
	fullPath := filepath.Join(fp.currentPath, e.Name())
	if e.IsDir() {
		fp.currentPath = fullPath
		fp.loadFiles()
		return ""
	}
	return fullPath
}

// GoUp navigates up one directory level.
func (fp *FilePicker) GoUp() {
	parent := filepath.Dir(fp.currentPath)
	if parent != fp.currentPath {
		fp.currentPath = parent
		fp.loadFiles()
	}
}

// GetSelected returns the selected entry name.
func (fp *FilePicker) GetSelected() string {
	if fp.selected >= 0 && fp.selected < len(fp.entries) {
		return fp.entries[fp.selected].Name()
	}
	return ""
}

// FocusNext cycles between the list and the buttons.
func (fp *FilePicker) FocusNext() {
	fp.Focused = (fp.Focused + 1) % (FileFocusCancel + 1)
}

// FocusPrev cycles backwards.
func (fp *FilePicker) FocusPrev() {
	fp.Focused--
	if fp.Focused < 0 {
		fp.Focused = FileFocusCancel
	}
}

// Render produces the file picker output.
func (fp *FilePicker) Render(hint string) string {
	const buttonWidth = 14
	fp.vp.Width = fp.Width - buttonWidth - 6
	fp.vp.Height = max(fp.Height-6, 3)

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("60")).
		Bold(true).
		Width(fp.Width - 2).
		Render(" " + fp.currentPath)

	buttons := lipgloss.NewStyle().Width(buttonWidth).Height(fp.vp.Height).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			renderButton("OK", fp.Focused == FileFocusOk, 10),
			"",
			renderButton("Cancel", fp.Focused == FileFocusCancel, 10),
		),
	)

	info := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Width(fp.Width-4).
		Padding(1, 1, 0, 1).
		Render(hint)

	dialog := lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, fp.renderFileList(), buttons),
		info,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Width(fp.Width).
		Render(dialog)
}

func (fp *FilePicker) renderFileList() string {
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)

	lines := make([]string, 0, len(fp.entries))
	for i, e := range fp.entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		if i == fp.selected && fp.Focused == FileFocusList {
			lines = append(lines, selectedStyle.Render("> "+name))
			continue
		}
		lines = append(lines, "  "+name)
	}
	fp.vp.SetContent(strings.Join(lines, "\n"))

	return lipgloss.NewStyle().
		Width(fp.vp.Width).
		Height(fp.vp.Height).
		Render(fp.vp.View())
}
