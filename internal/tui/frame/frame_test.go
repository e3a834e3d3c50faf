// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package frame

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestFooter(t *testing.T) {
	got := Footer("left", "right", 20)
	if lipgloss.Width(got) != 20 || !strings.HasPrefix(got, "left") || !strings.HasSuffix(got, "right") {
		t.Fatalf("Footer = %q", got)
	}
	got = Footer("a very long left side", "R", 10)
	if lipgloss.Width(got) != 10 || !strings.HasSuffix(got, "R") {
		t.Fatalf("truncated Footer = %q", got)
	}
	if got := Footer("l", "right", 3); got != "rig" {
		t.Fatalf("Footer without room = %q", got)
	}
}

func TestDatePicker_BoundsAndSteps(t *testing.T) {
	minD := time.Date(1896, 10, 19, 0, 0, 0, 0, time.UTC)
	maxD := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	dp := NewDatePicker(time.Time{}, minD, maxD)

	if !dp.GetDate().Equal(maxD) || !dp.Valid() {
		t.Fatalf("start = %v valid=%v", dp.GetDate(), dp.Valid())
	}
	dp.Focused = DateFocusDay
	dp.IncrementField()
	if dp.Valid() {
		t.Fatal("date after max must be invalid")
	}
	dp.DecrementField()
	dp.Focused = DateFocusYear
	for i := 0; i < 131; i++ {
		dp.DecrementField()
	}
	if dp.Valid() {
		t.Fatalf("%v must be before min", dp.GetDate())
	}

	dp.FocusPrev()
	if !dp.IsFocusedCancel() {
		t.Fatalf("focus = %d, want cancel", dp.Focused)
	}
	dp.FocusNext()
	if dp.Focused != DateFocusYear {
		t.Fatalf("focus = %d, want year", dp.Focused)
	}
	if out := dp.Render("title", "hint", "invalid"); !strings.Contains(out, "invalid") {
		t.Fatalf("invalid marker missing:\n%s", out)
	}
}

func TestFilePicker_Navigation(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "sub", "me.png"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ".hidden"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	fp := NewFilePicker(root)
	if fp.GetSelected() != ".." {
		t.Fatalf("first entry = %q", fp.GetSelected())
	}
	fp.MoveDown()
	if fp.GetSelected() != "sub" {
		t.Fatalf("selected = %q, want sub (hidden files skipped)", fp.GetSelected())
	}
	if got := fp.SelectCurrent(); got != "" {
		t.Fatalf("entering a directory returned %q", got)
	}
	fp.MoveDown()
	want := filepath.Join(root, "sub", "me.png")
	if got := fp.SelectCurrent(); got != want {
		t.Fatalf("SelectCurrent = %q, want %q", got, want)
	}
	fp.GoUp()
	if fp.CurrentPath() != root {
		t.Fatalf("path = %q, want %q", fp.CurrentPath(), root)
	}
}

func TestDialog_Render(t *testing.T) {
	d := NewDialog("Title", "Body text", "Close")
	out := d.Render()
	for _, s := range []string{"Title", "Body text", "Close"} {
		if !strings.Contains(out, s) {
			t.Fatalf("dialog missing %q:\n%s", s, out)
		}
	}
}
