// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package avatar

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 200, A: 255})
		}
	}
	path := filepath.Join(dir, "me.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestSelect_ImageHasPreview(t *testing.T) {
	path := writePNG(t, t.TempDir(), 8, 8)

	var h Handler
	if err := h.Select(path); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !h.Selected() || h.File().Name != "me.png" {
		t.Fatalf("file = %#v", h.File())
	}
	p := h.Preview()
	if p == nil {
		t.Fatal("expected preview")
	}
	if !strings.HasPrefix(p.URI, "file:///") || !strings.HasSuffix(p.URI, "/me.png") {
		t.Fatalf("URI = %q", p.URI)
	}
	if rows := strings.Count(p.Thumbnail, "\n") + 1; rows != 4 {
		t.Fatalf("thumbnail rows = %d, want 4", rows)
	}
	if strings.Count(p.Thumbnail, "▀") != 32 {
		t.Fatalf("thumbnail cells = %d, want 32", strings.Count(p.Thumbnail, "▀"))
	}
}

func TestSelect_NonImageHasURIOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}

	var h Handler
	if err := h.Select(path); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if h.Preview().URI == "" || h.Preview().Thumbnail != "" {
		t.Fatalf("preview = %#v", h.Preview())
	}
	if h.File().Size != 5 {
		t.Fatalf("size = %d", h.File().Size)
	}
}

func TestSelect_DirectoryRejected(t *testing.T) {
	var h Handler
	err := h.Select(t.TempDir())
	if !errors.Is(err, ErrNotFile) {
		t.Fatalf("err = %v, want ErrNotFile", err)
	}
	if h.Selected() {
		t.Fatal("directory must not be stored")
	}
}

func TestSelect_MissingKeepsPrevious(t *testing.T) {
	path := writePNG(t, t.TempDir(), 2, 2)
	var h Handler
	if err := h.Select(path); err != nil {
		t.Fatal(err)
	}
	if err := h.Select(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error")
	}
	if h.Path() != path {
		t.Fatalf("path = %q, want %q", h.Path(), path)
	}
}

func TestClear(t *testing.T) {
	path := writePNG(t, t.TempDir(), 2, 2)
	var h Handler
	_ = h.Select(path)
	h.Clear()
	if h.Selected() || h.Preview() != nil || h.Path() != "" {
		t.Fatal("Clear left state behind")
	}
}
