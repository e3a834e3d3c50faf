// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package avatar holds the optional avatar file and its local preview.
// Files are never uploaded or checked for size or type.
package avatar

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ErrNotFile is returned when the selected path is a directory or a device.
var ErrNotFile = errors.New("not a regular file")

// ThumbWidth is the width of the preview thumbnail in terminal cells.
const ThumbWidth = 16

// File is the stored file reference.
type File struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Preview is the displayable preview of a file. Thumbnail is empty when the
// file is not a decodable image.
type Preview struct {
	URI       string
	Thumbnail string
}

// Handler stores at most one avatar file and its preview.
type Handler struct {
	file    *File
	preview *Preview
}

// Select stores the file at path and derives its preview, replacing any
// previous selection. A failed selection leaves the handler unchanged.
func (h *Handler) Select(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", abs, ErrNotFile)
	}
	h.file = &File{
		Path:    abs,
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	h.preview = &Preview{
		URI:       FileURI(abs),
		Thumbnail: thumbnail(abs, ThumbWidth),
	}
	return nil
}

// Clear drops the file and its preview.
func (h *Handler) Clear() {
	h.file = nil
	h.preview = nil
}

// Selected reports whether a file is stored.
func (h *Handler) Selected() bool { return h.file != nil }

// File returns the stored file, or nil.
func (h *Handler) File() *File { return h.file }

// Preview returns the preview of the stored file, or nil.
func (h *Handler) Preview() *Preview { return h.preview }

// Path returns the stored path, or "".
func (h *Handler) Path() string {
	if h.file == nil {
		return ""
	}
	return h.file.Path
}

// FileURI converts an absolute path into a file:// URI.
func FileURI(abs string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u.String()
}

// thumbnail renders the image at path with upper half blocks, two pixel
// rows per terminal row. Undecodable files yield "".
func thumbnail(path string, width int) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return ""
	}
	return Render(img, width)
}

// Render draws img scaled to width cells using nearest-neighbour sampling.
func Render(img image.Image, width int) string {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || width <= 0 {
		return ""
	}
	width = min(width, b.Dx())
	height := max(b.Dy()*width/b.Dx(), 1)
	if height%2 == 1 {
		height++
	}

	at := func(x, y int) lipgloss.Color {
		sx := b.Min.X + x*b.Dx()/width
		sy := b.Min.Y + min(y*b.Dy()/height, b.Dy()-1)
		r, g, bl, _ := img.At(sx, sy).RGBA()
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8))
	}

	var sb strings.Builder
	for y := 0; y < height; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			cell := lipgloss.NewStyle().Foreground(at(x, y)).Background(at(x, y+1))
			sb.WriteString(cell.Render("▀"))
		}
	}
	return sb.String()
}
