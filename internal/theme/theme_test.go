// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/toeirei/regform/internal/config"
	"github.com/toeirei/regform/internal/registration"
)

func TestParse(t *testing.T) {
	for in, want := range map[string]Theme{"dark": Dark, " Light ": Light} {
		got, err := Parse(in)
		if err != nil || got != want {
			t.Fatalf("Parse(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := Parse("sepia"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("Parse(sepia) err = %v", err)
	}
}

func TestToggleAndLabel(t *testing.T) {
	if Dark.Toggle() != Light || Light.Toggle() != Dark {
		t.Fatal("Toggle does not flip")
	}
	if got := Dark.Label(); got != "Light theme" {
		t.Fatalf("Dark.Label() = %q", got)
	}
	if got := Light.Label(); got != "Dark theme" {
		t.Fatalf("Light.Label() = %q", got)
	}
}

func TestResolve_DetectsAndPersists(t *testing.T) {
	store := &MemoryStore{}
	if got := Resolve(store, func() bool { return true }); got != Dark {
		t.Fatalf("Resolve = %q, want dark", got)
	}
	if store.Theme != Dark {
		t.Fatalf("stored = %q, want dark", store.Theme)
	}
	// a stored value wins over detection
	if got := Resolve(store, func() bool { return false }); got != Dark {
		t.Fatalf("Resolve = %q, want stored dark", got)
	}
}

func TestFileStore_RoundTripKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regform.yaml")
	if err := config.WriteConfigFile(&config.Config{Language: "ru"}, path); err != nil {
		t.Fatal(err)
	}
	store := FileStore{Path: path}

	got, err := store.Load()
	if err != nil || got != "" {
		t.Fatalf("Load = %q, %v; want empty", got, err)
	}
	next, err := Switch(store, Dark)
	if err != nil || next != Light {
		t.Fatalf("Switch = %q, %v", next, err)
	}
	if got, _ := store.Load(); got != Light {
		t.Fatalf("Load after switch = %q", got)
	}
	c, err := config.ReadFile[config.Config](path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Language != "ru" || c.Theme != "light" {
		t.Fatalf("config = %#v", c)
	}
}

func TestFileStore_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "regform.yaml")
	store := FileStore{Path: path}
	if got := Resolve(store, func() bool { return false }); got != Light {
		t.Fatalf("Resolve = %q, want light", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("theme was not persisted: %v", err)
	}
}

func TestBandColor(t *testing.T) {
	p := PaletteFor(Dark)
	if p.BandColor(registration.BandDanger) != p.Error ||
		p.BandColor(registration.BandWarning) != p.Special ||
		p.BandColor(registration.BandSuccess) != p.Success {
		t.Fatal("band colours do not follow the palette")
	}
	if PaletteFor(Light).Highlight == p.Highlight {
		t.Fatal("light and dark palettes share a highlight colour")
	}
}
