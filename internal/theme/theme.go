// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package theme switches the form between a dark and a light palette and
// remembers the choice across runs.
package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/toeirei/regform/internal/config"
	"github.com/toeirei/regform/internal/i18n"
	"github.com/toeirei/regform/internal/logging"
)

// Theme is the colour scheme of the form.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// ErrUnknownTheme is returned by Parse for anything but dark or light.
var ErrUnknownTheme = errors.New("unknown theme")

// Parse reads a persisted or user-supplied theme name.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Label is the text of the toggle button, naming the theme it switches to.
func (t Theme) Label() string {
	id := "theme.dark"
	if t.Toggle() == Light {
		id = "theme.light"
	}
	return i18n.T(id) + " " + i18n.T("theme.suffix")
}

// Store persists the theme choice. Load returns "" when nothing is stored.
type Store interface {
	Load() (Theme, error)
	Save(Theme) error
}

// FileStore keeps the choice under the theme key of the config file.
type FileStore struct {
	Path string
}

func (s FileStore) Load() (Theme, error) {
	c, err := config.ReadFile[config.Config](s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if c.Theme == "" {
		return "", nil
	}
	return Parse(c.Theme)
}

func (s FileStore) Save(t Theme) error {
	return config.UpdateFile(s.Path, func(c *config.Config) {
		c.Theme = string(t)
	})
}

// MemoryStore is a Store without persistence.
type MemoryStore struct {
	Theme Theme
}

func (s *MemoryStore) Load() (Theme, error) { return s.Theme, nil }

func (s *MemoryStore) Save(t Theme) error {
	s.Theme = t
	return nil
}

// Resolve returns the stored theme. When none is stored, detectDark decides
// and the result is saved. Store errors are logged and never fatal.
func Resolve(store Store, detectDark func() bool) Theme {
	t, err := store.Load()
	if err != nil {
		logging.Warnf("could not read theme preference: %v", err)
	}
	if t != "" {
		return t
	}
	t = Light
	if detectDark != nil && detectDark() {
		t = Dark
	}
	if err := store.Save(t); err != nil {
		logging.Warnf("could not save theme preference: %v", err)
	}
	return t
}

// Switch flips current, saves the new value and returns it.
func Switch(store Store, current Theme) (Theme, error) {
	next := current.Toggle()
	if err := store.Save(next); err != nil {
		return next, fmt.Errorf("save theme: %w", err)
	}
	return next, nil
}
