// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	cfg "github.com/toeirei/regform/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tmp
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err == nil || !cfg.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if c.Language != "ru" {
		t.Fatalf("expected default language ru, got %q", c.Language)
	}
	if c.Countries.URL != cfg.DefaultCountriesURL {
		t.Fatalf("unexpected countries url %q", c.Countries.URL)
	}
	if got := c.Countries.FetchTimeout(); got != cfg.DefaultCountriesTimeout {
		t.Fatalf("unexpected timeout %v", got)
	}
}

func TestLoadConfig_FileEnvAndFlagPrecedence(t *testing.T) {
	tmp := isolate(t)

	path := filepath.Join(tmp, "custom.yaml")
	content := "theme: dark\nlog:\n  level: debug\ncountries:\n  url: http://file.example\n  timeout: 3s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("REGFORM_LOG_LEVEL", "warn")

	cmd := &cobra.Command{}
	cmd.Flags().String("countries-url", "", "")
	if err := cmd.Flags().Set("countries-url", "http://flag.example"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	c, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Theme != "dark" {
		t.Fatalf("expected theme from file, got %q", c.Theme)
	}
	if c.Log.Level != "warn" {
		t.Fatalf("expected env to override file, got %q", c.Log.Level)
	}
	if c.Countries.URL != "http://flag.example" {
		t.Fatalf("expected flag to override file, got %q", c.Countries.URL)
	}
	if c.Countries.FetchTimeout() != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %v", c.Countries.FetchTimeout())
	}
}

func TestWriteAndUpdateFile(t *testing.T) {
	isolate(t)

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath: %v", err)
	}

	c := cfg.Config{Language: "ru"}
	c.Log.Level = "info"
	if err := cfg.WriteConfigFile(&c, path); err != nil {
		t.Fatalf("WriteConfigFile: %v", err)
	}

	if err := cfg.UpdateFile(path, func(c *cfg.Config) { c.Theme = "light" }); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	got, err := cfg.ReadFile[cfg.Config](path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.Theme != "light" || got.Language != "ru" || got.Log.Level != "info" {
		t.Fatalf("unexpected config after update: %+v", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}
}

func TestUpdateFile_CreatesMissing(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "sub", "regform.yaml")

	if err := cfg.UpdateFile(path, func(c *cfg.Config) { c.Theme = "dark" }); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}
	got, err := cfg.ReadFile[cfg.Config](path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.Theme != "dark" {
		t.Fatalf("expected dark, got %q", got.Theme)
	}
}

func TestUpdateFile_KeepsDefaultsForUnsetKeys(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "regform.yaml")

	if err := cfg.UpdateFile(path, func(c *cfg.Config) { c.Theme = "dark" }); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(raw), "url:") || strings.Contains(string(raw), "language:") {
		t.Fatalf("unset keys written to file:\n%s", raw)
	}

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Theme != "dark" {
		t.Fatalf("expected dark, got %q", c.Theme)
	}
	if c.Countries.URL != cfg.DefaultCountriesURL {
		t.Fatalf("countries url lost after theme save: %q", c.Countries.URL)
	}
	if c.Language != "ru" || c.Log.Level != "info" {
		t.Fatalf("defaults lost after theme save: %+v", c)
	}
	if got := c.Countries.FetchTimeout(); got != cfg.DefaultCountriesTimeout {
		t.Fatalf("unexpected timeout %v", got)
	}
}

func TestLoadDotEnv_MissingIsFine(t *testing.T) {
	tmp := isolate(t)
	if err := cfg.LoadDotEnv(); err != nil {
		t.Fatalf("expected no error for missing .env, got %v", err)
	}

	envPath := filepath.Join(tmp, ".env")
	if err := os.WriteFile(envPath, []byte("REGFORM_TEST_DOTENV=yes\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("REGFORM_TEST_DOTENV") })
	if err := cfg.LoadDotEnv(); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if os.Getenv("REGFORM_TEST_DOTENV") != "yes" {
		t.Fatalf("expected variable from .env")
	}
}
