// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName    = "regform"
	envPrefix  = "regform"
	configName = "regform"
)

// Config is the persisted application configuration.
type Config struct {
	Language  string          `mapstructure:"language" yaml:"language,omitempty"`
	Theme     string          `mapstructure:"theme" yaml:"theme,omitempty"`
	Log       LogConfig       `mapstructure:"log" yaml:"log,omitempty"`
	Countries CountriesConfig `mapstructure:"countries" yaml:"countries,omitempty"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level,omitempty"`
	File  string `mapstructure:"file" yaml:"file,omitempty"`
}

type CountriesConfig struct {
	URL     string `mapstructure:"url" yaml:"url,omitempty"`
	Timeout string `mapstructure:"timeout" yaml:"timeout,omitempty"`
}

// FetchTimeout parses Timeout, falling back to DefaultCountriesTimeout.
func (c CountriesConfig) FetchTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return DefaultCountriesTimeout
	}
	return d
}

const (
	DefaultCountriesURL     = "https://restcountries.com/v3.1/all?fields=name,flag"
	DefaultCountriesTimeout = 15 * time.Second
)

// Defaults returns the viper defaults for Config.
func Defaults() map[string]any {
	return map[string]any{
		"language":          "ru",
		"log.level":         "info",
		"countries.url":     DefaultCountriesURL,
		"countries.timeout": DefaultCountriesTimeout.String(),
	}
}

// flagKeys maps config keys to the cobra flag names that can override them.
var flagKeys = map[string]string{
	"language":      "lang",
	"log.level":     "log-level",
	"log.file":      "log-file",
	"countries.url": "countries-url",
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Regform")
		default: // Linux, macOS, etc.
			configDir = "/etc/regform"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, configName+".yaml"), nil
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment. A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env: %w", err)
	}
	return nil
}

// IsNotFound reports whether err means that no config file exists yet.
func IsNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// LoadConfig resolves T from defaults, the config file, REGFORM_* environment
// variables and the flags of cmd, in increasing order of precedence.
// A missing config file is reported through the returned error (check with
// IsNotFound) while still returning the fully resolved value.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	// 3. An explicit --config path has the highest precedence for files.
	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 4. Read in the primary config file. Not found is remembered, not fatal.
	readErr := v.ReadInConfig()
	if readErr != nil && !IsNotFound(readErr) {
		return c, fmt.Errorf("could not read config: %w", readErr)
	}

	// 5. Read from environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 6. Flags
	if cmd != nil {
		for key, flag := range flagKeys {
			if f := cmd.Flags().Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("could not decode config: %w", err)
	}

	return c, readErr
}

// ReadFile decodes a single config file without defaults or environment.
func ReadFile[T any](path string) (T, error) {
	var c T
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return c, nil
}

// WriteConfigFile marshals c to path, creating the directory if needed.
func WriteConfigFile[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}

// UpdateFile reads the config at path (a missing file yields the zero
// value), applies fn and writes the result back.
func UpdateFile(path string, fn func(*Config)) error {
	c, err := ReadFile[Config](path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	fn(&c)
	return WriteConfigFile(&c, path)
}
