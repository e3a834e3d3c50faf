// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n resolves the user-facing strings of the registration form.
// Messages live in embedded YAML files under 'locales' and are looked up by
// ID through go-i18n, so the form, the prompts and the CLI all share one
// source of wording.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLang is the language the form ships with.
const DefaultLang = "ru"

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle      *i18n.Bundle
	localizer   *i18n.Localizer
	currentLang string
)

// Init initializes the bundle and sets up the localizer for a specific language.
// Unknown languages fall back to the bundle default (Russian).
func Init(lang string) {
	if lang == "" {
		lang = DefaultLang
	}
	bundle = i18n.NewBundle(language.Russian)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	currentLang = lang
}

// T translates a message by its ID. Extra arguments are applied fmt-style to
// the translated template. A missing ID is returned as-is.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init(DefaultLang)
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the language passed to the last Init.
func GetLang() string {
	if localizer == nil {
		Init(DefaultLang)
	}
	return currentLang
}

// Languages lists the tags that have a locale file.
func Languages() []language.Tag {
	if bundle == nil {
		Init(DefaultLang)
	}
	return bundle.LanguageTags()
}
