// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestInitAndLanguages(t *testing.T) {
	Init("ru")
	if GetLang() != "ru" {
		t.Fatalf("expected lang 'ru', got %q", GetLang())
	}

	found := false
	for _, tag := range Languages() {
		if tag == language.Russian {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Russian locale to be loaded, got %v", Languages())
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("ru")

	if got := T("error.email_invalid"); got != "Некорректный email" {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := T("avatar.file", "me.png"); got != "Файл: me.png" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}
	if got := T("no.such.id"); got != "no.such.id" {
		t.Fatalf("expected id fallback, got %q", got)
	}
}

func TestT_UnknownLanguageFallsBack(t *testing.T) {
	SetLang("de")
	defer Init(DefaultLang)

	if got := T("error.password_mismatch"); got != "Пароли не совпадают" {
		t.Fatalf("expected Russian fallback, got %q", got)
	}
}
