// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/toeirei/regform/internal/countries"
	"github.com/toeirei/regform/internal/registration"
)

var testNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

var errNoAnswers = errors.New("no scripted answers left")

// scriptDriver answers from a queue. Rejected text answers are reported like
// survey does and the next answer is taken.
type scriptDriver struct {
	answers  []any
	infos    []string
	rejected []string
	asked    []string
}

func (d *scriptDriver) next() (any, error) {
	if len(d.answers) == 0 {
		return nil, errNoAnswers
	}
	a := d.answers[0]
	d.answers = d.answers[1:]
	return a, nil
}

func (d *scriptDriver) text(cfg InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	for {
		a, err := d.next()
		if err != nil {
			return "", err
		}
		s, ok := a.(string)
		if !ok {
			return "", fmt.Errorf("%s: scripted %T, want string", cfg.Message, a)
		}
		if s == "" && cfg.Default != "" {
			s = cfg.Default
		}
		if cfg.Validator != nil {
			if verr := cfg.Validator(s); verr != nil {
				d.rejected = append(d.rejected, verr.Error())
				continue
			}
		}
		return s, nil
	}
}

func (d *scriptDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	return d.text(cfg)
}

func (d *scriptDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	return d.text(cfg)
}

func (d *scriptDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.asked = append(d.asked, cfg.Message)
	a, err := d.next()
	if err != nil {
		return false, err
	}
	b, ok := a.(bool)
	if !ok {
		return false, fmt.Errorf("%s: scripted %T, want bool", cfg.Message, a)
	}
	return b, nil
}

func (d *scriptDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.asked = append(d.asked, cfg.Message)
	a, err := d.next()
	if err != nil {
		return 0, err
	}
	i, ok := a.(int)
	if !ok {
		return 0, fmt.Errorf("%s: scripted %T, want int", cfg.Message, a)
	}
	return i, nil
}

func (d *scriptDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

type staticLoader []countries.Option

func (l staticLoader) Load(context.Context) []countries.Option { return l }

func newRunner(d Driver, loader CountryLoader) *Runner {
	st := registration.New(registration.WithClock(func() time.Time { return testNow }))
	return NewRunner(d, st, loader)
}

func TestRunFillsAndSubmits(t *testing.T) {
	d := &scriptDriver{answers: []any{
		"  Иван ",
		"a@b", "a@b.com",
		"secret",
		"other", "secret",
		"1990-05-04",
		0,
		1,
		"",
		true,
	}}
	loader := staticLoader{{Value: "Germany", Label: "🇩🇪 Germany"}}
	r := newRunner(d, loader)

	sub, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sub == nil {
		t.Fatalf("expected submission")
	}
	v := sub.Values
	if v.Name != "Иван" || v.Email != "a@b.com" || v.Country != "Germany" {
		t.Fatalf("unexpected values: %+v", v)
	}
	if v.Password == "secret" {
		t.Fatalf("password not masked in submission")
	}
	if v.DateString() != "1990-05-04" || v.Gender != registration.GenderMale || !v.AcceptTerms {
		t.Fatalf("unexpected values: %+v", v)
	}
	if r.State().Phase() != registration.PhaseSuccess {
		t.Fatalf("phase = %v", r.State().Phase())
	}
	want := []string{"Некорректный email", "Пароли не совпадают"}
	if !slices.Equal(d.rejected, want) {
		t.Fatalf("rejected = %q, want %q", d.rejected, want)
	}
}

func TestRunRetriesFailedFields(t *testing.T) {
	d := &scriptDriver{answers: []any{
		"Иван", "a@b.com", "pw", "pw", "1990-05-04", 1, "",
		false,
		true,
	}}
	r := newRunner(d, nil)

	sub, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sub.Values.Gender != registration.GenderFemale {
		t.Fatalf("gender = %q", sub.Values.Gender)
	}
	joined := strings.Join(d.infos, "\n")
	for _, s := range []string{"Список стран пуст", "Примите условия использования", "Форма содержит ошибки"} {
		if !strings.Contains(joined, s) {
			t.Fatalf("infos missing %q:\n%s", s, joined)
		}
	}
	// Only the terms question is repeated.
	last := d.asked[len(d.asked)-1]
	if !strings.HasPrefix(last, "Я принимаю") {
		t.Fatalf("last question = %q", last)
	}
}

func TestRunRejectsDatesOutsideWindow(t *testing.T) {
	d := &scriptDriver{answers: []any{
		"Иван", "a@b.com", "pw", "pw",
		"2030-01-01", "1800-01-01", "04.05.1990", "", "1990-05-04",
		0, "", true,
	}}
	r := newRunner(d, nil)

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []string{"invalid", "invalid", "invalid", "Укажите дату рождения"}
	if !slices.Equal(d.rejected, want) {
		t.Fatalf("rejected = %q, want %q", d.rejected, want)
	}
	if r.State().DateInvalid() {
		t.Fatalf("date still flagged invalid")
	}
}

func TestRunAvatarPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "me.txt")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	d := &scriptDriver{answers: []any{
		"Иван", "a@b.com", "pw", "pw", "1990-05-04", 0,
		dir, path,
		true,
	}}
	r := newRunner(d, nil)

	sub, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sub.Values.Avatar != path {
		t.Fatalf("avatar = %q, want %q", sub.Values.Avatar, path)
	}
	if len(d.rejected) != 1 {
		t.Fatalf("directory should be rejected once, got %q", d.rejected)
	}
}

func TestRunStopsOnDriverError(t *testing.T) {
	d := &scriptDriver{answers: []any{"Иван"}}
	r := newRunner(d, nil)

	_, err := r.Run(context.Background())
	if !errors.Is(err, errNoAnswers) {
		t.Fatalf("err = %v, want errNoAnswers", err)
	}
}

func TestRunCountryNone(t *testing.T) {
	d := &scriptDriver{answers: []any{
		"Иван", "a@b.com", "pw", "pw", "1990-05-04", 0, 0, "", true,
	}}
	r := newRunner(d, staticLoader{{Value: "Germany", Label: "Germany"}})

	sub, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sub.Values.Country != "" {
		t.Fatalf("country = %q, want empty", sub.Values.Country)
	}
}
