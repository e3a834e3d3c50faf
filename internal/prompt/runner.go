// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/toeirei/regform/internal/avatar"
	"github.com/toeirei/regform/internal/countries"
	"github.com/toeirei/regform/internal/i18n"
	"github.com/toeirei/regform/internal/logging"
	"github.com/toeirei/regform/internal/registration"
	"github.com/toeirei/regform/util/slicest"
)

// CountryLoader supplies the country options.
type CountryLoader interface {
	Load(ctx context.Context) []countries.Option
}

// Runner walks the registration form field by field.
type Runner struct {
	driver    Driver
	state     *registration.FormState
	loader    CountryLoader
	avatar    *avatar.Handler
	countries []countries.Option
	loaded    bool
}

// NewRunner returns a Runner filling state through driver. loader may be nil,
// in which case the country question is skipped.
func NewRunner(driver Driver, state *registration.FormState, loader CountryLoader) *Runner {
	return &Runner{
		driver: driver,
		state:  state,
		loader: loader,
		avatar: &avatar.Handler{},
	}
}

// State returns the form being filled.
func (r *Runner) State() *registration.FormState { return r.state }

// Run asks every field, submits, and asks again for the fields that failed
// until the submit succeeds or the driver returns an error.
func (r *Runner) Run(ctx context.Context) (*registration.Submission, error) {
	fields := registration.Fields
	for {
		for _, f := range fields {
			if err := r.ask(ctx, f); err != nil {
				return nil, err
			}
		}
		sub, ok := r.state.Submit()
		if ok {
			sub.Log()
			return sub, nil
		}
		errs := r.state.Errors()
		fields = slicest.Filter(registration.Fields, func(f registration.Field) bool {
			_, bad := errs[f]
			return bad
		})
		for _, f := range fields {
			if err := r.driver.Info(ctx, fmt.Sprintf("%s: %s", f.Label(), errs[f])); err != nil {
				return nil, err
			}
		}
		logging.Debugf("prompt submit failed with %d errors", len(fields))
		if err := r.driver.Info(ctx, i18n.T("prompt.retry")); err != nil {
			return nil, err
		}
	}
}

// fieldError validates f the way a blur does in the interactive form.
func (r *Runner) fieldError(f registration.Field) error {
	if msg := r.state.Blur(f); msg != "" {
		return errors.New(msg)
	}
	return nil
}

func (r *Runner) ask(ctx context.Context, f registration.Field) error {
	v := r.state.Values()
	switch f {
	case registration.FieldName, registration.FieldEmail:
		_, err := r.driver.Input(ctx, InputConfig{
			Message: f.Label(),
			Default: v.Get(f).(string),
			Validator: func(s string) error {
				_ = r.state.Set(f, strings.TrimSpace(s))
				return r.fieldError(f)
			},
		})
		return err
	case registration.FieldPassword, registration.FieldConfirmPassword:
		_, err := r.driver.Password(ctx, InputConfig{
			Message: f.Label(),
			Validator: func(s string) error {
				_ = r.state.Set(f, s)
				return r.fieldError(f)
			},
		})
		return err
	case registration.FieldDateOfBirth:
		_, err := r.driver.Input(ctx, InputConfig{
			Message:   f.Label(),
			Default:   v.DateString(),
			Help:      i18n.T("prompt.date_hint"),
			Validator: r.validateDate,
		})
		return err
	case registration.FieldGender:
		return r.askGender(ctx)
	case registration.FieldCountry:
		return r.askCountry(ctx)
	case registration.FieldAvatar:
		_, err := r.driver.Input(ctx, InputConfig{
			Message:   f.Label(),
			Default:   v.Avatar,
			Help:      i18n.T("prompt.avatar_hint"),
			Validator: r.validateAvatar,
		})
		return err
	case registration.FieldAcceptTerms:
		ok, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("%s %s", f.Label(), i18n.T("terms.link")),
			Default: v.AcceptTerms,
			Help:    i18n.T("terms.body"),
		})
		if err != nil {
			return err
		}
		r.state.SetAcceptTerms(ok)
		r.state.Blur(f)
		return nil
	}
	return fmt.Errorf("no prompt for field %q", f)
}

func (r *Runner) validateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		r.state.SetDate(time.Time{})
		return r.fieldError(registration.FieldDateOfBirth)
	}
	t, err := registration.ParseDate(s, nil)
	if err != nil {
		r.state.SetDate(time.Time{})
		return errors.New(i18n.T("date.invalid"))
	}
	if !r.state.SetDate(t) {
		return errors.New(i18n.T("date.invalid"))
	}
	return r.fieldError(registration.FieldDateOfBirth)
}

func (r *Runner) validateAvatar(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		r.avatar.Clear()
		r.state.SetAvatar("")
		return nil
	}
	if err := r.avatar.Select(s); err != nil {
		return err
	}
	r.state.SetAvatar(r.avatar.Path())
	return nil
}

func (r *Runner) askGender(ctx context.Context) error {
	labels := make([]string, len(registration.Genders))
	def := -1
	for i, g := range registration.Genders {
		labels[i] = g.Label()
		if g == r.state.Values().Gender {
			def = i
		}
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      registration.FieldGender.Label(),
		Options:      labels,
		DefaultIndex: def,
	})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(registration.Genders) {
		r.state.SetGender(registration.Genders[idx])
	}
	r.state.Blur(registration.FieldGender)
	return nil
}

func (r *Runner) askCountry(ctx context.Context) error {
	if !r.loaded {
		if r.loader != nil {
			r.countries = r.loader.Load(ctx)
		}
		r.loaded = true
	}
	if len(r.countries) == 0 {
		return r.driver.Info(ctx, i18n.T("prompt.country_skipped"))
	}
	labels := make([]string, 0, len(r.countries)+1)
	labels = append(labels, i18n.T("prompt.country_none"))
	def := 0
	for i, opt := range r.countries {
		labels = append(labels, opt.Label)
		if opt.Value == r.state.Values().Country {
			def = i + 1
		}
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      registration.FieldCountry.Label(),
		Options:      labels,
		DefaultIndex: def,
		PageSize:     12,
	})
	if err != nil {
		return err
	}
	if idx <= 0 || idx > len(r.countries) {
		r.state.SetCountry("")
		return nil
	}
	r.state.SetCountry(r.countries[idx-1].Value)
	return nil
}
