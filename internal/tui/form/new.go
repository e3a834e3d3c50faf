// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import tea "github.com/charmbracelet/bubbletea"

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) Form[T] {
	form := Form[T]{}
	for _, opt := range opts {
		opt(&form)
	}
	form.SetStyles(DefaultStyles())
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnReset[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnReset = fn
	}
}

func WithOnBlur[T any](fn func(id string) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnBlur = fn
	}
}

func WithOnOpen[T any](fn func(id string) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnOpen = fn
	}
}

// WithInput adds input on a row of its own.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return WithRow[T](Item{ID: id, Input: input})
}

// Item pairs an input with its id for WithRow.
type Item struct {
	ID    string
	Input FormInput
}

// WithRow adds several inputs side by side. Focus still moves through them
// in order.
func WithRow[T any](items ...Item) NewOpt[T] {
	return func(form *Form[T]) {
		row := formRow{}
		for _, it := range items {
			row.items = append(row.items, len(form.items))
			form.items = append(form.items, formItem{id: it.ID, input: it.Input})
		}
		if len(row.items) > 0 {
			form.rows = append(form.rows, row)
		}
	}
}
