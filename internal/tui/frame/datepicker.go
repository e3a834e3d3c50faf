// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package frame

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Focus positions of the date picker.
const (
	DateFocusYear = iota
	DateFocusMonth
	DateFocusDay
	DateFocusOk
	DateFocusCancel
)

// DatePicker is a year/month/day selector. Min and Max mark the selectable
// range; a date outside it is kept but reported as invalid, so the caller
// decides what to do with it.
type DatePicker struct {
	Focused int
	Width   int
	Min     time.Time
	Max     time.Time

	selectedDate time.Time
}

// NewDatePicker creates a date picker starting at date. A zero date starts
// at the upper bound, or today when there is none.
func NewDatePicker(date, minDate, maxDate time.Time) *DatePicker {
	dp := &DatePicker{
		Focused: DateFocusYear,
		Width:   40,
		Min:     minDate,
		Max:     maxDate,
	}
	dp.SetDate(date)
	return dp
}

// SetDate moves the selection to date, truncated to the day.
func (dp *DatePicker) SetDate(date time.Time) {
	if date.IsZero() {
		date = dp.Max
	}
	if date.IsZero() {
		date = time.Now()
	}
	y, m, d := date.Date()
	dp.selectedDate = time.Date(y, m, d, 0, 0, 0, 0, date.Location())
}

// GetDate returns the currently selected date.
func (dp *DatePicker) GetDate() time.Time {
	return dp.selectedDate
}

// Valid reports whether the selection lies inside [Min, Max]. Unset bounds
// are open.
func (dp *DatePicker) Valid() bool {
	if !dp.Min.IsZero() && dp.selectedDate.Before(dp.Min) {
		return false
	}
	if !dp.Max.IsZero() && dp.selectedDate.After(dp.Max) {
		return false
	}
	return true
}

// IncrementField increases the currently focused field.
func (dp *DatePicker) IncrementField() { dp.step(1) }

// DecrementField decreases the currently focused field.
func (dp *DatePicker) DecrementField() { dp.step(-1) }

func (dp *DatePicker) step(n int) {
	switch dp.Focused {
	case DateFocusYear:
		dp.selectedDate = dp.selectedDate.AddDate(n, 0, 0)
	case DateFocusMonth:
		dp.selectedDate = dp.selectedDate.AddDate(0, n, 0)
	case DateFocusDay:
		dp.selectedDate = dp.selectedDate.AddDate(0, 0, n)
	}
}

// FocusNext moves focus to the next field, wrapping after Cancel.
func (dp *DatePicker) FocusNext() {
	dp.Focused = (dp.Focused + 1) % (DateFocusCancel + 1)
}

// FocusPrev moves focus to the previous field.
func (dp *DatePicker) FocusPrev() {
	dp.Focused--
	if dp.Focused < 0 {
		dp.Focused = DateFocusCancel
	}
}

// FocusOk moves focus to the OK button.
func (dp *DatePicker) FocusOk() { dp.Focused = DateFocusOk }

// IsFocusedOk returns true if the OK button is focused.
func (dp *DatePicker) IsFocusedOk() bool { return dp.Focused == DateFocusOk }

// IsFocusedCancel returns true if the Cancel button is focused.
func (dp *DatePicker) IsFocusedCancel() bool { return dp.Focused == DateFocusCancel }

// Render produces the date picker output.
func (dp *DatePicker) Render(title, hint, invalid string) string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("60")).
		Bold(true).
		Width(dp.Width - 2).
		Align(lipgloss.Center)

	status := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).
		Render(dp.selectedDate.Format("2006-01-02"))
	if !dp.Valid() {
		status = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render(invalid)
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Width(dp.Width-4).
		Padding(1, 1, 0, 1)

	dialog := lipgloss.JoinVertical(
		lipgloss.Center,
		headerStyle.Render(title),
		dp.renderDateFields(),
		status,
		"",
		dp.renderButtons(),
		helpStyle.Render(hint),
	)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Width(dp.Width)

	return boxStyle.Render(dialog)
}

func (dp *DatePicker) renderDateFields() string {
	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("60")).
		Bold(true).
		Padding(0, 1)
	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Padding(0, 1)

	field := func(focus int, s string) string {
		if dp.Focused == focus {
			return focusedStyle.Render(s)
		}
		return normalStyle.Render(s)
	}

	sep := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("-")
	line := lipgloss.JoinHorizontal(lipgloss.Center,
		field(DateFocusYear, fmt.Sprintf("%04d", dp.selectedDate.Year())), sep,
		field(DateFocusMonth, fmt.Sprintf("%02d", int(dp.selectedDate.Month()))), sep,
		field(DateFocusDay, fmt.Sprintf("%02d", dp.selectedDate.Day())),
	)
	return lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(line)
}

func (dp *DatePicker) renderButtons() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		renderButton("OK", dp.IsFocusedOk(), 0),
		"  ",
		renderButton("Cancel", dp.IsFocusedCancel(), 0),
	)
}

// renderButton draws a bordered button; focused buttons are highlighted.
// A positive width centres the label in a fixed-width box.
func renderButton(label string, focused bool, width int) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("239")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("239")).
		Padding(0, 2)
	if width > 0 {
		style = style.Width(width).Align(lipgloss.Center)
	}
	if focused {
		style = style.Background(lipgloss.Color("60")).BorderForeground(lipgloss.Color("60"))
	}
	return style.Render(label)
}
