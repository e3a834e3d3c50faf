// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

package registration

import "time"

// MaxAgeYears bounds how far back a date of birth may lie.
const MaxAgeYears = 130

// DateWindow is the inclusive range of selectable birth dates, compared at
// day granularity.
type DateWindow struct {
	Min time.Time
	Max time.Time
}

// WindowAt returns the window ending on the day of now.
func WindowAt(now time.Time) DateWindow {
	today := Day(now)
	return DateWindow{
		Min: today.AddDate(-MaxAgeYears, 0, 0),
		Max: today,
	}
}

// Contains reports whether the day of t lies inside w.
func (w DateWindow) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	d := Day(t)
	return !d.Before(w.Min) && !d.After(w.Max)
}

// Clamp moves t into w.
func (w DateWindow) Clamp(t time.Time) time.Time {
	d := Day(t)
	if d.Before(w.Min) {
		return w.Min
	}
	if d.After(w.Max) {
		return w.Max
	}
	return d
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a DateLayout string in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, s, loc)
}
