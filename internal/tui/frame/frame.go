// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package frame holds the stand-alone widgets drawn over or under the form:
// pickers, dialogs and the footer line.
package frame

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Footer builds a one-line footer from left and right tokens, aligning the
// right token to the right edge of a line with the specified width. Widths
// are measured in terminal cells; the left side is truncated first.
func Footer(left, right string, width int) string {
	if width <= 0 {
		return left + " " + right
	}
	lw, rw := lipgloss.Width(left), lipgloss.Width(right)
	if lw+rw+1 <= width {
		return left + strings.Repeat(" ", width-lw-rw) + right
	}
	maxLeft := width - rw
	if maxLeft <= 0 {
		return ansi.Truncate(right, width, "")
	}
	left = ansi.Truncate(left, maxLeft, "")
	return left + strings.Repeat(" ", maxLeft-lipgloss.Width(left)) + right
}

// StatusBar renders Footer with style as a full-width bar.
func StatusBar(style lipgloss.Style, left, right string, width int) string {
	inner := width - style.GetHorizontalFrameSize()
	return style.Render(Footer(left, right, inner))
}
