// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SelectorOption is a single selectable item in a list selector.
type SelectorOption struct {
	Label string // Display text shown in the list.
	Value string // Key handed to the store on selection (agent identity, config name).
}

// Selector is a vertical single-choice list with a movable cursor.
// The cursor is pure UI state; the actual selection only changes when
// the operator confirms, so browsing the list never triggers fetches.
type Selector struct {
	Options []SelectorOption
	Cursor  int
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (selector *Selector) MoveUp() {
	if len(selector.Options) == 0 {
		return
	}
	selector.Cursor--
	if selector.Cursor < 0 {
		selector.Cursor = len(selector.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (selector *Selector) MoveDown() {
	if len(selector.Options) == 0 {
		return
	}
	selector.Cursor++
	if selector.Cursor >= len(selector.Options) {
		selector.Cursor = 0
	}
}

// Highlighted returns the option under the cursor.
func (selector *Selector) Highlighted() (SelectorOption, bool) {
	if selector.Cursor < 0 || selector.Cursor >= len(selector.Options) {
		return SelectorOption{}, false
	}
	return selector.Options[selector.Cursor], true
}

// SetOptions replaces the option list, keeping the cursor on the same
// value when it survives the replacement and clamping it otherwise.
func (selector *Selector) SetOptions(options []SelectorOption) {
	previous := ""
	if highlighted, ok := selector.Highlighted(); ok {
		previous = highlighted.Value
	}
	selector.Options = options
	selector.Cursor = 0
	for index, option := range options {
		if option.Value == previous {
			selector.Cursor = index
			return
		}
	}
}

// Render produces the selector lines at the given width. The cursor
// row uses the selection background when the selector has focus and a
// plain marker otherwise; activeValue (if non-empty) marks the
// currently applied selection with a bullet.
func (selector *Selector) Render(theme Theme, focused bool, width int, activeValue string) []string {
	normalStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	var lines []string
	for index, option := range selector.Options {
		marker := "  "
		if option.Value == activeValue && activeValue != "" {
			marker = "* "
		}
		if index == selector.Cursor {
			marker = "> "
		}

		content := marker + option.Label
		if ansi.StringWidth(content) > width {
			content = ansi.Truncate(content, width, "…")
		}
		if pad := width - ansi.StringWidth(content); pad > 0 {
			content += strings.Repeat(" ", pad)
		}

		if index == selector.Cursor && focused {
			lines = append(lines, selectedStyle.Render(content))
		} else {
			lines = append(lines, normalStyle.Render(content))
		}
	}
	return lines
}
