// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for the four token classes. The
// severity map is keyed by the matched word (ERROR, WARNING, INFO,
// DEBUG); missing entries fall back to the plain style.
type Styles struct {
	Timestamp lipgloss.Style
	Quoted    lipgloss.Style
	Number    lipgloss.Style
	Severity  map[string]lipgloss.Style
}

// DefaultStyles mirrors the original console's palette on ANSI-256
// colors. The renderer parameter carries the color profile; pass a
// profile-forced renderer for deterministic output (e.g. --print-log).
func DefaultStyles(renderer *lipgloss.Renderer) Styles {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return Styles{
		Timestamp: renderer.NewStyle().Foreground(lipgloss.Color("114")), // green
		Quoted:    renderer.NewStyle().Foreground(lipgloss.Color("203")), // red
		Number:    renderer.NewStyle().Foreground(lipgloss.Color("75")),  // blue
		Severity: map[string]lipgloss.Style{
			"ERROR":   renderer.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			"WARNING": renderer.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
			"INFO":    renderer.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
			"DEBUG":   renderer.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		},
	}
}

// TerminalRenderer renders annotated log text as styled terminal
// output for the TUI log pane and the --print-log mode.
type TerminalRenderer struct {
	styles Styles
}

// NewTerminalRenderer creates a renderer with the given styles.
func NewTerminalRenderer(styles Styles) *TerminalRenderer {
	return &TerminalRenderer{styles: styles}
}

// Line renders one log line with ANSI styling.
func (r *TerminalRenderer) Line(line string) string {
	return RenderLine(line, TokenizeLine(line),
		func(text string) string { return text },
		func(span Span, text string) string {
			switch span.Class {
			case ClassTimestamp:
				return r.styles.Timestamp.Render(text)
			case ClassQuoted:
				return r.styles.Quoted.Render(text)
			case ClassSeverity:
				if style, ok := r.styles.Severity[text]; ok {
					return style.Render(text)
				}
				return text
			case ClassNumber:
				return r.styles.Number.Render(text)
			default:
				return text
			}
		})
}

// Document renders a whole raw log, one line per input line.
func (r *TerminalRenderer) Document(text string) string {
	lines := strings.Split(text, "\n")
	rendered := make([]string, len(lines))
	for index, line := range lines {
		rendered[index] = r.Line(line)
	}
	return strings.Join(rendered, "\n")
}
