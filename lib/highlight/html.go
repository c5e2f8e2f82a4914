// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package highlight

import (
	"fmt"
	"strings"
)

// severityColors maps each severity word to its fixed display color.
// Shared by both renderers.
var severityColors = map[string]string{
	"ERROR":   "red",
	"WARNING": "orange",
	"INFO":    "green",
	"DEBUG":   "blue",
}

// HTMLLine renders one log line as HTML span markup, matching the
// markup the original web console produced: timestamps green, quoted
// strings red, numbers blue, severity words bold in their level color.
// The input is trusted log text and is not HTML-escaped — output
// parity with the original takes precedence here, and the console's
// own renderer is the terminal one.
func HTMLLine(line string) string {
	return RenderLine(line, TokenizeLine(line),
		func(text string) string { return text },
		func(span Span, text string) string {
			switch span.Class {
			case ClassTimestamp:
				return fmt.Sprintf(`<span style="color: green;">%s</span>`, text)
			case ClassQuoted:
				return fmt.Sprintf(`<span style="color: red;">%s</span>`, text)
			case ClassSeverity:
				return fmt.Sprintf(`<span style="color: %s; font-weight: bold;">%s</span>`, severityColors[text], text)
			case ClassNumber:
				return fmt.Sprintf(`<span style="color: blue;">%s</span>`, text)
			default:
				return text
			}
		})
}

// HTMLDocument renders a whole raw log as HTML: the text is split into
// lines on \n, each line transformed independently, and the results
// joined with an explicit line-break marker.
func HTMLDocument(text string) string {
	lines := strings.Split(text, "\n")
	rendered := make([]string, len(lines))
	for index, line := range lines {
		rendered[index] = HTMLLine(line)
	}
	return strings.Join(rendered, "<br />")
}
