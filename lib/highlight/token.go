// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

// Package highlight annotates raw platform log text with lexical
// highlights: leading timestamps, quoted strings, severity levels, and
// numeric literals.
//
// The pipeline is a single-pass tokenizer producing {start, end,
// class} spans over the original line, followed by a render step that
// resolves the fixed precedence order (timestamp > quoted > severity >
// number) by interval exclusion and emits non-overlapping markup. The
// original text is never rewritten in place, so a token can never be
// re-matched inside previously inserted markup. The pipeline holds no
// state between lines and is fully deterministic.
package highlight

import (
	"regexp"
	"sort"
	"strings"
)

// Class identifies the lexical class of a span. Declaration order is
// precedence order: when candidate spans overlap, the lower Class wins
// and the other candidate is discarded entirely.
type Class int

const (
	// ClassTimestamp is a leading "YYYY-MM-DD HH:MM:SS,mmm" prefix.
	ClassTimestamp Class = iota
	// ClassQuoted is a single- or double-quoted substring, including
	// the delimiters, with backslash-escaped quotes recognized.
	ClassQuoted
	// ClassSeverity is a whole-word ERROR, WARNING, INFO, or DEBUG.
	ClassSeverity
	// ClassNumber is a word-bounded digit run with an optional single
	// decimal point.
	ClassNumber
)

// Span is one classified interval over the original line text.
// Start is inclusive, End exclusive, both byte offsets.
type Span struct {
	Start int
	End   int
	Class Class
}

var (
	// Timestamp only ever matches anchored at the start of the line.
	timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3}`)

	// Matching-quote pairs with backslash escapes. The escape is
	// recognized (so a quoted span does not end at an escaped quote)
	// but not interpreted further.
	quotedPattern = regexp.MustCompile(`"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'`)

	// Case-sensitive whole words only: ERRORS must not match.
	severityPattern = regexp.MustCompile(`\b(?:ERROR|WARNING|INFO|DEBUG)\b`)

	// Word-bounded so digits inside identifiers are left alone.
	numberPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
)

// TokenizeLine classifies one line of raw log text (no embedded
// newlines) and returns the surviving spans in ascending start order.
// Overlap between classes is resolved here, so renderers can emit the
// spans verbatim without nesting or clipping.
func TokenizeLine(line string) []Span {
	var accepted []Span

	// Timestamp first: it is extracted from the start of the line and
	// excluded from all further matching.
	rest := 0
	if loc := timestampPattern.FindStringIndex(line); loc != nil {
		accepted = append(accepted, Span{Start: loc[0], End: loc[1], Class: ClassTimestamp})
		rest = loc[1]
	}

	// Quoted strings over the remainder after timestamp removal.
	for _, loc := range quotedPattern.FindAllStringIndex(line[rest:], -1) {
		accepted = append(accepted, Span{Start: rest + loc[0], End: rest + loc[1], Class: ClassQuoted})
	}

	// Severity words and numbers match over the whole original line;
	// candidates colliding with an already-accepted span are dropped.
	for _, loc := range severityPattern.FindAllStringIndex(line, -1) {
		candidate := Span{Start: loc[0], End: loc[1], Class: ClassSeverity}
		if !overlapsAny(candidate, accepted) {
			accepted = append(accepted, candidate)
		}
	}
	for _, loc := range numberPattern.FindAllStringIndex(line, -1) {
		candidate := Span{Start: loc[0], End: loc[1], Class: ClassNumber}
		if !overlapsAny(candidate, accepted) {
			accepted = append(accepted, candidate)
		}
	}

	sort.Slice(accepted, func(i, j int) bool { return accepted[i].Start < accepted[j].Start })
	return accepted
}

func overlapsAny(candidate Span, accepted []Span) bool {
	for _, span := range accepted {
		if candidate.Start < span.End && span.Start < candidate.End {
			return true
		}
	}
	return false
}

// RenderLine emits one line as markup. The emit function receives each
// classified fragment with its span; text between spans passes through
// the plain function unchanged. Lines are never merged or reordered —
// document-level rendering is a per-line map plus a join.
func RenderLine(line string, spans []Span, plain func(string) string, emit func(Span, string) string) string {
	var builder strings.Builder
	cursor := 0
	for _, span := range spans {
		if span.Start > cursor {
			builder.WriteString(plain(line[cursor:span.Start]))
		}
		builder.WriteString(emit(span, line[span.Start:span.End]))
		cursor = span.End
	}
	if cursor < len(line) {
		builder.WriteString(plain(line[cursor:]))
	}
	return builder.String()
}
