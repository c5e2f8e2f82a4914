// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package highlight

import (
	"reflect"
	"testing"
)

func classesOf(spans []Span) []Class {
	classes := make([]Class, len(spans))
	for index, span := range spans {
		classes[index] = span.Class
	}
	return classes
}

func TestTimestampAnchoredAtStart(t *testing.T) {
	line := "2024-01-01 10:00:00,123 starting"
	spans := TokenizeLine(line)
	if len(spans) == 0 || spans[0].Class != ClassTimestamp {
		t.Fatalf("expected leading timestamp span, got %+v", spans)
	}
	if spans[0].Start != 0 || spans[0].End != 23 {
		t.Errorf("timestamp span = [%d,%d), want [0,23)", spans[0].Start, spans[0].End)
	}
	// None of the timestamp's digit runs may re-surface as numbers.
	for _, span := range spans[1:] {
		if span.Start < 23 {
			t.Errorf("span %+v overlaps the extracted timestamp", span)
		}
	}
}

func TestTimestampNotMatchedMidLine(t *testing.T) {
	line := "restarted at 2024-01-01 10:00:00,123"
	spans := TokenizeLine(line)
	for _, span := range spans {
		if span.Class == ClassTimestamp {
			t.Errorf("timestamp must only match at line start, got %+v", span)
		}
	}
}

func TestMalformedTimestampIgnored(t *testing.T) {
	// Two-digit millisecond field: not a timestamp, digits are numbers.
	spans := TokenizeLine("2024-01-01 10:00:00,12 boot")
	if spans[0].Class == ClassTimestamp {
		t.Errorf("malformed timestamp must not match: %+v", spans[0])
	}
}

func TestQuotedWithEscapedQuote(t *testing.T) {
	line := `say "he said \"hi\" ok" end`
	spans := TokenizeLine(line)
	var quoted *Span
	for index := range spans {
		if spans[index].Class == ClassQuoted {
			quoted = &spans[index]
			break
		}
	}
	if quoted == nil {
		t.Fatalf("no quoted span in %+v", spans)
	}
	if got := line[quoted.Start:quoted.End]; got != `"he said \"hi\" ok"` {
		t.Errorf("quoted span = %q, must include escaped quotes and end at the real delimiter", got)
	}
}

func TestSingleQuotes(t *testing.T) {
	line := "value 'abc' rest"
	spans := TokenizeLine(line)
	if len(spans) != 1 || spans[0].Class != ClassQuoted {
		t.Fatalf("expected one quoted span, got %+v", spans)
	}
	if got := line[spans[0].Start:spans[0].End]; got != "'abc'" {
		t.Errorf("quoted span = %q", got)
	}
}

func TestDigitsInsideQuotesNotNumbers(t *testing.T) {
	line := `port "8080" ready`
	for _, span := range TokenizeLine(line) {
		if span.Class == ClassNumber {
			t.Errorf("digits inside a quoted span must not be number-highlighted: %+v", span)
		}
	}
}

func TestSeverityInsideQuotesExcluded(t *testing.T) {
	line := "'ERROR inside' DEBUG"
	spans := TokenizeLine(line)
	want := []Class{ClassQuoted, ClassSeverity}
	if !reflect.DeepEqual(classesOf(spans), want) {
		t.Errorf("classes = %v, want %v (spans %+v)", classesOf(spans), want, spans)
	}
	if got := line[spans[1].Start:spans[1].End]; got != "DEBUG" {
		t.Errorf("severity span = %q", got)
	}
}

func TestSeverityWholeWordCaseSensitive(t *testing.T) {
	for _, line := range []string{"ERRORS everywhere", "error lowercase", "xERROR"} {
		for _, span := range TokenizeLine(line) {
			if span.Class == ClassSeverity {
				t.Errorf("line %q: unexpected severity span %+v", line, span)
			}
		}
	}
}

func TestNumberWordBoundaries(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"count 42 items", []string{"42"}},
		{"pi is 3.14 today", []string{"3.14"}},
		{"id abc123 skipped", nil},
		{"x=42, y=7", []string{"42", "7"}},
		// The leading digit is glued to the identifier head, but the
		// dot before "2" forms a word boundary, so the tail matches.
		{"v1.2.3", []string{"2.3"}},
	}
	for _, test := range tests {
		var got []string
		for _, span := range TokenizeLine(test.line) {
			if span.Class == ClassNumber {
				got = append(got, test.line[span.Start:span.End])
			}
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("line %q: numbers = %v, want %v", test.line, got, test.want)
		}
	}
}

func TestSpansSortedAndDisjoint(t *testing.T) {
	line := `2024-01-01 10:00:00,123 ERROR "bad value" 42`
	spans := TokenizeLine(line)
	for index := 1; index < len(spans); index++ {
		if spans[index].Start < spans[index-1].End {
			t.Errorf("spans overlap or are unsorted: %+v", spans)
		}
	}
	want := []Class{ClassTimestamp, ClassSeverity, ClassQuoted, ClassNumber}
	if !reflect.DeepEqual(classesOf(spans), want) {
		t.Errorf("classes = %v, want %v", classesOf(spans), want)
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	line := `2024-01-01 10:00:00,123 INFO heartbeat 'listener1' interval 5.0`
	first := TokenizeLine(line)
	second := TokenizeLine(line)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("tokenizing the same line twice diverged: %+v vs %+v", first, second)
	}
}

func TestEmptyLine(t *testing.T) {
	if spans := TokenizeLine(""); len(spans) != 0 {
		t.Errorf("empty line produced spans: %+v", spans)
	}
}
