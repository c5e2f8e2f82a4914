// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitList(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"   ", nil},
		{"plant1", []string{"plant1"}},
		{"plant1,plant2", []string{"plant1", "plant2"}},
		{" plant1 , plant2 ", []string{"plant1", "plant2"}},
		{"a,,b", []string{"a", "", "b"}},
		{"trailing,", []string{"trailing", ""}},
	}
	for _, testCase := range cases {
		got := SplitList(testCase.input)
		if !reflect.DeepEqual(got, testCase.want) {
			t.Errorf("SplitList(%q) = %#v, want %#v", testCase.input, got, testCase.want)
		}
	}
}

func TestSplitListElementCount(t *testing.T) {
	// For non-blank input the element count is always one more than
	// the comma count, even with empty segments.
	inputs := []string{"a", "a,b", "a,,b", ",", "x,y,z,,"}
	for _, input := range inputs {
		got := SplitList(input)
		want := strings.Count(input, ",") + 1
		if len(got) != want {
			t.Errorf("SplitList(%q) has %d elements, want %d", input, len(got), want)
		}
	}
}
