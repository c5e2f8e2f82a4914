// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import "strings"

// SplitList converts a comma-separated free-text field (plants,
// agents-for-experiment, topics-to-log) into an ordered list. Each
// segment is trimmed of surrounding whitespace; order and duplicates
// are preserved and internal empty segments survive ("a,,b" yields
// three elements). An all-empty field yields an empty list rather than
// the single empty string a naive split would produce.
func SplitList(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	segments := strings.Split(field, ",")
	for index, segment := range segments {
		segments[index] = strings.TrimSpace(segment)
	}
	return segments
}
