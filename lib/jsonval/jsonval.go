// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

// Package jsonval validates agent configuration blobs before they are
// saved to the platform's config store. VOLTTRON config stores accept
// JSON with comments and trailing commas, so validation strips the
// JSONC extensions first and then checks the remainder is well-formed
// JSON. Configs are free text as far as the backend is concerned —
// validation informs the operator, it never blocks a save.
package jsonval

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"
)

// LooksLikeJSON reports whether content plausibly intends to be a
// JSON document: the first non-whitespace byte opens an object or
// array. Plain-text configs (CSV point lists, raw driver registries)
// return false and skip validation entirely.
func LooksLikeJSON(content string) bool {
	trimmed := strings.TrimLeft(content, " \t\r\n")
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

// Check validates a JSON-with-comments document. Returns nil for
// content that does not look like JSON at all, or that parses cleanly
// once comments and trailing commas are stripped.
func Check(content string) error {
	if !LooksLikeJSON(content) {
		return nil
	}
	stripped := jsonc.ToJSON([]byte(content))
	var value any
	if err := json.Unmarshal(stripped, &value); err != nil {
		return fmt.Errorf("config is not valid JSON: %w", err)
	}
	return nil
}
