// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package jsonval

import "testing"

func TestCheckValidJSON(t *testing.T) {
	if err := Check(`{"interval": 5, "topics": ["devices/all"]}`); err != nil {
		t.Errorf("valid JSON rejected: %v", err)
	}
}

func TestCheckJSONWithComments(t *testing.T) {
	content := `{
		// polling interval in seconds
		"interval": 5,
		"driver": "bhkw", /* inline */
	}`
	if err := Check(content); err != nil {
		t.Errorf("JSONC rejected: %v", err)
	}
}

func TestCheckInvalidJSON(t *testing.T) {
	if err := Check(`{"interval": }`); err == nil {
		t.Error("malformed JSON accepted")
	}
}

func TestCheckPlainTextSkipped(t *testing.T) {
	if err := Check("Point Name,Volttron Point Name\nheartbeat,Heartbeat"); err != nil {
		t.Errorf("plain-text config must not be validated as JSON: %v", err)
	}
}

func TestLooksLikeJSON(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{`{"a": 1}`, true},
		{"  \n\t[1, 2]", true},
		{"interval = 5", false},
		{"", false},
	}
	for _, test := range tests {
		if got := LooksLikeJSON(test.content); got != test.want {
			t.Errorf("LooksLikeJSON(%q) = %v, want %v", test.content, got, test.want)
		}
	}
}
