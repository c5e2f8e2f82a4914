// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the console TUI. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row in list selectors.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Agent status colors.
	StatusRunning lipgloss.Color
	StatusStopped lipgloss.Color
	StatusUnknown lipgloss.Color

	// Status-bar notices.
	NoticeSuccess lipgloss.Color
	NoticeWarning lipgloss.Color
	NoticeError   lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
}

// AgentStatusColor maps a backend status string to a color. The
// platform reports free-form strings ("running [pid 1234]",
// "0 - stopped"), so matching is by substring.
func (theme Theme) AgentStatusColor(status string) lipgloss.Color {
	lowered := strings.ToLower(status)
	switch {
	case strings.Contains(lowered, "running"):
		return theme.StatusRunning
	case strings.Contains(lowered, "stopped"), strings.Contains(lowered, "exited"):
		return theme.StatusStopped
	default:
		return theme.StatusUnknown
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusRunning: lipgloss.Color("114"), // green
	StatusStopped: lipgloss.Color("196"), // red
	StatusUnknown: lipgloss.Color("245"), // gray

	NoticeSuccess: lipgloss.Color("114"),
	NoticeWarning: lipgloss.Color("208"),
	NoticeError:   lipgloss.Color("196"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
}
