// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the console TUI.
type KeyMap struct {
	// List navigation.
	Up   key.Binding
	Down key.Binding

	// Pane cycling.
	NextPane key.Binding
	PrevPane key.Binding

	// Selection / form submission.
	Select key.Binding

	// Leave a form or sub-pane.
	Back key.Binding

	// Agent actions.
	Start         key.Binding
	Stop          key.Binding
	Remove        key.Binding
	ToggleInstall key.Binding
	ToggleEditor  key.Binding

	// Config editor actions.
	EditConfig   key.Binding
	SaveConfig   key.Binding
	AddConfig    key.Binding
	DeleteConfig key.Binding

	// Refresh.
	RefreshAgents   key.Binding
	RefreshStatuses key.Binding
	RefreshLog      key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// alongside arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPane: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next pane"),
	),
	PrevPane: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "previous pane"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select/submit"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start agent"),
	),
	Stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop agent"),
	),
	Remove: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "remove agent"),
	),
	ToggleInstall: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "install form"),
	),
	ToggleEditor: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "config store"),
	),
	EditConfig: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit config"),
	),
	SaveConfig: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "save config"),
	),
	AddConfig: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add config"),
	),
	DeleteConfig: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete config"),
	),
	RefreshAgents: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refresh agents"),
	),
	RefreshStatuses: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "refresh statuses"),
	),
	RefreshLog: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "refresh log"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
