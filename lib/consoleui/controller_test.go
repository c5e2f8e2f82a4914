// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanyBoi22/Volttron-TEC/lib/platform"
)

// runLocal executes a command expected to resolve without touching the
// network: the controller is built with a nil client, so any network
// path would panic.
func runLocal(t *testing.T, command tea.Cmd) actionResultMsg {
	t.Helper()
	if command == nil {
		t.Fatal("expected a command")
	}
	message, ok := command().(actionResultMsg)
	if !ok {
		t.Fatal("command did not produce an action result")
	}
	return message
}

func requireValidationError(t *testing.T, message actionResultMsg) {
	t.Helper()
	if message.err == nil {
		t.Fatal("expected a validation error")
	}
	var platformError *platform.Error
	if !errors.As(message.err, &platformError) {
		t.Fatalf("error %T is not a platform error", message.err)
	}
	if platformError.Category != platform.CategoryValidation {
		t.Errorf("category = %v, want validation", platformError.Category)
	}
}

func TestInstallAgentRequiresAllFields(t *testing.T) {
	controller := NewController(nil, nil)
	cases := [][3]string{
		{"", "config", "tag"},
		{"/base", "", "tag"},
		{"/base", "config", ""},
	}
	for _, fields := range cases {
		message := runLocal(t, controller.InstallAgent(fields[0], fields[1], fields[2]))
		requireValidationError(t, message)
		if message.action != actionInstall {
			t.Errorf("action = %q, want install", message.action)
		}
	}
}

func TestAgentActionsRequireSelection(t *testing.T) {
	controller := NewController(nil, nil)
	for name, command := range map[string]tea.Cmd{
		"start":  controller.StartAgent(""),
		"stop":   controller.StopAgent(""),
		"remove": controller.RemoveAgent(""),
	} {
		message := runLocal(t, command)
		if message.err == nil {
			t.Errorf("%s with empty identity did not fail", name)
		}
		requireValidationError(t, message)
	}
}

func TestSaveConfigRequiresSelection(t *testing.T) {
	controller := NewController(nil, nil)
	requireValidationError(t, runLocal(t, controller.SaveConfig("", "config", "{}")))
	requireValidationError(t, runLocal(t, controller.SaveConfig("agent", "", "{}")))
}

func TestAddConfigRequiresNameAndPath(t *testing.T) {
	controller := NewController(nil, nil)
	requireValidationError(t, runLocal(t, controller.AddConfig("", "name", "/path")))
	requireValidationError(t, runLocal(t, controller.AddConfig("agent", "", "/path")))
	requireValidationError(t, runLocal(t, controller.AddConfig("agent", "name", "")))
}

func TestDeleteConfigRequiresSelection(t *testing.T) {
	controller := NewController(nil, nil)
	requireValidationError(t, runLocal(t, controller.DeleteConfig("agent", "")))
}

func TestValidationErrorMessageIsUserReadable(t *testing.T) {
	controller := NewController(nil, nil)
	message := runLocal(t, controller.StartAgent(""))
	var platformError *platform.Error
	if !errors.As(message.err, &platformError) {
		t.Fatalf("error %T is not a platform error", message.err)
	}
	if platformError.UserMessage() != "select an agent first" {
		t.Errorf("UserMessage = %q", platformError.UserMessage())
	}
}
