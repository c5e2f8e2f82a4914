// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"testing"

	"github.com/DanyBoi22/Volttron-TEC/lib/platform"
)

// newTestModel builds a model around a nil client; any code path that
// touches the network would panic, so these tests stay local.
func newTestModel() *Model {
	return NewModel(NewStore(), NewController(nil, nil), DefaultTheme, DefaultKeyMap, 0, nil)
}

func TestInstallSuccessKeepsFormValues(t *testing.T) {
	model := newTestModel()
	model.installVisible = true
	model.installForm.inputs[0].SetValue("/home/volttron/listener")
	model.installForm.inputs[1].SetValue("config")
	model.installForm.inputs[2].SetValue("listener")

	model.updateActionResult(actionResultMsg{action: actionInstall, message: "agent installed"})

	// Re-issuing with a tweak is common, so install keeps its fields.
	want := []string{"/home/volttron/listener", "config", "listener"}
	got := model.installForm.Values()
	for index := range want {
		if got[index] != want[index] {
			t.Errorf("install field %d = %q, want %q preserved", index, got[index], want[index])
		}
	}
	if !model.installVisible {
		t.Error("install form hidden by success")
	}
}

func TestAddConfigSuccessResetsForm(t *testing.T) {
	model := newTestModel()
	model.store.ApplyAgents(agentList("alpha"))
	model.store.SetConfigEditor(true)
	model.store.SelectAgent("alpha")
	model.addConfigVisible = true
	model.focus = FocusAddConfig
	model.addConfigForm.inputs[0].SetValue("devices/plant1")
	model.addConfigForm.inputs[1].SetValue("/tmp/plant1.config")

	model.updateActionResult(actionResultMsg{
		action: actionAddConfig,
		agent:  "alpha",
		config: "devices/plant1",
	})

	for index, value := range model.addConfigForm.Values() {
		if value != "" {
			t.Errorf("add-config field %d = %q, want cleared", index, value)
		}
	}
	if model.addConfigVisible {
		t.Error("add-config form still visible after success")
	}
	if model.focus != FocusConfigList {
		t.Errorf("focus = %v, want back on the config list", model.focus)
	}
}

func TestActionFailureNoticeKind(t *testing.T) {
	model := newTestModel()

	model.updateActionResult(actionResultMsg{
		action: actionStart,
		err:    platform.Validation("select an agent first"),
	})
	if model.noticeKind != noticeWarning {
		t.Errorf("validation notice kind = %v, want warning", model.noticeKind)
	}
	if model.notice != "select an agent first" {
		t.Errorf("notice = %q", model.notice)
	}

	model.updateActionResult(actionResultMsg{
		action: actionStart,
		err:    platform.Backend(500, "agent crashed on start"),
	})
	if model.noticeKind != noticeError {
		t.Errorf("backend notice kind = %v, want error", model.noticeKind)
	}
	if model.notice != "agent crashed on start" {
		t.Errorf("notice = %q", model.notice)
	}
}
