// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"testing"

	"github.com/DanyBoi22/Volttron-TEC/lib/platform"
)

func agentList(identities ...string) []platform.Agent {
	agents := make([]platform.Agent, len(identities))
	for index, identity := range identities {
		agents[index] = platform.Agent{ID: identity, Identity: identity}
	}
	return agents
}

func requireFetch(t *testing.T, fetches []Fetch, want Fetch) {
	t.Helper()
	for _, fetch := range fetches {
		if fetch == want {
			return
		}
	}
	t.Fatalf("fetches %#v do not contain %#v", fetches, want)
}

func TestSelectAgentClearsConfigState(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("listener", "platform.driver"))
	store.SetConfigEditor(true)
	store.SelectAgent("listener")
	if !store.ApplyConfigList("listener", []string{"config", "devices/bhkw"}) {
		t.Fatal("config list for current selection was discarded")
	}
	store.SelectConfig("config")
	store.ApplyConfigContent("listener", "config", `{"interval": 5}`)
	store.SetDraft(`{"interval": 10}`)

	fetches := store.SelectAgent("platform.driver")

	if store.Configs != nil || store.SelectedConfig != "" {
		t.Errorf("config list state survived agent switch: %#v / %q", store.Configs, store.SelectedConfig)
	}
	if store.ConfigContent != "" || store.ConfigDraft != "" {
		t.Errorf("config content survived agent switch: %q / %q", store.ConfigContent, store.ConfigDraft)
	}
	requireFetch(t, fetches, Fetch{Kind: FetchConfigList, Agent: "platform.driver"})
}

func TestSelectAgentNoOpOnSameIdentity(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("listener"))
	store.SetConfigEditor(true)
	store.SelectAgent("listener")
	store.ApplyConfigList("listener", []string{"config"})
	store.SelectConfig("config")

	if fetches := store.SelectAgent("listener"); fetches != nil {
		t.Errorf("re-selecting the same agent issued fetches: %#v", fetches)
	}
	if store.SelectedConfig != "config" {
		t.Errorf("re-selecting the same agent cleared config selection")
	}
}

func TestStaleConfigListDiscarded(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("alpha", "beta"))
	store.SetConfigEditor(true)
	store.SelectAgent("alpha")
	store.SelectAgent("beta")

	// Alpha's list completes after the selection moved to beta.
	if store.ApplyConfigList("alpha", []string{"stale"}) {
		t.Fatal("stale config list was applied")
	}
	if store.Configs != nil {
		t.Errorf("stale list mutated the store: %#v", store.Configs)
	}

	if !store.ApplyConfigList("beta", []string{"fresh"}) {
		t.Fatal("current config list was discarded")
	}
	if len(store.Configs) != 1 || store.Configs[0] != "fresh" {
		t.Errorf("Configs = %#v, want [fresh]", store.Configs)
	}
}

func TestConfigListDiscardedAfterEditorCloses(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("alpha"))
	store.SetConfigEditor(true)
	store.SelectAgent("alpha")
	store.SetConfigEditor(false)

	if store.ApplyConfigList("alpha", []string{"late"}) {
		t.Fatal("config list applied after editor closed")
	}
}

func TestStaleConfigContentDiscarded(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("alpha"))
	store.SetConfigEditor(true)
	store.SelectAgent("alpha")
	store.ApplyConfigList("alpha", []string{"one", "two"})
	store.SelectConfig("one")
	store.SelectConfig("two")

	if store.ApplyConfigContent("alpha", "one", "old body") {
		t.Fatal("content for deselected config was applied")
	}
	if !store.ApplyConfigContent("alpha", "two", "new body") {
		t.Fatal("content for current config was discarded")
	}
	if store.ConfigDraft != "new body" {
		t.Errorf("draft = %q, want seeded from content", store.ConfigDraft)
	}
}

func TestApplyAgentsClearsVanishedSelection(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("alpha", "beta"))
	store.SetConfigEditor(true)
	store.SelectAgent("beta")
	store.ApplyConfigList("beta", []string{"config"})
	store.SelectConfig("config")

	store.ApplyAgents(agentList("alpha"))

	if store.SelectedAgent != "" {
		t.Errorf("SelectedAgent = %q, want cleared", store.SelectedAgent)
	}
	if store.SelectedConfig != "" || store.Configs != nil {
		t.Error("config state survived vanished agent")
	}
}

func TestApplyAgentsKeepsSurvivingSelection(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("alpha", "beta"))
	store.SelectAgent("beta")

	store.ApplyAgents(agentList("beta", "gamma"))

	if store.SelectedAgent != "beta" {
		t.Errorf("SelectedAgent = %q, want beta", store.SelectedAgent)
	}
}

func TestApplyConfigListDeselectsVanishedConfig(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("alpha"))
	store.SetConfigEditor(true)
	store.SelectAgent("alpha")
	store.ApplyConfigList("alpha", []string{"keep", "drop"})
	store.SelectConfig("drop")
	store.ApplyConfigContent("alpha", "drop", "body")

	if !store.ApplyConfigList("alpha", []string{"keep"}) {
		t.Fatal("refreshed config list was discarded")
	}
	if store.SelectedConfig != "" || store.ConfigContent != "" {
		t.Errorf("vanished config still selected: %q / %q", store.SelectedConfig, store.ConfigContent)
	}
}

func TestApplyConfigSavedPromotesDraft(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("alpha"))
	store.SetConfigEditor(true)
	store.SelectAgent("alpha")
	store.ApplyConfigList("alpha", []string{"config"})
	store.SelectConfig("config")
	store.ApplyConfigContent("alpha", "config", "old")
	store.SetDraft("new")

	fetches := store.ApplyConfigSaved("alpha", "config")

	if store.ConfigContent != "new" {
		t.Errorf("ConfigContent = %q, want draft promoted", store.ConfigContent)
	}
	requireFetch(t, fetches, Fetch{Kind: FetchConfigList, Agent: "alpha"})
}

func TestApplyConfigSavedStaleTagLeavesContent(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("alpha"))
	store.SetConfigEditor(true)
	store.SelectAgent("alpha")
	store.ApplyConfigList("alpha", []string{"one", "two"})
	store.SelectConfig("two")
	store.ApplyConfigContent("alpha", "two", "two-body")

	// A save issued for "one" completing now must not clobber "two".
	store.ApplyConfigSaved("alpha", "one")

	if store.ConfigContent != "two-body" {
		t.Errorf("ConfigContent = %q, want untouched", store.ConfigContent)
	}
}

func TestApplyConfigDeletedClearsSelection(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("alpha"))
	store.SetConfigEditor(true)
	store.SelectAgent("alpha")
	store.ApplyConfigList("alpha", []string{"config"})
	store.SelectConfig("config")
	store.ApplyConfigContent("alpha", "config", "body")

	fetches := store.ApplyConfigDeleted("alpha", "config")

	if store.SelectedConfig != "" || store.ConfigContent != "" || store.ConfigDraft != "" {
		t.Error("deleted config still selected")
	}
	requireFetch(t, fetches, Fetch{Kind: FetchConfigList, Agent: "alpha"})
}

func TestApplyInstalledRefetchesAgents(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("listener"))
	store.SelectAgent("listener")

	fetches := store.ApplyInstalled()

	requireFetch(t, fetches, Fetch{Kind: FetchAgents})
	if store.SelectedAgent != "listener" {
		t.Errorf("SelectedAgent = %q, want untouched by install", store.SelectedAgent)
	}
}

func TestApplyAgentRemovedClearsEverything(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("alpha"))
	store.SetConfigEditor(true)
	store.SelectAgent("alpha")
	store.ApplyConfigList("alpha", []string{"config"})
	store.SelectConfig("config")

	fetches := store.ApplyAgentRemoved("alpha")

	if store.SelectedAgent != "" || store.SelectedConfig != "" {
		t.Error("removed agent still selected")
	}
	requireFetch(t, fetches, Fetch{Kind: FetchAgents})
}

func TestApplyAgentRemovedOtherAgentKeepsSelection(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("alpha", "beta"))
	store.SelectAgent("alpha")

	fetches := store.ApplyAgentRemoved("beta")

	if store.SelectedAgent != "alpha" {
		t.Errorf("SelectedAgent = %q, want alpha", store.SelectedAgent)
	}
	requireFetch(t, fetches, Fetch{Kind: FetchAgents})
}

func TestApplyStatusesReplacesWholesale(t *testing.T) {
	store := NewStore()
	store.ApplyStatuses(map[string]platform.AgentStatus{
		"alpha": {UUID: "u1", Status: "running [pid 100]"},
		"beta":  {UUID: "u2", Status: "0 - stopped"},
	})
	store.ApplyStatuses(map[string]platform.AgentStatus{
		"alpha": {UUID: "u1", Status: "0 - stopped"},
	})

	if _, ok := store.Statuses["beta"]; ok {
		t.Error("old snapshot entry survived wholesale replace")
	}
	if store.Statuses["alpha"].Status != "0 - stopped" {
		t.Errorf("Status = %q, want replaced", store.Statuses["alpha"].Status)
	}
}

func TestSetConfigEditorCloseClearsState(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("alpha"))
	store.SelectAgent("alpha")

	fetches := store.SetConfigEditor(true)
	requireFetch(t, fetches, Fetch{Kind: FetchConfigList, Agent: "alpha"})
	store.ApplyConfigList("alpha", []string{"config"})
	store.SelectConfig("config")

	if fetches := store.SetConfigEditor(false); fetches != nil {
		t.Errorf("closing the editor issued fetches: %#v", fetches)
	}
	if store.Configs != nil || store.SelectedConfig != "" {
		t.Error("config state survived editor close")
	}
}

func TestSelectConfigFetchesContent(t *testing.T) {
	store := NewStore()
	store.ApplyAgents(agentList("alpha"))
	store.SetConfigEditor(true)
	store.SelectAgent("alpha")
	store.ApplyConfigList("alpha", []string{"config"})

	fetches := store.SelectConfig("config")
	requireFetch(t, fetches, Fetch{Kind: FetchConfigContent, Agent: "alpha", Config: "config"})

	if fetches := store.SelectConfig("config"); fetches != nil {
		t.Errorf("re-selecting the same config issued fetches: %#v", fetches)
	}
}
