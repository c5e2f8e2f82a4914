// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"slices"

	"github.com/DanyBoi22/Volttron-TEC/lib/platform"
)

// FetchKind identifies a dependent refetch the store wants issued
// after a mutation.
type FetchKind int

const (
	// FetchAgents reloads the installed agent list.
	FetchAgents FetchKind = iota
	// FetchStatuses reloads the status snapshot.
	FetchStatuses
	// FetchConfigList reloads the config names for the tagged agent.
	FetchConfigList
	// FetchConfigContent reloads the tagged (agent, config) body.
	FetchConfigContent
	// FetchLog reloads the raw platform log.
	FetchLog
)

// Fetch describes one refetch to issue, tagged with the selection key
// it is being issued for. The tag travels with the request and comes
// back in the completion message; the store drops completions whose
// tag no longer matches the current selection.
type Fetch struct {
	Kind   FetchKind
	Agent  string
	Config string
}

// ExperimentScratch holds the experiment-lifecycle free-text fields.
// The comma-separated fields are split only at submission time.
type ExperimentScratch struct {
	SubmitID     string
	Experimenter string
	Description  string
	StartTime    string
	StopTime     string
	Plants       string

	AuthID         string
	SupervisorName string

	ReadyID     string
	ReadyAgents string
	ReadyTopics string
}

// Store holds the five remote-resource families and applies the
// cross-resource invalidation rules on every mutation. All methods run
// on the bubbletea update goroutine — run-to-completion, no partial
// mutations visible anywhere.
//
// Mutation methods come in two groups: selection changes (SelectAgent,
// SelectConfig, SetConfigEditor) and completion/success appliers
// (Apply*). Both return the dependent fetches the mutation demands;
// appliers for tagged fetches additionally report whether the
// completion was applied or discarded as stale.
type Store struct {
	// Agent family: replaced wholesale on each list fetch.
	Agents []platform.Agent

	// Status family: point-in-time snapshot, replaced wholesale,
	// refreshed only on explicit request.
	Statuses map[string]platform.AgentStatus

	// SelectedAgent is empty or the identity of an agent present in
	// the last-fetched agent list.
	SelectedAgent string

	// Config family, valid only for the currently selected agent.
	ConfigEditorOpen bool
	Configs          []string
	SelectedConfig   string

	// ConfigContent is the last-fetched backend copy; ConfigDraft is
	// the local editable buffer, authoritative until a save completes.
	// A failed save leaves the draft untouched.
	ConfigContent string
	ConfigDraft   string

	// Experiment lifecycle scratch fields.
	Experiment ExperimentScratch

	// Log is the raw multi-line log text, highlighted at render time.
	Log string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// SelectedAgentRef returns the Agent entry for the current selection.
func (s *Store) SelectedAgentRef() (platform.Agent, bool) {
	for _, agent := range s.Agents {
		if agent.Identity == s.SelectedAgent {
			return agent, true
		}
	}
	return platform.Agent{}, false
}

// SelectAgent changes the agent selection. Config list, selected
// config, and config content are never valid across agents, so any
// change clears them. Selecting a non-empty agent while the config
// editor is open triggers a config-list fetch for that agent.
func (s *Store) SelectAgent(identity string) []Fetch {
	if identity == s.SelectedAgent {
		return nil
	}
	s.SelectedAgent = identity
	s.clearConfigState()

	if identity != "" && s.ConfigEditorOpen {
		return []Fetch{{Kind: FetchConfigList, Agent: identity}}
	}
	return nil
}

// SetConfigEditor opens or closes the config editor. Opening with an
// agent selected fetches that agent's config list; closing clears all
// config state.
func (s *Store) SetConfigEditor(open bool) []Fetch {
	if open == s.ConfigEditorOpen {
		return nil
	}
	s.ConfigEditorOpen = open
	if !open {
		s.clearConfigState()
		return nil
	}
	if s.SelectedAgent != "" {
		return []Fetch{{Kind: FetchConfigList, Agent: s.SelectedAgent}}
	}
	return nil
}

// SelectConfig changes the config selection. A non-empty selection
// fetches its content; an empty selection clears the content buffer.
func (s *Store) SelectConfig(name string) []Fetch {
	if name == s.SelectedConfig {
		return nil
	}
	s.SelectedConfig = name
	s.ConfigContent = ""
	s.ConfigDraft = ""
	if name == "" {
		return nil
	}
	return []Fetch{{Kind: FetchConfigContent, Agent: s.SelectedAgent, Config: name}}
}

// SetDraft replaces the local config draft buffer.
func (s *Store) SetDraft(content string) {
	s.ConfigDraft = content
}

// ApplyAgents replaces the agent list wholesale. Selection is left
// alone unless the selected identity is no longer present, in which
// case the selection clears (taking config state with it).
func (s *Store) ApplyAgents(agents []platform.Agent) {
	s.Agents = agents
	if s.SelectedAgent == "" {
		return
	}
	for _, agent := range agents {
		if agent.Identity == s.SelectedAgent {
			return
		}
	}
	s.SelectedAgent = ""
	s.clearConfigState()
}

// ApplyStatuses replaces the status snapshot wholesale. There is no
// incremental merge and no automatic expiry; staleness is bounded only
// by the last explicit refresh.
func (s *Store) ApplyStatuses(statuses map[string]platform.AgentStatus) {
	s.Statuses = statuses
}

// ApplyConfigList installs a completed config-list fetch. Returns
// false — and mutates nothing — when the completion is stale: issued
// for an agent that is no longer selected, or the editor has closed
// since. A selected config that vanished from the new list is
// deselected along with its content.
func (s *Store) ApplyConfigList(agent string, configs []string) bool {
	if agent != s.SelectedAgent || !s.ConfigEditorOpen {
		return false
	}
	s.Configs = configs
	if s.SelectedConfig != "" && !slices.Contains(configs, s.SelectedConfig) {
		s.SelectedConfig = ""
		s.ConfigContent = ""
		s.ConfigDraft = ""
	}
	return true
}

// ApplyConfigContent installs a completed content fetch, or discards
// it when the (agent, config) tag no longer matches the selection.
// The draft buffer is (re)seeded from the backend copy.
func (s *Store) ApplyConfigContent(agent, config, content string) bool {
	if agent != s.SelectedAgent || config != s.SelectedConfig {
		return false
	}
	s.ConfigContent = content
	s.ConfigDraft = content
	return true
}

// ApplyConfigSaved records a successful save: the backend copy now
// matches the draft, and the config list is refetched for the current
// agent. A save that completed after the selection moved on updates
// nothing but still refetches the list if the editor is open.
func (s *Store) ApplyConfigSaved(agent, config string) []Fetch {
	if agent == s.SelectedAgent && config == s.SelectedConfig {
		s.ConfigContent = s.ConfigDraft
	}
	return s.configListRefetch()
}

// ApplyConfigAdded records a successful add-config: refetch the list.
func (s *Store) ApplyConfigAdded() []Fetch {
	return s.configListRefetch()
}

// ApplyConfigDeleted records a successful delete: the deleted config
// can no longer be selected, and the list is refetched.
func (s *Store) ApplyConfigDeleted(agent, config string) []Fetch {
	if agent == s.SelectedAgent && config == s.SelectedConfig {
		s.SelectedConfig = ""
		s.ConfigContent = ""
		s.ConfigDraft = ""
	}
	return s.configListRefetch()
}

// ApplyAgentRemoved records a successful remove: selection and all
// config state clear, and the agent list is refetched.
func (s *Store) ApplyAgentRemoved(identity string) []Fetch {
	if identity == s.SelectedAgent {
		s.SelectedAgent = ""
		s.clearConfigState()
	}
	return []Fetch{{Kind: FetchAgents}}
}

// ApplyInstalled records a successful install: the agent list is
// refetched. Install form fields are deliberately not cleared — the
// operator may want to re-issue with a tweak.
func (s *Store) ApplyInstalled() []Fetch {
	return []Fetch{{Kind: FetchAgents}}
}

// ApplyLog replaces the raw log text.
func (s *Store) ApplyLog(raw string) {
	s.Log = raw
}

func (s *Store) clearConfigState() {
	s.Configs = nil
	s.SelectedConfig = ""
	s.ConfigContent = ""
	s.ConfigDraft = ""
}

func (s *Store) configListRefetch() []Fetch {
	if s.SelectedAgent == "" || !s.ConfigEditorOpen {
		return nil
	}
	return []Fetch{{Kind: FetchConfigList, Agent: s.SelectedAgent}}
}
