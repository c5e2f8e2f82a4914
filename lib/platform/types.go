// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package platform

// Agent is one installed agent as reported by the supervisory backend.
// Identity is the stable key used in all agent-scoped URLs; ID is the
// platform's internal UUID for the installed package.
type Agent struct {
	ID       string `json:"id"`
	Identity string `json:"identity"`
}

// AgentStatus is a point-in-time status snapshot for one agent. The
// status map is replaced wholesale on each refresh — entries are never
// merged incrementally.
type AgentStatus struct {
	UUID        string `json:"uuid"`
	Status      string `json:"status"`
	LastChecked int64  `json:"last_checked"` // Unix seconds.
}

// InstallRequest carries the three fields of the install-agent
// endpoint. All three are required.
type InstallRequest struct {
	BaseDir    string `json:"base_dir"`
	ConfigFile string `json:"config_file"`
	Tag        string `json:"tag"`
}

// ExperimentSubmission is the submit-experiment payload. Plants is the
// already-split list; splitting free text on commas is the caller's
// concern (see consoleui.SplitList).
type ExperimentSubmission struct {
	ExperimentID string   `json:"experiment_id"`
	Experimenter string   `json:"experimenter"`
	Description  string   `json:"description"`
	StartTime    string   `json:"start_time"`
	StopTime     string   `json:"stop_time"`
	Plants       []string `json:"plants"`
}

// ExperimentReadiness is the finalize-experiment payload: which agents
// take part and which topics the platform should record.
type ExperimentReadiness struct {
	Agents []string `json:"agents_for_experiment"`
	Topics []string `json:"topics_to_log"`
}
