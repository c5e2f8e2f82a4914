// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"github.com/DanyBoi22/Volttron-TEC/lib/platform"
)

// Resource fetch completions. Each message carries the selection tag
// the fetch was issued under (where one exists) so the store can
// discard completions whose context no longer matches — responses
// apply in completion order, never issue order.

type agentListMsg struct {
	agents []platform.Agent
	err    error
}

type statusesMsg struct {
	statuses map[string]platform.AgentStatus
	err      error
}

type configListMsg struct {
	agent   string // Identity the fetch was issued for.
	configs []string
	err     error
}

type configContentMsg struct {
	agent   string // Identity the fetch was issued for.
	config  string // Config name the fetch was issued for.
	content string
	err     error
}

type logContentMsg struct {
	raw string
	err error
}

// action identifies a user-facing operation for result routing.
type action string

const (
	actionInstall      action = "install"
	actionStart        action = "start"
	actionStop         action = "stop"
	actionRemove       action = "remove"
	actionSaveConfig   action = "save-config"
	actionAddConfig    action = "add-config"
	actionDeleteConfig action = "delete-config"
	actionSubmitExp    action = "submit-experiment"
	actionAuthorizeExp action = "authorize-experiment"
	actionFinalizeExp  action = "finalize-experiment"
)

// actionResultMsg is the single user-visible outcome of one controller
// operation: either a success notice (message, possibly with a
// non-blocking warning appended) or a failure carrying the categorized
// error. The agent/config tags identify the selection context the
// operation ran against, for post-success store mutations.
type actionResultMsg struct {
	action  action
	message string
	warning string
	agent   string
	config  string
	err     error
}

// logPollTickMsg drives the optional periodic log refresh. The
// interval lives entirely outside the highlight pipeline.
type logPollTickMsg struct{}

// noticeFadeMsg clears the status-bar notice after its display delay.
type noticeFadeMsg struct{ sequence int }
