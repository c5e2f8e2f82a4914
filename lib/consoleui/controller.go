// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanyBoi22/Volttron-TEC/lib/jsonval"
	"github.com/DanyBoi22/Volttron-TEC/lib/platform"
)

// Controller exposes one operation per user-facing action. Each
// operation validates required fields locally first — failing fast
// with a validation error and no network call — then issues exactly
// one backend request as a bubbletea command. The typed result message
// flows back through Model.Update, which applies the store's
// invalidation rules and surfaces the single user-visible outcome.
//
// Selection context (agent identity, config name) is captured at issue
// time and travels with the result, so a response landing after the
// selection moved on is reconciled against the right key.
type Controller struct {
	client *platform.Client
	logger *slog.Logger
}

// NewController creates a controller issuing requests through client.
func NewController(client *platform.Client, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{client: client, logger: logger}
}

// Commands converts the store's fetch descriptors into bubbletea
// commands. Returns nil when there is nothing to fetch.
func (c *Controller) Commands(fetches []Fetch) tea.Cmd {
	if len(fetches) == 0 {
		return nil
	}
	commands := make([]tea.Cmd, len(fetches))
	for index, fetch := range fetches {
		commands[index] = c.fetchCommand(fetch)
	}
	return tea.Batch(commands...)
}

func (c *Controller) fetchCommand(fetch Fetch) tea.Cmd {
	switch fetch.Kind {
	case FetchAgents:
		return func() tea.Msg {
			agents, err := c.client.ListAgents(context.Background())
			return agentListMsg{agents: agents, err: err}
		}
	case FetchStatuses:
		return func() tea.Msg {
			statuses, err := c.client.ListStatuses(context.Background())
			return statusesMsg{statuses: statuses, err: err}
		}
	case FetchConfigList:
		agent := fetch.Agent
		return func() tea.Msg {
			configs, err := c.client.ListConfigs(context.Background(), agent)
			return configListMsg{agent: agent, configs: configs, err: err}
		}
	case FetchConfigContent:
		agent, config := fetch.Agent, fetch.Config
		return func() tea.Msg {
			content, err := c.client.GetConfig(context.Background(), agent, config)
			return configContentMsg{agent: agent, config: config, content: content, err: err}
		}
	case FetchLog:
		return func() tea.Msg {
			raw, err := c.client.GetLog(context.Background())
			return logContentMsg{raw: raw, err: err}
		}
	default:
		return nil
	}
}

// RefreshAgents reloads the agent list.
func (c *Controller) RefreshAgents() tea.Cmd {
	return c.fetchCommand(Fetch{Kind: FetchAgents})
}

// RefreshStatuses reloads the status snapshot.
func (c *Controller) RefreshStatuses() tea.Cmd {
	return c.fetchCommand(Fetch{Kind: FetchStatuses})
}

// RefreshLog reloads the raw platform log.
func (c *Controller) RefreshLog() tea.Cmd {
	return c.fetchCommand(Fetch{Kind: FetchLog})
}

// InstallAgent installs a new agent. All three fields are required.
func (c *Controller) InstallAgent(baseDir, configFile, tag string) tea.Cmd {
	if baseDir == "" || configFile == "" || tag == "" {
		return failNow(actionInstall, platform.Validation("base directory, config file, and tag are all required"))
	}
	request := platform.InstallRequest{BaseDir: baseDir, ConfigFile: configFile, Tag: tag}
	return func() tea.Msg {
		message, err := c.client.InstallAgent(context.Background(), request)
		return actionResultMsg{action: actionInstall, message: message, err: err}
	}
}

// StartAgent starts the selected agent.
func (c *Controller) StartAgent(identity string) tea.Cmd {
	if identity == "" {
		return failNow(actionStart, platform.Validation("select an agent first"))
	}
	return func() tea.Msg {
		err := c.client.StartAgent(context.Background(), identity)
		return actionResultMsg{action: actionStart, message: identity + " started!", agent: identity, err: err}
	}
}

// StopAgent stops the selected agent.
func (c *Controller) StopAgent(identity string) tea.Cmd {
	if identity == "" {
		return failNow(actionStop, platform.Validation("select an agent first"))
	}
	return func() tea.Msg {
		err := c.client.StopAgent(context.Background(), identity)
		return actionResultMsg{action: actionStop, message: identity + " stopped!", agent: identity, err: err}
	}
}

// RemoveAgent uninstalls the selected agent.
func (c *Controller) RemoveAgent(identity string) tea.Cmd {
	if identity == "" {
		return failNow(actionRemove, platform.Validation("select an agent first"))
	}
	return func() tea.Msg {
		err := c.client.RemoveAgent(context.Background(), identity)
		return actionResultMsg{action: actionRemove, message: identity + " removed!", agent: identity, err: err}
	}
}

// SaveConfig writes the draft buffer back to the selected config. The
// draft is validated as JSON-with-comments when it looks like JSON;
// a failed check becomes a warning on the success notice, never a
// block — plain-text configs are legal.
func (c *Controller) SaveConfig(identity, config, draft string) tea.Cmd {
	if identity == "" || config == "" {
		return failNow(actionSaveConfig, platform.Validation("select a config to save"))
	}
	warning := ""
	if err := jsonval.Check(draft); err != nil {
		warning = err.Error()
	}
	return func() tea.Msg {
		err := c.client.SaveConfig(context.Background(), identity, config, draft)
		return actionResultMsg{
			action:  actionSaveConfig,
			message: "Config " + config + " saved!",
			warning: warning,
			agent:   identity,
			config:  config,
			err:     err,
		}
	}
}

// AddConfig stores a new config for the selected agent from a path on
// the backend host. Name and path are both required.
func (c *Controller) AddConfig(identity, name, path string) tea.Cmd {
	if identity == "" {
		return failNow(actionAddConfig, platform.Validation("select an agent first"))
	}
	if name == "" || path == "" {
		return failNow(actionAddConfig, platform.Validation("config name and path are both required"))
	}
	return func() tea.Msg {
		err := c.client.AddConfig(context.Background(), identity, name, path)
		return actionResultMsg{
			action:  actionAddConfig,
			message: "Config " + name + " stored!",
			agent:   identity,
			config:  name,
			err:     err,
		}
	}
}

// DeleteConfig removes the selected config from the agent's store.
func (c *Controller) DeleteConfig(identity, config string) tea.Cmd {
	if identity == "" || config == "" {
		return failNow(actionDeleteConfig, platform.Validation("select a config to delete"))
	}
	return func() tea.Msg {
		err := c.client.DeleteConfig(context.Background(), identity, config)
		return actionResultMsg{
			action:  actionDeleteConfig,
			message: "Config " + config + " deleted!",
			agent:   identity,
			config:  config,
			err:     err,
		}
	}
}

// SubmitExperiment submits an experiment draft. The plants field is
// comma-split at submission time; see SplitList for the convention.
func (c *Controller) SubmitExperiment(scratch ExperimentScratch) tea.Cmd {
	submission := platform.ExperimentSubmission{
		ExperimentID: scratch.SubmitID,
		Experimenter: scratch.Experimenter,
		Description:  scratch.Description,
		StartTime:    scratch.StartTime,
		StopTime:     scratch.StopTime,
		Plants:       SplitList(scratch.Plants),
	}
	return func() tea.Msg {
		experimentID, err := c.client.SubmitExperiment(context.Background(), submission)
		return actionResultMsg{action: actionSubmitExp, message: "Experiment submitted: " + experimentID, err: err}
	}
}

// AuthorizeExperiment records supervisor authorization.
func (c *Controller) AuthorizeExperiment(scratch ExperimentScratch) tea.Cmd {
	return func() tea.Msg {
		message, err := c.client.AuthorizeExperiment(context.Background(), scratch.AuthID, scratch.SupervisorName)
		return actionResultMsg{action: actionAuthorizeExp, message: "Authorized: " + message, err: err}
	}
}

// FinalizeExperiment marks an experiment ready, splitting the agent
// and topic lists at submission time.
func (c *Controller) FinalizeExperiment(scratch ExperimentScratch) tea.Cmd {
	readiness := platform.ExperimentReadiness{
		Agents: SplitList(scratch.ReadyAgents),
		Topics: SplitList(scratch.ReadyTopics),
	}
	return func() tea.Msg {
		message, err := c.client.FinalizeExperiment(context.Background(), scratch.ReadyID, readiness)
		return actionResultMsg{action: actionFinalizeExp, message: "Ready: " + message, err: err}
	}
}

// failNow short-circuits an operation with a local validation error:
// the message is delivered synchronously and nothing touches the
// network.
func failNow(kind action, err *platform.Error) tea.Cmd {
	return func() tea.Msg {
		return actionResultMsg{action: kind, err: err}
	}
}
