// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanyBoi22/Volttron-TEC/lib/highlight"
	"github.com/DanyBoi22/Volttron-TEC/lib/platform"
)

// FocusRegion identifies which pane receives key input.
type FocusRegion int

const (
	// FocusAgents is the agent list with its action keys.
	FocusAgents FocusRegion = iota
	// FocusInstall is the install-agent form.
	FocusInstall
	// FocusConfigList is the config name list inside the editor pane.
	FocusConfigList
	// FocusConfigEdit is the config body textarea.
	FocusConfigEdit
	// FocusAddConfig is the add-config form.
	FocusAddConfig
	// FocusSubmitExp, FocusAuthExp, FocusReadyExp are the three
	// experiment lifecycle forms.
	FocusSubmitExp
	FocusAuthExp
	FocusReadyExp
	// FocusLog is the scrollable log pane.
	FocusLog
)

// noticeKind selects the status-bar notice styling.
type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeSuccess
	noticeWarning
	noticeError
)

// noticeDuration is how long a status-bar notice stays up before
// fading. Each new notice restarts the clock.
const noticeDuration = 5 * time.Second

// Model is the bubbletea model for the operator console. All state
// mutation happens inside Update on the program goroutine; commands
// returned from Update do the network work and feed results back as
// typed messages.
type Model struct {
	store      *Store
	controller *Controller
	theme      Theme
	keys       KeyMap
	logger     *slog.Logger

	// pollInterval drives the periodic log refresh; zero disables it.
	pollInterval time.Duration

	focus FocusRegion

	agentSelector  Selector
	configSelector Selector

	installForm   *Form
	addConfigForm *Form
	submitForm    *Form
	authForm      *Form
	readyForm     *Form

	installVisible   bool
	addConfigVisible bool
	editingConfig    bool

	configEditor textarea.Model
	logView      viewport.Model
	logRenderer  *highlight.TerminalRenderer

	width  int
	height int
	ready  bool

	notice         string
	noticeKind     noticeKind
	noticeSequence int
}

// NewModel assembles the console model around an empty store.
func NewModel(store *Store, controller *Controller, theme Theme, keys KeyMap, pollInterval time.Duration, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}

	editor := textarea.New()
	editor.ShowLineNumbers = true
	editor.CharLimit = 0

	return &Model{
		store:        store,
		controller:   controller,
		theme:        theme,
		keys:         keys,
		logger:       logger,
		pollInterval: pollInterval,
		focus:        FocusAgents,
		installForm: NewForm("Install agent",
			[2]string{"base dir", "/home/volttron/project"},
			[2]string{"config file", "config"},
			[2]string{"tag", "listener"},
		),
		addConfigForm: NewForm("Add config",
			[2]string{"name", "devices/plant1"},
			[2]string{"path", "/tmp/plant1.config"},
		),
		submitForm: NewForm("Submit experiment",
			[2]string{"experiment id", "exp-2026-001"},
			[2]string{"experimenter", "jsmith"},
			[2]string{"description", "peak shaving trial"},
			[2]string{"start time", "2026-09-01 08:00:00"},
			[2]string{"stop time", "2026-09-01 17:00:00"},
			[2]string{"plants", "bhkw1,chp2"},
		),
		authForm: NewForm("Authorize experiment",
			[2]string{"experiment id", "exp-2026-001"},
			[2]string{"supervisor", "pmueller"},
		),
		readyForm: NewForm("Mark ready",
			[2]string{"experiment id", "exp-2026-001"},
			[2]string{"agents", "platform.driver,logger"},
			[2]string{"topics", "devices/plant1/all"},
		),
		configEditor: editor,
		logView:      viewport.Model{},
		logRenderer:  highlight.NewTerminalRenderer(highlight.DefaultStyles(nil)),
	}
}

// Init issues the initial fetches and, when polling is enabled, the
// first log poll tick.
func (m *Model) Init() tea.Cmd {
	commands := []tea.Cmd{
		m.controller.RefreshAgents(),
		m.controller.RefreshStatuses(),
		m.controller.RefreshLog(),
	}
	if m.pollInterval > 0 {
		commands = append(commands, m.pollTick())
	}
	return tea.Batch(commands...)
}

func (m *Model) pollTick() tea.Cmd {
	return tea.Tick(m.pollInterval, func(time.Time) tea.Msg {
		return logPollTickMsg{}
	})
}

// setNotice replaces the status-bar notice and schedules its fade. The
// sequence number keeps a stale fade from clearing a newer notice.
func (m *Model) setNotice(kind noticeKind, text string) tea.Cmd {
	m.notice = text
	m.noticeKind = kind
	m.noticeSequence++
	sequence := m.noticeSequence
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeFadeMsg{sequence: sequence}
	})
}

// errorText extracts the user-facing message from an operation error.
func errorText(err error) string {
	var platformError *platform.Error
	if errors.As(err, &platformError) {
		return platformError.UserMessage()
	}
	return err.Error()
}

// Update is the single mutation point for all console state.
func (m *Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(message)

	case agentListMsg:
		if message.err != nil {
			m.logger.Warn("failed to load agents", "error", message.err)
			return m, nil
		}
		m.store.ApplyAgents(message.agents)
		m.syncAgentSelector()
		m.syncConfigSelector()
		return m, nil

	case statusesMsg:
		if message.err != nil {
			m.logger.Warn("failed to load statuses", "error", message.err)
			return m, nil
		}
		m.store.ApplyStatuses(message.statuses)
		return m, nil

	case configListMsg:
		if message.err != nil {
			m.logger.Warn("failed to load config list", "agent", message.agent, "error", message.err)
			return m, nil
		}
		if !m.store.ApplyConfigList(message.agent, message.configs) {
			m.logger.Debug("discarded stale config list", "agent", message.agent)
			return m, nil
		}
		m.syncConfigSelector()
		return m, nil

	case configContentMsg:
		if message.err != nil {
			m.logger.Warn("failed to load config content",
				"agent", message.agent, "config", message.config, "error", message.err)
			return m, nil
		}
		if !m.store.ApplyConfigContent(message.agent, message.config, message.content) {
			m.logger.Debug("discarded stale config content",
				"agent", message.agent, "config", message.config)
			return m, nil
		}
		m.configEditor.SetValue(message.content)
		return m, nil

	case logContentMsg:
		if message.err != nil {
			m.logger.Warn("failed to load log", "error", message.err)
			return m, nil
		}
		m.store.ApplyLog(message.raw)
		atBottom := m.logView.AtBottom()
		m.logView.SetContent(m.logRenderer.Document(message.raw))
		if atBottom {
			m.logView.GotoBottom()
		}
		return m, nil

	case logPollTickMsg:
		if m.pollInterval <= 0 {
			return m, nil
		}
		return m, tea.Batch(m.controller.RefreshLog(), m.pollTick())

	case actionResultMsg:
		return m.updateActionResult(message)

	case logRecordMsg:
		kind := noticeWarning
		if message.Level >= slog.LevelError {
			kind = noticeError
		}
		return m, m.setNotice(kind, message.Summary)

	case noticeFadeMsg:
		if message.sequence == m.noticeSequence {
			m.notice = ""
			m.noticeKind = noticeNone
		}
		return m, nil
	}

	return m, nil
}

// updateActionResult applies an operation outcome: a notice either way,
// plus the store's follow-up fetches on success. Validation failures
// are operator input slips, styled as warnings; transport and backend
// failures are errors.
func (m *Model) updateActionResult(message actionResultMsg) (tea.Model, tea.Cmd) {
	if message.err != nil {
		kind := noticeError
		if platform.CategoryOf(message.err) == platform.CategoryValidation {
			kind = noticeWarning
		}
		return m, m.setNotice(kind, errorText(message.err))
	}

	notice := message.message
	kind := noticeSuccess
	if message.warning != "" {
		notice += " (warning: " + message.warning + ")"
		kind = noticeWarning
	}
	commands := []tea.Cmd{m.setNotice(kind, notice)}

	switch message.action {
	case actionInstall:
		commands = append(commands, m.controller.Commands(m.store.ApplyInstalled()))
	case actionStart, actionStop:
		commands = append(commands, m.controller.RefreshStatuses())
	case actionRemove:
		commands = append(commands, m.controller.Commands(m.store.ApplyAgentRemoved(message.agent)))
		m.syncConfigSelector()
	case actionSaveConfig:
		commands = append(commands, m.controller.Commands(m.store.ApplyConfigSaved(message.agent, message.config)))
	case actionAddConfig:
		commands = append(commands, m.controller.Commands(m.store.ApplyConfigAdded()))
		m.addConfigForm.Reset()
		m.addConfigVisible = false
		if m.focus == FocusAddConfig {
			m.focus = FocusConfigList
		}
	case actionDeleteConfig:
		commands = append(commands, m.controller.Commands(m.store.ApplyConfigDeleted(message.agent, message.config)))
		m.syncConfigSelector()
	}

	return m, tea.Batch(commands...)
}

// updateKey routes key input by focus region. Pane cycling and quit are
// handled globally except where a text widget owns the keyboard.
func (m *Model) updateKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The config textarea owns every key except its own exits.
	if m.focus == FocusConfigEdit {
		return m.updateConfigEditKey(message)
	}

	switch {
	case key.Matches(message, m.keys.Quit):
		if m.inForm() && message.String() == "q" {
			break // "q" is a legitimate form character.
		}
		return m, tea.Quit
	case key.Matches(message, m.keys.NextPane):
		return m, m.cycleFocus(1)
	case key.Matches(message, m.keys.PrevPane):
		return m, m.cycleFocus(-1)
	}

	switch m.focus {
	case FocusAgents:
		return m.updateAgentsKey(message)
	case FocusConfigList:
		return m.updateConfigListKey(message)
	case FocusInstall:
		return m.updateFormKey(message, m.installForm, m.submitInstall)
	case FocusAddConfig:
		return m.updateFormKey(message, m.addConfigForm, m.submitAddConfig)
	case FocusSubmitExp:
		return m.updateFormKey(message, m.submitForm, m.submitExperiment)
	case FocusAuthExp:
		return m.updateFormKey(message, m.authForm, m.authorizeExperiment)
	case FocusReadyExp:
		return m.updateFormKey(message, m.readyForm, m.finalizeExperiment)
	case FocusLog:
		return m.updateLogKey(message)
	}
	return m, nil
}

func (m *Model) inForm() bool {
	switch m.focus {
	case FocusInstall, FocusAddConfig, FocusSubmitExp, FocusAuthExp, FocusReadyExp:
		return true
	}
	return false
}

// visibleRegions returns the focusable panes in tab order, given the
// current visibility toggles.
func (m *Model) visibleRegions() []FocusRegion {
	regions := []FocusRegion{FocusAgents}
	if m.installVisible {
		regions = append(regions, FocusInstall)
	}
	if m.store.ConfigEditorOpen {
		regions = append(regions, FocusConfigList)
		if m.addConfigVisible {
			regions = append(regions, FocusAddConfig)
		}
	}
	regions = append(regions, FocusSubmitExp, FocusAuthExp, FocusReadyExp, FocusLog)
	return regions
}

func (m *Model) cycleFocus(step int) tea.Cmd {
	regions := m.visibleRegions()
	current := 0
	for index, region := range regions {
		if region == m.focus {
			current = index
			break
		}
	}
	next := (current + step + len(regions)) % len(regions)
	return m.setFocus(regions[next])
}

// setFocus moves keyboard focus, blurring the widgets of the pane being
// left and focusing those of the pane being entered.
func (m *Model) setFocus(region FocusRegion) tea.Cmd {
	m.installForm.Blur()
	m.addConfigForm.Blur()
	m.submitForm.Blur()
	m.authForm.Blur()
	m.readyForm.Blur()
	m.configEditor.Blur()

	m.focus = region
	switch region {
	case FocusInstall:
		return m.installForm.Focus()
	case FocusAddConfig:
		return m.addConfigForm.Focus()
	case FocusSubmitExp:
		return m.submitForm.Focus()
	case FocusAuthExp:
		return m.authForm.Focus()
	case FocusReadyExp:
		return m.readyForm.Focus()
	case FocusConfigEdit:
		return m.configEditor.Focus()
	}
	return nil
}

func (m *Model) updateAgentsKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, m.keys.Up):
		m.agentSelector.MoveUp()
	case key.Matches(message, m.keys.Down):
		m.agentSelector.MoveDown()
	case key.Matches(message, m.keys.Select):
		if option, ok := m.agentSelector.Highlighted(); ok {
			return m, m.controller.Commands(m.store.SelectAgent(option.Value))
		}
	case key.Matches(message, m.keys.Start):
		return m, m.controller.StartAgent(m.store.SelectedAgent)
	case key.Matches(message, m.keys.Stop):
		return m, m.controller.StopAgent(m.store.SelectedAgent)
	case key.Matches(message, m.keys.Remove):
		return m, m.controller.RemoveAgent(m.store.SelectedAgent)
	case key.Matches(message, m.keys.ToggleInstall):
		m.installVisible = !m.installVisible
		if m.installVisible {
			return m, m.setFocus(FocusInstall)
		}
	case key.Matches(message, m.keys.ToggleEditor):
		open := !m.store.ConfigEditorOpen
		fetches := m.store.SetConfigEditor(open)
		m.syncConfigSelector()
		commands := []tea.Cmd{m.controller.Commands(fetches)}
		if open {
			commands = append(commands, m.setFocus(FocusConfigList))
		} else {
			m.addConfigVisible = false
			m.editingConfig = false
		}
		return m, tea.Batch(commands...)
	case key.Matches(message, m.keys.RefreshAgents):
		return m, m.controller.RefreshAgents()
	case key.Matches(message, m.keys.RefreshStatuses):
		return m, m.controller.RefreshStatuses()
	case key.Matches(message, m.keys.RefreshLog):
		return m, m.controller.RefreshLog()
	}
	return m, nil
}

func (m *Model) updateConfigListKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, m.keys.Up):
		m.configSelector.MoveUp()
	case key.Matches(message, m.keys.Down):
		m.configSelector.MoveDown()
	case key.Matches(message, m.keys.Select):
		if option, ok := m.configSelector.Highlighted(); ok {
			return m, m.controller.Commands(m.store.SelectConfig(option.Value))
		}
	case key.Matches(message, m.keys.EditConfig):
		if m.store.SelectedConfig == "" {
			return m, m.setNotice(noticeError, "select a config to edit")
		}
		m.editingConfig = true
		m.configEditor.SetValue(m.store.ConfigDraft)
		return m, m.setFocus(FocusConfigEdit)
	case key.Matches(message, m.keys.SaveConfig):
		return m, m.controller.SaveConfig(m.store.SelectedAgent, m.store.SelectedConfig, m.store.ConfigDraft)
	case key.Matches(message, m.keys.AddConfig):
		m.addConfigVisible = true
		return m, m.setFocus(FocusAddConfig)
	case key.Matches(message, m.keys.DeleteConfig):
		return m, m.controller.DeleteConfig(m.store.SelectedAgent, m.store.SelectedConfig)
	case key.Matches(message, m.keys.Back):
		return m, m.setFocus(FocusAgents)
	}
	return m, nil
}

// updateConfigEditKey handles keys while the textarea owns the
// keyboard. Esc leaves edit mode keeping the draft; ctrl+s saves.
func (m *Model) updateConfigEditKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, m.keys.Back):
		m.editingConfig = false
		m.store.SetDraft(m.configEditor.Value())
		return m, m.setFocus(FocusConfigList)
	case key.Matches(message, m.keys.SaveConfig):
		m.store.SetDraft(m.configEditor.Value())
		return m, m.controller.SaveConfig(m.store.SelectedAgent, m.store.SelectedConfig, m.store.ConfigDraft)
	}

	var command tea.Cmd
	m.configEditor, command = m.configEditor.Update(message)
	m.store.SetDraft(m.configEditor.Value())
	return m, command
}

// updateFormKey handles keys in any of the text-input forms: arrow
// keys move between fields, enter submits, esc returns to the agent
// pane, anything else edits the focused field. Letter bindings like
// j/k stay typeable here.
func (m *Model) updateFormKey(message tea.KeyMsg, form *Form, submit func() tea.Cmd) (tea.Model, tea.Cmd) {
	switch message.String() {
	case "up":
		return m, form.FocusPrev()
	case "down":
		return m, form.FocusNext()
	case "enter":
		return m, submit()
	case "esc":
		if m.focus == FocusInstall {
			m.installVisible = false
		}
		if m.focus == FocusAddConfig {
			m.addConfigVisible = false
			return m, m.setFocus(FocusConfigList)
		}
		return m, m.setFocus(FocusAgents)
	}
	return m, form.Update(message)
}

func (m *Model) updateLogKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, m.keys.RefreshLog):
		return m, m.controller.RefreshLog()
	case key.Matches(message, m.keys.Back):
		return m, m.setFocus(FocusAgents)
	}
	var command tea.Cmd
	m.logView, command = m.logView.Update(message)
	return m, command
}

func (m *Model) submitInstall() tea.Cmd {
	values := m.installForm.Values()
	return m.controller.InstallAgent(values[0], values[1], values[2])
}

func (m *Model) submitAddConfig() tea.Cmd {
	values := m.addConfigForm.Values()
	return m.controller.AddConfig(m.store.SelectedAgent, values[0], values[1])
}

func (m *Model) submitExperiment() tea.Cmd {
	values := m.submitForm.Values()
	m.store.Experiment.SubmitID = values[0]
	m.store.Experiment.Experimenter = values[1]
	m.store.Experiment.Description = values[2]
	m.store.Experiment.StartTime = values[3]
	m.store.Experiment.StopTime = values[4]
	m.store.Experiment.Plants = values[5]
	return m.controller.SubmitExperiment(m.store.Experiment)
}

func (m *Model) authorizeExperiment() tea.Cmd {
	values := m.authForm.Values()
	m.store.Experiment.AuthID = values[0]
	m.store.Experiment.SupervisorName = values[1]
	return m.controller.AuthorizeExperiment(m.store.Experiment)
}

func (m *Model) finalizeExperiment() tea.Cmd {
	values := m.readyForm.Values()
	m.store.Experiment.ReadyID = values[0]
	m.store.Experiment.ReadyAgents = values[1]
	m.store.Experiment.ReadyTopics = values[2]
	return m.controller.FinalizeExperiment(m.store.Experiment)
}

// syncAgentSelector rebuilds the agent selector options from the store.
func (m *Model) syncAgentSelector() {
	options := make([]SelectorOption, 0, len(m.store.Agents))
	for _, agent := range m.store.Agents {
		options = append(options, SelectorOption{Label: agent.Identity, Value: agent.Identity})
	}
	m.agentSelector.SetOptions(options)
}

// syncConfigSelector rebuilds the config selector options from the
// store, including after selection-clearing mutations.
func (m *Model) syncConfigSelector() {
	options := make([]SelectorOption, 0, len(m.store.Configs))
	for _, name := range m.store.Configs {
		options = append(options, SelectorOption{Label: name, Value: name})
	}
	m.configSelector.SetOptions(options)
}
