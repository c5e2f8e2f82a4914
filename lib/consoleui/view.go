// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"

	"github.com/DanyBoi22/Volttron-TEC/lib/jsonval"
)

// layout recomputes pane dimensions after a terminal resize. The log
// pane takes the right half; everything else stacks on the left.
func (m *Model) layout() {
	leftWidth := m.width / 2
	if leftWidth < 30 {
		leftWidth = 30
	}
	logWidth := m.width - leftWidth - 3
	if logWidth < 10 {
		logWidth = 10
	}
	contentHeight := m.height - 2
	if contentHeight < 4 {
		contentHeight = 4
	}

	m.logView.Width = logWidth
	m.logView.Height = contentHeight

	m.configEditor.SetWidth(leftWidth - 4)
	m.configEditor.SetHeight(10)
}

// View renders the whole console: left operations column, right log
// pane, one-line status bar.
func (m *Model) View() string {
	if !m.ready {
		return "starting..."
	}

	leftWidth := m.width / 2
	if leftWidth < 30 {
		leftWidth = 30
	}

	left := m.viewLeftColumn(leftWidth)
	right := m.viewLogPane()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewStatusBar())
}

func (m *Model) viewLeftColumn(width int) string {
	var sections []string

	sections = append(sections, m.viewAgentPane(width))
	if m.installVisible {
		sections = append(sections, m.installForm.View(m.theme, m.focus == FocusInstall))
	}
	if m.store.ConfigEditorOpen {
		sections = append(sections, m.viewConfigPane(width))
	}
	sections = append(sections, m.viewExperimentPane())

	column := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.NewStyle().
		Width(width).
		Height(m.height - 2).
		MaxHeight(m.height - 2).
		Render(column)
}

// viewAgentPane renders the agent table: identity, status, and the
// last-checked time converted to the operator's local clock.
func (m *Model) viewAgentPane(width int) string {
	headerStyle := lipgloss.NewStyle().Foreground(m.theme.HeaderForeground).Bold(true)
	faintStyle := lipgloss.NewStyle().Foreground(m.theme.FaintText)

	var builder strings.Builder
	builder.WriteString(headerStyle.Render(m.paneTitle("Agents", FocusAgents)))
	builder.WriteString("\n")

	if len(m.store.Agents) == 0 {
		builder.WriteString(faintStyle.Render("  no agents installed"))
		builder.WriteString("\n")
		return builder.String()
	}

	for _, line := range m.agentSelector.Render(m.theme, m.focus == FocusAgents, width-2, m.store.SelectedAgent) {
		builder.WriteString(line)
		builder.WriteString("\n")
	}

	if agent, ok := m.store.SelectedAgentRef(); ok {
		status, have := m.store.Statuses[agent.Identity]
		statusText := "unknown"
		checkedText := ""
		if have {
			statusText = status.Status
			if status.LastChecked > 0 {
				checkedText = time.Unix(status.LastChecked, 0).Local().Format("15:04:05")
			}
		}
		statusStyle := lipgloss.NewStyle().Foreground(m.theme.AgentStatusColor(statusText))
		builder.WriteString("\n")
		builder.WriteString(faintStyle.Render("  status: "))
		builder.WriteString(statusStyle.Render(statusText))
		if checkedText != "" {
			builder.WriteString(faintStyle.Render("  checked " + checkedText))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

// viewConfigPane renders the config store: name list, then either the
// textarea (editing) or a syntax-highlighted read-only preview.
func (m *Model) viewConfigPane(width int) string {
	headerStyle := lipgloss.NewStyle().Foreground(m.theme.HeaderForeground).Bold(true)
	faintStyle := lipgloss.NewStyle().Foreground(m.theme.FaintText)

	var builder strings.Builder
	builder.WriteString(headerStyle.Render(m.paneTitle("Config store", FocusConfigList)))
	builder.WriteString("\n")

	if m.store.SelectedAgent == "" {
		builder.WriteString(faintStyle.Render("  select an agent to browse configs"))
		builder.WriteString("\n")
		return builder.String()
	}

	if len(m.store.Configs) == 0 {
		builder.WriteString(faintStyle.Render("  no configs stored"))
		builder.WriteString("\n")
	} else {
		for _, line := range m.configSelector.Render(m.theme, m.focus == FocusConfigList, width-2, m.store.SelectedConfig) {
			builder.WriteString(line)
			builder.WriteString("\n")
		}
	}

	if m.store.SelectedConfig != "" {
		builder.WriteString("\n")
		if m.editingConfig {
			builder.WriteString(m.configEditor.View())
			builder.WriteString("\n")
		} else {
			builder.WriteString(m.configPreview(m.store.ConfigDraft))
			builder.WriteString("\n")
		}
	}

	if m.addConfigVisible {
		builder.WriteString("\n")
		builder.WriteString(m.addConfigForm.View(m.theme, m.focus == FocusAddConfig))
	}

	return builder.String()
}

// configPreview syntax-highlights a JSON-looking config body for the
// read-only view. Non-JSON content and highlighter failures fall back
// to the plain text.
func (m *Model) configPreview(content string) string {
	if !jsonval.LooksLikeJSON(content) {
		return content
	}
	var builder strings.Builder
	if err := quick.Highlight(&builder, content, "json", "terminal256", "monokai"); err != nil {
		return content
	}
	return builder.String()
}

func (m *Model) viewExperimentPane() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.submitForm.View(m.theme, m.focus == FocusSubmitExp),
		m.authForm.View(m.theme, m.focus == FocusAuthExp),
		m.readyForm.View(m.theme, m.focus == FocusReadyExp),
	)
}

func (m *Model) viewLogPane() string {
	headerStyle := lipgloss.NewStyle().Foreground(m.theme.HeaderForeground).Bold(true)
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.BorderColor)

	title := headerStyle.Render(m.paneTitle("Platform log", FocusLog))
	scroll := lipgloss.NewStyle().Foreground(m.theme.FaintText).
		Render(fmt.Sprintf(" %3.0f%%", m.logView.ScrollPercent()*100))

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title+scroll,
		m.logView.View(),
	))
}

// paneTitle marks the focused pane's title with a leading bullet.
func (m *Model) paneTitle(title string, region FocusRegion) string {
	if m.focus == region {
		return "● " + title
	}
	return "  " + title
}

// viewStatusBar renders the bottom line: the current notice when one
// is up, context-sensitive key help otherwise.
func (m *Model) viewStatusBar() string {
	if m.notice != "" {
		color := m.theme.NoticeSuccess
		switch m.noticeKind {
		case noticeWarning:
			color = m.theme.NoticeWarning
		case noticeError:
			color = m.theme.NoticeError
		}
		return lipgloss.NewStyle().Foreground(color).Render(" " + m.notice)
	}

	helpStyle := lipgloss.NewStyle().Foreground(m.theme.HelpText)
	var help string
	switch m.focus {
	case FocusAgents:
		help = "enter select · s start · x stop · r remove · i install · c configs · R/u/g refresh · tab pane · q quit"
	case FocusConfigList:
		help = "enter select · e edit · C-s save · a add · d delete · esc back · tab pane"
	case FocusConfigEdit:
		help = "C-s save · esc done editing"
	case FocusLog:
		help = "j/k scroll · g refresh · esc back · tab pane"
	default:
		help = "↑/↓ field · enter submit · esc back · tab pane"
	}
	return helpStyle.Render(" " + help)
}
