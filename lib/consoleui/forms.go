// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form is a titled group of labelled single-line text inputs with one
// focused field at a time. Enter on any field submits the whole form;
// the owning model decides what submission means.
type Form struct {
	Title  string
	labels []string
	inputs []textinput.Model
	focus  int
}

// NewForm creates a form with one input per label/placeholder pair.
func NewForm(title string, fields ...[2]string) *Form {
	form := &Form{Title: title}
	for _, field := range fields {
		input := textinput.New()
		input.Placeholder = field[1]
		input.Prompt = ""
		input.CharLimit = 0
		form.labels = append(form.labels, field[0])
		form.inputs = append(form.inputs, input)
	}
	return form
}

// Focus gives keyboard focus to the form's current field.
func (form *Form) Focus() tea.Cmd {
	if len(form.inputs) == 0 {
		return nil
	}
	return form.inputs[form.focus].Focus()
}

// Blur removes focus from all fields.
func (form *Form) Blur() {
	for index := range form.inputs {
		form.inputs[index].Blur()
	}
}

// FocusNext moves focus to the next field, wrapping.
func (form *Form) FocusNext() tea.Cmd {
	form.inputs[form.focus].Blur()
	form.focus = (form.focus + 1) % len(form.inputs)
	return form.inputs[form.focus].Focus()
}

// FocusPrev moves focus to the previous field, wrapping.
func (form *Form) FocusPrev() tea.Cmd {
	form.inputs[form.focus].Blur()
	form.focus--
	if form.focus < 0 {
		form.focus = len(form.inputs) - 1
	}
	return form.inputs[form.focus].Focus()
}

// Update routes a message to the focused field.
func (form *Form) Update(message tea.Msg) tea.Cmd {
	var command tea.Cmd
	form.inputs[form.focus], command = form.inputs[form.focus].Update(message)
	return command
}

// Values returns the trimmed value of every field in declaration order.
func (form *Form) Values() []string {
	values := make([]string, len(form.inputs))
	for index := range form.inputs {
		values[index] = strings.TrimSpace(form.inputs[index].Value())
	}
	return values
}

// Reset clears every field and returns focus to the first one.
func (form *Form) Reset() {
	for index := range form.inputs {
		form.inputs[index].SetValue("")
		form.inputs[index].Blur()
	}
	form.focus = 0
}

// View renders the form: title, then one "label: input" row per field.
func (form *Form) View(theme Theme, focused bool) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	var builder strings.Builder
	builder.WriteString(titleStyle.Render(form.Title))
	builder.WriteString("\n")
	for index := range form.inputs {
		label := form.labels[index]
		marker := "  "
		if focused && index == form.focus {
			marker = "> "
		}
		builder.WriteString(marker)
		builder.WriteString(labelStyle.Render(label + ": "))
		builder.WriteString(form.inputs[index].View())
		builder.WriteString("\n")
	}
	return builder.String()
}
