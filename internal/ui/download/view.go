// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package download provides the CV download form view for the TUI.
package download

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the download form.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.FormTitle.Render(m.strings.DownloadTitle))
	b.WriteString("\n")
	b.WriteString(m.theme.FormHint.Render(m.strings.DownloadSubtitle))
	b.WriteString("\n\n")

	labels := []string{m.strings.NameLabel, m.strings.EmailLabel, m.strings.CompanyLabel}
	for i, input := range m.inputs {
		b.WriteString(m.theme.FormLabel.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderAction())
	b.WriteString("\n\n")
	b.WriteString(m.theme.ShortcutKey.Render("esc"))
	b.WriteString(m.theme.ShortcutDesc.Render(" " + m.strings.BackToChat))

	box := m.theme.FormBox.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// renderAction renders the submit row for the current phase.
func (m Model) renderAction() string {
	switch m.phase {
	case PhaseSubmitting:
		return m.theme.SubmitDisabled.Render(m.strings.SubmitLabel + "...")
	case PhaseSucceeded:
		return m.theme.FormSuccess.Render(m.strings.DownloadSucceeded)
	case PhaseFailed:
		return m.theme.FormError.Render(m.errMsg) + "\n" +
			m.theme.SubmitButton.Render(m.strings.SubmitLabel)
	default:
		return m.theme.SubmitButton.Render(m.strings.SubmitLabel)
	}
}
