// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file contains the rendering logic: header, transcript bubbles,
// inline link styling, input area, and the status bar.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dogankeles/cvchat/internal/linkfmt"
	"github.com/dogankeles/cvchat/internal/model"
	"github.com/dogankeles/cvchat/internal/util"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the complete chat view.
// Layout: header + transcript viewport + pending/banner row + input + status.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFeedbackRow())
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// renderHeader renders the title line, trimmed to the terminal width.
func (m Model) renderHeader() string {
	title := m.strings.HeaderTitle
	subtitle := util.TruncateWidth(m.strings.HeaderSubtitle, m.width-runewidth.StringWidth(title)-6)
	return m.theme.Header.Width(m.width).Render(
		m.theme.HeaderTitle.Render(title) + "  " + m.theme.HeaderSubtitle.Render(subtitle))
}

// renderFeedbackRow renders the spinner while pending, or the error banner
// after a failure. Both occupy the same single line.
func (m Model) renderFeedbackRow() string {
	if m.spinner.IsActive() {
		return m.spinner.View(m.theme)
	}
	if m.banner.Visible() {
		return m.banner.View(m.theme)
	}
	return ""
}

// renderInput renders the input line with its prompt.
func (m Model) renderInput() string {
	prompt := m.theme.InputPrompt.Render("> ")
	return m.theme.InputContainer.Width(m.width).Render(prompt + m.input.View())
}

// renderStatusBar renders shortcuts and the footer tagline.
func (m Model) renderStatusBar() string {
	shortcuts := strings.Join([]string{
		m.theme.ShortcutKey.Render("enter") + m.theme.ShortcutDesc.Render(" send"),
		m.theme.ShortcutKey.Render("ctrl+d") + m.theme.ShortcutDesc.Render(" download cv"),
		m.theme.ShortcutKey.Render("ctrl+t") + m.theme.ShortcutDesc.Render(" theme"),
		m.theme.ShortcutKey.Render("ctrl+c") + m.theme.ShortcutDesc.Render(" quit"),
	}, "  ")
	footer := m.theme.ShortcutDesc.Render(m.strings.Footer)
	return m.theme.StatusBar.Width(m.width).Render(shortcuts + "  " + footer)
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// renderMessages renders the whole transcript, oldest first.
func (m Model) renderMessages() string {
	var parts []string
	for _, msg := range m.conversation.History() {
		parts = append(parts, m.renderMessage(msg))
	}
	return strings.Join(parts, "\n")
}

// renderMessage renders one bubble, aligned by role.
func (m Model) renderMessage(msg *model.Message) string {
	maxWidth := m.width * 3 / 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	switch msg.Role {
	case model.RoleUser:
		bubble := m.theme.UserBubble.MaxWidth(maxWidth).Render(msg.Text)
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bubble)
	case model.RoleError:
		return m.theme.ErrorBubble.MaxWidth(maxWidth).Render(msg.Text)
	default:
		return m.theme.AssistantBubble.MaxWidth(maxWidth).Render(m.renderAssistantText(msg.Text))
	}
}

// renderAssistantText styles the URL spans inside an assistant answer.
// Everything outside a span passes through untouched.
func (m Model) renderAssistantText(text string) string {
	var b strings.Builder
	for _, span := range m.formatter.Format(text) {
		switch span.Kind {
		case linkfmt.SpanLink:
			b.WriteString(m.theme.LinkStyle.Render(span.Display))
		case linkfmt.SpanRoute:
			// No mouse here; the route span carries its activation key.
			b.WriteString(m.theme.RouteStyle.Render("[" + span.Display + " ctrl+d]"))
		default:
			b.WriteString(span.Text)
		}
	}
	return b.String()
}
