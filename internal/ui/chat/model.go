// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dogankeles/cvchat/internal/linkfmt"
	"github.com/dogankeles/cvchat/internal/locale"
	"github.com/dogankeles/cvchat/internal/model"
	"github.com/dogankeles/cvchat/internal/ui/components"
	"github.com/dogankeles/cvchat/internal/ui/styles"
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the chat view: conversation transcript, input line, and the
// pending indicator.
type Model struct {
	conversation *model.Conversation
	sender       QuerySender
	profileID    int
	timeout      time.Duration

	theme     *styles.Theme
	strings   locale.Strings
	formatter *linkfmt.Formatter

	viewport viewport.Model
	input    textinput.Model
	spinner  components.Spinner
	banner   components.ErrorBanner

	width  int
	height int
	ready  bool
}

// Options configures a chat Model.
type Options struct {
	Sender    QuerySender
	ProfileID int
	Timeout   time.Duration
	Theme     *styles.Theme
	Strings   locale.Strings
	Formatter *linkfmt.Formatter
}

// New creates the chat view with the welcome message seeded.
func New(opts Options) Model {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	input := textinput.New()
	input.Placeholder = opts.Strings.InputPlaceholder
	input.CharLimit = 2000
	input.Focus()

	return Model{
		conversation: model.NewConversation(opts.Strings.Welcome),
		sender:       opts.Sender,
		profileID:    opts.ProfileID,
		timeout:      opts.Timeout,
		theme:        opts.Theme,
		strings:      opts.Strings,
		formatter:    opts.Formatter,
		input:        input,
		spinner:      components.NewThinkingSpinner(opts.Strings.Thinking),
		banner:       components.NewErrorBanner(),
	}
}

// Conversation exposes the transcript for the root model and tests.
func (m *Model) Conversation() *model.Conversation {
	return m.conversation
}

// Init returns the initial command for the chat view.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the chat view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return m.submit()
		}

	case QueryResultMsg:
		return m.resolve(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the begin-query transition for the current input line.
//
// The guard lives in the conversation: blank input and an in-flight query
// are both rejected there, and a rejection leaves everything untouched.
func (m Model) submit() (Model, tea.Cmd) {
	userMsg := m.conversation.BeginQuery(m.input.Value())
	if userMsg == nil {
		return m, nil
	}

	m.input.Reset()
	m.banner.Clear()
	m.refreshViewport()

	return m, tea.Batch(
		m.spinner.Start(),
		SendQueryCmd(m.sender, userMsg.ID, userMsg.Text, m.profileID, m.timeout),
	)
}

// resolve applies a query outcome to the conversation.
func (m Model) resolve(msg QueryResultMsg) (Model, tea.Cmd) {
	m.spinner.Stop()

	if msg.Err != nil {
		m.conversation.ResolveFailure(m.strings.ErrorBubble, m.strings.ChatError)
		m.banner.Show(m.strings.ChatError)
	} else {
		m.conversation.ResolveResponse(msg.Response.Response)
	}

	m.refreshViewport()
	return m, nil
}

// handleResize recomputes the viewport dimensions.
func (m *Model) handleResize(width, height int) {
	m.width = width
	m.height = height

	// header + banner/spinner row + input + status bar
	viewportHeight := height - 6
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(width, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = viewportHeight
	}
	m.input.Width = width - 4
	m.refreshViewport()
}

// refreshViewport re-renders the transcript and pins it to the bottom.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

// SetTheme swaps the active theme, for the dark/light toggle.
func (m *Model) SetTheme(theme *styles.Theme) {
	m.theme = theme
	m.refreshViewport()
}
