// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package download provides the CV download form view for the TUI.
package download

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dogankeles/cvchat/internal/api"
	"github.com/dogankeles/cvchat/internal/locale"
	"github.com/dogankeles/cvchat/internal/ui/styles"
)

// =============================================================================
// PHASE
// =============================================================================

// Phase is the lifecycle of one form submission.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

// String returns a label for logs and tests.
func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Field indices into the inputs slice.
const (
	fieldName = iota
	fieldEmail
	fieldCompany
	fieldCount
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the download form: three inputs, a submit action, and the
// submission phase machine.
type Model struct {
	sender    DownloadSender
	navigator Navigator
	profileID int
	timeout   time.Duration
	logger    *zap.Logger

	theme   *styles.Theme
	strings locale.Strings

	inputs  []textinput.Model
	focused int
	phase   Phase
	errMsg  string

	width  int
	height int
}

// Options configures a download form Model.
type Options struct {
	Sender    DownloadSender
	Navigator Navigator
	ProfileID int
	Timeout   time.Duration
	Logger    *zap.Logger
	Theme     *styles.Theme
	Strings   locale.Strings
}

// New creates the download form in the editing phase.
func New(opts Options) Model {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Navigator == nil {
		opts.Navigator = BrowserNavigator{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	inputs := make([]textinput.Model, fieldCount)
	labels := []string{opts.Strings.NameLabel, opts.Strings.EmailLabel, opts.Strings.CompanyLabel}
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 200
		inputs[i] = ti
	}
	inputs[fieldName].Focus()

	return Model{
		sender:    opts.Sender,
		navigator: opts.Navigator,
		profileID: opts.ProfileID,
		timeout:   opts.Timeout,
		logger:    opts.Logger,
		theme:     opts.Theme,
		strings:   opts.Strings,
		inputs:    inputs,
	}
}

// Phase exposes the submission phase for the root model and tests.
func (m *Model) Phase() Phase {
	return m.phase
}

// Init returns the initial command for the form.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the download form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SubmitResultMsg:
		return m.resolve(msg)
	}

	return m.updateFocused(msg)
}

// handleKey routes keystrokes by phase.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, CloseCmd()

	case tea.KeyTab, tea.KeyDown:
		if m.phase != PhaseSubmitting {
			m.focus((m.focused + 1) % fieldCount)
		}
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		if m.phase != PhaseSubmitting {
			m.focus((m.focused + fieldCount - 1) % fieldCount)
		}
		return m, nil

	case tea.KeyEnter:
		// Submit only arms from editing. A finished form stays finished,
		// and a failed one has to be edited before it can go again.
		if m.phase == PhaseEditing {
			return m.submit()
		}
		return m, nil
	}

	// After a success the form is done; after a failure any edit returns
	// to editing so the user can fix and retry.
	if m.phase == PhaseSubmitting || m.phase == PhaseSucceeded {
		return m, nil
	}
	if m.phase == PhaseFailed {
		m.phase = PhaseEditing
		m.errMsg = ""
	}
	return m.updateFocused(msg)
}

// focus moves input focus to index i.
func (m *Model) focus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[i].Focus()
}

// submit validates the form and starts the request.
func (m Model) submit() (Model, tea.Cmd) {
	if m.phase != PhaseEditing {
		return m, nil
	}

	name := strings.TrimSpace(m.inputs[fieldName].Value())
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	if name == "" || email == "" {
		m.phase = PhaseEditing
		return m, nil
	}

	req := api.DownloadRequest{
		Name:      name,
		Email:     email,
		Company:   strings.TrimSpace(m.inputs[fieldCompany].Value()),
		ProfileID: m.profileID,
	}

	m.phase = PhaseSubmitting
	m.errMsg = ""
	return m, SubmitCmd(m.sender, req, m.timeout)
}

// resolve applies the submission outcome.
func (m Model) resolve(msg SubmitResultMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.phase = PhaseFailed
		m.errMsg = m.strings.DownloadError
		return m, nil
	}
	if !msg.Response.Success {
		m.phase = PhaseFailed
		m.errMsg = m.strings.DownloadRefused
		return m, nil
	}

	m.phase = PhaseSucceeded
	m.errMsg = ""
	if msg.Response.DownloadURL != "" {
		// Best effort; the success state stands either way.
		if err := m.navigator.OpenURL(msg.Response.DownloadURL); err != nil {
			m.logger.Warn("download redirect failed",
				zap.String("url", msg.Response.DownloadURL),
				zap.Error(err))
		}
	}
	return m, nil
}

// updateFocused forwards a message to the focused input.
func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// SetTheme swaps the active theme, for the dark/light toggle.
func (m *Model) SetTheme(theme *styles.Theme) {
	m.theme = theme
}
