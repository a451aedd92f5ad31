// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package download provides the CV download form view for the TUI.
package download

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dogankeles/cvchat/internal/api"
)

// =============================================================================
// MESSAGES
// =============================================================================

// SubmitResultMsg delivers the outcome of a download request. Exactly one
// arrives per submission, so the form cannot stay stuck in submitting.
type SubmitResultMsg struct {
	Response *api.DownloadResponse
	Err      error
}

// CloseMsg asks the root model to return to the chat view.
type CloseMsg struct{}

// =============================================================================
// COMMANDS
// =============================================================================

// DownloadSender is the backend dependency of the form. *api.Client
// satisfies it; tests substitute a fake.
type DownloadSender interface {
	RequestDownload(ctx context.Context, req api.DownloadRequest) (*api.DownloadResponse, error)
}

// SubmitCmd creates the command that posts one download request.
func SubmitCmd(sender DownloadSender, req api.DownloadRequest, timeout time.Duration) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = SubmitResultMsg{Err: fmt.Errorf("download request panicked: %v", r)}
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := sender.RequestDownload(ctx, req)
		return SubmitResultMsg{Response: resp, Err: err}
	}
}

// CloseCmd asks the root model to show the chat view again.
func CloseCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseMsg{}
	}
}
