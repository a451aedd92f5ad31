// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dogankeles/cvchat/internal/api"
)

// =============================================================================
// QUERY COMMANDS
// =============================================================================

// QuerySender is the backend dependency of the chat view. *api.Client
// satisfies it; tests substitute a fake.
type QuerySender interface {
	SendQuery(ctx context.Context, query string, profileID int) (*api.ChatResponse, error)
}

// SendQueryCmd creates the command that runs one backend query.
//
// The command always delivers a QueryResultMsg, even if the sender panics.
// The conversation's pending flag is only cleared by that message, so
// losing it would wedge the input forever.
func SendQueryCmd(sender QuerySender, messageID, query string, profileID int, timeout time.Duration) tea.Cmd {
	return func() (msg tea.Msg) {
		start := time.Now()

		defer func() {
			if r := recover(); r != nil {
				msg = QueryResultMsg{
					MessageID: messageID,
					Err:       fmt.Errorf("query panicked: %v", r),
					Duration:  time.Since(start),
				}
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := sender.SendQuery(ctx, query, profileID)
		return QueryResultMsg{
			MessageID: messageID,
			Response:  resp,
			Err:       err,
			Duration:  time.Since(start),
		}
	}
}

// OpenDownloadCmd asks the root model to show the download form.
func OpenDownloadCmd() tea.Cmd {
	return func() tea.Msg {
		return OpenDownloadMsg{}
	}
}
