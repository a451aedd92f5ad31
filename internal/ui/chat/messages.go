// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the Bubble Tea message types used by the chat interface.
package chat

import (
	"time"

	"github.com/dogankeles/cvchat/internal/api"
)

// =============================================================================
// QUERY MESSAGES
// =============================================================================

// QueryResultMsg delivers the outcome of a backend query. Exactly one of
// these arrives for every submitted query, success or failure, so the
// pending state always clears.
type QueryResultMsg struct {
	MessageID string
	Response  *api.ChatResponse
	Err       error
	Duration  time.Duration
}

// =============================================================================
// NAVIGATION MESSAGES
// =============================================================================

// OpenDownloadMsg asks the root model to switch to the download form.
// Emitted when the user activates a CV download destination or presses
// the download shortcut.
type OpenDownloadMsg struct{}
