// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation and its
// messages.
package model

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/dogankeles/cvchat/internal/util"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleError     Role = "error"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	case RoleError:
		return "Error"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single entry in the conversation. Messages are immutable once
// created; display order is insertion order, never CreatedAt.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessage creates a new message with a generated ID.
func NewMessage(role Role, text string) *Message {
	return &Message{
		ID:        generateID(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// NewUserMessage creates a new user message.
func NewUserMessage(text string) *Message {
	return NewMessage(RoleUser, text)
}

// NewAssistantMessage creates a new assistant message.
func NewAssistantMessage(text string) *Message {
	return NewMessage(RoleAssistant, text)
}

// NewErrorMessage creates a new error-role message.
func NewErrorMessage(text string) *Message {
	return NewMessage(RoleError, text)
}

// Preview returns a truncated preview of the message text.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	return util.TruncateRunes(m.Text, maxLen)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// msgSeq is a process-wide counter folded into every generated ID.
// Wall-clock time alone can collide for two messages created in the same
// synchronous step; the sequence component keeps IDs unique regardless of
// timer resolution.
var msgSeq atomic.Uint64

// generateID creates a unique message ID from the creation time and a
// monotonically increasing sequence number.
func generateID() string {
	seq := msgSeq.Add(1)
	return "msg_" + strconv.FormatInt(time.Now().UnixNano(), 16) + "_" + strconv.FormatUint(seq, 10)
}
