// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation owns the message history and the presentation state derived
// from it. The list is append-only for the lifetime of the program; messages
// are never mutated after insertion.
//
// Pending is true exactly while a gateway call is outstanding: it is raised
// by BeginQuery and dropped by ResolveResponse/ResolveFailure, never anywhere
// else. At most one call is in flight at a time, enforced by the flag (not a
// lock); BeginQuery refuses re-entry while Pending is set.
type Conversation struct {
	Messages  []*Message
	Pending   bool
	LastError string // empty when no error is shown
}

// NewConversation creates a conversation seeded with the fixed welcome
// message. The seed is a regular assistant message in every way except being
// first; it is never sent to the backend.
func NewConversation(welcome string) *Conversation {
	return &Conversation{
		Messages: []*Message{NewAssistantMessage(welcome)},
	}
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// BeginQuery starts a new submission. It returns the appended user message,
// or nil when the submission is refused: a query that is empty after
// trimming, or a call arriving while another request is still pending, is a
// silent no-op with no state change at all.
//
// On acceptance the previous error is cleared, the user message is appended
// with the original (untrimmed) text, and Pending is raised. The caller is
// responsible for issuing the gateway call and eventually invoking exactly
// one of ResolveResponse or ResolveFailure.
func (c *Conversation) BeginQuery(query string) *Message {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if c.Pending {
		return nil
	}

	c.LastError = ""
	msg := NewUserMessage(query)
	c.Messages = append(c.Messages, msg)
	c.Pending = true
	return msg
}

// ResolveResponse folds a successful gateway outcome into the conversation:
// the assistant message is appended and Pending drops.
func (c *Conversation) ResolveResponse(text string) *Message {
	msg := NewAssistantMessage(text)
	c.Messages = append(c.Messages, msg)
	c.Pending = false
	return msg
}

// ResolveFailure folds a failed gateway outcome into the conversation. All
// failure causes get the same treatment here: the fixed apology bubble is
// appended, LastError is set to the fixed banner text, and Pending drops.
// Distinguishing causes is the gateway's concern, for diagnostics only.
func (c *Conversation) ResolveFailure(bubbleText, bannerText string) *Message {
	msg := NewErrorMessage(bubbleText)
	c.Messages = append(c.Messages, msg)
	c.LastError = bannerText
	c.Pending = false
	return msg
}

// =============================================================================
// ACCESSORS
// =============================================================================

// MessageCount returns the number of messages, including the welcome seed.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// LastMessage returns the most recent message, or nil if empty.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// History returns the messages in display order.
func (c *Conversation) History() []*Message {
	return c.Messages
}

// HasError reports whether an error banner should be shown.
func (c *Conversation) HasError() bool {
	return c.LastError != ""
}
