// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the cvchat TUI.
package components

import (
	"github.com/dogankeles/cvchat/internal/ui/styles"
)

// =============================================================================
// ERROR BANNER
// =============================================================================

// ErrorBanner shows the last failure above the input area. It stays up
// until the next submission clears it.
type ErrorBanner struct {
	message string
}

// NewErrorBanner creates an empty, hidden banner.
func NewErrorBanner() ErrorBanner {
	return ErrorBanner{}
}

// Show sets the banner message.
func (b *ErrorBanner) Show(message string) {
	b.message = message
}

// Clear hides the banner.
func (b *ErrorBanner) Clear() {
	b.message = ""
}

// Visible reports whether the banner has something to show.
func (b *ErrorBanner) Visible() bool {
	return b.message != ""
}

// View renders the banner, or an empty string when hidden.
func (b ErrorBanner) View(theme *styles.Theme) string {
	if b.message == "" {
		return ""
	}
	return theme.ErrorBanner.Render("! " + b.message)
}
