// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal capability detection for CLI output.
package cli

import (
	"os"

	"golang.org/x/term"
)

// IsStdoutTTY returns true if stdout is a terminal. Markdown rendering is
// only applied to TTY output so piped output stays clean.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the stdout width, or fallback when unavailable.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
