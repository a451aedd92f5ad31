// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single query command handler for the cvchat CLI.
//
// Handles "cvchat ask", which sends one question to the backend and
// prints the answer to stdout.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"

	"github.com/dogankeles/cvchat/internal/api"
	"github.com/dogankeles/cvchat/internal/locale"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// newMarkdownRenderer builds the glamour renderer for TTY output.
func newMarkdownRenderer() *glamour.TermRenderer {
	width := TerminalWidth(80)
	if width > 100 {
		width = 100
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return renderer
}

// displayAnswer prints an answer, rendering markdown when stdout is a TTY
// and plain mode is off.
func displayAnswer(answer string, plain bool) {
	if plain || !IsStdoutTTY() {
		fmt.Println(answer)
		return
	}

	renderer := newMarkdownRenderer()
	if renderer == nil {
		fmt.Println(answer)
		return
	}

	rendered, err := renderer.Render(answer)
	if err != nil {
		fmt.Println(answer)
		return
	}
	fmt.Print(rendered)
}

// =============================================================================
// ASK HANDLER
// =============================================================================

// HandleAsk runs one query against the backend and prints the result.
func HandleAsk(ctx context.Context, client *api.Client, strs locale.Strings, profileID int, args Args) int {
	if args.Query == "" {
		fmt.Fprintln(os.Stderr, "usage: cvchat ask \"question\"")
		return 2
	}

	resp, err := client.SendQuery(ctx, args.Query, profileID)
	if err != nil {
		fmt.Fprintln(os.Stderr, strs.ChatError)
		return 1
	}

	displayAnswer(resp.Response, args.Plain)
	return 0
}
