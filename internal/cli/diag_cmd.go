// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// diag_cmd.go - Request diagnostics command handler for the cvchat CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/dogankeles/cvchat/internal/diag"
	"github.com/dogankeles/cvchat/internal/util"
)

// HandleDiag prints the most recent journal entries, newest first.
func HandleDiag(journalPath string, args Args) int {
	journal, err := diag.Open(journalPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open diagnostics journal: %v\n", err)
		return 1
	}
	defer journal.Close()

	entries, err := journal.Recent(args.Limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read diagnostics journal: %v\n", err)
		return 1
	}
	if len(entries) == 0 {
		fmt.Println("no recorded requests")
		return 0
	}

	fmt.Printf("%s %s %s %s %s\n",
		util.PadRight("TIME", 20),
		util.PadRight("FLOW", 9),
		util.PadRight("OUTCOME", 8),
		util.PadRight("CAUSE", 10),
		"DURATION")
	for _, e := range entries {
		cause := e.Cause
		if cause == "" {
			cause = "-"
		}
		fmt.Printf("%s %s %s %s %s\n",
			util.PadRight(e.CreatedAt.Format("2006-01-02 15:04:05"), 20),
			util.PadRight(e.Flow, 9),
			util.PadRight(e.Outcome, 8),
			util.PadRight(cause, 10),
			e.Duration)
	}
	return 0
}
