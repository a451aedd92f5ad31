// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for cvchat.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdDiag
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Plain   bool   // Disable markdown rendering in ask output
	Config  string // Alternate config file path
	Locale  string // Override the configured locale

	// Command-specific
	Query string
	Limit int

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `cvchat - terminal client for the interactive CV assistant

Chat with an AI assistant about Doğan Keleş's experience, skills, and
projects, or request a CV download, without leaving the terminal.

Usage:
  cvchat                     Start the TUI (default)
  cvchat ask "question"      Ask a single question and print the answer
  cvchat diag                Show recent request diagnostics
  cvchat version             Show version information
  cvchat help                Show this help

Flags:
  --config PATH   Use an alternate config file
  --locale TAG    Override the configured locale (en, tr)
  --plain         Print ask answers without markdown rendering
  -q, --quiet     Minimal output

Examples:
  cvchat
  cvchat ask "What backend frameworks have you used?"
  cvchat --locale tr ask "Hangi projelerde çalıştın?"
`

// Parse reads os.Args and returns the command with its arguments.
func Parse() (Command, Args) {
	return parse(os.Args[1:])
}

// parse is the testable core of Parse.
func parse(raw []string) (Command, Args) {
	args := Args{Limit: 20}

	var positional []string
	for i := 0; i < len(raw); i++ {
		arg := raw[i]
		switch {
		case arg == "-q" || arg == "--quiet":
			args.Quiet = true
		case arg == "--plain":
			args.Plain = true
		case arg == "--config":
			if i+1 < len(raw) {
				i++
				args.Config = raw[i]
			}
		case strings.HasPrefix(arg, "--config="):
			args.Config = strings.TrimPrefix(arg, "--config=")
		case arg == "--locale":
			if i+1 < len(raw) {
				i++
				args.Locale = raw[i]
			}
		case strings.HasPrefix(arg, "--locale="):
			args.Locale = strings.TrimPrefix(arg, "--locale=")
		case arg == "-h" || arg == "--help":
			return CmdHelp, args
		default:
			positional = append(positional, arg)
		}
	}

	if len(positional) == 0 {
		return CmdTUI, args
	}

	cmd := positional[0]
	args.Raw = positional[1:]

	switch cmd {
	case "ask":
		args.Query = strings.Join(args.Raw, " ")
		return CmdAsk, args
	case "diag", "diagnostics":
		return CmdDiag, args
	case "version", "-v", "--version":
		return CmdVersion, args
	case "help":
		return CmdHelp, args
	default:
		// Treat unknown positional input as an ask query.
		args.Query = strings.Join(positional, " ")
		return CmdAsk, args
	}
}

// HandleHelp prints the usage text.
func HandleHelp() {
	fmt.Print(usageText)
}

// HandleVersion prints version information.
func HandleVersion() {
	fmt.Printf("cvchat %s\n", Version)
	fmt.Printf("  commit: %s\n", GitCommit)
	fmt.Printf("  built:  %s\n", BuildDate)
}
