// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package download provides the CV download form view for the TUI.
package download

import (
	"os/exec"
	"runtime"
)

// =============================================================================
// NAVIGATION
// =============================================================================

// Navigator performs the redirect to the generated file. The form only
// ever calls it after the backend reported success with a URL.
type Navigator interface {
	OpenURL(url string) error
}

// BrowserNavigator opens URLs with the platform's default handler.
type BrowserNavigator struct{}

// OpenURL launches the system opener for url.
func (BrowserNavigator) OpenURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
