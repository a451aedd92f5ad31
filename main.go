// cvchat - A terminal client for the interactive AI-powered CV.
//
// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dogankeles/cvchat/internal/api"
	"github.com/dogankeles/cvchat/internal/cli"
	"github.com/dogankeles/cvchat/internal/config"
	"github.com/dogankeles/cvchat/internal/diag"
	"github.com/dogankeles/cvchat/internal/linkfmt"
	"github.com/dogankeles/cvchat/internal/locale"
	"github.com/dogankeles/cvchat/internal/logging"
	"github.com/dogankeles/cvchat/internal/ui/chat"
	"github.com/dogankeles/cvchat/internal/ui/download"
	"github.com/dogankeles/cvchat/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	cfgPath, cfg := loadConfig(args)
	strs := locale.ForTag(cfg.Locale)
	logger := logging.New(cfg.LogFile(), false)
	defer logger.Sync()

	switch cmd {
	case cli.CmdTUI:
		os.Exit(runTUI(cfgPath, cfg, strs, logger))
	case cli.CmdAsk:
		client := newClient(cfg, logger, nil)
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		os.Exit(cli.HandleAsk(ctx, client, strs, cfg.ProfileID, args))
	case cli.CmdDiag:
		os.Exit(cli.HandleDiag(cfg.DiagnosticsFile(), args))
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

// loadConfig loads the config file and applies CLI overrides.
func loadConfig(args cli.Args) (string, *config.Config) {
	path := args.Config
	if path == "" {
		path = config.Path()
	}
	cfg := config.Load(path)
	if args.Locale != "" {
		cfg.Locale = args.Locale
	}
	return path, cfg
}

// newClient builds the backend client with logging and the request journal.
func newClient(cfg *config.Config, logger *zap.Logger, journal *diag.Journal) *api.Client {
	return api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: cfg.APIBaseURL,
		Logger:  logger,
		Journal: journal,
	})
}

// runTUI starts the full-screen client.
func runTUI(cfgPath string, cfg *config.Config, strs locale.Strings, logger *zap.Logger) int {
	journal, err := diag.Open(cfg.DiagnosticsFile())
	if err != nil {
		logger.Warn("diagnostics journal unavailable", zap.Error(err))
		journal = nil
	} else {
		defer journal.Close()
	}

	client := newClient(cfg, logger, journal)
	app := newApp(cfgPath, cfg, strs, client, logger)

	program := tea.NewProgram(app, tea.WithAltScreen())

	// Follow external config edits while the TUI runs.
	watcher, err := config.NewWatcher(cfgPath, time.Second, func(next *config.Config) {
		program.Send(configReloadedMsg{cfg: next})
	})
	if err == nil {
		if err := watcher.Watch(); err != nil {
			logger.Warn("config watcher failed", zap.Error(err))
		}
		defer watcher.Close()
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// =============================================================================
// ROOT MODEL
// =============================================================================

// activeView selects which screen receives input.
type activeView int

const (
	viewChat activeView = iota
	viewDownload
)

// configReloadedMsg carries a config freshly re-read from disk.
type configReloadedMsg struct {
	cfg *config.Config
}

// App is the root model. It owns the theme and the view switch; client-side
// navigation between the chat and the download form happens here.
type App struct {
	cfg     *config.Config
	cfgPath string
	logger  *zap.Logger

	theme    *styles.Theme
	view     activeView
	chat     chat.Model
	download download.Model

	width  int
	height int
}

// newApp wires both views against one theme and one backend client.
func newApp(cfgPath string, cfg *config.Config, strs locale.Strings, client *api.Client, logger *zap.Logger) *App {
	theme := styles.NewTheme(cfg.DarkMode.Bool())
	formatter := linkfmt.New(cfg.SiteOrigin, strs.DownloadLinkLabel)

	chatModel := chat.New(chat.Options{
		Sender:    client,
		ProfileID: cfg.ProfileID,
		Theme:     theme,
		Strings:   strs,
		Formatter: formatter,
	})

	downloadModel := download.New(download.Options{
		Sender:    client,
		ProfileID: cfg.ProfileID,
		Logger:    logger,
		Theme:     theme,
		Strings:   strs,
	})

	return &App{
		cfg:      cfg,
		cfgPath:  cfgPath,
		logger:   logger,
		theme:    theme,
		chat:     chatModel,
		download: downloadModel,
	}
}

// Init starts both views.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.chat.Init(), a.download.Init())
}

// Update routes messages to the active view and handles global keys.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var chatCmd, dlCmd tea.Cmd
		a.chat, chatCmd = a.chat.Update(msg)
		a.download, dlCmd = a.download.Update(msg)
		return a, tea.Batch(chatCmd, dlCmd)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return a, tea.Quit
		case tea.KeyCtrlD:
			a.view = viewDownload
			return a, nil
		case tea.KeyCtrlT:
			a.toggleTheme()
			return a, nil
		}

	case chat.OpenDownloadMsg:
		a.view = viewDownload
		return a, nil

	case download.CloseMsg:
		a.view = viewChat
		return a, nil

	case configReloadedMsg:
		a.applyConfig(msg.cfg)
		return a, nil

	case chat.QueryResultMsg:
		var cmd tea.Cmd
		a.chat, cmd = a.chat.Update(msg)
		return a, cmd

	case download.SubmitResultMsg:
		var cmd tea.Cmd
		a.download, cmd = a.download.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.view {
	case viewDownload:
		a.download, cmd = a.download.Update(msg)
	default:
		a.chat, cmd = a.chat.Update(msg)
	}
	return a, cmd
}

// View renders the active screen.
func (a *App) View() string {
	if a.view == viewDownload {
		return a.download.View()
	}
	return a.chat.View()
}

// toggleTheme flips the preference, persists it, and restyles both views.
func (a *App) toggleTheme() {
	dark := a.cfg.ToggleDark()
	if err := a.cfg.Save(a.cfgPath); err != nil {
		a.logger.Warn("theme preference not persisted", zap.Error(err))
	}
	a.theme.SetDark(dark)
	a.chat.SetTheme(a.theme)
	a.download.SetTheme(a.theme)
}

// applyConfig picks up externally edited settings that can change live.
// Locale and backend address require a restart; the theme follows the file.
func (a *App) applyConfig(next *config.Config) {
	if next.DarkMode.Bool() != a.cfg.DarkMode.Bool() {
		a.cfg.DarkMode = next.DarkMode
		a.theme.SetDark(next.DarkMode.Bool())
		a.chat.SetTheme(a.theme)
		a.download.SetTheme(a.theme)
	}
}
