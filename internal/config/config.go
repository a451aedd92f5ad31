// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and persistence for cvchat.
//
// Configuration lives in a single TOML file (~/.cvchat/config.toml) with
// sensible defaults and environment variable overrides. The file also holds
// the one piece of state that survives restarts: the theme preference.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/dogankeles/cvchat/internal/util"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config is the complete cvchat configuration.
type Config struct {
	// APIBaseURL is the base URL of the CV question-answering backend.
	APIBaseURL string `toml:"api_base_url"`

	// SiteOrigin is the public origin of the CV site. Links on this origin
	// pointing at the download page are rerouted as client-side navigation.
	SiteOrigin string `toml:"site_origin"`

	// ProfileID selects which candidate profile the backend answers about.
	ProfileID int `toml:"profile_id"`

	// Locale selects the copy table ("en" or "tr").
	Locale string `toml:"locale"`

	// DarkMode is the persisted theme preference. Defaults to dark; a
	// missing or mangled value silently falls back rather than erroring.
	DarkMode FlexBool `toml:"dark_mode"`

	// LogPath overrides the diagnostic log location (empty = default).
	LogPath string `toml:"log_path"`

	// DiagnosticsDB overrides the request journal location (empty = default).
	DiagnosticsDB string `toml:"diagnostics_db"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL: "https://lengthy-sarina-cypralex-fb6a4e7e.koyeb.app",
		SiteOrigin: "https://dogankeles.dev",
		ProfileID:  1,
		Locale:     "en",
		DarkMode:   FlexBool(true),
	}
}

// =============================================================================
// FLEXIBLE BOOLEAN
// =============================================================================

// FlexBool is a boolean that tolerates historical string-typed values in the
// config file ("true", "1", ...). Unparseable values fall back to true
// (dark) instead of failing the whole decode; the theme preference must
// never prevent startup.
type FlexBool bool

// UnmarshalTOML implements toml.Unmarshaler.
func (b *FlexBool) UnmarshalTOML(v interface{}) error {
	switch val := v.(type) {
	case bool:
		*b = FlexBool(val)
	case string:
		parsed, err := strconv.ParseBool(val)
		if err != nil {
			*b = true
			return nil
		}
		*b = FlexBool(parsed)
	default:
		*b = true
	}
	return nil
}

// Bool returns the plain boolean value.
func (b FlexBool) Bool() bool {
	return bool(b)
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the cvchat configuration directory (~/.cvchat).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cvchat"
	}
	return filepath.Join(home, ".cvchat")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// LogFile returns the effective log file path.
func (c *Config) LogFile() string {
	if c.LogPath != "" {
		return c.LogPath
	}
	return filepath.Join(Dir(), "cvchat.log")
}

// DiagnosticsFile returns the effective request journal path.
func (c *Config) DiagnosticsFile() string {
	if c.DiagnosticsDB != "" {
		return c.DiagnosticsDB
	}
	return filepath.Join(Dir(), "diagnostics.db")
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config file at path, merging it over the defaults. A
// missing or unreadable file is not an error: the defaults apply, and in
// particular the theme preference comes back as its default (dark) rather
// than raising. Environment variables override file values last.
func Load(path string) *Config {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err == nil {
		// Decode over the defaults; a corrupt file leaves them intact.
		if _, err := toml.Decode(string(data), cfg); err != nil {
			cfg = DefaultConfig()
		}
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg
}

// applyEnv applies CVCHAT_* environment overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv("CVCHAT_API_BASE_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("CVCHAT_SITE_ORIGIN"); v != "" {
		c.SiteOrigin = v
	}
	if v := os.Getenv("CVCHAT_PROFILE_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			c.ProfileID = id
		}
	}
	if v := os.Getenv("CVCHAT_LOCALE"); v != "" {
		c.Locale = v
	}
}

// normalize fills in zero values left by a partial file.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.APIBaseURL == "" {
		c.APIBaseURL = def.APIBaseURL
	}
	if c.SiteOrigin == "" {
		c.SiteOrigin = def.SiteOrigin
	}
	if c.ProfileID <= 0 {
		c.ProfileID = def.ProfileID
	}
	if c.Locale == "" {
		c.Locale = def.Locale
	}
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the config atomically. Used as the write-through for the theme
// toggle, so a crash mid-write can never corrupt the stored preference.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return err
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0o644)
}

// ToggleDark flips the theme preference in memory and returns the new value.
// The caller persists via Save.
func (c *Config) ToggleDark() bool {
	c.DarkMode = !c.DarkMode
	return c.DarkMode.Bool()
}
