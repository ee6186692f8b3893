// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for agentdeck.
//
// Configuration sources, in order of precedence:
//   - Environment variables (AGENTDECK_SERVER_URL, AGENTDECK_MODE, AGENTDECK_DROPS_DIR)
//   - ~/.agentdeck/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/agentdeck/internal/protocol"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete agentdeck configuration.
type Config struct {
	// ServerURL is the WebSocket endpoint of the agent backend.
	ServerURL string `toml:"server_url"`

	// DefaultMode is the mode the session starts in: "agent" or "chat".
	DefaultMode string `toml:"default_mode"`

	// DropsDir is the directory watched for image attachments.
	DropsDir string `toml:"drops_dir"`

	// UI holds presentation options.
	UI UIConfig `toml:"ui"`
}

// UIConfig contains presentation options.
type UIConfig struct {
	// WrapWidth is the maximum content width for rendered markdown.
	WrapWidth int `toml:"wrap_width"`

	// ShowPreviews toggles content previews on file read/write blocks.
	ShowPreviews bool `toml:"show_previews"`
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   "ws://localhost:8000/ws",
		DefaultMode: string(protocol.ModeAgent),
		DropsDir:    filepath.Join(configDir(), "drops"),
		UI: UIConfig{
			WrapWidth:    100,
			ShowPreviews: true,
		},
	}
}

// configDir returns ~/.agentdeck, falling back to a relative directory
// when the home directory cannot be determined.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".agentdeck"
	}
	return filepath.Join(home, ".agentdeck")
}

// ConfigPath returns the path of the TOML config file.
func ConfigPath() string {
	return filepath.Join(configDir(), "config.toml")
}

// LogPath returns the path of the client log file. Bubble Tea owns stdout,
// so all logging goes here.
func LogPath() string {
	return filepath.Join(configDir(), "agentdeck.log")
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config file if present, applies environment overrides,
// and validates the result. A missing file is not an error; defaults are
// used.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path := ConfigPath()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// applyEnvOverrides overlays environment variables onto cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AGENTDECK_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("AGENTDECK_MODE"); v != "" {
		cfg.DefaultMode = v
	}
	if v := os.Getenv("AGENTDECK_DROPS_DIR"); v != "" {
		cfg.DropsDir = v
	}
}

// Validate checks field values and normalizes what it can.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("invalid server_url %q: %w", c.ServerURL, err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("server_url must use ws:// or wss://, got %q", c.ServerURL)
	}
	if u.Host == "" {
		return fmt.Errorf("server_url %q has no host", c.ServerURL)
	}

	if !protocol.Mode(c.DefaultMode).Valid() {
		return fmt.Errorf("default_mode must be %q or %q, got %q",
			protocol.ModeAgent, protocol.ModeChat, c.DefaultMode)
	}

	if c.UI.WrapWidth < 40 {
		c.UI.WrapWidth = 40
	}
	return nil
}

// Mode returns the configured default mode as a protocol value.
func (c *Config) Mode() protocol.Mode {
	return protocol.Mode(c.DefaultMode)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance, loading it on first
// access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets global config state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
