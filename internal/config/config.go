// Package config manages deckforge user configuration.
// Config lives in a project-local .deckforge directory when present,
// falling back to ~/.deckforge.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// LoggingConfig controls the category file logger.
type LoggingConfig struct {
	DebugMode  bool            `json:"debug_mode"`
	Categories map[string]bool `json:"categories,omitempty"`
	Level      string          `json:"level,omitempty"`
}

// Config holds user preferences
type Config struct {
	APIKey          string        `json:"api_key"`
	Theme           string        `json:"theme"`            // "light" or "dark" terminal palette
	DeckTheme       string        `json:"deck_theme"`       // default theme tag for new presentations
	AutoplaySeconds int           `json:"autoplay_seconds"` // autoplay interval override, 0 = default
	DefaultSlides   int           `json:"default_slides"`   // slide count for generated decks, 0 = default
	Logging         LoggingConfig `json:"logging"`
}

// Defaults used when the config file is absent or fields are zero.
const (
	DefaultAutoplaySeconds = 5
	DefaultSlideCount      = 6
	DefaultDeckTheme       = "midnight"
)

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Theme:           "light",
		DeckTheme:       DefaultDeckTheme,
		AutoplaySeconds: DefaultAutoplaySeconds,
		DefaultSlides:   DefaultSlideCount,
	}
}

// ConfigDir returns the directory where config is stored
func ConfigDir() (string, error) {
	// Prefer project-local .deckforge directory if present or creatable
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".deckforge")
		if stat, err := os.Stat(localDir); (err == nil && stat.IsDir()) || os.IsNotExist(err) {
			return localDir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".deckforge"), nil
}

// ConfigFile returns the full path to the config file
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration from disk
func Load() (Config, error) {
	path, err := ConfigFile()
	if err != nil {
		return DefaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to disk
func Save(cfg Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigFile()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// applyDefaults backfills zero-valued fields so callers never see them.
func (c *Config) applyDefaults() {
	if c.AutoplaySeconds <= 0 {
		c.AutoplaySeconds = DefaultAutoplaySeconds
	}
	if c.DefaultSlides <= 0 {
		c.DefaultSlides = DefaultSlideCount
	}
	if c.DeckTheme == "" {
		c.DeckTheme = DefaultDeckTheme
	}
}
