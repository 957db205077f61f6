package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.AutoplaySeconds != DefaultAutoplaySeconds {
		t.Errorf("Expected autoplay %d, got %d", DefaultAutoplaySeconds, cfg.AutoplaySeconds)
	}
	if cfg.DefaultSlides != DefaultSlideCount {
		t.Errorf("Expected %d slides, got %d", DefaultSlideCount, cfg.DefaultSlides)
	}
	if cfg.DeckTheme != DefaultDeckTheme {
		t.Errorf("Expected deck theme %q, got %q", DefaultDeckTheme, cfg.DeckTheme)
	}
	if cfg.Logging.DebugMode {
		t.Error("Debug logging must be off by default")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DeckTheme != DefaultDeckTheme {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := DefaultConfig()
	cfg.APIKey = "key-abc"
	cfg.Theme = "dark"
	cfg.DeckTheme = "ember"
	cfg.AutoplaySeconds = 8
	cfg.Logging.DebugMode = true

	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("Round trip mismatch:\n saved %+v\n loaded %+v", cfg, got)
	}
}

func TestLoadBackfillsZeroFields(t *testing.T) {
	t.Chdir(t.TempDir())

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir failed: %v", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	// A sparse file written by hand: only the api key.
	raw := `{"api_key": "key-xyz"}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(raw), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIKey != "key-xyz" {
		t.Errorf("Expected api key preserved, got %q", cfg.APIKey)
	}
	if cfg.AutoplaySeconds != DefaultAutoplaySeconds || cfg.DefaultSlides != DefaultSlideCount || cfg.DeckTheme != DefaultDeckTheme {
		t.Errorf("Zero fields not backfilled: %+v", cfg)
	}
}

func TestConfigDirPrefersProjectLocal(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir failed: %v", err)
	}
	if filepath.Base(got) != ".deckforge" {
		t.Errorf("Expected a .deckforge dir, got %q", got)
	}
	// Getwd may resolve symlinks in the temp path, so compare resolved forms.
	wantParent, _ := filepath.EvalSymlinks(dir)
	if filepath.Dir(got) != wantParent {
		t.Errorf("Expected project-local dir under %q, got %q", wantParent, got)
	}
}

func TestLoadBrokenFileReturnsDefaultsAndError(t *testing.T) {
	t.Chdir(t.TempDir())

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir failed: %v", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{broken"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err == nil {
		t.Error("Expected an error for a broken config file")
	}
	if cfg.DeckTheme != DefaultDeckTheme {
		t.Errorf("Expected defaults on parse failure, got %+v", cfg)
	}
}
