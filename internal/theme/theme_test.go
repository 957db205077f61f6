package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinsLoad(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	names := c.Names()
	if len(names) < 4 {
		t.Fatalf("Expected at least 4 built-in themes, got %d", len(names))
	}
	if names[0] != "midnight" {
		t.Errorf("Expected midnight first in cycle order, got %q", names[0])
	}

	def, ok := c.Get("midnight")
	if !ok {
		t.Fatal("midnight should exist")
	}
	if def.Background == "" || def.Style == "" {
		t.Errorf("Incomplete definition: %+v", def)
	}
}

func TestNextCyclesAndWraps(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	names := c.Names()
	seen := map[string]bool{}
	current := names[0]
	for range names {
		seen[current] = true
		current = c.Next(current)
	}
	if len(seen) != len(names) {
		t.Errorf("Cycle visited %d of %d themes", len(seen), len(names))
	}
	if current != names[0] {
		t.Errorf("Expected wrap back to %q, got %q", names[0], current)
	}
}

func TestNextUnknownNameRestartsCycle(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := c.Next("no-such-theme"); got != c.Names()[0] {
		t.Errorf("Unknown name should restart the cycle, got %q", got)
	}
}

func TestUserOverlay(t *testing.T) {
	dir := t.TempDir()
	userPath := filepath.Join(dir, "themes.yaml")
	user := `themes:
  - name: midnight
    background: "#000000"
    foreground: "#ffffff"
    accent: "#ff00ff"
    style: "neon cyberpunk"
  - name: corporate
    background: "#f5f5f5"
    foreground: "#222222"
    accent: "#0057b7"
    style: "clean corporate vector"
`
	if err := os.WriteFile(userPath, []byte(user), 0644); err != nil {
		t.Fatalf("Failed to write user themes: %v", err)
	}

	c, err := Load(userPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	def, ok := c.Get("midnight")
	if !ok || def.Style != "neon cyberpunk" {
		t.Errorf("User overlay should replace built-in midnight, got %+v", def)
	}
	if _, ok := c.Get("corporate"); !ok {
		t.Error("User-defined theme missing from catalog")
	}

	// Overridden built-ins keep their position; new themes go last.
	names := c.Names()
	if names[0] != "midnight" || names[len(names)-1] != "corporate" {
		t.Errorf("Unexpected cycle order: %v", names)
	}
}

func TestBrokenUserFileKeepsBuiltins(t *testing.T) {
	dir := t.TempDir()
	userPath := filepath.Join(dir, "themes.yaml")
	if err := os.WriteFile(userPath, []byte("themes: [broken"), 0644); err != nil {
		t.Fatalf("Failed to write user themes: %v", err)
	}

	c, err := Load(userPath)
	if err != nil {
		t.Fatalf("Broken user file must not fail Load: %v", err)
	}
	if _, ok := c.Get("midnight"); !ok {
		t.Error("Built-ins should load despite a broken user file")
	}
}

func TestReloadPicksUpNewThemes(t *testing.T) {
	dir := t.TempDir()
	userPath := filepath.Join(dir, "themes.yaml")

	c, err := Load(userPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	before := len(c.Names())

	user := `themes:
  - name: sunrise
    background: "#fff3e0"
    foreground: "#3e2723"
    accent: "#ff7043"
    style: "warm watercolor"
`
	if err := os.WriteFile(userPath, []byte(user), 0644); err != nil {
		t.Fatalf("Failed to write user themes: %v", err)
	}
	if err := c.Reload(userPath); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	if len(c.Names()) != before+1 {
		t.Errorf("Expected one new theme after reload, got %d -> %d", before, len(c.Names()))
	}
	if _, ok := c.Get("sunrise"); !ok {
		t.Error("Reloaded theme missing from catalog")
	}
}
