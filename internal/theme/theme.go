// Package theme provides the deck theme catalog: named visual styles a
// presentation can be tagged with. Built-in themes ship embedded as YAML;
// user themes in the config dir overlay them and can be hot-reloaded.
package theme

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"deckforge/internal/logging"
)

//go:embed themes.yaml
var builtinYAML []byte

// Definition is one named deck theme.
type Definition struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"` // hex color for slide backgrounds
	Foreground string `yaml:"foreground"`
	Accent     string `yaml:"accent"`
	// Style feeds the image generator's prompt ("minimalist flat vector" etc).
	Style string `yaml:"style"`
}

type catalogFile struct {
	Themes []Definition `yaml:"themes"`
}

// Catalog holds the merged set of built-in and user themes.
type Catalog struct {
	mu     sync.RWMutex
	themes map[string]Definition
	order  []string
}

// Load parses the embedded built-ins and overlays user themes from
// userPath when the file exists. A broken user file is logged and skipped;
// the built-ins always load.
func Load(userPath string) (*Catalog, error) {
	c := &Catalog{themes: make(map[string]Definition)}

	var builtin catalogFile
	if err := yaml.Unmarshal(builtinYAML, &builtin); err != nil {
		return nil, fmt.Errorf("builtin themes are broken: %w", err)
	}
	for _, def := range builtin.Themes {
		c.put(def)
	}

	if userPath != "" {
		if err := c.mergeUserFile(userPath); err != nil {
			logging.ThemeError("User themes not loaded: %v", err)
		}
	}

	logging.Theme("Theme catalog loaded: %d themes", len(c.themes))
	return c, nil
}

// Reload re-reads the user theme file, used by the fsnotify watcher.
func (c *Catalog) Reload(userPath string) error {
	return c.mergeUserFile(userPath)
}

func (c *Catalog) mergeUserFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	var user catalogFile
	if err := yaml.Unmarshal(data, &user); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	for _, def := range user.Themes {
		c.put(def)
	}
	return nil
}

func (c *Catalog) put(def Definition) {
	if def.Name == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.themes[def.Name]; !exists {
		c.order = append(c.order, def.Name)
	}
	c.themes[def.Name] = def
}

// Get returns a theme by name.
func (c *Catalog) Get(name string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.themes[name]
	return def, ok
}

// Names returns theme names in a stable cycle order: built-in declaration
// order, then user additions.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Next returns the theme name after current in cycle order, wrapping.
// Unknown names restart at the first theme.
func (c *Catalog) Next(current string) string {
	names := c.Names()
	if len(names) == 0 {
		return current
	}
	for i, n := range names {
		if n == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
