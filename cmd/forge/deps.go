package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"deckforge/cmd/forge/app"
	"deckforge/internal/auth"
	"deckforge/internal/config"
	"deckforge/internal/generation"
	"deckforge/internal/logging"
	"deckforge/internal/store"
	"deckforge/internal/theme"
)

// buildDeps assembles the gateways every command needs. The returned cleanup
// closes the store.
func buildDeps() (app.Deps, func(), error) {
	cwd, _ := os.Getwd()
	if err := logging.Initialize(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging unavailable: %v\n", err)
	}

	cfg, _ := config.Load()

	dir, err := config.ConfigDir()
	if err != nil {
		return app.Deps{}, nil, fmt.Errorf("resolving config dir: %w", err)
	}

	st, err := store.Open(filepath.Join(dir, "presentations.db"))
	if err != nil {
		return app.Deps{}, nil, err
	}

	themes, err := theme.Load(mustUserThemesPath(dir))
	if err != nil {
		st.Close()
		return app.Deps{}, nil, err
	}

	gen := buildGenerator(cfg, dir)
	watcher := auth.NewWatcher(dir)

	deps := app.Deps{
		Config: cfg,
		Store:  st,
		Gen:    gen,
		Themes: themes,
		Auth:   watcher,
	}
	cleanup := func() {
		st.Close()
	}
	return deps, cleanup, nil
}

// buildGenerator resolves the API key (flag, then env, then config) and
// falls back to the offline static generator when none is set.
func buildGenerator(cfg config.Config, dir string) generation.Generator {
	key := apiKey
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key == "" {
		key = cfg.APIKey
	}
	if key == "" {
		logging.Generation("No API key configured; using offline placeholder generator")
		return &generation.Static{}
	}

	client, err := generation.NewClient(context.Background(), key, filepath.Join(dir, "assets"))
	if err != nil {
		logging.GenerationError("Gemini client unavailable, using offline generator: %v", err)
		return &generation.Static{}
	}
	return client
}

// userThemesPath locates the user theme overlay file.
func userThemesPath() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return mustUserThemesPath(dir), nil
}

func mustUserThemesPath(dir string) string {
	return filepath.Join(dir, "themes.yaml")
}
