package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"deckforge/cmd/forge/app"
	"deckforge/cmd/forge/ui"
	"deckforge/internal/logging"
)

var (
	// Global flags
	verbose bool
	apiKey  string

	// Logger for non-interactive commands; the TUI has its own UI and
	// uses the category file logger instead.
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "deckforge - AI presentation studio for the terminal",
	Long: `deckforge generates, edits, and presents slide decks without leaving
the terminal. Slide outlines and images come from the Gemini API; decks are
stored in a local SQLite database.

Run without arguments to start the interactive studio.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Use == "forge" && cmd.CalledAs() == "forge" {
			return nil
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// runInteractive launches the TUI studio.
func runInteractive() error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	model := app.New(deps)
	program := tea.NewProgram(
		model,
		tea.WithMouseCellMotion(),
	)

	// Hot-reload user themes into the running program. Editors emit
	// bursts of write events on save, so reloads are debounced.
	stopWatch := watchThemes(deps, program)
	if stopWatch != nil {
		defer stopWatch()
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("studio exited with error: %w", err)
	}
	return nil
}

// watchThemes starts the user-theme file watcher. Returns nil when the
// watcher cannot start; the studio still works with built-in themes.
func watchThemes(deps app.Deps, program *tea.Program) func() {
	path, err := userThemesPath()
	if err != nil {
		return nil
	}
	deb := ui.NewDebouncer(ui.DefaultReloadDuration)
	stop, err := deps.Themes.Watch(path, func() {
		deb.Debounce(func() {
			program.Send(app.ThemesReloadedMsg{})
		})
	})
	if err != nil {
		logging.ThemeError("Theme watcher unavailable: %v", err)
		return nil
	}
	return func() {
		deb.Cancel()
		stop()
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (overrides config and env)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(presentCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(authCmd)
}

func main() {
	defer logging.CloseAll()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
