package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"deckforge/cmd/forge/app"
)

// presentCmd opens a stored presentation directly in the viewer.
var presentCmd = &cobra.Command{
	Use:   "present [id]",
	Short: "Present a stored deck full screen",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresent,
}

func runPresent(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	pres, err := deps.Store.Get(args[0])
	if err != nil {
		return fmt.Errorf("loading presentation %s: %w", args[0], err)
	}

	deps.Open = pres
	deps.StartPresenting = true

	program := tea.NewProgram(
		app.New(deps),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("viewer exited with error: %w", err)
	}
	return nil
}
