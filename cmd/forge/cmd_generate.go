package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deckforge/internal/generation"
)

var (
	generateSlides     int
	generateTheme      string
	generateIllustrate bool
)

// generateCmd creates a presentation from the command line without entering
// the studio.
var generateCmd = &cobra.Command{
	Use:   "generate [topic]",
	Short: "Generate and save a presentation for a topic",
	Long: `Generates a slide outline for the topic, optionally illustrates the
image/split slides, and saves the deck to the local store.

Example:
  forge generate "The history of container orchestration" --slides 8 --illustrate`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateSlides, "slides", 0, "number of slides (default from config)")
	generateCmd.Flags().StringVar(&generateTheme, "theme", "", "deck theme tag (default from config)")
	generateCmd.Flags().BoolVar(&generateIllustrate, "illustrate", false, "generate images for image/split slides")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic := strings.Join(args, " ")

	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	slides := generateSlides
	if slides <= 0 {
		slides = deps.Config.DefaultSlides
	}
	deckTheme := generateTheme
	if deckTheme == "" {
		deckTheme = deps.Config.DeckTheme
	}
	if _, ok := deps.Themes.Get(deckTheme); !ok {
		logger.Warn("unknown theme, keeping tag anyway", zap.String("theme", deckTheme))
	}

	logger.Info("generating outline",
		zap.String("topic", topic),
		zap.Int("slides", slides))

	ctx := context.Background()
	drafts, err := deps.Gen.Outline(ctx, topic, slides)
	if err != nil {
		return fmt.Errorf("outline generation failed: %w", err)
	}

	title := topic
	if len(drafts) > 0 && drafts[0].Title != "" {
		title = drafts[0].Title
	}
	pres := generation.BuildPresentation(title, deckTheme, drafts)

	if generateIllustrate {
		n, err := generation.Illustrate(ctx, deps.Gen, pres)
		if err != nil {
			return fmt.Errorf("illustration interrupted: %w", err)
		}
		logger.Info("illustrated slides", zap.Int("count", n))
	}

	if err := deps.Store.Create(pres); err != nil {
		return err
	}

	logger.Info("presentation saved",
		zap.String("id", pres.ID),
		zap.Int("slides", pres.SlideCount()))
	fmt.Printf("Created %q (%d slides)\n  id: %s\n", pres.Title, pres.SlideCount(), pres.ID)
	return nil
}
