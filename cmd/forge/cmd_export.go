package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deckforge/internal/deck"
	"deckforge/internal/logging"
)

var exportOut string

// exportCmd writes a deck as a markdown document, one ---separated section
// per slide, for interop with text slide tools.
var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export a presentation as markdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default <title>.md)")
}

func runExport(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	pres, err := deps.Store.Get(args[0])
	if err != nil {
		return fmt.Errorf("loading presentation %s: %w", args[0], err)
	}

	out := exportOut
	if out == "" {
		out = slugify(pres.Title) + ".md"
	}

	if err := os.WriteFile(out, []byte(ExportMarkdown(pres)), 0644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	logging.Get(logging.CategoryExport).Info("exported %s to %s", pres.ID, out)
	logger.Info("exported presentation",
		zap.String("id", pres.ID),
		zap.String("file", out))
	fmt.Printf("Exported %q to %s\n", pres.Title, out)
	return nil
}

// ExportMarkdown renders a presentation as a markdown document.
func ExportMarkdown(p *deck.Presentation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	if p.Theme != "" {
		fmt.Fprintf(&b, "_theme: %s_\n\n", p.Theme)
	}
	for i, s := range p.Slides {
		b.WriteString("---\n\n")
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		if s.Content != "" {
			b.WriteString(strings.TrimRight(s.Content, "\n"))
			b.WriteString("\n\n")
		}
		if s.ImageRef != "" {
			fmt.Fprintf(&b, "![slide %d image](%s)\n\n", i+1, s.ImageRef)
		}
	}
	return b.String()
}

// slugify turns a title into a safe filename stem.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "presentation"
	}
	return out
}
