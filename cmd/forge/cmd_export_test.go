package main

import (
	"strings"
	"testing"

	"deckforge/internal/deck"
)

func TestExportMarkdown(t *testing.T) {
	p := deck.NewPresentation("Launch Plan", "ember")
	e := deck.NewEditor(p)
	e.SetTitle("Launch Plan")
	e.Append()
	e.SetTitle("Timeline")
	e.SetContent("- Week 1: build\n- Week 2: ship\n")
	e.Append()
	e.SetTitle("Visual")
	e.SetLayout(deck.LayoutImage)
	e.SetImageRef("assets/visual.png")

	md := ExportMarkdown(p)

	if !strings.HasPrefix(md, "# Launch Plan\n\n") {
		t.Errorf("Missing document title:\n%s", md)
	}
	if !strings.Contains(md, "_theme: ember_") {
		t.Error("Missing theme line")
	}
	if got := strings.Count(md, "---\n"); got != 3 {
		t.Errorf("Expected 3 slide separators, got %d", got)
	}
	if !strings.Contains(md, "## Timeline\n\n- Week 1: build\n- Week 2: ship\n\n") {
		t.Error("Slide content not rendered as-is")
	}
	if !strings.Contains(md, "![slide 3 image](assets/visual.png)") {
		t.Error("Image reference missing")
	}

	// Slides appear in deck order.
	if strings.Index(md, "## Timeline") > strings.Index(md, "## Visual") {
		t.Error("Slide order not preserved")
	}
}

func TestExportMarkdownOmitsEmptyTheme(t *testing.T) {
	p := deck.NewPresentation("Untitled", "")
	if strings.Contains(ExportMarkdown(p), "_theme:") {
		t.Error("Empty theme should not emit a theme line")
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Launch Plan", "launch-plan"},
		{"  Q3 / Roadmap!  ", "q3-roadmap"},
		{"___", "presentation"},
		{"Ünïcode Tïtle", "n-code-t-tle"},
		{"already-fine-2", "already-fine-2"},
	}
	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Errorf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
