package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"deckforge/internal/deck"
)

// ParseOutline extracts the slide draft array from a model reply. Models
// sometimes wrap JSON in markdown fences or lead with prose, so the parser
// strips fences and falls back to scanning for the outermost array.
func ParseOutline(raw string) ([]SlideDraft, error) {
	text := stripFences(strings.TrimSpace(raw))

	var drafts []SlideDraft
	if err := json.Unmarshal([]byte(text), &drafts); err != nil {
		// Fall back to the first [...] span in the reply.
		start := strings.Index(text, "[")
		end := strings.LastIndex(text, "]")
		if start < 0 || end <= start {
			return nil, fmt.Errorf("outline reply is not a JSON array: %w", err)
		}
		if err2 := json.Unmarshal([]byte(text[start:end+1]), &drafts); err2 != nil {
			return nil, fmt.Errorf("outline reply is not a JSON array: %w", err2)
		}
	}

	if len(drafts) == 0 {
		return nil, fmt.Errorf("outline reply holds no slides")
	}

	for i := range drafts {
		drafts[i].Title = strings.TrimSpace(drafts[i].Title)
		if drafts[i].Title == "" {
			drafts[i].Title = fmt.Sprintf("Slide %d", i+1)
		}
		if !deck.ValidLayout(drafts[i].Layout) {
			drafts[i].Layout = deck.LayoutContent
		}
	}
	return drafts, nil
}

// stripFences removes a surrounding markdown code fence, if present.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// BuildPresentation assembles a presentation from generated drafts.
func BuildPresentation(title, theme string, drafts []SlideDraft) *deck.Presentation {
	p := deck.NewPresentation(title, theme)
	slides := make([]deck.Slide, 0, len(drafts))
	for _, d := range drafts {
		s := deck.NewSlide(d.Title, d.Content, d.Layout)
		s.Theme = theme
		slides = append(slides, s)
	}
	if len(slides) > 0 {
		p.Slides = slides
	}
	return p
}
