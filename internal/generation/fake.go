package generation

import (
	"context"
	"fmt"
	"sync"

	"deckforge/internal/deck"
)

// Static implements Generator without network access. It produces a
// deterministic outline and placeholder image references, for tests and for
// running without an API key.
type Static struct {
	// Err, when set, is returned by every call. Lets tests exercise the
	// caught-logged-cleared failure path.
	Err error

	mu         sync.Mutex
	imageCalls int
}

// Outline returns a deterministic outline: title slide, content slides, and
// a closing split slide.
func (s *Static) Outline(_ context.Context, topic string, slideCount int) ([]SlideDraft, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if slideCount < 1 {
		slideCount = 1
	}
	drafts := make([]SlideDraft, 0, slideCount)
	drafts = append(drafts, SlideDraft{
		Title:  topic,
		Layout: deck.LayoutTitle,
	})
	for i := 1; i < slideCount-1; i++ {
		drafts = append(drafts, SlideDraft{
			Title:   fmt.Sprintf("%s — Part %d", topic, i),
			Content: fmt.Sprintf("- Key point %d about %s\n- Supporting detail", i, topic),
			Layout:  deck.LayoutContent,
		})
	}
	if slideCount > 1 {
		drafts = append(drafts, SlideDraft{
			Title:   "Wrap Up",
			Content: "- Summary\n- Next steps",
			Layout:  deck.LayoutSplit,
		})
	}
	return drafts, nil
}

// Image returns a placeholder reference without generating anything.
func (s *Static) Image(_ context.Context, prompt string, size ImageSize) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imageCalls++
	return fmt.Sprintf("static://%s/%d", size, s.imageCalls), nil
}

// ImageCalls reports how many image requests were made.
func (s *Static) ImageCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imageCalls
}
