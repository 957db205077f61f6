package generation

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"deckforge/internal/deck"
	"deckforge/internal/logging"
)

// illustrateParallelism bounds concurrent image requests so a large deck
// does not hammer the API.
const illustrateParallelism = 3

// Illustrate generates images for every image/split slide that does not
// already have one, writing the references back into the presentation.
// Per-slide failures are logged and skipped; the function only returns an
// error when the context is cancelled. Returns the number of slides
// illustrated.
func Illustrate(ctx context.Context, gen Generator, p *deck.Presentation) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(illustrateParallelism)

	var (
		mu    sync.Mutex
		count int
	)
	for i := range p.Slides {
		s := p.Slides[i]
		if s.ImageRef != "" {
			continue
		}
		if s.Layout != deck.LayoutImage && s.Layout != deck.LayoutSplit {
			continue
		}

		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ref, err := gen.Image(ctx, imagePrompt(s.Title, s.Content, p.Theme), SizeForLayout(s.Layout))
			if err != nil {
				logging.GenerationError("Illustration for slide %d skipped: %v", i, err)
				return nil
			}
			mu.Lock()
			p.Slides[i].ImageRef = ref
			count++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return count, err
	}
	if count > 0 {
		p.Touch()
	}
	return count, nil
}
