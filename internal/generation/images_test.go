package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckforge/internal/deck"
)

func illustratable() *deck.Presentation {
	p := deck.NewPresentation("Topic", "midnight")
	p.Slides = []deck.Slide{
		deck.NewSlide("Title", "", deck.LayoutTitle),
		deck.NewSlide("Picture", "", deck.LayoutImage),
		deck.NewSlide("Half", "- text", deck.LayoutSplit),
		deck.NewSlide("Words", "- only text", deck.LayoutContent),
	}
	return p
}

func TestIllustrateTargetsImageAndSplitSlides(t *testing.T) {
	gen := &Static{}
	p := illustratable()

	n, err := Illustrate(context.Background(), gen, p)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, gen.ImageCalls())

	assert.Empty(t, p.Slides[0].ImageRef, "title slide must not be illustrated")
	assert.NotEmpty(t, p.Slides[1].ImageRef)
	assert.NotEmpty(t, p.Slides[2].ImageRef)
	assert.Empty(t, p.Slides[3].ImageRef, "content slide must not be illustrated")
}

func TestIllustrateSkipsExistingReferences(t *testing.T) {
	gen := &Static{}
	p := illustratable()
	p.Slides[1].ImageRef = "static://already/done"

	n, err := Illustrate(context.Background(), gen, p)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "static://already/done", p.Slides[1].ImageRef)
}

func TestIllustrateSurvivesPerSlideFailures(t *testing.T) {
	gen := &Static{Err: errors.New("quota exhausted")}
	p := illustratable()
	before := p.UpdatedAt

	n, err := Illustrate(context.Background(), gen, p)
	require.NoError(t, err, "per-slide failures are logged, not returned")
	assert.Zero(t, n)
	assert.Empty(t, p.Slides[1].ImageRef)
	assert.True(t, p.UpdatedAt.Equal(before), "no writeback means no touch")
}

func TestIllustrateHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &Static{}
	p := illustratable()
	_, err := Illustrate(ctx, gen, p)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStaticOutlineShape(t *testing.T) {
	gen := &Static{}
	drafts, err := gen.Outline(context.Background(), "Tea Ceremonies", 5)
	require.NoError(t, err)
	require.Len(t, drafts, 5)
	assert.Equal(t, deck.LayoutTitle, drafts[0].Layout)
	assert.Equal(t, "Wrap Up", drafts[4].Title)
	assert.Equal(t, deck.LayoutSplit, drafts[4].Layout)
}

func TestSizeForLayout(t *testing.T) {
	assert.Equal(t, ImageWide, SizeForLayout(deck.LayoutImage))
	assert.Equal(t, ImageTall, SizeForLayout(deck.LayoutSplit))
	assert.Equal(t, ImageSquare, SizeForLayout(deck.LayoutContent))
}
