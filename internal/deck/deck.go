// Package deck defines the presentation data model and the editor's
// slide-list operations. A Presentation is an ordered list of Slides plus
// theme and metadata; order is display order and is preserved across
// save/load round-trips.
package deck

import (
	"time"

	"github.com/google/uuid"
)

// Layout is the visual arrangement of a single slide.
type Layout string

const (
	LayoutTitle   Layout = "title"   // Large centered title, minimal body
	LayoutContent Layout = "content" // Title plus markdown body
	LayoutImage   Layout = "image"   // Image-dominant with caption
	LayoutSplit   Layout = "split"   // Body and image side by side
)

// Layouts lists the valid layouts in cycle order.
var Layouts = []Layout{LayoutTitle, LayoutContent, LayoutImage, LayoutSplit}

// ValidLayout reports whether l is one of the known layouts.
func ValidLayout(l Layout) bool {
	for _, v := range Layouts {
		if v == l {
			return true
		}
	}
	return false
}

// NextLayout returns the layout after l in cycle order.
func NextLayout(l Layout) Layout {
	for i, v := range Layouts {
		if v == l {
			return Layouts[(i+1)%len(Layouts)]
		}
	}
	return LayoutContent
}

// Slide is one display unit of a presentation.
type Slide struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"` // markdown body
	ImageRef string `json:"image_ref,omitempty"`
	Theme    string `json:"theme,omitempty"`
	Layout   Layout `json:"layout"`
}

// Presentation is an ordered collection of slides plus theme and metadata.
// The persisted copy is the source of truth between sessions; whichever view
// holds a Presentation in memory owns it exclusively until explicit handoff.
type Presentation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slides    []Slide   `json:"slides"`
	Theme     string    `json:"theme"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSlide returns a slide with a fresh id and the given layout.
func NewSlide(title, content string, layout Layout) Slide {
	if !ValidLayout(layout) {
		layout = LayoutContent
	}
	return Slide{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
		Layout:  layout,
	}
}

// NewPresentation creates a presentation with a single default title slide.
// Presentations never exist with zero slides.
func NewPresentation(title, theme string) *Presentation {
	now := time.Now().UTC()
	first := NewSlide(title, "", LayoutTitle)
	first.Theme = theme
	return &Presentation{
		ID:        uuid.NewString(),
		Title:     title,
		Slides:    []Slide{first},
		Theme:     theme,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch bumps UpdatedAt, keeping the updated >= created invariant.
func (p *Presentation) Touch() {
	now := time.Now().UTC()
	if now.Before(p.CreatedAt) {
		now = p.CreatedAt
	}
	p.UpdatedAt = now
}

// Clone returns a deep copy. Used when handing a presentation between views
// so the receiver gets exclusive ownership.
func (p *Presentation) Clone() *Presentation {
	cp := *p
	cp.Slides = make([]Slide, len(p.Slides))
	copy(cp.Slides, p.Slides)
	return &cp
}

// SlideCount returns the number of slides.
func (p *Presentation) SlideCount() int {
	return len(p.Slides)
}
