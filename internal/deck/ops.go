package deck

import "github.com/google/uuid"

// Editor wraps a presentation with a selection cursor and implements the
// slide-list operations. Invariants: exactly one slide is selected, the
// selected index is always valid, and the slide list never drops below one
// slide. Invalid operations (delete last slide, move past a boundary) are
// silent no-ops rather than errors.
type Editor struct {
	pres     *Presentation
	selected int
}

// NewEditor takes exclusive ownership of p. The selection starts at the
// first slide.
func NewEditor(p *Presentation) *Editor {
	if len(p.Slides) == 0 {
		// Should not happen via the constructors, but never hold an
		// empty deck.
		p.Slides = []Slide{NewSlide(p.Title, "", LayoutTitle)}
	}
	return &Editor{pres: p}
}

// Presentation returns the underlying presentation. The editor retains
// ownership; callers wanting a handoff copy should Clone.
func (e *Editor) Presentation() *Presentation {
	return e.pres
}

// Selected returns the index of the selected slide.
func (e *Editor) Selected() int {
	return e.selected
}

// SelectedSlide returns the currently selected slide.
func (e *Editor) SelectedSlide() Slide {
	return e.pres.Slides[e.selected]
}

// Select moves the selection to idx, clamped into range.
func (e *Editor) Select(idx int) {
	if idx < 0 {
		idx = 0
	}
	if max := len(e.pres.Slides) - 1; idx > max {
		idx = max
	}
	e.selected = idx
}

// Append adds a new slide with default content at the end of the deck and
// selects it.
func (e *Editor) Append() {
	s := NewSlide("New Slide", "", LayoutContent)
	s.Theme = e.pres.Theme
	e.pres.Slides = append(e.pres.Slides, s)
	e.selected = len(e.pres.Slides) - 1
	e.pres.Touch()
}

// Duplicate inserts a copy of the selected slide immediately after it,
// suffixes the title, and selects the copy.
func (e *Editor) Duplicate() {
	src := e.pres.Slides[e.selected]
	dup := src
	dup.ID = uuid.NewString()
	dup.Title = src.Title + " (copy)"

	at := e.selected + 1
	e.pres.Slides = append(e.pres.Slides, Slide{})
	copy(e.pres.Slides[at+1:], e.pres.Slides[at:])
	e.pres.Slides[at] = dup
	e.selected = at
	e.pres.Touch()
}

// Delete removes the selected slide. Deleting the only remaining slide is a
// no-op. Selection moves to the previous index, clamped to 0.
func (e *Editor) Delete() {
	if len(e.pres.Slides) <= 1 {
		return
	}
	i := e.selected
	e.pres.Slides = append(e.pres.Slides[:i], e.pres.Slides[i+1:]...)
	if i > 0 {
		e.selected = i - 1
	} else {
		e.selected = 0
	}
	e.pres.Touch()
}

// MoveUp swaps the selected slide with its predecessor. No-op at the top.
// Selection follows the moved slide.
func (e *Editor) MoveUp() {
	i := e.selected
	if i <= 0 {
		return
	}
	e.pres.Slides[i-1], e.pres.Slides[i] = e.pres.Slides[i], e.pres.Slides[i-1]
	e.selected = i - 1
	e.pres.Touch()
}

// MoveDown swaps the selected slide with its successor. No-op at the bottom.
// Selection follows the moved slide.
func (e *Editor) MoveDown() {
	i := e.selected
	if i >= len(e.pres.Slides)-1 {
		return
	}
	e.pres.Slides[i], e.pres.Slides[i+1] = e.pres.Slides[i+1], e.pres.Slides[i]
	e.selected = i + 1
	e.pres.Touch()
}

// SetTitle replaces the selected slide's title.
func (e *Editor) SetTitle(title string) {
	e.pres.Slides[e.selected].Title = title
	e.pres.Touch()
}

// SetContent replaces the selected slide's markdown body.
func (e *Editor) SetContent(content string) {
	e.pres.Slides[e.selected].Content = content
	e.pres.Touch()
}

// SetLayout replaces the selected slide's layout. Unknown layouts are
// coerced to the content layout.
func (e *Editor) SetLayout(l Layout) {
	if !ValidLayout(l) {
		l = LayoutContent
	}
	e.pres.Slides[e.selected].Layout = l
	e.pres.Touch()
}

// CycleLayout advances the selected slide to the next layout variant.
func (e *Editor) CycleLayout() {
	e.SetLayout(NextLayout(e.pres.Slides[e.selected].Layout))
}

// SetImageRef attaches a generated image reference to the selected slide.
func (e *Editor) SetImageRef(ref string) {
	e.pres.Slides[e.selected].ImageRef = ref
	e.pres.Touch()
}

// SetTheme applies a theme tag to the whole presentation and all slides.
func (e *Editor) SetTheme(theme string) {
	e.pres.Theme = theme
	for i := range e.pres.Slides {
		e.pres.Slides[i].Theme = theme
	}
	e.pres.Touch()
}

// SetDeckTitle renames the presentation itself.
func (e *Editor) SetDeckTitle(title string) {
	e.pres.Title = title
	e.pres.Touch()
}
