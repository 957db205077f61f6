package deck

import (
	"testing"
)

func threeSlideEditor() *Editor {
	p := NewPresentation("Demo", "midnight")
	e := NewEditor(p)
	e.Append()
	e.Append()
	e.SetTitle("Third")
	e.Select(0)
	return e
}

func TestAppendSelectsNewSlide(t *testing.T) {
	e := NewEditor(NewPresentation("Demo", ""))

	e.Append()

	if got := e.Presentation().SlideCount(); got != 2 {
		t.Fatalf("Expected 2 slides, got %d", got)
	}
	if e.Selected() != 1 {
		t.Errorf("Expected selection on the new slide, got %d", e.Selected())
	}
}

func TestDuplicateInsertsAfterSourceWithSuffix(t *testing.T) {
	// Duplicate at index 1 of a 3-slide deck: 4 slides, copy at index 2,
	// title suffixed, selection on the copy.
	e := threeSlideEditor()
	e.Select(1)
	e.SetTitle("Original")

	e.Duplicate()

	p := e.Presentation()
	if p.SlideCount() != 4 {
		t.Fatalf("Expected 4 slides, got %d", p.SlideCount())
	}
	if e.Selected() != 2 {
		t.Errorf("Expected selection at index 2, got %d", e.Selected())
	}
	if got := p.Slides[2].Title; got != "Original (copy)" {
		t.Errorf("Expected suffixed title, got %q", got)
	}
	if p.Slides[2].ID == p.Slides[1].ID {
		t.Error("Duplicate must get a fresh id")
	}
}

func TestDeleteLastRemainingSlideIsNoop(t *testing.T) {
	e := NewEditor(NewPresentation("Demo", ""))

	e.Delete()

	if got := e.Presentation().SlideCount(); got != 1 {
		t.Errorf("Slide list must never drop below 1, got %d", got)
	}
}

func TestDeleteMovesSelectionToPrevious(t *testing.T) {
	e := threeSlideEditor()
	e.Select(2)

	e.Delete()

	if got := e.Presentation().SlideCount(); got != 2 {
		t.Fatalf("Expected 2 slides, got %d", got)
	}
	if e.Selected() != 1 {
		t.Errorf("Expected selection at previous index 1, got %d", e.Selected())
	}
}

func TestDeleteFirstSlideClampsSelectionToZero(t *testing.T) {
	e := threeSlideEditor()
	e.Select(0)

	e.Delete()

	if e.Selected() != 0 {
		t.Errorf("Expected selection clamped to 0, got %d", e.Selected())
	}
}

func TestMoveBoundariesAreNoops(t *testing.T) {
	e := threeSlideEditor()

	e.Select(0)
	first := e.SelectedSlide().ID
	e.MoveUp()
	if e.Presentation().Slides[0].ID != first || e.Selected() != 0 {
		t.Error("MoveUp on the first slide must be a no-op")
	}

	e.Select(2)
	last := e.SelectedSlide().ID
	e.MoveDown()
	if e.Presentation().Slides[2].ID != last || e.Selected() != 2 {
		t.Error("MoveDown on the last slide must be a no-op")
	}
}

func TestMoveFollowsSlide(t *testing.T) {
	e := threeSlideEditor()
	e.Select(1)
	moving := e.SelectedSlide().ID

	e.MoveUp()

	if e.Selected() != 0 {
		t.Fatalf("Expected selection to follow the slide to 0, got %d", e.Selected())
	}
	if e.SelectedSlide().ID != moving {
		t.Error("Selection should still point at the moved slide")
	}

	e.MoveDown()
	if e.Selected() != 1 || e.SelectedSlide().ID != moving {
		t.Error("MoveDown should return the slide and selection to index 1")
	}
}

func TestSelectionAlwaysValid(t *testing.T) {
	e := threeSlideEditor()

	ops := []func(){
		e.Append, e.Delete, e.Duplicate, e.MoveUp, e.MoveDown,
		e.Delete, e.Delete, e.Delete, e.Delete, e.MoveUp,
	}
	for i, op := range ops {
		op()
		if e.Selected() < 0 || e.Selected() >= e.Presentation().SlideCount() {
			t.Fatalf("Invalid selection %d after op %d", e.Selected(), i)
		}
	}
}

func TestSetLayoutCoercesUnknown(t *testing.T) {
	e := NewEditor(NewPresentation("Demo", ""))

	e.SetLayout(Layout("hologram"))

	if got := e.SelectedSlide().Layout; got != LayoutContent {
		t.Errorf("Expected unknown layout coerced to content, got %q", got)
	}
}

func TestSetThemeAppliesToAllSlides(t *testing.T) {
	e := threeSlideEditor()

	e.SetTheme("ember")

	p := e.Presentation()
	if p.Theme != "ember" {
		t.Errorf("Expected deck theme ember, got %q", p.Theme)
	}
	for i, s := range p.Slides {
		if s.Theme != "ember" {
			t.Errorf("Slide %d theme not updated, got %q", i, s.Theme)
		}
	}
}

func TestEditsBumpUpdatedAt(t *testing.T) {
	p := NewPresentation("Demo", "")
	e := NewEditor(p)
	before := p.UpdatedAt

	e.SetContent("- a point")

	if p.UpdatedAt.Before(before) {
		t.Error("UpdatedAt went backwards")
	}
	if p.UpdatedAt.Before(p.CreatedAt) {
		t.Error("UpdatedAt must never precede CreatedAt")
	}
}
