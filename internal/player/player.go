// Package player implements the viewer's navigation and playback state
// machine: one slide at a time from a fixed ordered sequence, manual and
// timer-driven advancement, fullscreen mode, and transient on-screen
// controls. All transitions are pure local state changes delivered on the
// single UI event loop; none can fail.
package player

import "time"

// Timing constants for the playback machine.
const (
	// AutoplayInterval is the fixed delay between automatic advances.
	AutoplayInterval = 5 * time.Second
	// ControlsTimeout is the inactivity window before controls hide in
	// fullscreen.
	ControlsTimeout = 3 * time.Second
)

// Player holds the playback state for a deck of slideCount slides.
// The zero value is not usable; construct with New.
//
// Ticks are matched against epochs so a timer scheduled under an earlier
// state cannot fire against a later one: toggling autoplay, restarting, or
// showing controls bumps the relevant epoch and orphans any in-flight tick.
type Player struct {
	slideCount int

	index           int
	autoplay        bool
	fullscreen      bool
	controlsVisible bool

	autoplayEpoch int
	controlsEpoch int
}

// New creates a player for a non-empty deck. slideCount below 1 is clamped
// to 1 so the index invariant holds even for degenerate input.
func New(slideCount int) *Player {
	if slideCount < 1 {
		slideCount = 1
	}
	return &Player{
		slideCount:      slideCount,
		controlsVisible: true,
	}
}

// Index returns the current slide position, always in [0, slideCount-1].
func (p *Player) Index() int { return p.index }

// SlideCount returns the number of slides in the deck.
func (p *Player) SlideCount() int { return p.slideCount }

// Autoplay reports whether timer-driven advancement is active.
func (p *Player) Autoplay() bool { return p.autoplay }

// Fullscreen reports whether fullscreen presentation mode is on.
func (p *Player) Fullscreen() bool { return p.fullscreen }

// ControlsVisible reports whether the on-screen controls should render.
// Outside fullscreen, controls are always visible.
func (p *Player) ControlsVisible() bool {
	if !p.fullscreen {
		return true
	}
	return p.controlsVisible
}

// AtStart reports whether the first slide is showing.
func (p *Player) AtStart() bool { return p.index == 0 }

// AtEnd reports whether the last slide is showing.
func (p *Player) AtEnd() bool { return p.index == p.slideCount-1 }

// Next advances by one slide. No-op at the last slide (never wraps).
// Returns true if the index changed.
func (p *Player) Next() bool {
	if p.index >= p.slideCount-1 {
		return false
	}
	p.index++
	p.pokeControls()
	return true
}

// Prev steps back by one slide. No-op at the first slide.
// Returns true if the index changed.
func (p *Player) Prev() bool {
	if p.index <= 0 {
		return false
	}
	p.index--
	p.pokeControls()
	return true
}

// Restart returns to the first slide and stops autoplay.
func (p *Player) Restart() {
	p.index = 0
	p.setAutoplay(false)
	p.pokeControls()
}

// ToggleAutoplay flips timer-driven advancement. Returns the new state.
func (p *Player) ToggleAutoplay() bool {
	p.setAutoplay(!p.autoplay)
	return p.autoplay
}

// AutoplayEpoch identifies the current autoplay run. Schedule each autoplay
// tick with the epoch current at schedule time and hand it back to
// AutoplayTick; a mismatch means the tick was orphaned by a toggle or
// restart.
func (p *Player) AutoplayEpoch() int { return p.autoplayEpoch }

// AutoplayTick handles one autoplay timer firing. A tick advances by exactly
// one slide; a tick that lands while the last slide is showing forces
// autoplay off and leaves the index unchanged (terminal reached, no wrap).
// Stale ticks are ignored. Returns true if another tick should be scheduled.
func (p *Player) AutoplayTick(epoch int) bool {
	if !p.autoplay || epoch != p.autoplayEpoch {
		return false
	}
	if !p.Next() {
		p.setAutoplay(false)
		return false
	}
	return p.autoplay
}

// ToggleFullscreen flips fullscreen mode and returns the new state. The
// platform alt-screen request is the caller's fire-and-forget side effect;
// its failure is not observed here. Exiting fullscreen never changes the
// index.
func (p *Player) ToggleFullscreen() bool {
	p.fullscreen = !p.fullscreen
	p.pokeControls()
	return p.fullscreen
}

// ExitFullscreen leaves fullscreen mode if active. Returns true if the mode
// changed.
func (p *Player) ExitFullscreen() bool {
	if !p.fullscreen {
		return false
	}
	p.fullscreen = false
	p.controlsVisible = true
	return true
}

// PointerMoved handles any mouse movement: controls become visible and the
// hide timer restarts.
func (p *Player) PointerMoved() {
	p.pokeControls()
}

// ControlsEpoch identifies the current controls-visibility window. Schedule
// the hide timer with the epoch current at schedule time and hand it back to
// ControlsTick.
func (p *Player) ControlsEpoch() int { return p.controlsEpoch }

// ControlsTick handles the controls hide timer firing. Controls hide only in
// fullscreen; a stale epoch means activity restarted the window and the tick
// is ignored. Returns true if the controls were hidden.
func (p *Player) ControlsTick(epoch int) bool {
	if epoch != p.controlsEpoch || !p.fullscreen || !p.controlsVisible {
		return false
	}
	p.controlsVisible = false
	return true
}

func (p *Player) setAutoplay(on bool) {
	if p.autoplay == on {
		return
	}
	p.autoplay = on
	p.autoplayEpoch++
}

// pokeControls shows the controls and invalidates any pending hide timer.
func (p *Player) pokeControls() {
	p.controlsVisible = true
	p.controlsEpoch++
}
