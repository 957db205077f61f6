package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"deckforge/internal/logging"
)

// updateViewer drives the playback state machine. Keyboard bindings are
// active only while this view is mounted: right/space next, left prev,
// f fullscreen, r restart, a autoplay, Esc exits fullscreen first and the
// viewer second. Any mouse movement shows the controls.
func (m Model) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "right", " ":
			m.play.Next()
			return m, m.maybeHideControlsCmd()

		case "left":
			m.play.Prev()
			return m, m.maybeHideControlsCmd()

		case "f", "F":
			return m.toggleFullscreen()

		case "r", "R":
			m.play.Restart()
			return m, m.maybeHideControlsCmd()

		case "a":
			if m.play.ToggleAutoplay() {
				logging.Player("autoplay on at slide %d", m.play.Index())
				return m, m.autoplayTickCmd(m.play.AutoplayEpoch())
			}
			logging.Player("autoplay off at slide %d", m.play.Index())
			return m, nil

		case "esc":
			if m.play.ExitFullscreen() {
				// Exiting fullscreen never changes the slide index.
				return m, tea.ExitAltScreen
			}
			m.viewMode = EditorView
			m.play = nil
			return m, nil
		}

	case tea.MouseMsg:
		m.play.PointerMoved()
		return m, m.maybeHideControlsCmd()

	case autoplayTickMsg:
		if m.play == nil {
			return m, nil
		}
		if m.play.AutoplayTick(msg.epoch) {
			return m, tea.Batch(m.autoplayTickCmd(m.play.AutoplayEpoch()), m.maybeHideControlsCmd())
		}
		return m, m.maybeHideControlsCmd()

	case controlsTickMsg:
		if m.play != nil {
			m.play.ControlsTick(msg.epoch)
		}
		return m, nil
	}
	return m, nil
}

// toggleFullscreen flips the mode and requests the platform alt screen as a
// fire-and-forget side effect.
func (m Model) toggleFullscreen() (tea.Model, tea.Cmd) {
	if m.play.ToggleFullscreen() {
		return m, tea.Batch(tea.EnterAltScreen, m.maybeHideControlsCmd())
	}
	return m, tea.ExitAltScreen
}

// maybeHideControlsCmd schedules the controls auto-hide while fullscreen.
// The epoch orphans the timer if activity shows the controls again first.
func (m Model) maybeHideControlsCmd() tea.Cmd {
	if m.play == nil || !m.play.Fullscreen() || !m.play.ControlsVisible() {
		return nil
	}
	return controlsTickCmd(m.play.ControlsEpoch())
}
