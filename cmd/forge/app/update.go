package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"deckforge/internal/auth"
	"deckforge/internal/logging"
)

// Update routes messages to the active view after handling global concerns.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings
		switch msg.Type {
		case tea.KeyCtrlC:
			m.performShutdown()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.deckList.SetSize(msg.Width-4, msg.Height-12)
		m.body.SetWidth(msg.Width - 30)
		m.topic.Width = msg.Width - 10
		logging.UIDebug("resize %dx%d", msg.Width, msg.Height)
		return m, nil

	case sessionMsg:
		m.session = auth.Session(msg)
		return m, m.waitForSession()

	case ThemesReloadedMsg:
		m.statusMessage = "Themes reloaded"
		logging.Theme("Theme catalog refreshed in editor")
		return m, nil

	case errMsg:
		// Gateway failures are caught, logged, and surfaced on the status
		// line; state stays at its pre-operation value. Never retried.
		m.err = msg.err
		m.isGenerating = false
		m.isSaving = false
		m.isIllustrating = false
		m.statusMessage = "Error: " + msg.err.Error()
		logging.UI("operation failed: %v", msg.err)
		return m, nil
	}

	switch m.viewMode {
	case DashboardView:
		return m.updateDashboard(msg)
	case EditorView:
		return m.updateEditor(msg)
	case ViewerView:
		return m.updateViewer(msg)
	}
	return m, nil
}
