package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"deckforge/internal/deck"
	"deckforge/internal/generation"
	"deckforge/internal/logging"
	"deckforge/internal/store"
)

// updateDashboard handles the presentation list and the creation flow.
func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.topic.Focused() {
				topic := strings.TrimSpace(m.topic.Value())
				if topic == "" || m.isGenerating {
					return m, nil
				}
				// Single in-flight generation: the input stays
				// disabled until the result lands.
				m.isGenerating = true
				m.statusMessage = "Generating outline..."
				m.topic.Blur()
				return m, tea.Batch(m.spinner.Tick, m.generateCmd(topic))
			}
			if item, ok := m.deckList.SelectedItem().(deckItem); ok {
				return m, m.openDeckCmd(item.id)
			}
			return m, nil

		case "tab":
			if m.topic.Focused() {
				m.topic.Blur()
			} else {
				cmds = append(cmds, m.topic.Focus())
			}
			return m, tea.Batch(cmds...)

		case "n":
			if !m.topic.Focused() {
				return m, m.topic.Focus()
			}

		case "ctrl+r":
			return m, m.loadDecksCmd()
		}

	case decksLoadedMsg:
		items := make([]list.Item, 0, len(msg))
		for _, p := range msg {
			items = append(items, deckItem{
				id:      p.ID,
				title:   p.Title,
				slides:  p.SlideCount(),
				updated: p.UpdatedAt,
			})
		}
		m.deckList.SetItems(items)
		return m, nil

	case deckGeneratedMsg:
		m.isGenerating = false
		m.topic.Reset()
		m.statusMessage = fmt.Sprintf("Generated %q (%d slides)", msg.pres.Title, msg.pres.SlideCount())
		m.openEditor(msg.pres)
		return m, m.loadDecksCmd()

	case deckOpenedMsg:
		m.openEditor(msg.pres)
		return m, nil

	case spinner.TickMsg:
		if m.isGenerating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Forward remaining messages to the focused component.
	if m.topic.Focused() {
		var cmd tea.Cmd
		m.topic, cmd = m.topic.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.deckList, cmd = m.deckList.Update(msg)
	return m, cmd
}

// openEditor switches to the editor view with exclusive ownership of p.
func (m *Model) openEditor(p *deck.Presentation) {
	m.editor = deck.NewEditor(p)
	m.editorFocus = FocusRail
	m.dirty = false
	m.syncEditorFields()
	m.viewMode = EditorView
	logging.UI("editor opened: %s (%d slides)", p.ID, p.SlideCount())
}

// loadDecksCmd fetches the dashboard list, most recently updated first.
func (m Model) loadDecksCmd() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		decks, err := st.List(store.Filter{}, store.OrderUpdatedDesc)
		if err != nil {
			return errMsg{fmt.Errorf("loading presentations: %w", err)}
		}
		return decksLoadedMsg(decks)
	}
}

// generateCmd runs outline generation and persists the new presentation.
// Runs off the event loop; posts exactly one completion message.
func (m Model) generateCmd(topic string) tea.Cmd {
	gen := m.gen
	st := m.store
	deckTheme := m.cfg.DeckTheme
	slides := m.cfg.DefaultSlides
	return func() tea.Msg {
		drafts, err := gen.Outline(genContext(), topic, slides)
		if err != nil {
			return errMsg{err}
		}
		pres := generation.BuildPresentation(deriveTitle(topic, drafts), deckTheme, drafts)
		if err := st.Create(pres); err != nil {
			return errMsg{err}
		}
		return deckGeneratedMsg{pres: pres}
	}
}

// openDeckCmd loads a stored presentation by id.
func (m Model) openDeckCmd(id string) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		pres, err := st.Get(id)
		if err != nil {
			return errMsg{fmt.Errorf("opening presentation: %w", err)}
		}
		return deckOpenedMsg{pres: pres}
	}
}

// deriveTitle prefers the generated title slide over the raw topic text.
func deriveTitle(topic string, drafts []generation.SlideDraft) string {
	if len(drafts) > 0 && drafts[0].Title != "" {
		return drafts[0].Title
	}
	if r := []rune(topic); len(r) > 60 {
		return string(r[:60])
	}
	return topic
}
