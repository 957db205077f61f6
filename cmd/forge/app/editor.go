package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"deckforge/internal/deck"
	"deckforge/internal/generation"
	"deckforge/internal/logging"
	"deckforge/internal/player"
)

// updateEditor handles slide editing. The rail owns structural operations;
// Tab moves focus rail -> title -> content -> rail. Field edits are applied
// when focus leaves the field.
func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editorFocus == FocusRail {
			return m.editorRailKey(msg)
		}
		return m.editorFieldKey(msg)

	case deckSavedMsg:
		m.isSaving = false
		m.dirty = false
		m.statusMessage = "Saved"
		logging.UI("saved presentation %s", msg.id)
		return m, nil

	case imageGeneratedMsg:
		m.isIllustrating = false
		// Apply by slide id: the selection may have moved while the
		// request was in flight.
		applied := false
		pres := m.editor.Presentation()
		for i := range pres.Slides {
			if pres.Slides[i].ID == msg.slideID {
				pres.Slides[i].ImageRef = msg.ref
				pres.Touch()
				applied = true
				break
			}
		}
		if applied {
			m.dirty = true
			m.statusMessage = "Image attached"
		} else {
			m.statusMessage = "Image ready, but its slide was deleted"
		}
		return m, nil

	case spinner.TickMsg:
		if m.isSaving || m.isIllustrating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

// editorRailKey handles structural slide-list operations.
func (m Model) editorRailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = DashboardView
		if m.dirty {
			m.statusMessage = "Left editor with unsaved changes"
		}
		return m, m.loadDecksCmd()

	case "up", "k":
		m.editor.Select(m.editor.Selected() - 1)
		m.syncEditorFields()
		return m, nil

	case "down", "j":
		m.editor.Select(m.editor.Selected() + 1)
		m.syncEditorFields()
		return m, nil

	case "shift+up", "K":
		m.editor.MoveUp() // no-op at the top boundary
		m.dirty = true
		return m, nil

	case "shift+down", "J":
		m.editor.MoveDown() // no-op at the bottom boundary
		m.dirty = true
		return m, nil

	case "a":
		m.editor.Append()
		m.syncEditorFields()
		m.dirty = true
		return m, nil

	case "d":
		m.editor.Duplicate()
		m.syncEditorFields()
		m.dirty = true
		return m, nil

	case "x":
		m.editor.Delete() // no-op on the last remaining slide
		m.syncEditorFields()
		m.dirty = true
		return m, nil

	case "l":
		m.editor.CycleLayout()
		m.dirty = true
		return m, nil

	case "t":
		next := m.themes.Next(m.editor.Presentation().Theme)
		m.editor.SetTheme(next)
		m.dirty = true
		m.statusMessage = fmt.Sprintf("Theme: %s", next)
		return m, nil

	case "i":
		if m.isIllustrating {
			return m, nil
		}
		m.isIllustrating = true
		m.statusMessage = "Generating image..."
		return m, tea.Batch(m.spinner.Tick, m.imageCmd(m.editor.SelectedSlide()))

	case "ctrl+s":
		if m.isSaving {
			return m, nil
		}
		m.isSaving = true
		m.statusMessage = "Saving..."
		return m, tea.Batch(m.spinner.Tick, m.saveCmd())

	case "p":
		m.play = player.New(m.editor.Presentation().SlideCount())
		m.viewMode = ViewerView
		logging.Player("presenting %s from slide 0", m.editor.Presentation().ID)
		return m, nil

	case "tab", "enter", "e":
		m.editorFocus = FocusTitle
		return m, m.titleIn.Focus()
	}
	return m, nil
}

// editorFieldKey handles title/content editing. Edits apply when focus
// leaves the field.
func (m Model) editorFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.editorFocus {
	case FocusTitle:
		switch msg.String() {
		case "enter", "tab":
			m.applyTitle()
			m.titleIn.Blur()
			m.editorFocus = FocusContent
			return m, m.body.Focus()
		case "esc":
			m.applyTitle()
			m.titleIn.Blur()
			m.editorFocus = FocusRail
			return m, nil
		}
		var cmd tea.Cmd
		m.titleIn, cmd = m.titleIn.Update(msg)
		return m, cmd

	case FocusContent:
		switch msg.String() {
		case "esc":
			m.applyContent()
			m.body.Blur()
			m.editorFocus = FocusRail
			return m, nil
		}
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}
	return m, nil
}

// syncEditorFields refreshes the inputs from the selected slide.
func (m *Model) syncEditorFields() {
	s := m.editor.SelectedSlide()
	m.titleIn.SetValue(s.Title)
	m.body.SetValue(s.Content)
}

func (m *Model) applyTitle() {
	if m.titleIn.Value() != m.editor.SelectedSlide().Title {
		m.editor.SetTitle(m.titleIn.Value())
		m.dirty = true
	}
}

func (m *Model) applyContent() {
	if m.body.Value() != m.editor.SelectedSlide().Content {
		m.editor.SetContent(m.body.Value())
		m.dirty = true
	}
}

// saveCmd pushes the full current state to the store. The editor keeps
// ownership; the store gets a snapshot.
func (m Model) saveCmd() tea.Cmd {
	st := m.store
	snapshot := m.editor.Presentation().Clone()
	return func() tea.Msg {
		if err := st.Save(snapshot); err != nil {
			return errMsg{fmt.Errorf("saving presentation: %w", err)}
		}
		return deckSavedMsg{id: snapshot.ID}
	}
}

// imageCmd generates an image for one slide.
func (m Model) imageCmd(s deck.Slide) tea.Cmd {
	gen := m.gen
	themeTag := m.editor.Presentation().Theme
	styleHint := themeTag
	if def, ok := m.themes.Get(themeTag); ok && def.Style != "" {
		styleHint = def.Style
	}
	return func() tea.Msg {
		prompt := fmt.Sprintf("Presentation illustration for %q. Visual style: %s. No embedded text.", s.Title, styleHint)
		ref, err := gen.Image(genContext(), prompt, generation.SizeForLayout(s.Layout))
		if err != nil {
			return errMsg{err}
		}
		return imageGeneratedMsg{slideID: s.ID, ref: ref}
	}
}
