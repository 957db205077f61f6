package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"deckforge/cmd/forge/ui"
	"deckforge/internal/deck"
)

// View renders the active view.
func (m Model) View() string {
	if !m.ready {
		return "Loading deckforge..."
	}
	switch m.viewMode {
	case EditorView:
		return m.viewEditor()
	case ViewerView:
		return m.viewViewer()
	default:
		return m.viewDashboard()
	}
}

// =============================================================================
// DASHBOARD
// =============================================================================

func (m Model) viewDashboard() string {
	var b strings.Builder

	b.WriteString(ui.Logo(m.styles))
	b.WriteString("\n")
	b.WriteString(m.authBadge())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Subtitle.Render("Create a presentation"))
	b.WriteString("\n")
	b.WriteString(m.topic.View())
	b.WriteString("\n")
	if m.isGenerating {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Muted.Render(" generating..."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.deckList.View())
	b.WriteString("\n")

	b.WriteString(m.statusLine("enter: open/generate · tab: switch focus · ctrl+r: refresh · ctrl+c: quit"))
	return b.String()
}

// authBadge renders the session state from the auth watcher.
func (m Model) authBadge() string {
	switch {
	case m.session.Loading:
		return m.styles.Muted.Render("checking session...")
	case m.session.SignedIn():
		return m.styles.Success.Render("● " + m.session.User.Email)
	default:
		return m.styles.Warning.Render("○ signed out (forge auth login)")
	}
}

// =============================================================================
// EDITOR
// =============================================================================

func (m Model) viewEditor() string {
	pres := m.editor.Presentation()

	rail := m.viewRail()
	pane := m.viewEditPane()

	main := lipgloss.JoinHorizontal(lipgloss.Top, rail, "  ", pane)

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(fmt.Sprintf("Editing: %s", pres.Title)))
	b.WriteString("  ")
	b.WriteString(m.styles.Badge.Render(pres.Theme))
	if m.dirty {
		b.WriteString("  ")
		b.WriteString(m.styles.Warning.Render("● unsaved"))
	}
	if m.isSaving || m.isIllustrating {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n\n")
	b.WriteString(main)
	b.WriteString("\n")
	b.WriteString(m.statusLine(m.editorHelp()))
	return b.String()
}

func (m Model) viewRail() string {
	pres := m.editor.Presentation()
	var b strings.Builder
	for i, s := range pres.Slides {
		label := fmt.Sprintf("%2d %s %s", i+1, layoutGlyph(s.Layout), truncate(s.Title, 18))
		if i == m.editor.Selected() {
			b.WriteString(m.styles.RailSelected.Render(label))
		} else {
			b.WriteString(m.styles.RailItem.Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewEditPane() string {
	s := m.editor.SelectedSlide()
	var b strings.Builder

	switch m.editorFocus {
	case FocusTitle:
		b.WriteString(m.titleIn.View())
	default:
		b.WriteString(m.styles.Bold.Render("Title: "))
		b.WriteString(m.styles.Body.Render(s.Title))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("layout: %s", s.Layout)))
	if s.ImageRef != "" {
		b.WriteString(m.styles.Muted.Render("  image: " + truncate(s.ImageRef, 40)))
	}
	b.WriteString("\n\n")

	if m.editorFocus == FocusContent {
		b.WriteString(m.body.View())
	} else {
		b.WriteString(m.renderMarkdown(s.Content))
	}

	return m.styles.SlideFrame.Render(b.String())
}

func (m Model) editorHelp() string {
	switch m.editorFocus {
	case FocusTitle:
		return "enter/tab: edit content · esc: back to rail"
	case FocusContent:
		// Tab inserts a literal tab in the body; only esc leaves.
		return "esc: apply and back to rail"
	}
	return "↑/↓: select · a: add · d: duplicate · x: delete · shift+↑/↓: move · l: layout · t: theme · i: image · ctrl+s: save · p: present · esc: dashboard"
}

// =============================================================================
// VIEWER
// =============================================================================

func (m Model) viewViewer() string {
	pres := m.editor.Presentation()
	s := pres.Slides[m.play.Index()]

	frameWidth := m.width - 8
	if frameWidth < 20 {
		frameWidth = 20
	}

	var b strings.Builder
	b.WriteString(m.styles.SlideTitle.Width(frameWidth).Render(s.Title))
	b.WriteString("\n")

	switch s.Layout {
	case deck.LayoutTitle:
		b.WriteString(m.styles.Subtitle.Width(frameWidth).Align(lipgloss.Center).Render(pres.Title))
	case deck.LayoutImage:
		b.WriteString(m.viewImagePlaceholder(s, frameWidth))
		if s.Content != "" {
			b.WriteString("\n")
			b.WriteString(m.styles.SlideCaption.Render(firstLine(s.Content)))
		}
	case deck.LayoutSplit:
		body := m.renderMarkdown(s.Content)
		img := m.viewImagePlaceholder(s, frameWidth/2)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", img))
	default:
		b.WriteString(m.renderMarkdown(s.Content))
	}

	slide := m.styles.SlideFrame.Width(frameWidth).Render(b.String())

	var out strings.Builder
	out.WriteString(slide)
	out.WriteString("\n")
	out.WriteString(m.styles.Progress.Render(fmt.Sprintf("%d / %d", m.play.Index()+1, m.play.SlideCount())))
	if m.play.Autoplay() {
		out.WriteString(m.styles.Badge.Render(" ▶ auto "))
	}
	out.WriteString("\n")

	if m.play.ControlsVisible() {
		out.WriteString(m.styles.ControlsBar.Render("→/space: next · ←: prev · a: autoplay · f: fullscreen · r: restart · esc: back"))
	}
	return out.String()
}

func (m Model) viewImagePlaceholder(s deck.Slide, width int) string {
	if s.ImageRef == "" {
		return m.styles.Muted.Width(width).Render("[ no image — press i in the editor ]")
	}
	return m.styles.SlideCaption.Width(width).Render("🖼  " + truncate(s.ImageRef, width-4))
}

// =============================================================================
// HELPERS
// =============================================================================

// renderMarkdown renders slide body markdown through glamour, falling back
// to the raw text when the renderer is unavailable.
func (m Model) renderMarkdown(content string) string {
	if content == "" {
		return m.styles.Muted.Render("(empty slide)")
	}
	if m.renderer == nil {
		return m.styles.SlideBody.Render(content)
	}
	out, err := m.renderer.Render(content)
	if err != nil {
		return m.styles.SlideBody.Render(content)
	}
	return strings.TrimRight(out, "\n")
}

func (m Model) statusLine(help string) string {
	var b strings.Builder
	if m.statusMessage != "" {
		b.WriteString(m.styles.Info.Render(m.statusMessage))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Footer.Render(help))
	return b.String()
}

func layoutGlyph(l deck.Layout) string {
	switch l {
	case deck.LayoutTitle:
		return "◆"
	case deck.LayoutImage:
		return "▣"
	case deck.LayoutSplit:
		return "◫"
	default:
		return "≡"
	}
}

// truncate shortens s to max runes. Slicing by runes keeps multibyte
// titles valid UTF-8.
func truncate(s string, max int) string {
	if max < 1 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
