// Package app provides the interactive TUI for deckforge. The
// functionality is split across multiple files:
//   - model.go: Types, messages, constructor, Init (this file)
//   - update.go: Update loop and global keybindings
//   - dashboard.go: Presentation list and creation flow
//   - editor.go: Slide editing flow
//   - viewer.go: Full-screen playback flow
//   - view.go: Rendering functions
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"deckforge/cmd/forge/ui"
	"deckforge/internal/auth"
	"deckforge/internal/config"
	"deckforge/internal/deck"
	"deckforge/internal/generation"
	"deckforge/internal/player"
	"deckforge/internal/store"
	"deckforge/internal/theme"
)

// ViewMode determines which view is active.
type ViewMode int

const (
	DashboardView ViewMode = iota
	EditorView
	ViewerView
)

// EditorFocus determines which editor pane receives input.
type EditorFocus int

const (
	FocusRail    EditorFocus = iota // slide rail: structural operations
	FocusTitle                      // title line editing
	FocusContent                    // markdown body editing
)

// deckItem is a list item for the dashboard presentation list.
type deckItem struct {
	id      string
	title   string
	slides  int
	updated time.Time
}

func (i deckItem) Title() string { return i.title }
func (i deckItem) Description() string {
	return fmt.Sprintf("%d slides · updated %s", i.slides, i.updated.Local().Format("Jan 2 15:04"))
}
func (i deckItem) FilterValue() string { return i.title }

// Model is the main model for the deckforge TUI.
type Model struct {
	// UI components
	styles   ui.Styles
	topic    textinput.Model
	titleIn  textinput.Model
	body     textarea.Model
	spinner  spinner.Model
	deckList list.Model
	renderer *glamour.TermRenderer

	viewMode ViewMode
	width    int
	height   int
	ready    bool

	// Backend
	cfg     config.Config
	store   *store.Store
	gen     generation.Generator
	themes  *theme.Catalog
	authw   *auth.Watcher
	session auth.Session
	sessCh  <-chan auth.Session
	unsub   func()

	// Editor state
	editor      *deck.Editor
	editorFocus EditorFocus
	dirty       bool

	// Viewer state
	play *player.Player

	// Busy flags: one in-flight request per user action, the triggering
	// control stays disabled while its flag is set.
	isGenerating   bool
	isSaving       bool
	isIllustrating bool

	// Transient status line
	statusMessage string
	err           error

	shutdownOnce *sync.Once // pointer so Model copies share the guard
}

// Deps carries the collaborators the TUI needs.
type Deps struct {
	Config config.Config
	Store  *store.Store
	Gen    generation.Generator
	Themes *theme.Catalog
	Auth   *auth.Watcher

	// Open, when set, skips the dashboard and opens this presentation in
	// the editor. StartPresenting additionally jumps straight into the
	// viewer (forge present <id>).
	Open            *deck.Presentation
	StartPresenting bool
}

// New builds the initial model on the dashboard view.
func New(deps Deps) Model {
	styles := ui.DefaultStyles()
	if deps.Config.Theme == "dark" {
		styles = ui.NewStyles(ui.DarkTheme())
	} else if deps.Config.Theme == "light" {
		styles = ui.NewStyles(ui.LightTheme())
	}

	topic := textinput.New()
	topic.Placeholder = "Describe your presentation... (Enter to generate)"
	topic.Prompt = "│ "
	topic.CharLimit = 512
	topic.Width = 60
	topic.PromptStyle = styles.Prompt
	topic.TextStyle = styles.UserInput
	topic.Focus()

	titleIn := textinput.New()
	titleIn.Prompt = "Title: "
	titleIn.CharLimit = 200
	titleIn.PromptStyle = styles.Prompt

	body := textarea.New()
	body.Placeholder = "Slide content (markdown)"
	body.CharLimit = 4096
	body.SetWidth(60)
	body.SetHeight(10)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(styles.Theme.Accent).BorderForeground(styles.Theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(styles.Theme.Muted).BorderForeground(styles.Theme.Accent)
	dl := list.New(nil, delegate, 60, 14)
	dl.Title = "Your Presentations"
	dl.SetShowStatusBar(false)
	dl.SetFilteringEnabled(true)

	var renderer *glamour.TermRenderer
	if styles.Theme.IsDark {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	} else {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(72),
		)
	}

	session, sessCh, unsub := deps.Auth.Subscribe()

	m := Model{
		styles:   styles,
		topic:    topic,
		titleIn:  titleIn,
		body:     body,
		spinner:  sp,
		deckList: dl,
		renderer: renderer,
		viewMode: DashboardView,
		cfg:      deps.Config,
		store:    deps.Store,
		gen:      deps.Gen,
		themes:   deps.Themes,
		authw:    deps.Auth,
		session:  session,
		sessCh:   sessCh,
		unsub:    unsub,

		shutdownOnce: &sync.Once{},
	}

	if deps.Open != nil {
		m.openEditor(deps.Open)
		if deps.StartPresenting {
			m.play = player.New(deps.Open.SlideCount())
			m.viewMode = ViewerView
		}
	}
	return m
}

// Init kicks off the spinner, the session watch, and the initial list load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.loadDecksCmd(),
		m.waitForSession(),
	)
}

// Shutdown releases subscriptions. Safe to call multiple times.
func (m *Model) Shutdown() {
	m.shutdownOnce.Do(func() {
		if m.unsub != nil {
			m.unsub()
		}
	})
}

// performShutdown is a value-receiver wrapper usable from Update.
func (m Model) performShutdown() {
	ptr := &m
	ptr.Shutdown()
}

// autoplayInterval returns the configured autoplay delay.
func (m Model) autoplayInterval() time.Duration {
	if m.cfg.AutoplaySeconds > 0 {
		return time.Duration(m.cfg.AutoplaySeconds) * time.Second
	}
	return player.AutoplayInterval
}

// =============================================================================
// MESSAGES
// =============================================================================

type (
	errMsg struct{ err error }

	// Dashboard
	decksLoadedMsg   []*deck.Presentation
	deckGeneratedMsg struct{ pres *deck.Presentation }
	deckOpenedMsg    struct{ pres *deck.Presentation }

	// Editor
	deckSavedMsg      struct{ id string }
	imageGeneratedMsg struct {
		slideID string
		ref     string
	}

	// Viewer timers
	autoplayTickMsg struct{ epoch int }
	controlsTickMsg struct{ epoch int }

	// Auth
	sessionMsg auth.Session
)

// ThemesReloadedMsg is sent from outside the program when the user theme
// file changes on disk.
type ThemesReloadedMsg struct{}

// waitForSession listens for auth updates.
func (m Model) waitForSession() tea.Cmd {
	ch := m.sessCh
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return sessionMsg(s)
	}
}

// autoplayTickCmd schedules the next autoplay advance for the given epoch.
func (m Model) autoplayTickCmd(epoch int) tea.Cmd {
	return tea.Tick(m.autoplayInterval(), func(time.Time) tea.Msg {
		return autoplayTickMsg{epoch: epoch}
	})
}

// controlsTickCmd schedules the controls auto-hide for the given epoch.
func controlsTickCmd(epoch int) tea.Cmd {
	return tea.Tick(player.ControlsTimeout, func(time.Time) tea.Msg {
		return controlsTickMsg{epoch: epoch}
	})
}

// genContext returns the context used for gateway calls. Requests are
// fire-and-forget: no timeout, no cancellation, no retry.
func genContext() context.Context {
	return context.Background()
}
