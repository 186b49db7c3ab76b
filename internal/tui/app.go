// Package tui is the terminal front end: a thin consumer of the session's
// visible projection and load flags, dispatching user events back into it.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hackstories/hackstories/internal/browser"
	"github.com/hackstories/hackstories/internal/session"
	"github.com/hackstories/hackstories/internal/source"
	"github.com/hackstories/hackstories/internal/store"
	"github.com/hackstories/hackstories/internal/story"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeHelp
)

type App struct {
	sess *session.Session
	src  source.Source
	db   *store.Store // nil disables persistence of loaded collections

	visible story.Stories
	cursor  int
	focus   focusPane
	mode    mode

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model

	currentDate   string
	previewScroll int
	err           error // sticky until next keypress
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Session *session.Session
	Source  source.Source
	DB      *store.Store
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search stories..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100
	ti.SetValue(opts.Session.Term())

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	a := &App{
		sess:        opts.Session,
		src:         opts.Source,
		db:          opts.DB,
		searchInput: ti,
		spinner:     sp,
		currentDate: time.Now().Format("Jan 2"),
	}
	a.refreshVisible()
	return a
}

func (a *App) Init() tea.Cmd {
	return a.startLoad()
}

// startLoad enters the loading phase and kicks off a fetch, unless one is
// already outstanding.
func (a *App) startLoad() tea.Cmd {
	if !a.sess.Begin() {
		return nil
	}
	src := a.src
	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		stories, err := src.Fetch(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return storiesLoadedMsg{stories: stories}
	}
	return tea.Batch(fetch, a.spinner.Tick)
}

// refreshVisible recomputes the filtered projection and keeps the cursor in
// range.
func (a *App) refreshVisible() {
	a.visible = a.sess.Visible()
	if a.cursor >= len(a.visible) {
		a.cursor = max(0, len(a.visible)-1)
	}
	a.previewScroll = 0
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case storiesLoadedMsg:
		a.sess.Resolve(msg.stories, nil)
		a.refreshVisible()
		if a.db == nil {
			return a, nil
		}
		// Persist the last known-good collection asynchronously; a failed
		// write is dropped.
		db := a.db
		stories := msg.stories
		return a, func() tea.Msg {
			db.SaveStories(stories)
			return nil
		}

	case loadFailedMsg:
		a.sess.Resolve(nil, msg.err)
		return a, nil

	case openErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.sess.IsLoading() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	// Normal mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.focus == focusList && a.cursor < len(a.visible)-1 {
			a.cursor++
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.previewScroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		} else if a.focus == focusPreview && a.previewScroll > 0 {
			a.previewScroll--
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
		return a, nil
	case "o", "enter":
		if len(a.visible) > 0 && a.cursor < len(a.visible) {
			return a, openBrowserCmd(a.visible[a.cursor].URL)
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "x", "d", "backspace":
		if len(a.visible) > 0 && a.cursor < len(a.visible) {
			a.sess.Remove(a.visible[a.cursor])
			a.refreshVisible()
		}
		return a, nil
	case "R":
		a.sess.Restore()
		a.refreshVisible()
		return a, nil
	case "r":
		return a, a.startLoad()
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)

	// Only re-project on actual value changes, not cursor moves etc.
	if value := a.searchInput.Value(); value != before {
		a.sess.SetTerm(value)
		a.cursor = 0
		a.refreshVisible()
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  hackstories")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	// Layout calculations
	headerHeight := 1
	termHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - termHeight - statusHeight - 4 // borders

	listWidth := int(float64(a.width) * 0.45)
	previewWidth := a.width - listWidth - 1 // gap

	if contentHeight < 3 {
		contentHeight = 3
	}

	// Header
	headerLeft := headerStyle.Render("hackstories")
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// Term bar (replaced by the live input while searching)
	termBar := a.renderTermBar()
	if a.mode == modeSearch {
		termBar = a.searchInput.View()
	}

	// List pane
	innerListW := listWidth - 4 // border + padding
	listContent := renderList(a.visible, a.cursor, contentHeight, innerListW, a.emptyLabel())

	var listPane string
	if a.focus == focusList {
		listPane = listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	} else {
		listPane = listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	}

	// Preview pane
	var selected *story.Story
	if len(a.visible) > 0 && a.cursor < len(a.visible) {
		selected = &a.visible[a.cursor]
	}
	innerPreviewW := previewWidth - 4
	previewContent := renderPreview(selected, innerPreviewW, contentHeight, a.previewScroll)

	var previewPane string
	if a.focus == focusPreview {
		previewPane = previewPaneActiveStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	} else {
		previewPane = previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	}

	// Join panes
	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	// Status bar
	status := renderStatusBar(
		len(a.visible),
		len(a.sess.Stories()),
		a.sess.Term(),
		a.width,
		a.mode == modeSearch,
		a.sess.IsLoading(),
	)

	if a.sess.IsLoading() {
		status = a.spinner.View() + " " + status
	}

	// Error display: a failed load wins over transient UI errors
	if a.sess.IsError() {
		status = errorStyle.Render("Something went wrong: " + a.sess.Err().Error())
	} else if a.err != nil {
		status = errorStyle.Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, termBar, content, status)
}

// emptyLabel is what the list pane shows when no story is visible.
func (a *App) emptyLabel() string {
	switch {
	case a.sess.IsLoading():
		return "Loading stories..."
	case a.sess.IsError():
		return "Load failed"
	case a.sess.Term() != "":
		return "No stories match " + fmt.Sprintf("%q", a.sess.Term())
	default:
		return "No stories"
	}
}

func (a *App) renderTermBar() string {
	label := termLabelStyle.Render("Search: ")
	value := termValueStyle.Render(a.sess.Term())
	if a.sess.Term() == "" {
		value = termLabelStyle.Render("(all stories)")
	}
	return termBarStyle.Width(a.width).Render(label + value)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("hackstories")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Move through the story list\n" +
		"  tab           Switch focus between list and preview\n\n" +
		dim.Render("Stories") + "\n" +
		"  /             Search titles (live, persisted)\n" +
		"  x, d          Dismiss the selected story\n" +
		"  R             Restore the full list\n" +
		"  r             Reload from the source\n" +
		"  o, enter      Open story in browser\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
