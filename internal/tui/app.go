package tui

import (
	"log/slog"

	"swipetodo/internal/interact"
	"swipetodo/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the screen.
type Options struct {
	Store     *store.Store
	Mouse     bool
	Glyphs    string
	HelpStyle string
	Logger    *slog.Logger
}

type focus int

const (
	focusNewTask focus = iota
	focusSearch
	focusList
	focusCount
)

func (f focus) String() string {
	switch f {
	case focusNewTask:
		return "new-task"
	case focusSearch:
		return "search"
	default:
		return "list"
	}
}

// frameMsg advances swipe animations by one frame.
type frameMsg struct{}

// drag tracks a mouse gesture from press to release.
type drag struct {
	id       int
	originX  int
	onDelete bool
	moved    bool
}

type appModel struct {
	h   *interact.Handler
	log *slog.Logger

	width  int
	height int

	focus    focus
	newInput textinput.Model
	search   textinput.Model

	// selected indexes the filtered view.
	selected int
	scroll   int

	drag    *drag
	ticking bool

	showHelp  bool
	helpStyle string
	keys      keyMap
	help      help.Model

	statusText string
}

func newAppModel(opts Options) appModel {
	st := opts.Store
	if st == nil {
		st = store.New()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	newInput := textinput.New()
	newInput.Placeholder = "Add new task"
	newInput.Prompt = "+ "
	newInput.CharLimit = 200

	search := textinput.New()
	search.Placeholder = "Search Tasks"
	search.Prompt = "/ "
	search.CharLimit = 200
	search.SetValue(st.Query())

	m := appModel{
		h:         interact.New(st, log),
		log:       log,
		width:     80,
		height:    24,
		newInput:  newInput,
		search:    search,
		helpStyle: opts.HelpStyle,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	m.setFocus(focusList)
	return m
}

func (m appModel) Init() tea.Cmd {
	// One-shot platform styling, like a status bar set at launch.
	return tea.SetWindowTitle("Tasks")
}

func (m *appModel) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.newInput.Blur()
	m.search.Blur()
	switch f {
	case focusNewTask:
		return m.newInput.Focus()
	case focusSearch:
		return m.search.Focus()
	}
	return nil
}

func (m *appModel) cycleFocus(delta int) tea.Cmd {
	next := (int(m.focus) + delta + int(focusCount)) % int(focusCount)
	return m.setFocus(focus(next))
}

// selectedID returns the id of the highlighted row, if any.
func (m appModel) selectedID() (int, bool) {
	rows := m.h.Store().Filtered()
	if m.selected < 0 || m.selected >= len(rows) {
		return 0, false
	}
	return rows[m.selected].ID, true
}

// clampSelection keeps the highlight and scroll window inside the filtered view.
func (m *appModel) clampSelection() {
	n := len(m.h.Store().Filtered())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	vis := m.visibleRows()
	if m.selected < m.scroll {
		m.scroll = m.selected
	}
	if m.selected >= m.scroll+vis {
		m.scroll = m.selected - vis + 1
	}
	if maxScroll := n - vis; m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// tick schedules the next animation frame unless one is already pending.
func (m *appModel) tick() tea.Cmd {
	if m.ticking || !m.h.Animating() {
		return nil
	}
	m.ticking = true
	return frameCmd()
}
