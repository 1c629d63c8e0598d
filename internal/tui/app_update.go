package tui

import (
	"fmt"
	"time"

	"swipetodo/internal/interact"
	"swipetodo/internal/swipe"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func frameCmd() tea.Cmd {
	return tea.Tick(swipe.FrameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.contentWidth()
		m.newInput.Width = m.contentWidth() - 4
		m.search.Width = m.contentWidth() - 4
		m.clampSelection()
		return m, nil

	case frameMsg:
		m.ticking = false
		res := m.h.Handle(interact.Frame{DT: swipe.FrameInterval})
		m.afterResult(res)
		cmd := m.tick()
		return m, cmd

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// Cursor blink and other input-internal messages.
	var cmd tea.Cmd
	switch m.focus {
	case focusNewTask:
		m.newInput, cmd = m.newInput.Update(msg)
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Blur, m.keys.QuitList) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		cmd := m.cycleFocus(1)
		return m, cmd
	case key.Matches(msg, m.keys.PrevFocus):
		cmd := m.cycleFocus(-1)
		return m, cmd
	}

	switch m.focus {
	case focusNewTask:
		return m.updateNewTaskKey(msg)
	case focusSearch:
		return m.updateSearchKey(msg)
	default:
		return m.updateListKey(msg)
	}
}

func (m appModel) updateNewTaskKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Blur):
		cmd := m.setFocus(focusList)
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		return m.addTask()
	}
	var cmd tea.Cmd
	m.newInput, cmd = m.newInput.Update(msg)
	m.h.Handle(interact.NewTitleChanged{Text: m.newInput.Value()})
	return m, cmd
}

func (m appModel) updateSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Blur, m.keys.Submit) {
		cmd := m.setFocus(focusList)
		return m, cmd
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.h.Store().Query() {
		m.h.Handle(interact.SearchChanged{Text: m.search.Value()})
		m.selected = 0
		m.scroll = 0
	}
	m.clampSelection()
	return m, cmd
}

func (m appModel) updateListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.QuitList):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.NewTask):
		cmd := m.setFocus(focusNewTask)
		return m, cmd
	case key.Matches(msg, m.keys.Search):
		cmd := m.setFocus(focusSearch)
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		m.selected--
		m.clampSelection()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.selected++
		m.clampSelection()
		return m, nil
	case key.Matches(msg, m.keys.Swipe):
		if id, ok := m.selectedID(); ok {
			m.h.Handle(interact.RowTapped{ID: id})
		}
		cmd := m.tick()
		return m, cmd
	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.selectedID(); ok {
			m.afterResult(m.h.Handle(interact.DeleteTapped{ID: id}))
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) addTask() (tea.Model, tea.Cmd) {
	m.h.Handle(interact.NewTitleChanged{Text: m.newInput.Value()})
	res := m.h.Handle(interact.AddTapped{})
	if res.Added == nil {
		return m, nil
	}
	m.newInput.SetValue("")
	m.statusText = fmt.Sprintf("Added: %s", res.Added.Title)
	var cmd tea.Cmd
	if res.DismissKeyboard {
		cmd = m.setFocus(focusList)
	}
	m.clampSelection()
	return m, cmd
}

// afterResult reports deletions and keeps the highlight valid.
func (m *appModel) afterResult(res interact.Result) {
	switch len(res.Deleted) {
	case 0:
		return
	case 1:
		m.statusText = fmt.Sprintf("Deleted task %d", res.Deleted[0])
	default:
		m.statusText = fmt.Sprintf("Deleted %d tasks", len(res.Deleted))
	}
	if m.drag != nil {
		for _, id := range res.Deleted {
			if id == m.drag.id {
				m.drag = nil
				break
			}
		}
	}
	m.clampSelection()
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.showHelp {
			return m, nil
		}
		h := m.hitTest(msg.X, msg.Y)
		switch h.kind {
		case hitNewTask:
			cmd := m.setFocus(focusNewTask)
			return m, cmd
		case hitSearch:
			cmd := m.setFocus(focusSearch)
			return m, cmd
		case hitAddButton:
			return m.addTask()
		case hitRow, hitDelete:
			m.selected = h.index
			m.clampSelection()
			cmd := m.setFocus(focusList)
			m.drag = &drag{id: h.id, originX: msg.X, onDelete: h.kind == hitDelete}
			m.h.Handle(interact.DragStarted{ID: h.id})
			return m, cmd
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.drag == nil {
			return m, nil
		}
		dx := msg.X - m.drag.originX
		if dx != 0 {
			m.drag.moved = true
		}
		m.h.Handle(interact.DragMoved{ID: m.drag.id, DX: dragUnits(dx)})
		return m, nil

	case tea.MouseActionRelease:
		if m.drag == nil {
			return m, nil
		}
		d := *m.drag
		m.drag = nil
		dx := msg.X - d.originX
		m.h.Handle(interact.DragEnded{ID: d.id, DX: dragUnits(dx)})
		if dx == 0 && !d.moved {
			// A press and release in place is a tap.
			if d.onDelete {
				m.afterResult(m.h.Handle(interact.DeleteTapped{ID: d.id}))
			} else {
				m.h.Handle(interact.RowTapped{ID: d.id})
			}
		}
		cmd := m.tick()
		return m, cmd
	}
	return m, nil
}
