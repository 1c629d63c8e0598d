package tui

import (
	"fmt"
	"strings"

	"swipetodo/internal/docs"
	"swipetodo/internal/model"
	"swipetodo/internal/swipe"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	if m.showHelp {
		return m.viewHelp()
	}

	w := m.contentWidth()
	pad := strings.Repeat(" ", padX)
	lines := make([]string, 0, m.height)
	add := func(s string) { lines = append(lines, pad+s) }

	lines = append(lines, gradientBar("Tasks", m.width)) // yTitle
	add("")
	add(renderInputLine(w, m.newInput.View(), m.focus == focusNewTask)) // yNewTask
	add(m.viewAddButton())                                              // yAddButton
	add("")
	add(renderInputLine(w, m.search.View(), m.focus == focusSearch)) // ySearch
	add("")
	add(lipgloss.NewStyle().Bold(true).Width(w).Align(lipgloss.Center).Render("Items")) // yHeading
	add("")

	for _, row := range m.viewRows(w) { // yListTop...
		add(row)
	}

	for len(lines) < m.height-footerLines+1 {
		lines = append(lines, "")
	}
	add(styleMuted().Render(xansi.Truncate(m.statusText, w, glyphEllipsis())))
	if m.focus == focusList {
		add(m.help.View(listHelp(m.keys)))
	} else {
		add(m.help.View(inputHelp(m.keys)))
	}
	return strings.Join(lines, "\n")
}

func (m appModel) viewAddButton() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccentFg).
		Background(colorAccent).
		Render(addButtonLabel)
}

func (m appModel) viewRows(w int) []string {
	st := m.h.Store()
	rows := st.Filtered()
	vis := m.visibleRows()

	if len(rows) == 0 {
		out := []string{styleMuted().Render(m.emptyText())}
		return out
	}

	end := m.scroll + vis
	if end > len(rows) {
		end = len(rows)
	}
	out := make([]string, 0, end-m.scroll)
	for i := m.scroll; i < end; i++ {
		out = append(out, m.renderRow(rows[i], i == m.selected && m.focus == focusList, w))
	}
	return out
}

func (m appModel) emptyText() string {
	st := m.h.Store()
	if st.Len() == 0 {
		return "No tasks"
	}
	if t, ok := st.Suggest(st.Query()); ok {
		return fmt.Sprintf("No matching tasks. Did you mean %q?", t.Title)
	}
	return "No matching tasks"
}

// renderRow renders one task at its current swipe offset.
func (m appModel) renderRow(t model.Task, selected bool, w int) string {
	var (
		shift int
		armed bool
		state = swipe.Idle
	)
	if c := m.h.Channel(t.ID); c != nil {
		shift = c.Cells()
		state = c.State()
		armed = state == swipe.Dragging && c.Offset() < swipe.Threshold
	}

	lead := glyphBullet()
	if selected {
		lead = glyphSelected()
	}
	if state == swipe.AnimatingOut || armed {
		lead = glyphSwipeLeft()
	}

	titleW := w - xansi.StringWidth(lead) - 1 - len(deleteLabel) - 1
	if titleW < 1 {
		titleW = 1
	}
	title := xansi.Truncate(t.Title, titleW, glyphEllipsis())
	title += strings.Repeat(" ", titleW-xansi.StringWidth(title))

	base := lipgloss.NewStyle().Foreground(colorTaskText)
	switch {
	case armed:
		base = base.Background(colorArmedBg)
	case selected:
		base = base.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	del := lipgloss.NewStyle().Foreground(colorDangerFg).Background(colorDanger).Render(deleteLabel)
	row := base.Render(lead+" "+title+" ") + del

	return shiftRow(row, shift, w)
}

// shiftRow moves a rendered row horizontally by n cells within width w,
// filling the exposed side with blanks.
func shiftRow(row string, n, w int) string {
	switch {
	case n == 0:
		return row
	case n <= -w || n >= w:
		return strings.Repeat(" ", w)
	case n < 0:
		return xansi.Cut(row, -n, w) + "\x1b[0m" + strings.Repeat(" ", -n)
	default:
		return strings.Repeat(" ", n) + xansi.Truncate(row, w-n, "") + "\x1b[0m"
	}
}

func (m appModel) viewHelp() string {
	w := m.contentWidth()
	var parts []string
	for _, topic := range []string{"keys", "swipe"} {
		if body, ok := docs.Get(topic); ok {
			parts = append(parts, docs.Render(body, w, m.helpStyle))
		}
	}
	parts = append(parts, styleMuted().Render("? or esc: close"))
	return strings.Join(parts, "\n\n")
}
