package tui

import "swipetodo/internal/swipe"

// Screen rows. View and mouse hit-testing both use these, so they cannot drift.
const (
	yTitle     = 0
	yNewTask   = 2
	yAddButton = 3
	ySearch    = 5
	yHeading   = 7
	yListTop   = 9

	// blank, status line, key help
	footerLines = 3

	padX = 2

	addButtonLabel = "[ Add Task ]"
	deleteLabel    = "[Delete]"
)

func (m appModel) contentWidth() int {
	w := m.width - 2*padX
	if w < 24 {
		w = 24
	}
	return w
}

func (m appModel) visibleRows() int {
	n := m.height - yListTop - footerLines
	if n < 1 {
		n = 1
	}
	return n
}

// deleteStart is the content-relative column of a resting row's delete control.
func (m appModel) deleteStart() int {
	return m.contentWidth() - len(deleteLabel)
}

type hitKind int

const (
	hitNone hitKind = iota
	hitNewTask
	hitAddButton
	hitSearch
	hitRow
	hitDelete
)

type hit struct {
	kind hitKind
	// index into the filtered view for hitRow/hitDelete.
	index int
	id    int
}

func (m appModel) hitTest(x, y int) hit {
	switch y {
	case yNewTask:
		return hit{kind: hitNewTask}
	case yAddButton:
		if x >= padX && x < padX+len(addButtonLabel) {
			return hit{kind: hitAddButton}
		}
		return hit{}
	case ySearch:
		return hit{kind: hitSearch}
	}

	if y < yListTop || y >= yListTop+m.visibleRows() {
		return hit{}
	}
	rows := m.h.Store().Filtered()
	idx := m.scroll + (y - yListTop)
	if idx < 0 || idx >= len(rows) {
		return hit{}
	}
	id := rows[idx].ID

	// The delete control moves with the row.
	shift := 0
	if c := m.h.Channel(id); c != nil {
		shift = c.Cells()
	}
	start := padX + m.deleteStart() + shift
	if x >= start && x < start+len(deleteLabel) {
		return hit{kind: hitDelete, index: idx, id: id}
	}
	return hit{kind: hitRow, index: idx, id: id}
}

// dragUnits converts a mouse displacement in columns to swipe units.
func dragUnits(dx int) float64 { return swipe.FromCells(dx) }
