package interact

import "time"

// Event is one user or runtime input to the Handler.
type Event interface{ isEvent() }

// NewTitleChanged updates the pending title of the "new task" field.
type NewTitleChanged struct{ Text string }

// AddTapped commits the pending title.
type AddTapped struct{}

// SearchChanged replaces the search query; sent on every keystroke.
type SearchChanged struct{ Text string }

// RowTapped is a tap on a row body. It dismisses with animation.
type RowTapped struct{ ID int }

// DeleteTapped is a tap on a row's delete control. It deletes immediately.
type DeleteTapped struct{ ID int }

type DragStarted struct{ ID int }

// DragMoved carries the displacement from the drag origin, in logical units.
type DragMoved struct {
	ID int
	DX float64
}

// DragEnded carries the final displacement at release.
type DragEnded struct {
	ID int
	DX float64
}

// Frame advances running animations by DT.
type Frame struct{ DT time.Duration }

func (NewTitleChanged) isEvent() {}
func (AddTapped) isEvent()       {}
func (SearchChanged) isEvent()   {}
func (RowTapped) isEvent()       {}
func (DeleteTapped) isEvent()    {}
func (DragStarted) isEvent()     {}
func (DragMoved) isEvent()       {}
func (DragEnded) isEvent()       {}
func (Frame) isEvent()           {}
