package interact

import (
	"io"
	"log/slog"

	"swipetodo/internal/model"
	"swipetodo/internal/store"
	"swipetodo/internal/swipe"
)

// Result describes what an event changed, for the UI to react to.
type Result struct {
	Added   *model.Task
	Deleted []int
	// DismissKeyboard is set after a successful add; the UI blurs the field.
	DismissKeyboard bool
}

// Handler maps input events onto the task store and the swipe channels.
// It holds no copy of the task list.
type Handler struct {
	store   *store.Store
	swipes  *swipe.Table
	pending string
	log     *slog.Logger
}

func New(st *store.Store, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := &Handler{
		store:  st,
		swipes: swipe.NewTable(),
		log:    log,
	}
	for _, t := range st.Tasks() {
		h.swipes.Ensure(t.ID)
	}
	return h
}

func (h *Handler) Store() *store.Store { return h.store }

func (h *Handler) Pending() string { return h.pending }

// Offset is the current horizontal offset of a task row, in logical units.
func (h *Handler) Offset(id int) float64 { return h.swipes.Offset(id) }

// Channel exposes a row's swipe state (nil for unknown ids).
func (h *Handler) Channel(id int) *swipe.Channel {
	c, _ := h.swipes.Get(id)
	return c
}

// Animating reports whether any row needs further frames.
func (h *Handler) Animating() bool { return h.swipes.Animating() }

func (h *Handler) Handle(ev Event) Result {
	switch ev := ev.(type) {
	case NewTitleChanged:
		h.pending = ev.Text
	case AddTapped:
		t, ok := h.store.Add(h.pending)
		if !ok {
			return Result{}
		}
		h.pending = ""
		h.swipes.Ensure(t.ID)
		h.log.Debug("task added", "id", t.ID, "title", t.Title)
		return Result{Added: &t, DismissKeyboard: true}
	case SearchChanged:
		h.store.SetQuery(ev.Text)
	case DeleteTapped:
		if h.delete(ev.ID, "button") {
			return Result{Deleted: []int{ev.ID}}
		}
	case RowTapped:
		if c, ok := h.swipes.Get(ev.ID); ok && c.Tap() {
			h.log.Debug("swipe dismiss", "id", ev.ID, "cause", "tap")
		}
	case DragStarted:
		if c, ok := h.swipes.Get(ev.ID); ok {
			c.DragStart()
		}
	case DragMoved:
		if c, ok := h.swipes.Get(ev.ID); ok {
			c.DragMove(ev.DX)
		}
	case DragEnded:
		if c, ok := h.swipes.Get(ev.ID); ok {
			c.DragEnd(ev.DX)
			h.log.Debug("swipe release", "id", ev.ID, "dx", ev.DX, "state", c.State().String())
		}
	case Frame:
		var out Result
		for _, id := range h.swipes.Step(ev.DT) {
			if h.delete(id, "swipe") {
				out.Deleted = append(out.Deleted, id)
			}
		}
		return out
	}
	return Result{}
}

func (h *Handler) delete(id int, cause string) bool {
	h.swipes.Remove(id)
	if !h.store.Delete(id) {
		return false
	}
	h.log.Debug("task deleted", "id", id, "cause", cause)
	return true
}
