package swipe

import (
	"sort"
	"time"
)

// Table owns one Channel per task id. Entries follow the task lifecycle
// (Ensure on appearance, Remove on deletion), not rendering, so filtering
// the view never resets a row mid-gesture.
type Table struct {
	chans map[int]*Channel
}

func NewTable() *Table {
	return &Table{chans: map[int]*Channel{}}
}

func (t *Table) Ensure(id int) *Channel {
	if c, ok := t.chans[id]; ok {
		return c
	}
	c := &Channel{}
	t.chans[id] = c
	return c
}

func (t *Table) Get(id int) (*Channel, bool) {
	c, ok := t.chans[id]
	return c, ok
}

func (t *Table) Remove(id int) {
	delete(t.chans, id)
}

func (t *Table) Len() int { return len(t.chans) }

// Offset returns 0 for unknown ids.
func (t *Table) Offset(id int) float64 {
	if c, ok := t.chans[id]; ok {
		return c.Offset()
	}
	return 0
}

func (t *Table) Animating() bool {
	for _, c := range t.chans {
		if c.Animating() {
			return true
		}
	}
	return false
}

// Step advances every running animation and returns the ids whose dismissal
// completed, in ascending order.
func (t *Table) Step(dt time.Duration) []int {
	var done []int
	for id, c := range t.chans {
		if c.Step(dt) {
			done = append(done, id)
		}
	}
	sort.Ints(done)
	return done
}
