package swipe

import (
	"math"
	"time"
)

const (
	// Threshold is the release displacement (logical units) past which a drag
	// commits to dismissal. Releases must be strictly more negative.
	Threshold = -100.0

	// DismissDuration is how long the slide-out runs before the task is deleted.
	DismissDuration = 200 * time.Millisecond

	// UnitsPerCell maps one terminal column to logical units.
	UnitsPerCell = 10.0
)

type State int

const (
	Idle State = iota
	Dragging
	AnimatingOut
	SpringingBack
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case AnimatingOut:
		return "animating-out"
	case SpringingBack:
		return "springing-back"
	default:
		return "unknown"
	}
}

// Channel is the horizontal-offset animation state of one task row.
type Channel struct {
	state  State
	offset float64
	anim   animation
}

func (c *Channel) State() State     { return c.state }
func (c *Channel) Offset() float64  { return c.offset }
func (c *Channel) Animating() bool  { return c.anim != nil }
func (c *Channel) Dismissing() bool { return c.state == AnimatingOut }

// Cells is the offset in whole terminal columns.
func (c *Channel) Cells() int {
	return int(math.Round(c.offset / UnitsPerCell))
}

// FromCells converts a column displacement into logical units.
func FromCells(dx int) float64 {
	return float64(dx) * UnitsPerCell
}

// DragStart begins tracking a gesture. A running springback is interrupted;
// a dismissal cannot be.
func (c *Channel) DragStart() bool {
	if c.state == AnimatingOut {
		return false
	}
	c.state = Dragging
	c.anim = nil
	return true
}

// DragMove tracks the gesture displacement 1:1, unclamped.
func (c *Channel) DragMove(dx float64) {
	if c.state != Dragging {
		return
	}
	c.offset = dx
}

// DragEnd releases the gesture at displacement dx.
func (c *Channel) DragEnd(dx float64) {
	if c.state != Dragging {
		return
	}
	c.offset = dx
	if dx < Threshold {
		c.dismiss()
		return
	}
	if c.offset == 0 {
		c.state = Idle
		c.anim = nil
		return
	}
	c.state = SpringingBack
	c.anim = newSpring()
}

// Tap starts the dismissal directly, as if a qualifying swipe was released.
func (c *Channel) Tap() bool {
	if c.state == AnimatingOut || c.state == Dragging {
		return false
	}
	c.dismiss()
	return true
}

func (c *Channel) dismiss() {
	c.state = AnimatingOut
	c.anim = newLinear(c.offset, Threshold, DismissDuration)
}

// Step advances a running animation by dt. It reports true exactly once, when
// a dismissal finishes; the caller deletes the task and the channel is reset.
func (c *Channel) Step(dt time.Duration) (dismissed bool) {
	if c.anim == nil {
		return false
	}
	pos, done := c.anim.step(c.offset, dt)
	c.offset = pos
	if !done {
		return false
	}
	dismissed = c.state == AnimatingOut
	c.Reset()
	return dismissed
}

// Reset returns the channel to idle at offset 0.
func (c *Channel) Reset() {
	c.state = Idle
	c.offset = 0
	c.anim = nil
}
