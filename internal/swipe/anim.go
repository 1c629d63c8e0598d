package swipe

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FPS is the frame rate animations are stepped at.
const FPS = 60

// FrameInterval is the duration of one animation frame.
const FrameInterval = time.Second / FPS

// animation drives a channel's offset toward a target over successive frames.
type animation interface {
	step(pos float64, dt time.Duration) (float64, bool)
}

// linear moves from a fixed start to a fixed target over a fixed duration.
type linear struct {
	from     float64
	to       float64
	duration time.Duration
	elapsed  time.Duration
}

func newLinear(from, to float64, d time.Duration) *linear {
	return &linear{from: from, to: to, duration: d}
}

func (a *linear) step(_ float64, dt time.Duration) (float64, bool) {
	a.elapsed += dt
	if a.elapsed >= a.duration || a.duration <= 0 {
		return a.to, true
	}
	frac := float64(a.elapsed) / float64(a.duration)
	return a.from + (a.to-a.from)*frac, false
}

// Spring parameters. Under-damped so the row overshoots a little before settling.
const (
	springAngularFrequency = 12.0
	springDamping          = 0.4

	settleEpsilon = 0.5
	// maxSpringFrames bounds a springback so it always terminates.
	maxSpringFrames = 5 * FPS
)

// spring returns the offset to zero with a damped harmonic spring.
type spring struct {
	s      harmonica.Spring
	vel    float64
	frames int
}

func newSpring() *spring {
	return &spring{s: harmonica.NewSpring(harmonica.FPS(FPS), springAngularFrequency, springDamping)}
}

func (a *spring) step(pos float64, dt time.Duration) (float64, bool) {
	n := int(dt / FrameInterval)
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		pos, a.vel = a.s.Update(pos, a.vel, 0)
		a.frames++
		if settled(pos, a.vel) || a.frames >= maxSpringFrames {
			return 0, true
		}
	}
	return pos, false
}

func settled(pos, vel float64) bool {
	return math.Abs(pos) < settleEpsilon && math.Abs(vel) < settleEpsilon
}
