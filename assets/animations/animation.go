package animations

import "math"

// Animator is a float frame accumulator advanced by wall-clock delta time.
type Animator struct {
	Rate  float64 // frames per second
	index float64
}

func NewAnimator(rate float64) *Animator {
	return &Animator{Rate: rate}
}

// Advance moves the accumulator by Rate*dt over a sequence of length frames.
// It reports whether the sequence wrapped during this step. When loop is false the
// index holds on the last frame after wrapping. Empty sequences never advance.
func (a *Animator) Advance(dt float64, length int, loop bool) (wrapped bool) {
	if length <= 0 {
		a.index = 0
		return false
	}
	a.index += a.Rate * dt
	if a.index < float64(length) {
		return false
	}
	if loop {
		a.index = math.Mod(a.index, float64(length))
	} else {
		a.index = float64(length - 1)
	}
	return true
}

// Frame returns the current integer frame for a sequence of length frames.
func (a *Animator) Frame(length int) int {
	if length <= 0 {
		return 0
	}
	f := int(a.index)
	if f >= length {
		return length - 1
	}
	return f
}

// Index returns the raw accumulator value.
func (a *Animator) Index() float64 {
	return a.index
}

func (a *Animator) Restart() {
	a.index = 0
}
