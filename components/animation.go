package components

import (
	"github.com/automoto/coffin-escape/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Set      *animations.Set
	Status   string // resolved key currently playing
	Animator *animations.Animator
	OneShot  bool
	shown    int
}

// SetStatus switches the playing sequence, restarting it when the resolved key changes.
func (a *AnimationData) SetStatus(status string, oneShot bool) {
	key := a.Set.Resolve(status)
	if key == a.Status && a.OneShot == oneShot {
		return
	}
	a.Status = key
	a.OneShot = oneShot
	a.Animator.Restart()
	a.shown = -1
}

// Frames returns the sequence currently playing.
func (a *AnimationData) Frames() []animations.Frame {
	return a.Set.Sequences[a.Status]
}

// FrameIndex returns the integer frame currently displayed.
func (a *AnimationData) FrameIndex() int {
	return a.Animator.Frame(len(a.Frames()))
}

// Current returns the displayed frame. Empty sequences yield a zero frame.
func (a *AnimationData) Current() animations.Frame {
	frames := a.Frames()
	if len(frames) == 0 {
		return animations.Frame{}
	}
	return frames[a.FrameIndex()]
}

// FrameChanged reports whether the displayed frame differs from the last call.
func (a *AnimationData) FrameChanged() bool {
	i := a.FrameIndex()
	if i == a.shown {
		return false
	}
	a.shown = i
	return true
}

var Animation = donburi.NewComponentType[AnimationData]()
