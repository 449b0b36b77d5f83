package components

import (
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputData stores the current and previous tick's pressed state for all actions.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Pointer  math.Vec2 // screen space
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

// Press sets a for this tick, keeping the previous state for edge detection.
func (i *InputData) Press(a cfg.ActionID, down bool) {
	i.Current[a] = down
}

// Advance rolls the current state into the previous one.
func (i *InputData) Advance() {
	i.Previous = i.Current
}

var Input = donburi.NewComponentType[InputData]()
