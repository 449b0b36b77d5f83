package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the simulation clock by one fixed step.
func UpdateClock(e *ecs.ECS) {
	Advance(e, 1/float64(ebiten.TPS()))
}
