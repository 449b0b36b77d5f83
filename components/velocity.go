package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// VelocityData is a desired direction and a scalar speed in pixels per second.
type VelocityData struct {
	Dir   math.Vec2
	Speed float64
}

var Velocity = donburi.NewComponentType[VelocityData]()
