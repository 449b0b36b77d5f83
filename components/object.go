package components

import (
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the hitbox registered in the collision space.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the hitbox as a plain rectangle.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()
var Space = donburi.NewComponentType[resolv.Space]()
