package components

import (
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type DoorData struct {
	Group  int
	Dir    math.Vec2 // cardinal unit vector
	Speed  float64
	Moving bool
	Pair   *donburi.Entry // non-owning, symmetric
	Stops  []gamemath.Rect
}

var Door = donburi.NewComponentType[DoorData]()
