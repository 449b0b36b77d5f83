package components

import (
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Category classifies every spatial body for collision queries.
type Category int

const (
	CategoryWall Category = iota
	CategoryPistonWall
	CategoryBreakable
	CategoryDoor
	CategoryButton
	CategorySpawner
	CategoryPlayer
	CategoryEnemy
	CategoryProjectile
	CategoryKey
)

var categoryNames = [...]string{
	CategoryWall:       "wall",
	CategoryPistonWall: "pistonwall",
	CategoryBreakable:  "breakable",
	CategoryDoor:       "door",
	CategoryButton:     "button",
	CategorySpawner:    "spawner",
	CategoryPlayer:     "player",
	CategoryEnemy:      "enemy",
	CategoryProjectile: "projectile",
	CategoryKey:        "key",
}

// String is also the resolv tag for the category.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Static reports whether bodies of this category never move on their own and
// block actors. Doors move, but only along their track, and still count.
func (c Category) Static() bool {
	return c <= CategorySpawner
}

// BodyData is the visual rectangle of an actor, centred on Pos. The hitbox lives
// in the Object component.
type BodyData struct {
	Category Category
	Pos      math.Vec2
	W, H     float64
	Mask     *gamemath.Mask
}

// VisualRect returns the render bounds.
func (b *BodyData) VisualRect() gamemath.Rect {
	return gamemath.RectFromCenter(b.Pos, b.W, b.H)
}

var Body = donburi.NewComponentType[BodyData]()
