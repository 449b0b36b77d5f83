package systems

import (
	"image/color"

	"github.com/automoto/coffin-escape/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var debugColors = map[components.Category]color.RGBA{
	components.CategoryWall:       {100, 100, 100, 255},
	components.CategoryPistonWall: {100, 100, 100, 255},
	components.CategoryBreakable:  {160, 110, 60, 255},
	components.CategoryDoor:       {255, 160, 0, 255},
	components.CategorySpawner:    {160, 0, 200, 255},
	components.CategoryPlayer:     {0, 0, 255, 255},
	components.CategoryEnemy:      {255, 0, 0, 255},
	components.CategoryProjectile: {0, 255, 0, 255},
}

// DrawDebug outlines every collision object in view while debug drawing is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	game := gameOf(e)
	if game == nil || !game.Debug {
		return
	}
	space := spaceOf(e)
	if space == nil {
		return
	}

	offset := cameraOffset(e, screen)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		x := obj.X + offset.X
		y := obj.Y + offset.Y
		// Cull objects outside viewport
		if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		for category, known := range debugColors {
			if obj.HasTags(category.String()) {
				c = known
				break
			}
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}
