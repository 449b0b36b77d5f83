package systems

import (
	"math"

	"github.com/automoto/coffin-escape/components"
	"github.com/automoto/coffin-escape/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, keeping the level filling the screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := playerOf(e)
	if !ok {
		return
	}
	target := components.Body.Get(playerEntry).Pos

	if bounds, ok := levelBounds(e); ok {
		halfW := float64(config.C.Width) / 2
		halfH := float64(config.C.Height) / 2
		target.X = clampCamera(target.X, halfW, bounds.W-halfW)
		target.Y = clampCamera(target.Y, halfH, bounds.H-halfH)
	}

	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampCamera bounds v to [lo, hi]. Levels smaller than the screen stay centred.
func clampCamera(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
