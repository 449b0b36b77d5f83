package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ProjectileData struct {
	Dir       math.Vec2
	Speed     float64
	Shooter   *donburi.Entry // exclusion only, never dereferenced for ownership
	SpawnedAt time.Duration
}

var Projectile = donburi.NewComponentType[ProjectileData]()
