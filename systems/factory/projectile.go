package factory

import (
	"github.com/automoto/coffin-escape/archetypes"
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a projectile at origin moving along dir. It returns nil
// when dir has no length.
func CreateProjectile(ecs *ecs.ECS, origin, dir math.Vec2, shooter *donburi.Entry) *donburi.Entry {
	dir = gamemath.Normalize(dir)
	if dir.X == 0 && dir.Y == 0 {
		return nil
	}

	projectile := archetypes.Projectile.Spawn(ecs)

	var frame components.LibraryData
	if lib, ok := components.Library.First(ecs.World); ok {
		frame = *components.Library.Get(lib)
	}
	mask := frame.Projectile.Mask
	if mask == nil {
		mask = gamemath.SolidMask(int(cfg.Projectile.Width), int(cfg.Projectile.Height))
	}

	body := components.BodyData{
		Category: components.CategoryProjectile,
		Pos:      origin,
		W:        cfg.Projectile.Width,
		H:        cfg.Projectile.Height,
		Mask:     mask,
	}
	components.Body.SetValue(projectile, body)
	addToSpace(ecs, projectile, actorObject(body, 1, 1))

	var now components.ClockData
	if clock, ok := components.Clock.First(ecs.World); ok {
		now = *components.Clock.Get(clock)
	}
	components.Projectile.SetValue(projectile, components.ProjectileData{
		Dir:       dir,
		Speed:     cfg.Projectile.Speed,
		Shooter:   shooter,
		SpawnedAt: now.Now,
	})
	components.Sprite.SetValue(projectile, components.SpriteData{Image: frame.Projectile.Image})

	return projectile
}
