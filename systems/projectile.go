package systems

import (
	stdmath "math"

	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves projectiles and resolves their hits. Each projectile is
// tested in priority order: obstacles, enemies, the player, spawners. The first
// stage that hits destroys it, so a projectile is destroyed at most once per tick.
func UpdateProjectiles(e *ecs.ECS) {
	clock := clockOf(e)
	bounds, hasBounds := levelBounds(e)
	if hasBounds {
		m := cfg.Projectile.BoundsMargin
		bounds = bounds.Inflate(2*m, 2*m)
	}

	var projectiles []*donburi.Entry
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		projectiles = append(projectiles, entry)
	})

	for _, entry := range projectiles {
		if !alive(entry) {
			continue
		}
		p := components.Projectile.Get(entry)
		body := components.Body.Get(entry)

		body.Pos.X += p.Dir.X * p.Speed * clock.DT
		body.Pos.Y += p.Dir.Y * p.Speed * clock.DT
		SyncHitbox(entry)

		if clock.Now-p.SpawnedAt > cfg.Projectile.MaxLifetime {
			MarkRemoval(entry, "lifetime expired")
			continue
		}
		if hasBounds && !bounds.Contains(body.Pos) {
			MarkRemoval(entry, "out of bounds")
			continue
		}

		switch {
		case hitObstacle(entry):
		case hitEnemies(e, entry, p):
		case hitPlayer(e, entry, p):
		case hitSpawner(e, entry):
		default:
			continue
		}
		MarkRemoval(entry, "hit")
	}
}

// hitObstacle absorbs the projectile on walls, piston walls and doors. Breakable
// obstacles are destroyed along with it.
func hitObstacle(entry *donburi.Entry) bool {
	obj := components.Object.Get(entry)
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return false
	}
	hb := obj.Rect()
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if o.HasTags(components.CategorySpawner.String()) || !hb.Overlaps(objectRect(o)) {
			continue
		}
		if o.HasTags(components.CategoryBreakable.String()) {
			if wall, ok := entryOf(o); ok {
				MarkRemoval(wall, "broken by projectile")
			}
		}
		return true
	}
	return false
}

// hitEnemies damages every live enemy the projectile's mask touches, except the one
// that fired it.
func hitEnemies(e *ecs.ECS, entry *donburi.Entry, p *components.ProjectileData) bool {
	hit := false
	tags.Enemy.Each(e.World, func(enemy *donburi.Entry) {
		if !alive(enemy) || sameEntity(enemy, p.Shooter) || components.Combat.Get(enemy).Dead {
			return
		}
		if !bodiesOverlap(entry, enemy) {
			return
		}
		Damage(e, enemy)
		hit = true
	})
	return hit
}

// hitPlayer damages the player unless the player fired the projectile, in which
// case it passes through.
func hitPlayer(e *ecs.ECS, entry *donburi.Entry, p *components.ProjectileData) bool {
	player, ok := playerOf(e)
	if !ok || sameEntity(player, p.Shooter) || components.Combat.Get(player).Dead {
		return false
	}
	if !bodiesOverlap(entry, player) {
		return false
	}
	Damage(e, player)
	return true
}

func hitSpawner(e *ecs.ECS, entry *donburi.Entry) bool {
	obj := components.Object.Get(entry)
	check := obj.Check(0, 0, components.CategorySpawner.String())
	if check == nil {
		return false
	}
	hb := obj.Rect()
	for _, o := range check.ObjectsByTags(components.CategorySpawner.String()) {
		spawner, ok := entryOf(o)
		if !ok || !alive(spawner) || !hb.Overlaps(objectRect(o)) {
			continue
		}
		DamageSpawner(e, spawner)
		return true
	}
	return false
}

// bodiesOverlap is the precise test between two bodies: their visual rectangles
// must intersect and, when both carry masks, their solid pixels must coincide.
func bodiesOverlap(a, b *donburi.Entry) bool {
	ba := components.Body.Get(a)
	bb := components.Body.Get(b)
	ra, rb := ba.VisualRect(), bb.VisualRect()
	if !ra.Overlaps(rb) {
		return false
	}
	if ba.Mask == nil || bb.Mask == nil {
		return true
	}
	dx := int(stdmath.Round(rb.X - ra.X))
	dy := int(stdmath.Round(rb.Y - ra.Y))
	return ba.Mask.Overlaps(bb.Mask, dx, dy)
}
