package systems

import (
	"github.com/automoto/coffin-escape/components"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/automoto/coffin-escape/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateMovement integrates every actor's velocity and resolves it against
// blocking obstacles. Attacking and dying actors do not move.
func UpdateMovement(e *ecs.ECS) {
	dt := clockOf(e).DT
	components.Velocity.Each(e.World, func(entry *donburi.Entry) {
		if !alive(entry) || !entry.HasComponent(components.Body) {
			return
		}
		if entry.HasComponent(components.Combat) {
			combat := components.Combat.Get(entry)
			if combat.Attacking || combat.Dead {
				return
			}
		}
		vel := components.Velocity.Get(entry)
		dir := gamemath.Normalize(vel.Dir)
		if dir.X == 0 && dir.Y == 0 {
			return
		}
		MoveBody(entry, gamemath.Scale(dir, vel.Speed*dt))
	})
}

// MoveBody translates the body by delta on each axis in turn, clamping the hitbox
// against obstacles after each, so diagonal motion slides along walls.
func MoveBody(entry *donburi.Entry, delta math.Vec2) {
	body := components.Body.Get(entry)

	body.Pos.X += delta.X
	SyncHitbox(entry)
	resolveAxis(entry, delta.X, true)

	body.Pos.Y += delta.Y
	SyncHitbox(entry)
	resolveAxis(entry, delta.Y, false)
}

// SyncHitbox re-centres the hitbox on the body position.
func SyncHitbox(entry *donburi.Entry) {
	body := components.Body.Get(entry)
	obj := components.Object.Get(entry)
	obj.X = body.Pos.X - obj.W/2
	obj.Y = body.Pos.Y - obj.H/2
	obj.Update()
}

func resolveAxis(entry *donburi.Entry, d float64, horizontal bool) {
	if d == 0 {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Space == nil {
		return
	}
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return
	}

	hb := obj.Rect()
	moved := false
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		r := objectRect(o)
		if !hb.Overlaps(r) {
			continue
		}
		moved = true
		switch {
		case horizontal && d > 0:
			hb.X = r.X - hb.W
		case horizontal:
			hb.X = r.Right()
		case d > 0:
			hb.Y = r.Y - hb.H
		default:
			hb.Y = r.Bottom()
		}
	}
	if !moved {
		return
	}

	body := components.Body.Get(entry)
	body.Pos = hb.Center()
	SyncHitbox(entry)
}

// placementFree reports whether a w*h hitbox centred on pos overlaps no blocking obstacle.
func placementFree(e *ecs.ECS, pos math.Vec2, w, h float64) bool {
	space := spaceOf(e)
	if space == nil {
		return true
	}
	r := gamemath.RectFromCenter(pos, w, h)
	if bounds, ok := levelBounds(e); ok && !bounds.ContainsRect(r) {
		return false
	}
	probe := newProbe(space, r)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return true
	}
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if r.Overlaps(objectRect(o)) {
			return false
		}
	}
	return true
}
