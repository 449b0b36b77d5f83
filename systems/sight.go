package systems

import (
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/automoto/coffin-escape/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// LineOfSight reports whether the segment from a to b crosses no blocking obstacle.
// Objects in ignore, usually the looker's own body, never block.
func LineOfSight(space *resolv.Space, a, b math.Vec2, ignore ...*resolv.Object) bool {
	if space == nil {
		return true
	}
	bounds := gamemath.Rect{
		X: min(a.X, b.X),
		Y: min(a.Y, b.Y),
		W: max(a.X, b.X) - min(a.X, b.X) + 1,
		H: max(a.Y, b.Y) - min(a.Y, b.Y) + 1,
	}
	probe := newProbe(space, bounds)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return true
	}

	var blockers []gamemath.Rect
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if ignored(o, ignore) {
			continue
		}
		blockers = append(blockers, objectRect(o))
	}
	if len(blockers) == 0 {
		return true
	}

	blocked := gamemath.SampleSegment(a, b, cfg.Combat.SightStep, func(p math.Vec2) bool {
		for _, r := range blockers {
			if r.Contains(p) {
				return true
			}
		}
		return false
	})
	return !blocked
}

func ignored(o *resolv.Object, ignore []*resolv.Object) bool {
	for _, i := range ignore {
		if o == i {
			return true
		}
	}
	return false
}
