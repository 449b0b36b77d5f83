package systems

import (
	"time"

	"github.com/automoto/coffin-escape/components"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/automoto/coffin-escape/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Advance moves the simulation clock by dt seconds. Call it once before each tick.
func Advance(e *ecs.ECS, dt float64) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.DT = dt
	clock.Now += time.Duration(dt * float64(time.Second))
}

func clockOf(e *ecs.ECS) components.ClockData {
	if entry, ok := components.Clock.First(e.World); ok {
		return *components.Clock.Get(entry)
	}
	return components.ClockData{}
}

func gameOf(e *ecs.ECS) *components.GameData {
	if entry, ok := components.Game.First(e.World); ok {
		return components.Game.Get(entry)
	}
	return nil
}

func spaceOf(e *ecs.ECS) *resolv.Space {
	if entry, ok := components.Space.First(e.World); ok {
		return components.Space.Get(entry)
	}
	return nil
}

func playerOf(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

// alive reports whether entry still exists and is not queued for removal.
func alive(entry *donburi.Entry) bool {
	return entry != nil && entry.Valid() && !entry.HasComponent(components.Removal)
}

// MarkRemoval queues entry for deletion at the end of the tick.
func MarkRemoval(entry *donburi.Entry, reason string) {
	if !alive(entry) {
		return
	}
	donburi.Add(entry, components.Removal, &components.RemovalData{Reason: reason})
}

func objectRect(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

func entryOf(o *resolv.Object) (*donburi.Entry, bool) {
	entry, ok := o.Data.(*donburi.Entry)
	return entry, ok && entry != nil
}

func sameEntity(a, b *donburi.Entry) bool {
	return a != nil && b != nil && a.Entity() == b.Entity()
}

// levelBounds is the world rectangle covered by the loaded level.
func levelBounds(e *ecs.ECS) (gamemath.Rect, bool) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return gamemath.Rect{}, false
	}
	lvl := components.Level.Get(entry).Level
	if lvl == nil || lvl.Width == 0 || lvl.Height == 0 {
		return gamemath.Rect{}, false
	}
	return gamemath.Rect{W: float64(lvl.Width), H: float64(lvl.Height)}, true
}

// newProbe adds a temporary untagged object covering r to space. Callers remove it.
func newProbe(space *resolv.Space, r gamemath.Rect) *resolv.Object {
	probe := resolv.NewObject(r.X, r.Y, r.W, r.H)
	space.Add(probe)
	return probe
}
