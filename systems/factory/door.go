package factory

import (
	stdmath "math"
	"sort"

	"github.com/automoto/coffin-escape/archetypes"
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/logger"
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateDoor creates a stopped piston door.
func CreateDoor(ecs *ecs.ECS, def leveldata.DoorDef, img *ebiten.Image) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)
	addToSpace(ecs, door, solidObject(def.Rect, components.CategoryDoor))

	components.Door.SetValue(door, components.DoorData{
		Group: def.Group,
		Dir:   ParseDirection(def.Direction),
		Speed: cfg.Door.Speed,
	})
	components.Sprite.SetValue(door, components.SpriteData{Image: img})
	return door
}

// ParseDirection maps a cardinal name to a unit vector. Unknown names give zero.
func ParseDirection(name string) math.Vec2 {
	switch name {
	case "up":
		return math.Vec2{X: 0, Y: -1}
	case "down":
		return math.Vec2{X: 0, Y: 1}
	case "left":
		return math.Vec2{X: -1, Y: 0}
	case "right":
		return math.Vec2{X: 1, Y: 0}
	}
	return math.Vec2{}
}

// LinkDoors pairs doors sharing a group id two at a time, symmetrically, and gives
// every door without an explicit direction one: away from its pair along the dominant
// axis, or up when unpaired. It returns the first door of each group.
func LinkDoors(doors []*donburi.Entry) map[int]*donburi.Entry {
	groups := map[int][]*donburi.Entry{}
	var ids []int
	for _, d := range doors {
		g := components.Door.Get(d).Group
		if _, seen := groups[g]; !seen {
			ids = append(ids, g)
		}
		groups[g] = append(groups[g], d)
	}
	sort.Ints(ids)

	first := make(map[int]*donburi.Entry, len(groups))
	for _, id := range ids {
		members := groups[id]
		first[id] = members[0]
		if len(members) >= 2 {
			a, b := components.Door.Get(members[0]), components.Door.Get(members[1])
			a.Pair, b.Pair = members[1], members[0]
		}
		if len(members) > 2 {
			logger.For("door").WithFields(logrus.Fields{
				"group": id,
				"doors": len(members),
			}).Warn("door group has more than two doors, extras stay unpaired")
		}
		for _, d := range members {
			defaultDirection(d)
		}
	}
	return first
}

func defaultDirection(d *donburi.Entry) {
	door := components.Door.Get(d)
	if door.Dir.X != 0 || door.Dir.Y != 0 {
		return
	}
	door.Dir = math.Vec2{X: 0, Y: -1}
	if door.Pair == nil || !door.Pair.Valid() {
		return
	}
	self := components.Object.Get(d).Rect().Center()
	other := components.Object.Get(door.Pair).Rect().Center()
	dx, dy := self.X-other.X, self.Y-other.Y
	switch {
	case stdmath.Abs(dx) >= stdmath.Abs(dy) && dx != 0:
		door.Dir = math.Vec2{X: stdmath.Copysign(1, dx), Y: 0}
	case dy != 0:
		door.Dir = math.Vec2{X: 0, Y: stdmath.Copysign(1, dy)}
	}
}

// AssignDoorStops attaches each stop zone to every door in its group.
func AssignDoorStops(doors []*donburi.Entry, stops []leveldata.ZoneDef) {
	for _, d := range doors {
		door := components.Door.Get(d)
		for _, s := range stops {
			if s.ID == door.Group {
				door.Stops = append(door.Stops, s.Rect)
			}
		}
	}
}
