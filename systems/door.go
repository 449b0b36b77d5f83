package systems

import (
	"github.com/automoto/coffin-escape/components"
	"github.com/automoto/coffin-escape/logger"
	"github.com/automoto/coffin-escape/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartDoor sets a door and its pair moving. Starting never recurses past the pair.
func StartDoor(door *donburi.Entry) {
	if !alive(door) {
		return
	}
	d := components.Door.Get(door)
	d.Moving = true
	if alive(d.Pair) {
		components.Door.Get(d.Pair).Moving = true
	}
	logger.For("door").WithField("group", d.Group).Debug("door started")
}

// UpdateDoors slides moving doors along their direction. A door stops on its own
// as soon as it touches a wall, another door or one of its stop zones. It is not
// pushed back out of the obstacle.
func UpdateDoors(e *ecs.ECS) {
	dt := clockOf(e).DT
	tags.Door.Each(e.World, func(entry *donburi.Entry) {
		if !alive(entry) {
			return
		}
		d := components.Door.Get(entry)
		if !d.Moving {
			return
		}
		obj := components.Object.Get(entry)
		obj.X += d.Dir.X * d.Speed * dt
		obj.Y += d.Dir.Y * d.Speed * dt
		obj.Update()

		if reason, blocked := doorBlocked(entry, d, obj); blocked {
			d.Moving = false
			logger.For("door").WithFields(logrus.Fields{
				"group":  d.Group,
				"reason": reason,
				"x":      obj.X,
				"y":      obj.Y,
			}).Debug("door stopped")
		}
	})
}

func doorBlocked(entry *donburi.Entry, d *components.DoorData, obj *components.ObjectData) (string, bool) {
	hb := obj.Rect()
	for _, stop := range d.Stops {
		if hb.Overlaps(stop) {
			return "stop zone", true
		}
	}
	if alive(d.Pair) && hb.Overlaps(components.Object.Get(d.Pair).Rect()) {
		return "pair", true
	}

	blocking := []string{
		components.CategoryWall.String(),
		components.CategoryBreakable.String(),
		components.CategoryDoor.String(),
	}
	check := obj.Check(0, 0, blocking...)
	if check == nil {
		return "", false
	}
	for _, o := range check.ObjectsByTags(blocking...) {
		if other, ok := entryOf(o); ok && sameEntity(other, entry) {
			continue
		}
		if hb.Overlaps(objectRect(o)) {
			if o.HasTags(components.CategoryDoor.String()) {
				return "door", true
			}
			return "wall", true
		}
	}
	return "", false
}
