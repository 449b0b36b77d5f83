package factory

import (
	"github.com/automoto/coffin-escape/archetypes"
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpawner creates a spawner whose cooldown starts at the current clock time.
func CreateSpawner(ecs *ecs.ECS, def leveldata.SpawnerDef, images []*ebiten.Image) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(ecs)

	r := def.Rect
	if r.W == 0 || r.H == 0 {
		r.W, r.H = cfg.Spawner.Width, cfg.Spawner.Height
	}
	components.Body.SetValue(spawner, components.BodyData{
		Category: components.CategorySpawner,
		Pos:      r.Center(),
		W:        r.W,
		H:        r.H,
	})
	addToSpace(ecs, spawner, solidObject(r, components.CategorySpawner))

	data := components.SpawnerData{
		Number:   def.Number,
		Health:   cfg.Spawner.Health,
		Cooldown: components.Cooldown{Duration: cfg.Spawner.Cooldown},
		Images:   images,
	}
	if def.Trigger == leveldata.TriggerZone && def.Zone != nil {
		zone := *def.Zone
		data.Zone = &zone
	}
	if clock, ok := components.Clock.First(ecs.World); ok {
		data.Cooldown.Trigger(components.Clock.Get(clock).Now)
	} else {
		data.Cooldown.Trigger(0)
	}
	components.Spawner.SetValue(spawner, data)
	return spawner
}
