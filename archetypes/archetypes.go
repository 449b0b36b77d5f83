package archetypes

import (
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Object,
		components.Sprite,
	)
	Button = newArchetype(
		tags.Button,
		components.Button,
		components.Object,
		components.Sprite,
	)
	Key = newArchetype(
		tags.Key,
		components.Object,
		components.Sprite,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
		components.Velocity,
		components.Health,
		components.Combat,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Object,
		components.Velocity,
		components.Health,
		components.Combat,
		components.Animation,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
		components.Body,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Body,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Clock,
		components.Game,
		components.Input,
		components.Audio,
		components.Library,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
