package factory

import (
	"math/rand/v2"

	"github.com/automoto/coffin-escape/archetypes"
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the singleton holding the clock, game state, input,
// audio queue and asset library. seed drives every random decision.
func CreateSession(ecs *ecs.ECS, seed uint64, lib components.LibraryData) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Game.SetValue(session, components.GameData{
		State: components.GamePlaying,
		RNG:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
	components.Audio.SetValue(session, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})
	components.Library.SetValue(session, lib)
	return session
}

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Camera.Spawn(ecs)
}
