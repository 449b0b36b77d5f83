package systems

import (
	"testing"

	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func sightSpawnerLevel() *leveldata.Level {
	return &leveldata.Level{
		Spawners: []leveldata.SpawnerDef{{Rect: rect(596, 396, 8, 8), Number: 1, Trigger: leveldata.TriggerSight}},
	}
}

func TestSpawnerWaitsForCooldown(t *testing.T) {
	e, _ := newWorld(t, sightSpawnerLevel())
	spawner, _ := firstSpawner(e)
	s := components.Spawner.Get(spawner)

	UpdateSpawners(e)
	assert.Empty(t, s.Roster, "the cooldown starts when the spawner is created")

	advanceBy(e, cfg.Spawner.Cooldown)
	UpdateSpawners(e)
	require.Len(t, s.Roster, 1)

	enemy := s.Roster[0]
	assert.True(t, sameEntity(components.Enemy.Get(enemy).Spawner, spawner))
	assert.Equal(t, cfg.SpawnKind(), components.Enemy.Get(enemy).Kind)
	pos := components.Body.Get(enemy).Pos
	assert.LessOrEqual(t, gamemath.Distance(pos, components.Body.Get(spawner).Pos), cfg.Spawner.Radius)

	UpdateSpawners(e)
	assert.Len(t, s.Roster, 1, "no second spawn inside the cooldown")
}

func TestSpawnerRosterCap(t *testing.T) {
	e, _ := newWorld(t, sightSpawnerLevel())
	spawner, _ := firstSpawner(e)
	s := components.Spawner.Get(spawner)

	var spawned []*donburi.Entry
	for i := 0; i <= cfg.Spawner.RosterCap; i++ {
		advanceBy(e, cfg.Spawner.Cooldown)
		UpdateSpawners(e)
		require.NotEmpty(t, s.Roster)
		spawned = append(spawned, s.Roster[len(s.Roster)-1])
	}

	assert.Len(t, s.Roster, cfg.Spawner.RosterCap)
	assert.Equal(t, "population cap", removalReason(spawned[0]))
	for _, enemy := range spawned[1:] {
		assert.Empty(t, removalReason(enemy))
	}

	UpdateRemovals(e)
	assert.False(t, spawned[0].Valid())
	assert.Equal(t, 0, playerScore(e), "capped enemies are not kills")
}

func TestSpawnerRosterDropsDeadEnemies(t *testing.T) {
	e, _ := newWorld(t, sightSpawnerLevel())
	spawner, _ := firstSpawner(e)
	s := components.Spawner.Get(spawner)

	advanceBy(e, cfg.Spawner.Cooldown)
	UpdateSpawners(e)
	require.Len(t, s.Roster, 1)
	components.Health.Get(s.Roster[0]).Current = 0
	UpdateDeaths(e)

	UpdateSpawners(e)
	assert.Empty(t, s.Roster)
}

func TestSpawnerSightBlocked(t *testing.T) {
	level := sightSpawnerLevel()
	level.Walls = []gamemath.Rect{rect(500, 500, 200, 32)}
	e, _ := newWorld(t, level)
	spawner, _ := firstSpawner(e)

	advanceBy(e, cfg.Spawner.Cooldown)
	UpdateSpawners(e)

	assert.Empty(t, components.Spawner.Get(spawner).Roster)
}

func TestZoneSpawnerTrigger(t *testing.T) {
	zone := rect(0, 0, 200, 200)
	e, player := newWorld(t, &leveldata.Level{
		Spawners: []leveldata.SpawnerDef{{Rect: rect(896, 896, 8, 8), Number: 2, Trigger: leveldata.TriggerZone, Zone: &zone}},
	})
	spawner, _ := firstSpawner(e)
	s := components.Spawner.Get(spawner)

	advanceBy(e, cfg.Spawner.Cooldown)
	UpdateSpawners(e)
	assert.Empty(t, s.Roster, "player outside the zone")

	placeAt(player, math.Vec2{X: 100, Y: 100})
	UpdateSpawners(e)
	assert.Len(t, s.Roster, 1)
}

func TestDamageSpawner(t *testing.T) {
	e, _ := newWorld(t, sightSpawnerLevel())
	spawner, _ := firstSpawner(e)
	s := components.Spawner.Get(spawner)
	s.Images = make([]*ebiten.Image, 4)

	for i := 0; i < cfg.Spawner.Health-1; i++ {
		DamageSpawner(e, spawner)
	}
	assert.Equal(t, 1, s.Health)
	assert.Equal(t, cfg.Spawner.Health-1, s.DamageState)
	assert.Empty(t, removalReason(spawner))
	assert.Contains(t, pendingSFX(e), cfg.SoundSpawnerHit)

	for i := 0; i < 30; i++ {
		Advance(e, step)
		UpdateSpawners(e)
	}
	assert.Nil(t, s.Shake, "shake settles")
	assert.Zero(t, s.ShakeOffset)

	DamageSpawner(e, spawner)
	assert.Equal(t, "destroyed", removalReason(spawner))
}

func playerScore(e *ecs.ECS) int {
	player, _ := playerOf(e)
	return components.Player.Get(player).Score
}
