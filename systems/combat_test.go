package systems

import (
	"testing"
	"time"

	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestDamageOpensInvulnerabilityWindow(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{})
	health := components.Health.Get(player)
	start := health.Current

	require.True(t, Damage(e, player))
	assert.False(t, Damage(e, player), "second hit inside the window is ignored")
	assert.Equal(t, start-1, health.Current)
	assert.False(t, health.Vulnerable)

	advanceBy(e, cfg.Combat.InvulnWindow)
	UpdateVulnerability(e)
	assert.False(t, health.Vulnerable, "window is still open at exactly its length")

	advanceBy(e, 10*time.Millisecond)
	UpdateVulnerability(e)
	assert.True(t, health.Vulnerable)
	assert.True(t, Damage(e, player))
	assert.Equal(t, start-2, health.Current)
}

func TestDamageQueuesHitSoundUnlessMuted(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{})
	coffin := spawnEnemy(e, cfg.Coffin, math.Vec2{X: 100, Y: 100})

	Damage(e, coffin)
	assert.NotContains(t, pendingSFX(e), cfg.SoundHit)

	Damage(e, player)
	assert.Contains(t, pendingSFX(e), cfg.SoundHit)
}

func TestEnemyDeathCreditsOnce(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{})
	enemy := spawnEnemy(e, cfg.Cactus, math.Vec2{X: 200, Y: 200})
	components.Health.Get(enemy).Current = 0

	require.True(t, CheckDeath(e, enemy))
	assert.False(t, CheckDeath(e, enemy))
	UpdateDeaths(e)

	assert.Equal(t, 1, components.Player.Get(player).Score)
	combat := components.Combat.Get(enemy)
	assert.True(t, combat.Dead)
	assert.Equal(t, cfg.ActionDeath, combat.Action)
	assert.False(t, Damage(e, enemy), "dying enemies take no damage")
}

func TestDeathAnimationRemovesEnemy(t *testing.T) {
	e, _ := newWorld(t, &leveldata.Level{})
	enemy := spawnEnemy(e, cfg.Coffin, math.Vec2{X: 200, Y: 200})
	components.Health.Get(enemy).Current = 0
	CheckDeath(e, enemy)

	for i := 0; i < 120 && !enemy.HasComponent(components.Removal); i++ {
		Advance(e, step)
		UpdateAnimations(e)
	}
	require.True(t, enemy.HasComponent(components.Removal))
	assert.True(t, enemy.Valid(), "removal waits for the barrier")

	UpdateRemovals(e)
	assert.False(t, enemy.Valid())
}

func TestPlayerDeathLosesGame(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{})
	components.Health.Get(player).Current = 0

	tick(e)

	game := gameOf(e)
	assert.Equal(t, components.GameLost, game.State)
	assert.True(t, components.Combat.Get(player).Dead)
	assert.True(t, player.Valid(), "the player is never removed")
	assert.False(t, Finished(e))

	advanceBy(e, cfg.EndScreen.LoseDuration)
	assert.True(t, Finished(e))
}
