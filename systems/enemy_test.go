package systems

import (
	"testing"

	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/automoto/coffin-escape/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func nearPlayer(player *donburi.Entry, dx, dy float64) math.Vec2 {
	pos := components.Body.Get(player).Pos
	return math.Vec2{X: pos.X + dx, Y: pos.Y + dy}
}

func countProjectiles(e *ecs.ECS) int {
	n := 0
	tags.Projectile.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestCoffinMeleesInRange(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{})
	coffin := spawnEnemy(e, cfg.Coffin, nearPlayer(player, 40, 0))

	Advance(e, step)
	UpdateEnemies(e)

	combat := components.Combat.Get(coffin)
	assert.True(t, combat.Attacking)
	assert.Equal(t, cfg.ActionAttack, combat.Action)
	assert.Equal(t, cfg.FacingLeft, combat.Facing)
	assert.Equal(t, components.AttackMelee, components.Enemy.Get(coffin).Attack)
	assert.Equal(t, math.Vec2{}, components.Velocity.Get(coffin).Dir)
	assert.Equal(t, cfg.Player.Health-1, components.Health.Get(player).Current)
	assert.Contains(t, pendingSFX(e), cfg.SoundImpact)
}

func TestCoffinWalksTowardPlayer(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{})
	coffin := spawnEnemy(e, cfg.Coffin, nearPlayer(player, 0, -300))

	Advance(e, step)
	UpdateEnemies(e)

	combat := components.Combat.Get(coffin)
	assert.False(t, combat.Attacking)
	assert.Equal(t, cfg.ActionWalk, combat.Action)
	assert.Equal(t, cfg.FacingDown, combat.Facing)
	assert.InDelta(t, 1, components.Velocity.Get(coffin).Dir.Y, 1e-9)
}

func TestEnemyIdlesOutsideWalkRadius(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{})
	coffin := spawnEnemy(e, cfg.Coffin, nearPlayer(player, -500, 0))
	components.Combat.Get(coffin).Facing = cfg.FacingUp

	Advance(e, step)
	UpdateEnemies(e)

	combat := components.Combat.Get(coffin)
	assert.Equal(t, cfg.ActionIdle, combat.Action)
	assert.Equal(t, cfg.FacingRight, combat.Facing, "noticed players are faced even when out of walking range")
	assert.Equal(t, math.Vec2{}, components.Velocity.Get(coffin).Dir)
}

func TestMeleeRespectsCooldowns(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{})
	coffin := spawnEnemy(e, cfg.Coffin, nearPlayer(player, 40, 0))

	Advance(e, step)
	UpdateEnemies(e)
	components.Combat.Get(coffin).Attacking = false
	components.Health.Get(player).Vulnerable = true

	Advance(e, step)
	UpdateEnemies(e)
	assert.False(t, components.Combat.Get(coffin).Attacking, "melee cooldown blocks a second strike")
	assert.Equal(t, cfg.Player.Health-1, components.Health.Get(player).Current)

	advanceBy(e, cfg.Enemies[cfg.Coffin].MeleeCooldown)
	UpdateEnemies(e)
	assert.True(t, components.Combat.Get(coffin).Attacking)
	assert.Equal(t, cfg.Player.Health-2, components.Health.Get(player).Current)
}

func TestCactusShootsOnAttackFrame(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{})
	cactus := spawnEnemy(e, cfg.Cactus, nearPlayer(player, 200, 0))

	Advance(e, step)
	UpdateEnemies(e)
	enemy := components.Enemy.Get(cactus)
	require.Equal(t, components.AttackRanged, enemy.Attack)
	assert.Equal(t, 0, countProjectiles(e), "the projectile waits for the attack frame")

	for i := 0; i < 120 && !enemy.Fired; i++ {
		Advance(e, step)
		UpdateAnimations(e)
	}
	require.True(t, enemy.Fired)
	assert.Equal(t, 1, countProjectiles(e))

	p, _ := tags.Projectile.First(e.World)
	data := components.Projectile.Get(p)
	assert.True(t, sameEntity(data.Shooter, cactus))
	assert.InDelta(t, -1, data.Dir.X, 1e-9)
	origin := components.Body.Get(p).Pos
	assert.InDelta(t, components.Body.Get(cactus).Pos.X-cfg.Projectile.SpawnOffset, origin.X, 1e-9)
	assert.Equal(t, cfg.Enemies[cfg.Cactus].AttackFrame, components.Animation.Get(cactus).FrameIndex())
}

func TestCactusNeedsLineOfSight(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{
		Walls: []gamemath.Rect{rect(740, 500, 32, 300)},
	})
	cactus := spawnEnemy(e, cfg.Cactus, nearPlayer(player, 200, 0))

	Advance(e, step)
	UpdateEnemies(e)

	assert.False(t, components.Combat.Get(cactus).Attacking)
}

func TestHybridPrefersMelee(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{})
	near := spawnEnemy(e, cfg.Hybrid, nearPlayer(player, 0, 30))
	far := spawnEnemy(e, cfg.Hybrid, nearPlayer(player, 0, -200))

	Advance(e, step)
	UpdateEnemies(e)

	assert.Equal(t, components.AttackMelee, components.Enemy.Get(near).Attack)
	assert.Equal(t, components.AttackRanged, components.Enemy.Get(far).Attack)
}

func TestAttackFinishesWhenAnimationWraps(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{})
	coffin := spawnEnemy(e, cfg.Coffin, nearPlayer(player, 40, 0))
	Advance(e, step)
	UpdateEnemies(e)

	combat := components.Combat.Get(coffin)
	for i := 0; i < 120 && combat.Attacking; i++ {
		Advance(e, step)
		UpdateAnimations(e)
	}
	assert.False(t, combat.Attacking)
	assert.Equal(t, cfg.ActionIdle, combat.Action)
	assert.Equal(t, components.AttackNone, components.Enemy.Get(coffin).Attack)
}

func TestBehaviorForKind(t *testing.T) {
	assert.IsType(t, coffinBehavior{}, behaviorFor(cfg.Coffin))
	assert.IsType(t, cactusBehavior{}, behaviorFor(cfg.Cactus))
	assert.IsType(t, hybridBehavior{}, behaviorFor(cfg.Hybrid))
}
