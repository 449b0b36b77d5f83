package systems

import (
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/automoto/coffin-escape/systems/factory"
	"github.com/automoto/coffin-escape/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Behavior is the per-type policy an enemy runs each tick while it is not
// attacking: turn toward the player, close in, then try to attack.
type Behavior interface {
	FacePlayer(c *enemyContext)
	WalkToPlayer(c *enemyContext)
	Attack(c *enemyContext) bool
}

// enemyContext is the per-tick view of one enemy and its target.
type enemyContext struct {
	ecs     *ecs.ECS
	entry   *donburi.Entry
	enemy   *components.EnemyData
	combat  *components.CombatData
	vel     *components.VelocityData
	body    *components.BodyData
	player  *donburi.Entry
	target  math.Vec2
	dist    float64
	now     components.ClockData
	noticed bool
}

type pursuer struct{}

// FacePlayer turns toward the player once it is within notice range.
func (pursuer) FacePlayer(c *enemyContext) {
	if !c.noticed {
		return
	}
	c.combat.Facing = facingToward(c.body.Pos, c.target)
}

// WalkToPlayer closes in while the player is inside the walk radius but outside
// the exclusion radius, and stands still otherwise.
func (pursuer) WalkToPlayer(c *enemyContext) {
	cfgType := c.enemy.Config
	if c.dist > cfgType.ExclusionRadius() && c.dist <= cfgType.WalkRadius {
		c.vel.Dir = gamemath.Direction(c.body.Pos, c.target)
		c.combat.Action = cfg.ActionWalk
		return
	}
	c.vel.Dir = math.Vec2{}
	c.combat.Action = cfg.ActionIdle
}

type coffinBehavior struct{ pursuer }

func (coffinBehavior) Attack(c *enemyContext) bool { return tryMelee(c) }

type cactusBehavior struct{ pursuer }

func (cactusBehavior) Attack(c *enemyContext) bool { return tryRanged(c) }

// hybridBehavior prefers melee and falls back to shooting from a distance.
type hybridBehavior struct{ pursuer }

func (hybridBehavior) Attack(c *enemyContext) bool { return tryMelee(c) || tryRanged(c) }

func behaviorFor(kind cfg.EnemyKind) Behavior {
	switch kind {
	case cfg.Cactus:
		return cactusBehavior{}
	case cfg.Hybrid:
		return hybridBehavior{}
	}
	return coffinBehavior{}
}

// UpdateEnemies runs each live enemy's behavior against the player. Enemies that
// are attacking stay locked until the attack animation finishes.
func UpdateEnemies(e *ecs.ECS) {
	player, ok := playerOf(e)
	if !ok {
		return
	}
	playerDead := components.Combat.Get(player).Dead
	target := components.Body.Get(player).Pos
	now := clockOf(e)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if !alive(entry) {
			return
		}
		c := &enemyContext{
			ecs:    e,
			entry:  entry,
			enemy:  components.Enemy.Get(entry),
			combat: components.Combat.Get(entry),
			vel:    components.Velocity.Get(entry),
			body:   components.Body.Get(entry),
			player: player,
			target: target,
			now:    now,
		}
		if c.combat.Dead || c.combat.Attacking {
			c.vel.Dir = math.Vec2{}
			return
		}
		if playerDead {
			c.vel.Dir = math.Vec2{}
			c.combat.Action = cfg.ActionIdle
			return
		}

		c.dist = gamemath.Distance(c.body.Pos, target)
		c.noticed = c.dist <= c.enemy.Config.NoticeRadius

		behavior := behaviorFor(c.enemy.Kind)
		behavior.FacePlayer(c)
		behavior.WalkToPlayer(c)
		CheckAttack(c, behavior)
	})
}

// CheckAttack gives the behavior a chance to start an attack once the global
// cooldown allows it.
func CheckAttack(c *enemyContext, behavior Behavior) bool {
	if c.combat.Attacking || !c.enemy.Global.Ready(c.now.Now) {
		return false
	}
	return behavior.Attack(c)
}

// tryMelee strikes the player immediately when within melee range.
func tryMelee(c *enemyContext) bool {
	t := c.enemy.Config
	if !t.CanMelee() || c.dist > t.MeleeRadius || !c.enemy.Melee.Ready(c.now.Now) {
		return false
	}
	startAttack(c, components.AttackMelee)
	c.enemy.Melee.Trigger(c.now.Now)
	Damage(c.ecs, c.player)
	PlaySFX(c.ecs, cfg.SoundImpact)
	return true
}

// tryRanged starts a shooting animation when the player is in range and visible.
// The projectile itself leaves on the attack frame.
func tryRanged(c *enemyContext) bool {
	t := c.enemy.Config
	if !t.CanShoot() || c.dist <= t.MeleeRadius || c.dist >= t.RangedRadius || !c.enemy.Ranged.Ready(c.now.Now) {
		return false
	}
	self := components.Object.Get(c.entry).Object
	if !LineOfSight(spaceOf(c.ecs), c.body.Pos, c.target, self) {
		return false
	}
	startAttack(c, components.AttackRanged)
	c.enemy.Ranged.Trigger(c.now.Now)
	c.enemy.Fired = false
	return true
}

func startAttack(c *enemyContext, kind components.AttackKind) {
	c.combat.Attacking = true
	c.combat.Action = cfg.ActionAttack
	c.combat.Facing = facingToward(c.body.Pos, c.target)
	c.vel.Dir = math.Vec2{}
	c.enemy.Attack = kind
	c.enemy.Global.Trigger(c.now.Now)
}

// fireOnAttackFrame spawns the projectile of a ranged attack once its animation
// reaches the configured frame. Short sequences fire on their last frame.
func fireOnAttackFrame(e *ecs.ECS, entry *donburi.Entry, anim *components.AnimationData) {
	enemy := components.Enemy.Get(entry)
	if enemy.Attack != components.AttackRanged || enemy.Fired {
		return
	}
	frames := len(anim.Frames())
	if frames == 0 {
		return
	}
	fireAt := min(enemy.Config.AttackFrame, frames-1)
	if anim.FrameIndex() < fireAt {
		return
	}
	enemy.Fired = true

	player, ok := playerOf(e)
	if !ok {
		return
	}
	origin := components.Body.Get(entry).Pos
	dir := gamemath.Direction(origin, components.Body.Get(player).Pos)
	if dir.X == 0 && dir.Y == 0 {
		return
	}
	origin = gamemath.Add(origin, gamemath.Scale(dir, cfg.Projectile.SpawnOffset))
	factory.CreateProjectile(e, origin, dir, entry)
	PlaySFX(e, cfg.SoundShoot)
}

// facingToward picks the cardinal facing along the dominant axis from a to b.
func facingToward(a, b math.Vec2) cfg.Facing {
	dx, dy := b.X-a.X, b.Y-a.Y
	if abs(dx) >= abs(dy) {
		if dx < 0 {
			return cfg.FacingLeft
		}
		return cfg.FacingRight
	}
	if dy < 0 {
		return cfg.FacingUp
	}
	return cfg.FacingDown
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
