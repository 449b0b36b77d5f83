package factory

import (
	"github.com/automoto/coffin-escape/archetypes"
	"github.com/automoto/coffin-escape/assets/animations"
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy creates an enemy of kind centred on pos. A nil set uses the set from
// the library, and a placeholder when none was loaded.
func CreateEnemy(ecs *ecs.ECS, kind cfg.EnemyKind, pos math.Vec2, set *animations.Set) *donburi.Entry {
	enemyType, ok := cfg.Enemies[kind]
	if !ok {
		kind = cfg.Coffin
		enemyType = cfg.Enemies[kind]
	}
	if set == nil {
		set = enemySet(ecs, kind, enemyType)
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	body := components.BodyData{
		Category: components.CategoryEnemy,
		Pos:      pos,
		W:        enemyType.FrameWidth,
		H:        enemyType.FrameHeight,
	}
	components.Body.SetValue(enemy, body)
	addToSpace(ecs, enemy, actorObject(body, enemyType.HitboxScaleX, enemyType.HitboxScaleY))

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:   kind,
		Config: enemyType,
		Melee:  components.Cooldown{Duration: enemyType.MeleeCooldown},
		Ranged: components.Cooldown{Duration: enemyType.RangedCooldown},
		Global: components.Cooldown{Duration: enemyType.GlobalCooldown},
	})
	components.Velocity.SetValue(enemy, components.VelocityData{Speed: enemyType.Speed})

	health := cfg.EnemyHealth(kind)
	components.Health.SetValue(enemy, components.HealthData{
		Current:      health,
		Max:          health,
		Vulnerable:   true,
		MuteHitSound: enemyType.MuteHitSound,
	})
	components.Combat.SetValue(enemy, components.CombatData{
		Action: cfg.ActionIdle,
		Facing: cfg.FacingDown,
	})
	components.Animation.SetValue(enemy, newAnimation(set, cfg.FacingDown))

	logger.For("factory").WithFields(logrus.Fields{
		"kind": kind.String(),
		"x":    pos.X,
		"y":    pos.Y,
	}).Debug("enemy created")

	return enemy
}

func enemySet(ecs *ecs.ECS, kind cfg.EnemyKind, enemyType cfg.EnemyTypeConfig) *animations.Set {
	if lib, ok := components.Library.First(ecs.World); ok {
		if set := components.Library.Get(lib).Enemies[kind]; set != nil {
			return set
		}
	}
	return PlaceholderSet(enemyType.FrameWidth, enemyType.FrameHeight)
}

// PlaceholderSet is an imageless set large enough for every attack frame.
func PlaceholderSet(w, h float64) *animations.Set {
	return animations.Placeholder(int(w), int(h), 8,
		cfg.Status(cfg.FacingDown, cfg.ActionIdle),
		string(cfg.ActionIdle),
		string(cfg.ActionWalk),
		string(cfg.ActionAttack),
		string(cfg.ActionDeath),
	)
}
