package systems

import (
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/logger"
	"github.com/automoto/coffin-escape/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths runs CheckDeath for every entity with health. It runs after every
// damaging system so kills are credited on settled health.
func UpdateDeaths(e *ecs.ECS) {
	components.Health.Each(e.World, func(entry *donburi.Entry) {
		CheckDeath(e, entry)
	})
}

// CheckDeath starts the death of an entity whose health reached zero. Enemy kills
// credit the player once. The player's death ends the session.
func CheckDeath(e *ecs.ECS, entry *donburi.Entry) bool {
	if !alive(entry) || !entry.HasComponent(components.Combat) {
		return false
	}
	combat := components.Combat.Get(entry)
	if combat.Dead || components.Health.Get(entry).Current > 0 {
		return false
	}

	combat.Dead = true
	combat.Attacking = false
	combat.Action = cfg.ActionDeath
	if entry.HasComponent(components.Velocity) {
		components.Velocity.Get(entry).Dir.X = 0
		components.Velocity.Get(entry).Dir.Y = 0
	}
	PlaySFX(e, cfg.SoundDeath)

	log := logger.For("combat")
	switch {
	case entry.HasComponent(tags.Player):
		endGame(e, components.GameLost)
		log.Info("player died")
	case entry.HasComponent(components.Enemy):
		enemy := components.Enemy.Get(entry)
		enemy.Attack = components.AttackNone
		score := 0
		if player, ok := playerOf(e); ok {
			data := components.Player.Get(player)
			data.Score++
			score = data.Score
		}
		log.WithFields(logrus.Fields{
			"kind":  enemy.Kind.String(),
			"score": score,
		}).Debug("enemy killed")
	}
	return true
}

// UpdateRemovals is the end-of-tick barrier. Entities marked for removal leave the
// collision space and the world here, never in the middle of a query.
func UpdateRemovals(e *ecs.ECS) {
	var marked []*donburi.Entry
	components.Removal.Each(e.World, func(entry *donburi.Entry) {
		marked = append(marked, entry)
	})
	if len(marked) == 0 {
		return
	}

	space := spaceOf(e)
	for _, entry := range marked {
		if !entry.Valid() {
			continue
		}
		if space != nil && entry.HasComponent(components.Object) {
			if obj := components.Object.Get(entry).Object; obj != nil && obj.Space != nil {
				space.Remove(obj)
			}
		}
		logger.For("removal").WithFields(logrus.Fields{
			"entity": entry.Entity(),
			"reason": components.Removal.Get(entry).Reason,
		}).Trace("entity removed")
		e.World.Remove(entry.Entity())
	}
}
