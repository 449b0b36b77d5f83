package systems

import (
	stdmath "math"

	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/logger"
	"github.com/automoto/coffin-escape/systems/factory"
	"github.com/automoto/coffin-escape/tags"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const (
	shakeAmplitude = 6
	shakeDuration  = 0.3
)

// UpdateSpawners produces enemies near each triggered spawner once its cooldown
// has elapsed, and retires the oldest spawned enemies beyond the population cap.
func UpdateSpawners(e *ecs.ECS) {
	clock := clockOf(e)
	player, ok := playerOf(e)

	var spawners []*donburi.Entry
	tags.Spawner.Each(e.World, func(entry *donburi.Entry) {
		spawners = append(spawners, entry)
	})

	for _, entry := range spawners {
		if !alive(entry) {
			continue
		}
		s := components.Spawner.Get(entry)
		updateShake(s, clock.DT)
		pruneRoster(s)

		if !ok || components.Combat.Get(player).Dead {
			continue
		}
		if !s.Cooldown.Ready(clock.Now) || !spawnerTriggered(e, entry, player) {
			continue
		}

		spawned := 0
		for i := 0; i < cfg.Spawner.SpawnCount; i++ {
			if spawnNear(e, entry) {
				spawned++
			}
		}
		if spawned > 0 {
			s.Cooldown.Trigger(clock.Now)
		}
	}
}

// spawnerTriggered reports whether the player stands in the spawner's zone, or
// for sight spawners, whether the spawner can see the player.
func spawnerTriggered(e *ecs.ECS, entry, player *donburi.Entry) bool {
	s := components.Spawner.Get(entry)
	if s.Zone != nil {
		return s.Zone.Overlaps(components.Object.Get(player).Rect())
	}
	self := components.Object.Get(entry).Object
	return LineOfSight(spaceOf(e), components.Body.Get(entry).Pos, components.Body.Get(player).Pos, self)
}

// spawnNear places one enemy at a random free point within the spawn radius.
func spawnNear(e *ecs.ECS, entry *donburi.Entry) bool {
	game := gameOf(e)
	if game == nil {
		return false
	}
	s := components.Spawner.Get(entry)
	center := components.Body.Get(entry).Pos
	kind := cfg.SpawnKind()
	t := cfg.Enemies[kind]
	w, h := t.FrameWidth*t.HitboxScaleX, t.FrameHeight*t.HitboxScaleY

	for attempt := 0; attempt < cfg.Spawner.PlacementAttempts; attempt++ {
		angle := game.RNG.Float64() * 2 * stdmath.Pi
		dist := game.RNG.Float64() * cfg.Spawner.Radius
		pos := math.Vec2{
			X: center.X + stdmath.Cos(angle)*dist,
			Y: center.Y + stdmath.Sin(angle)*dist,
		}
		if !placementFree(e, pos, w, h) {
			continue
		}

		enemy := factory.CreateEnemy(e, kind, pos, nil)
		components.Enemy.Get(enemy).Spawner = entry
		s.Roster = append(s.Roster, enemy)
		enforceCap(s)

		logger.For("spawner").WithFields(logrus.Fields{
			"spawner": s.Number,
			"kind":    kind.String(),
			"attempt": attempt + 1,
			"roster":  len(s.Roster),
		}).Debug("enemy spawned")
		return true
	}

	logger.For("spawner").WithField("spawner", s.Number).Debug("no free spawn position")
	return false
}

// enforceCap removes the oldest roster members until the cap holds. Those enemies
// leave without crediting the player.
func enforceCap(s *components.SpawnerData) {
	for len(s.Roster) > cfg.Spawner.RosterCap {
		MarkRemoval(s.Roster[0], "population cap")
		s.Roster = s.Roster[1:]
	}
}

// pruneRoster drops enemies that died or were removed since the last tick.
func pruneRoster(s *components.SpawnerData) {
	live := s.Roster[:0]
	for _, enemy := range s.Roster {
		if alive(enemy) && !components.Combat.Get(enemy).Dead {
			live = append(live, enemy)
		}
	}
	clear(s.Roster[len(live):])
	s.Roster = live
}

// DamageSpawner removes one health point from a spawner, advances its damage
// image and starts the hit shake. A spawner at zero health is removed.
func DamageSpawner(e *ecs.ECS, entry *donburi.Entry) {
	if !alive(entry) {
		return
	}
	s := components.Spawner.Get(entry)
	s.Health--
	if last := max(len(s.Images), 1) - 1; s.DamageState < last {
		s.DamageState++
	}
	s.Shake = gween.New(shakeAmplitude, 0, shakeDuration, ease.OutQuad)
	PlaySFX(e, cfg.SoundSpawnerHit)

	log := logger.For("spawner").WithFields(logrus.Fields{
		"spawner": s.Number,
		"health":  s.Health,
	})
	if s.Health <= 0 {
		MarkRemoval(entry, "destroyed")
		log.Info("spawner destroyed")
		return
	}
	log.Debug("spawner hit")
}

func updateShake(s *components.SpawnerData, dt float64) {
	if s.Shake == nil {
		return
	}
	offset, done := s.Shake.Update(float32(dt))
	s.ShakeOffset = offset
	if done {
		s.Shake = nil
		s.ShakeOffset = 0
	}
}

