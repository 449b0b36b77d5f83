package systems

import (
	"testing"
	"time"

	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/logger"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/automoto/coffin-escape/systems/factory"
	"github.com/automoto/coffin-escape/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const step = 1.0 / 60

// newWorld builds level into a fresh world with the gameplay systems registered.
// An empty level is 1280x1280 with the player at its centre.
func newWorld(t *testing.T, level *leveldata.Level) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	logger.Log.SetLevel(logrus.WarnLevel)

	if level.Width == 0 {
		level.Width, level.Height = 1280, 1280
	}
	if level.PlayerSpawn == (math.Vec2{}) {
		level.PlayerSpawn = math.Vec2{X: 640, Y: 640}
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, 1, components.LibraryData{})
	player := factory.BuildLevel(e, level, factory.Sprites{})
	AddSimulation(e)
	return e, player
}

func tick(e *ecs.ECS) {
	Advance(e, step)
	e.Update()
}

// advanceBy moves the clock without running any system.
func advanceBy(e *ecs.ECS, d time.Duration) {
	Advance(e, d.Seconds())
}

func now(e *ecs.ECS) time.Duration {
	return clockOf(e).Now
}

func placeAt(entry *donburi.Entry, pos math.Vec2) {
	components.Body.Get(entry).Pos = pos
	SyncHitbox(entry)
}

func spawnEnemy(e *ecs.ECS, kind cfg.EnemyKind, pos math.Vec2) *donburi.Entry {
	return factory.CreateEnemy(e, kind, pos, nil)
}

func rect(x, y, w, h float64) gamemath.Rect {
	return gamemath.Rect{X: x, Y: y, W: w, H: h}
}

func pendingSFX(e *ecs.ECS) []cfg.SoundID {
	return audioOf(e).PendingSFX
}

// restoreConfig snapshots the tunables a test may change.
func restoreConfig(t *testing.T) {
	combat, player, spawner, door, projectile := cfg.Combat, cfg.Player, cfg.Spawner, cfg.Door, cfg.Projectile
	t.Cleanup(func() {
		cfg.Combat, cfg.Player, cfg.Spawner, cfg.Door, cfg.Projectile = combat, player, spawner, door, projectile
	})
}

func firstSpawner(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Spawner.First(e.World)
}
