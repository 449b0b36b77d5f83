package systems

import (
	"testing"

	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestLineOfSight(t *testing.T) {
	e, _ := newWorld(t, &leveldata.Level{
		Walls: []gamemath.Rect{rect(300, 0, 32, 200)},
	})
	space := spaceOf(e)

	assert.False(t, LineOfSight(space, math.Vec2{X: 100, Y: 100}, math.Vec2{X: 500, Y: 100}), "wall crosses the segment")
	assert.True(t, LineOfSight(space, math.Vec2{X: 100, Y: 300}, math.Vec2{X: 500, Y: 300}), "segment passes below the wall")
	assert.True(t, LineOfSight(space, math.Vec2{X: 100, Y: 100}, math.Vec2{X: 100, Y: 100}))
}

func TestLineOfSightIgnoresLookerAndActors(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{
		Spawners: []leveldata.SpawnerDef{{Rect: rect(100, 600, 64, 64), Number: 1, Trigger: leveldata.TriggerSight}},
	})
	spawner, ok := firstSpawner(e)
	if !ok {
		t.Fatal("spawner missing")
	}
	from := components.Body.Get(spawner).Pos
	to := components.Body.Get(player).Pos
	self := components.Object.Get(spawner).Object

	assert.False(t, LineOfSight(spaceOf(e), from, to), "the spawner blocks its own centre")
	assert.True(t, LineOfSight(spaceOf(e), from, to, self))

	spawnEnemy(e, cfg.Coffin, math.Vec2{X: (from.X + to.X) / 2, Y: from.Y})
	assert.True(t, LineOfSight(spaceOf(e), from, to, self), "actors never block sight")
}

func TestLineOfSightLeavesSpaceClean(t *testing.T) {
	e, _ := newWorld(t, &leveldata.Level{})
	space := spaceOf(e)
	before := len(space.Objects())

	LineOfSight(space, math.Vec2{X: 10, Y: 10}, math.Vec2{X: 400, Y: 400})

	assert.Len(t, space.Objects(), before)
}
