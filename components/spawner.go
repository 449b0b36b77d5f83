package components

import (
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type SpawnerData struct {
	Number      int
	Health      int
	DamageState int // index into Images, advanced per hit
	Cooldown    Cooldown
	Zone        *gamemath.Rect // nil uses line of sight
	Roster      []*donburi.Entry
	Images      []*ebiten.Image
	Shake       *gween.Tween // hit feedback, nil when idle
	ShakeOffset float32
}

var Spawner = donburi.NewComponentType[SpawnerData]()
