package components

import (
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level      *leveldata.Level
	Background *ebiten.Image // nil when rendering is headless
}

var Level = donburi.NewComponentType[LevelData]()
