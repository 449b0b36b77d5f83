package components

import (
	"github.com/automoto/coffin-escape/assets/animations"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// LibraryData holds loaded assets needed to create entities mid-game (singleton).
type LibraryData struct {
	Projectile    animations.Frame
	Enemies       map[cfg.EnemyKind]*animations.Set
	SpawnerImages []*ebiten.Image
}

var Library = donburi.NewComponentType[LibraryData]()
