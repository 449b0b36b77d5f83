package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Ammo        int
	MaxAmmo     int
	Reloading   bool
	ReloadStart time.Duration
	Score       int
	HasKey      bool
	Aim         math.Vec2 // unit vector toward the pointer
}

var Player = donburi.NewComponentType[PlayerData]()
