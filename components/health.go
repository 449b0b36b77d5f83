package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current      int
	Max          int
	Vulnerable   bool
	HitAt        time.Duration
	MuteHitSound bool
}

var Health = donburi.NewComponentType[HealthData]()
