package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the simulation clock (singleton). Now only advances through ticks.
type ClockData struct {
	Now time.Duration
	DT  float64 // seconds for the current tick
}

var Clock = donburi.NewComponentType[ClockData]()
