package components

import (
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/yohamta/donburi"
)

// CombatData holds the action state shared by the player and enemies.
type CombatData struct {
	Action    cfg.Action
	Facing    cfg.Facing
	Attacking bool
	Dead      bool // dying; removal waits for the death animation
}

// Status is the animation key for the current facing and action.
func (c *CombatData) Status() string {
	return cfg.Status(c.Facing, c.Action)
}

var Combat = donburi.NewComponentType[CombatData]()
