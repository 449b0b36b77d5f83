package systems

import (
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/logger"
	"github.com/automoto/coffin-escape/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PressButton applies the button's policy to a press by player and reports whether
// the press opened its door. Buttons that already succeeded ignore further presses.
func PressButton(e *ecs.ECS, button, player *donburi.Entry) bool {
	if !alive(button) {
		return false
	}
	b := components.Button.Get(button)
	if b.Pressed {
		return false
	}
	b.Presses++

	log := logger.For("button").WithFields(logrus.Fields{
		"door":    b.DoorID,
		"policy":  b.Policy.String(),
		"presses": b.Presses,
	})

	switch b.Policy {
	case components.PolicyKeyGated:
		if player == nil || !components.Player.Get(player).HasKey {
			PlaySFX(e, cfg.SoundDenied)
			log.Debug("button needs a key")
			return false
		}
		setDoorSpeed(b.Door, cfg.Door.KeyedSpeed)
		PlaySFX(e, cfg.SoundDoorOpen)
	case components.PolicyMultiPress:
		if b.Presses < cfg.Door.MultiPressCount {
			log.Debug("button needs more presses")
			return false
		}
	case components.PolicyRandom:
		game := gameOf(e)
		if game == nil || game.RNG.Float64() >= cfg.Door.RandomChance {
			PlaySFX(e, cfg.SoundDenied)
			log.Debug("button roll failed")
			return false
		}
		PlaySFX(e, cfg.SoundDoorOpen)
	}

	b.Pressed = true
	if b.Door == nil {
		log.Warn("button pressed with no door")
		return false
	}
	StartDoor(b.Door)
	log.Info("button opened door")
	return true
}

func setDoorSpeed(door *donburi.Entry, speed float64) {
	if !alive(door) {
		return
	}
	d := components.Door.Get(door)
	d.Speed = speed
	if alive(d.Pair) {
		components.Door.Get(d.Pair).Speed = speed
	}
}

// pressNearbyButtons presses every button overlapping the player's interaction probe.
func pressNearbyButtons(e *ecs.ECS, player *donburi.Entry) {
	m := cfg.Door.InteractMargin
	probe := components.Body.Get(player).VisualRect().Inflate(2*m, 2*m)
	var hits []*donburi.Entry
	tags.Button.Each(e.World, func(button *donburi.Entry) {
		if alive(button) && probe.Overlaps(components.Object.Get(button).Rect()) {
			hits = append(hits, button)
		}
	})
	for _, button := range hits {
		PressButton(e, button, player)
	}
}
