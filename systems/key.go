package systems

import (
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/logger"
	"github.com/automoto/coffin-escape/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKeys lets the player collect any key its hitbox touches.
func UpdateKeys(e *ecs.ECS) {
	player, ok := playerOf(e)
	if !ok || components.Combat.Get(player).Dead {
		return
	}
	hb := components.Object.Get(player).Rect()
	var collected []*donburi.Entry
	tags.Key.Each(e.World, func(key *donburi.Entry) {
		if alive(key) && hb.Overlaps(components.Object.Get(key).Rect()) {
			collected = append(collected, key)
		}
	})
	for _, key := range collected {
		components.Player.Get(player).HasKey = true
		MarkRemoval(key, "collected")
		PlaySFX(e, cfg.SoundKey)
		logger.For("key").Info("key collected")
	}
}
