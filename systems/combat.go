package systems

import (
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Damage removes one health point from a vulnerable entity and opens its
// invulnerability window. It reports whether damage was applied.
func Damage(e *ecs.ECS, entry *donburi.Entry) bool {
	if !alive(entry) || !entry.HasComponent(components.Health) {
		return false
	}
	health := components.Health.Get(entry)
	if !health.Vulnerable {
		return false
	}
	if entry.HasComponent(components.Combat) && components.Combat.Get(entry).Dead {
		return false
	}

	health.Current--
	health.Vulnerable = false
	health.HitAt = clockOf(e).Now
	if !health.MuteHitSound {
		PlaySFX(e, cfg.SoundHit)
	}
	return true
}

// UpdateVulnerability restores vulnerability once the invulnerability window has passed.
func UpdateVulnerability(e *ecs.ECS) {
	now := clockOf(e).Now
	components.Health.Each(e.World, func(entry *donburi.Entry) {
		health := components.Health.Get(entry)
		if !health.Vulnerable && now-health.HitAt > cfg.Combat.InvulnWindow {
			health.Vulnerable = true
		}
	})
}
