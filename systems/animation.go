package systems

import (
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations steps every animator, keeps collision masks in sync with the
// displayed frame and resolves one-shot sequences when they wrap.
func UpdateAnimations(e *ecs.ECS) {
	dt := clockOf(e).DT
	var entries []*donburi.Entry
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})

	for _, entry := range entries {
		if !alive(entry) {
			continue
		}
		anim := components.Animation.Get(entry)

		var combat *components.CombatData
		if entry.HasComponent(components.Combat) {
			combat = components.Combat.Get(entry)
			anim.SetStatus(combat.Status(), combat.Action.OneShot())
		}

		length := len(anim.Frames())
		wrapped := anim.Animator.Advance(dt, length, !anim.OneShot)

		if entry.HasComponent(components.Enemy) {
			fireOnAttackFrame(e, entry, anim)
		}

		if anim.FrameChanged() && entry.HasComponent(components.Body) {
			if mask := anim.Current().Mask; mask != nil {
				components.Body.Get(entry).Mask = mask
			}
		}

		if wrapped && anim.OneShot && combat != nil {
			finishOneShot(entry, combat)
		}
	}
}

func finishOneShot(entry *donburi.Entry, combat *components.CombatData) {
	switch combat.Action {
	case cfg.ActionDeath:
		if entry.HasComponent(components.Enemy) {
			MarkRemoval(entry, "death animation finished")
		}
	case cfg.ActionAttack:
		combat.Attacking = false
		combat.Action = cfg.ActionIdle
		if entry.HasComponent(components.Enemy) {
			components.Enemy.Get(entry).Attack = components.AttackNone
		}
	}
}
