package factory

import (
	"github.com/automoto/coffin-escape/assets/animations"
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
)

func newAnimation(set *animations.Set, facing cfg.Facing) components.AnimationData {
	anim := components.AnimationData{
		Set:      set,
		Animator: animations.NewAnimator(cfg.Animation.Rate),
	}
	anim.SetStatus(cfg.Status(facing, cfg.ActionIdle), false)
	return anim
}
