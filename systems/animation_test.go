package systems

import (
	"image"
	"image/color"
	"testing"

	"github.com/automoto/coffin-escape/assets/animations"
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/automoto/coffin-escape/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

// ringMask is solid except for a transparent w/2 square in the middle.
func ringMask(w, h int) *gamemath.Mask {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x >= w/4 && x < 3*w/4 && y >= h/4 && y < 3*h/4 {
				continue
			}
			img.Set(x, y, color.NRGBA{A: 255})
		}
	}
	return gamemath.NewMask(img)
}

func TestAnimationSyncsMask(t *testing.T) {
	e, _ := newWorld(t, &leveldata.Level{})
	t0 := cfg.Enemies[cfg.Coffin]
	w, h := int(t0.FrameWidth), int(t0.FrameHeight)
	ring := ringMask(w, h)
	set, err := animations.NewSet("idle", map[string][]animations.Frame{
		"idle": {{Mask: ring}},
	})
	require.NoError(t, err)

	enemy := factory.CreateEnemy(e, cfg.Coffin, math.Vec2{X: 300, Y: 300}, set)
	Advance(e, step)
	UpdateAnimations(e)

	assert.Same(t, ring, components.Body.Get(enemy).Mask)
}

func TestProjectileUsesPixelMasks(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{})
	t0 := cfg.Enemies[cfg.Coffin]
	set, err := animations.NewSet("idle", map[string][]animations.Frame{
		"idle": {{Mask: ringMask(int(t0.FrameWidth), int(t0.FrameHeight))}},
	})
	require.NoError(t, err)
	enemy := factory.CreateEnemy(e, cfg.Coffin, math.Vec2{X: 300, Y: 300}, set)
	Advance(e, step)
	UpdateAnimations(e)

	hole := stillProjectile(e, math.Vec2{X: 300, Y: 300}, player)
	UpdateProjectiles(e)
	assert.Empty(t, removalReason(hole), "the transparent centre lets projectiles through")

	edge := stillProjectile(e, math.Vec2{X: 272, Y: 300}, player)
	UpdateProjectiles(e)
	assert.Equal(t, "hit", removalReason(edge))
	assert.Equal(t, cfg.EnemyHealth(cfg.Coffin)-1, components.Health.Get(enemy).Current)
}

func TestLoopingAnimationKeepsCycling(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{})
	anim := components.Animation.Get(player)

	seen := map[int]bool{}
	for i := 0; i < 180; i++ {
		Advance(e, step)
		UpdateAnimations(e)
		seen[anim.FrameIndex()] = true
	}
	assert.Len(t, seen, len(anim.Frames()))
	assert.False(t, components.Combat.Get(player).Attacking)
}
