package systems

import (
	"testing"

	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/automoto/coffin-escape/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestKeyPickup(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{
		Keys: []gamemath.Rect{rect(630, 630, 20, 20), rect(100, 100, 20, 20)},
	})

	UpdateKeys(e)
	UpdateRemovals(e)

	assert.True(t, components.Player.Get(player).HasKey)
	assert.Contains(t, pendingSFX(e), cfg.SoundKey)

	remaining := 0
	tags.Key.Each(e.World, func(*donburi.Entry) { remaining++ })
	require.Equal(t, 1, remaining, "only the touched key is collected")
}
