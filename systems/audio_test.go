package systems

import (
	"testing"

	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/stretchr/testify/assert"
)

func TestAudioQueuesDrainWithoutContext(t *testing.T) {
	e, _ := newWorld(t, &leveldata.Level{})

	PlaySFX(e, cfg.SoundShoot)
	StopSFX(e, cfg.SoundReload)
	assert.Equal(t, []cfg.SoundID{cfg.SoundShoot}, pendingSFX(e))
	assert.Equal(t, []cfg.SoundID{cfg.SoundReload}, audioOf(e).PendingStop)

	UpdateAudio(e)

	assert.Empty(t, pendingSFX(e))
	assert.Empty(t, audioOf(e).PendingStop)
}
