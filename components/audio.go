package components

import (
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound requests (singleton component). Playback drains the queues.
type AudioData struct {
	PendingSFX  []cfg.SoundID
	PendingStop []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
