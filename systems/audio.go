package systems

import (
	"io/fs"
	"sync"

	"github.com/automoto/coffin-escape/assets"
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/logger"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state, created once and shared by every world
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalSFXPlaying   = map[cfg.SoundID][]*audio.Player{}
	globalMusicVolume  = cfg.Audio.DefaultMusicVol
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context and decodes every sound effect from fsys.
// Until it runs, queued sounds are discarded so the simulation stays headless.
func InitAudio(fsys fs.FS) {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, fsys)
		globalMusicVolume = cfg.Audio.DefaultMusicVol
		globalSFXVolume = cfg.Audio.DefaultSFXVol

		log := logger.For("audio")
		for id, path := range cfg.Sound.SFXPaths {
			if err := globalAudioLoader.PreloadSFX(path); err != nil {
				log.WithError(err).WithField("sound", int(id)).Warn("sound effect unavailable")
			}
		}
	})
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	if data := audioOf(e); data != nil {
		data.PendingSFX = append(data.PendingSFX, sound)
	}
}

// StopSFX queues stopping every playing instance of a sound effect
func StopSFX(e *ecs.ECS, sound cfg.SoundID) {
	if data := audioOf(e); data != nil {
		data.PendingStop = append(data.PendingStop, sound)
	}
}

// UpdateAudio drains the queues. Stops run before plays so a restart in the same
// tick is heard.
func UpdateAudio(e *ecs.ECS) {
	data := audioOf(e)
	if data == nil {
		return
	}
	if globalAudioLoader != nil {
		for _, id := range data.PendingStop {
			stopSFX(id)
		}
		for _, id := range data.PendingSFX {
			playSFX(id)
		}
	}
	data.PendingStop = data.PendingStop[:0]
	data.PendingSFX = data.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}
	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()

	// Drop finished players before tracking the new one
	active := globalSFXPlaying[soundID][:0]
	for _, p := range globalSFXPlaying[soundID] {
		if p.IsPlaying() {
			active = append(active, p)
		} else {
			_ = p.Close()
		}
	}
	globalSFXPlaying[soundID] = append(active, player)
}

func stopSFX(soundID cfg.SoundID) {
	for _, p := range globalSFXPlaying[soundID] {
		p.Pause()
		_ = p.Close()
	}
	delete(globalSFXPlaying, soundID)
}

// PlayMusic starts the looping background track
func PlayMusic(musicPath string) {
	if globalAudioLoader == nil || globalMusicPlayer != nil {
		return
	}
	player, err := globalAudioLoader.LoadMusic(musicPath)
	if err != nil {
		logger.For("audio").WithError(err).Warn("music unavailable")
		return
	}
	player.SetVolume(globalMusicVolume)
	player.Play()
	globalMusicPlayer = player
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
}

func audioOf(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return nil
	}
	return components.Audio.Get(entry)
}
