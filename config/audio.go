package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShoot
	SoundHit
	SoundImpact
	SoundDeath
	SoundDoorOpen
	SoundDenied
	SoundKey
	SoundReload
	SoundSpawnerHit
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	Music             string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 1.0,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		Music: "audio/music.mp3",
		SFXPaths: map[SoundID]string{
			SoundShoot:      "audio/shoot.mp3",
			SoundHit:        "audio/damage.mp3",
			SoundImpact:     "audio/impact.mp3",
			SoundDeath:      "audio/death.mp3",
			SoundDoorOpen:   "audio/opening.mp3",
			SoundDenied:     "audio/denied.mp3",
			SoundKey:        "audio/key.mp3",
			SoundReload:     "audio/reload.mp3",
			SoundSpawnerHit: "audio/spawner_hit.mp3",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundShoot:  0.2,
			SoundHit:    0.5,
			SoundImpact: 0.5,
		},
	}
}
