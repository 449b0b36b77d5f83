package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Overrides is the optional YAML tuning file. Unset fields keep the defaults from init.
type Overrides struct {
	Difficulty *int `yaml:"difficulty"`
	WinScore   *int `yaml:"win_score"`

	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`

	Audio struct {
		SFXVolume   *float64 `yaml:"sfx_volume"`
		MusicVolume *float64 `yaml:"music_volume"`
	} `yaml:"audio"`

	Player struct {
		Health   *int     `yaml:"health"`
		Speed    *float64 `yaml:"speed"`
		MaxAmmo  *int     `yaml:"max_ammo"`
		ReloadMs *int     `yaml:"reload_ms"`
	} `yaml:"player"`

	Projectile struct {
		Speed      *float64 `yaml:"speed"`
		LifetimeMs *int     `yaml:"lifetime_ms"`
	} `yaml:"projectile"`

	Door struct {
		Speed      *float64 `yaml:"speed"`
		KeyedSpeed *float64 `yaml:"keyed_speed"`
	} `yaml:"door"`

	Spawner struct {
		CooldownMs *int     `yaml:"cooldown_ms"`
		Radius     *float64 `yaml:"radius"`
		RosterCap  *int     `yaml:"roster_cap"`
		SpawnCount *int     `yaml:"spawn_count"`
	} `yaml:"spawner"`
}

// LoadOverrides reads a YAML tuning file and applies it over the defaults.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides parses YAML bytes, validates them and mutates the global configuration.
// Nothing is applied when validation fails.
func ApplyOverrides(data []byte) error {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("failed to parse overrides: %w", err)
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if o.Difficulty != nil {
		Combat.Difficulty = *o.Difficulty
	}
	if o.WinScore != nil {
		Combat.WinScore = *o.WinScore
	}
	if o.Window.Width > 0 {
		C.Width = o.Window.Width
	}
	if o.Window.Height > 0 {
		C.Height = o.Window.Height
	}
	if o.Window.Title != "" {
		C.Title = o.Window.Title
	}
	if o.Audio.SFXVolume != nil {
		Audio.DefaultSFXVol = *o.Audio.SFXVolume
	}
	if o.Audio.MusicVolume != nil {
		Audio.DefaultMusicVol = *o.Audio.MusicVolume
	}
	if o.Player.Health != nil {
		Player.Health = *o.Player.Health
	}
	if o.Player.Speed != nil {
		Player.Speed = *o.Player.Speed
	}
	if o.Player.MaxAmmo != nil {
		Player.MaxAmmo = *o.Player.MaxAmmo
	}
	if o.Player.ReloadMs != nil {
		Player.ReloadDuration = time.Duration(*o.Player.ReloadMs) * time.Millisecond
	}
	if o.Projectile.Speed != nil {
		Projectile.Speed = *o.Projectile.Speed
	}
	if o.Projectile.LifetimeMs != nil {
		Projectile.MaxLifetime = time.Duration(*o.Projectile.LifetimeMs) * time.Millisecond
	}
	if o.Door.Speed != nil {
		Door.Speed = *o.Door.Speed
	}
	if o.Door.KeyedSpeed != nil {
		Door.KeyedSpeed = *o.Door.KeyedSpeed
	}
	if o.Spawner.CooldownMs != nil {
		Spawner.Cooldown = time.Duration(*o.Spawner.CooldownMs) * time.Millisecond
	}
	if o.Spawner.Radius != nil {
		Spawner.Radius = *o.Spawner.Radius
	}
	if o.Spawner.RosterCap != nil {
		Spawner.RosterCap = *o.Spawner.RosterCap
	}
	if o.Spawner.SpawnCount != nil {
		Spawner.SpawnCount = *o.Spawner.SpawnCount
	}
	return nil
}

// Validate rejects values the simulation cannot run with.
func (o *Overrides) Validate() error {
	var errs []error
	if o.Difficulty != nil && *o.Difficulty < 0 {
		errs = append(errs, fmt.Errorf("difficulty must be >= 0, got %d", *o.Difficulty))
	}
	if o.WinScore != nil && *o.WinScore <= 0 {
		errs = append(errs, fmt.Errorf("win_score must be > 0, got %d", *o.WinScore))
	}
	if o.Player.Health != nil && *o.Player.Health <= 0 {
		errs = append(errs, fmt.Errorf("player.health must be > 0, got %d", *o.Player.Health))
	}
	if o.Player.MaxAmmo != nil && *o.Player.MaxAmmo <= 0 {
		errs = append(errs, fmt.Errorf("player.max_ammo must be > 0, got %d", *o.Player.MaxAmmo))
	}
	if o.Projectile.LifetimeMs != nil && *o.Projectile.LifetimeMs <= 0 {
		errs = append(errs, fmt.Errorf("projectile.lifetime_ms must be > 0, got %d", *o.Projectile.LifetimeMs))
	}
	if o.Spawner.RosterCap != nil && *o.Spawner.RosterCap <= 0 {
		errs = append(errs, fmt.Errorf("spawner.roster_cap must be > 0, got %d", *o.Spawner.RosterCap))
	}
	for name, v := range map[string]*float64{"audio.sfx_volume": o.Audio.SFXVolume, "audio.music_volume": o.Audio.MusicVolume} {
		if v != nil && (*v < 0 || *v > 1) {
			errs = append(errs, fmt.Errorf("%s must be within [0,1], got %v", name, *v))
		}
	}
	return errors.Join(errs...)
}
