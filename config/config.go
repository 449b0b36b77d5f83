package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer; draw order is handled by depth sorting.
const Default ecs.LayerID = iota

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health         int
	Speed          float64
	MaxAmmo        int
	ReloadDuration time.Duration

	// Visual rect and hitbox scale relative to it
	FrameWidth   float64
	FrameHeight  float64
	HitboxScaleX float64
	HitboxScaleY float64

	AnimationDir string
}

// EnemyKind selects an enemy variant and its behavior strategy
type EnemyKind int

const (
	Coffin EnemyKind = iota
	Cactus
	Hybrid
)

func (k EnemyKind) String() string {
	switch k {
	case Coffin:
		return "Coffin"
	case Cactus:
		return "Cactus"
	case Hybrid:
		return "Hybrid"
	}
	return "Unknown"
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name       string
	BaseHealth int // difficulty is added on top
	Speed      float64

	NoticeRadius float64
	WalkRadius   float64
	MeleeRadius  float64 // zero disables melee
	RangedRadius float64 // zero disables ranged
	AttackFrame  int     // frame of the attack animation that fires the projectile

	MeleeCooldown  time.Duration
	RangedCooldown time.Duration
	GlobalCooldown time.Duration

	MuteHitSound bool

	FrameWidth   float64
	FrameHeight  float64
	HitboxScaleX float64
	HitboxScaleY float64

	AnimationDir string
}

// CanMelee reports whether this type has a melee attack.
func (c EnemyTypeConfig) CanMelee() bool { return c.MeleeRadius > 0 }

// CanShoot reports whether this type has a ranged attack.
func (c EnemyTypeConfig) CanShoot() bool { return c.RangedRadius > 0 }

// ExclusionRadius is the distance inside which the enemy stops walking toward the player.
func (c EnemyTypeConfig) ExclusionRadius() float64 {
	if c.CanMelee() {
		return c.MeleeRadius
	}
	return c.RangedRadius
}

// CombatConfig contains rules shared by every combat entity
type CombatConfig struct {
	Difficulty   int
	InvulnWindow time.Duration
	BlinkPeriod  time.Duration
	WinScore     int
	SightStep    float64 // line of sight sampling distance in pixels
}

// ProjectileConfig contains projectile settings
type ProjectileConfig struct {
	Speed        float64
	MaxLifetime  time.Duration
	BoundsMargin float64
	SpawnOffset  float64 // distance from the shooter's centre
	Width        float64
	Height       float64
	ImagePath    string
}

// DoorConfig contains piston door and button settings
type DoorConfig struct {
	Speed           float64
	KeyedSpeed      float64
	MultiPressCount int
	RandomChance    float64
	InteractMargin  float64 // inflates the player's visual rect when probing buttons
	DoorImage       string
	ButtonImage     string
	KeyImage        string
}

// SpawnerConfig contains spawner settings
type SpawnerConfig struct {
	Health            int
	Cooldown          time.Duration
	Radius            float64
	RosterCap         int
	SpawnCount        int
	PlacementAttempts int
	ImagePaths        []string // one image per damage state
	Width             float64
	Height            float64
}

// AnimationConfig contains playback rates
type AnimationConfig struct {
	Rate float64 // frames per second
}

// CameraConfig contains camera follow settings
type CameraConfig struct {
	FollowSmoothing float64
}

// EndScreenConfig contains the win/lose overlay settings
type EndScreenConfig struct {
	WinMessage   string
	LoseMessage  string
	WinDuration  time.Duration
	LoseDuration time.Duration
	FadeDuration time.Duration
}

// UIConfig contains HUD layout values
type UIConfig struct {
	Margin     float64
	HeartSize  float64
	HeartGap   float64
	TextColor  color.RGBA
	HeartColor color.RGBA
	EmptyColor color.RGBA
	FontPath   string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemies map[EnemyKind]EnemyTypeConfig
var Combat CombatConfig
var Projectile ProjectileConfig
var Door DoorConfig
var Spawner SpawnerConfig
var Animation AnimationConfig
var Camera CameraConfig
var EndScreen EndScreenConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	DarkGray     = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Coffin Escape",
		TPS:    60,
	}

	Combat = CombatConfig{
		Difficulty:   1,
		InvulnWindow: 400 * time.Millisecond,
		BlinkPeriod:  80 * time.Millisecond,
		WinScore:     25,
		SightStep:    1,
	}

	Player = PlayerConfig{
		Health:         3,
		Speed:          250,
		MaxAmmo:        20,
		ReloadDuration: 4500 * time.Millisecond,
		FrameWidth:     64,
		FrameHeight:    64,
		HitboxScaleX:   0.5,
		HitboxScaleY:   0.9,
		AnimationDir:   "animations/player",
	}

	Enemies = map[EnemyKind]EnemyTypeConfig{
		Coffin: {
			Name:           "Coffin",
			BaseHealth:     2,
			Speed:          150,
			NoticeRadius:   550,
			WalkRadius:     400,
			MeleeRadius:    50,
			AttackFrame:    4,
			MeleeCooldown:  1000 * time.Millisecond,
			GlobalCooldown: 800 * time.Millisecond,
			MuteHitSound:   true,
			FrameWidth:     64,
			FrameHeight:    64,
			HitboxScaleX:   0.5,
			HitboxScaleY:   0.9,
			AnimationDir:   "animations/coffin",
		},
		Cactus: {
			Name:           "Cactus",
			BaseHealth:     1,
			Speed:          90,
			NoticeRadius:   600,
			WalkRadius:     500,
			RangedRadius:   350,
			AttackFrame:    6,
			RangedCooldown: 1500 * time.Millisecond,
			GlobalCooldown: 800 * time.Millisecond,
			FrameWidth:     64,
			FrameHeight:    64,
			HitboxScaleX:   0.5,
			HitboxScaleY:   0.9,
			AnimationDir:   "animations/cactus",
		},
		Hybrid: {
			Name:           "Hybrid",
			BaseHealth:     3,
			Speed:          120,
			NoticeRadius:   600,
			WalkRadius:     500,
			MeleeRadius:    50,
			RangedRadius:   350,
			AttackFrame:    4,
			MeleeCooldown:  1000 * time.Millisecond,
			RangedCooldown: 1500 * time.Millisecond,
			GlobalCooldown: 800 * time.Millisecond,
			FrameWidth:     72,
			FrameHeight:    72,
			HitboxScaleX:   0.5,
			HitboxScaleY:   0.9,
			AnimationDir:   "animations/hybrid",
		},
	}

	Projectile = ProjectileConfig{
		Speed:        900,
		MaxLifetime:  3 * time.Second,
		BoundsMargin: 100,
		SpawnOffset:  40,
		Width:        12,
		Height:       12,
		ImagePath:    "images/bullet.png",
	}

	Door = DoorConfig{
		Speed:           100,
		KeyedSpeed:      140,
		MultiPressCount: 2,
		RandomChance:    0.5,
		InteractMargin:  12,
		DoorImage:       "images/door.png",
		ButtonImage:     "images/button.png",
		KeyImage:        "images/key.png",
	}

	Spawner = SpawnerConfig{
		Health:            3,
		Cooldown:          5 * time.Second,
		Radius:            100,
		RosterCap:         4,
		SpawnCount:        1,
		PlacementAttempts: 10,
		ImagePaths: []string{
			"images/spawner/spawner_.png",
			"images/spawner/spawner_x.png",
			"images/spawner/spawner_xx.png",
			"images/spawner/spawner_xxx.png",
		},
		Width:  64,
		Height: 64,
	}

	Animation = AnimationConfig{
		Rate: 7,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.2,
	}

	EndScreen = EndScreenConfig{
		WinMessage:   "You Escaped!",
		LoseMessage:  "Game Over",
		WinDuration:  5 * time.Second,
		LoseDuration: 3 * time.Second,
		FadeDuration: time.Second,
	}

	UI = UIConfig{
		Margin:     16,
		HeartSize:  18,
		HeartGap:   6,
		TextColor:  White,
		HeartColor: Red,
		EmptyColor: DarkGray,
		FontPath:   "fonts/excel.ttf",
	}
}

// EnemyHealth returns the starting health of an enemy kind at the configured difficulty.
func EnemyHealth(kind EnemyKind) int {
	return Enemies[kind].BaseHealth + Combat.Difficulty
}

// SpawnKind is the enemy kind spawners produce at the configured difficulty.
func SpawnKind() EnemyKind {
	if Combat.Difficulty%2 == 0 {
		return Coffin
	}
	return Cactus
}
