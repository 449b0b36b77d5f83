package components

import (
	"math/rand/v2"
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameState is the session outcome.
type GameState int

const (
	GamePlaying GameState = iota
	GameWon
	GameLost
)

func (s GameState) String() string {
	switch s {
	case GameWon:
		return "won"
	case GameLost:
		return "lost"
	}
	return "playing"
}

// GameData is the session singleton.
type GameData struct {
	State   GameState
	EndedAt time.Duration
	RNG     *rand.Rand
	Fade    *gween.Tween // end screen overlay alpha
	Alpha   float32
	Debug   bool // draw collision outlines
}

var Game = donburi.NewComponentType[GameData]()
