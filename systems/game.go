package systems

import (
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/logger"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameState ends the session once the player reaches the winning score and
// advances the end screen fade.
func UpdateGameState(e *ecs.ECS) {
	game := gameOf(e)
	if game == nil {
		return
	}
	if game.State == components.GamePlaying {
		if player, ok := playerOf(e); ok && components.Player.Get(player).Score >= cfg.Combat.WinScore {
			endGame(e, components.GameWon)
		}
		return
	}
	if game.Fade != nil {
		alpha, done := game.Fade.Update(float32(clockOf(e).DT))
		game.Alpha = alpha
		if done {
			game.Fade = nil
		}
	}
}

func endGame(e *ecs.ECS, state components.GameState) {
	game := gameOf(e)
	if game == nil || game.State != components.GamePlaying {
		return
	}
	game.State = state
	game.EndedAt = clockOf(e).Now
	game.Fade = gween.New(0, 1, float32(cfg.EndScreen.FadeDuration.Seconds()), ease.OutQuad)
	game.Alpha = 0

	score := 0
	if player, ok := playerOf(e); ok {
		score = components.Player.Get(player).Score
	}
	logger.For("game").WithFields(logrus.Fields{
		"state": state.String(),
		"score": score,
	}).Info("game over")
}

// Finished reports whether the end screen has been shown for its full duration.
func Finished(e *ecs.ECS) bool {
	game := gameOf(e)
	if game == nil {
		return false
	}
	var hold = cfg.EndScreen.WinDuration
	switch game.State {
	case components.GamePlaying:
		return false
	case components.GameLost:
		hold = cfg.EndScreen.LoseDuration
	}
	return clockOf(e).Now-game.EndedAt >= hold
}

// WithGameplayChecks wraps a system so it only runs while the session is in play.
func WithGameplayChecks(fn func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if game := gameOf(e); game != nil && game.State != components.GamePlaying {
			return
		}
		fn(e)
	}
}

// AddSimulation registers the gameplay systems in tick order.
func AddSimulation(e *ecs.ECS) {
	for _, system := range []func(*ecs.ECS){
		UpdatePlayer,
		UpdateEnemies,
		UpdateMovement,
		UpdateAnimations,
		UpdateProjectiles,
		UpdateDoors,
		UpdateKeys,
		UpdateSpawners,
		UpdateVulnerability,
		UpdateDeaths,
	} {
		e.AddSystem(WithGameplayChecks(system))
	}
	e.AddSystem(UpdateRemovals)
	e.AddSystem(UpdateGameState)
}
