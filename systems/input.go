package systems

import (
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateInput polls the keyboard and mouse into the input singleton
func UpdateInput(e *ecs.ECS) {
	input, ok := inputOf(e)
	if !ok {
		return
	}
	input.Advance()
	for action, binding := range cfg.Input.Bindings {
		input.Press(action, bindingPressed(binding))
	}
	x, y := ebiten.CursorPosition()
	input.Pointer = math.Vec2{X: float64(x), Y: float64(y)}

	if game := gameOf(e); game != nil && input.JustPressed(cfg.ActionToggleDebug) {
		game.Debug = !game.Debug
	}
}

func bindingPressed(b cfg.InputBinding) bool {
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, m := range b.MouseButtons {
		if ebiten.IsMouseButtonPressed(m) {
			return true
		}
	}
	return false
}
