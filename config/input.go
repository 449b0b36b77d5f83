package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionReload
	ActionInteract
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveUp:    {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}},
			ActionMoveDown:  {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}},
			ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}},
			ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}},
			ActionFire: {
				Keys:         []ebiten.Key{ebiten.KeySpace},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionReload:      {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionInteract:    {Keys: []ebiten.Key{ebiten.KeyE}},
			ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF3}},
		},
	}
}
