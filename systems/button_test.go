package systems

import (
	"testing"

	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/automoto/coffin-escape/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// buttonLevel has one door and its button for each door id.
func buttonLevel(ids ...int) *leveldata.Level {
	level := &leveldata.Level{}
	for i, id := range ids {
		x := float64(100 + i*200)
		level.Doors = append(level.Doors, leveldata.DoorDef{Rect: rect(x, 100, 32, 64), Group: id, Direction: "up"})
		level.Buttons = append(level.Buttons, leveldata.ButtonDef{Rect: rect(x, 300, 16, 16), Door: id})
	}
	return level
}

func buttonFor(t *testing.T, e *ecs.ECS, doorID int) (*donburi.Entry, *components.ButtonData) {
	t.Helper()
	var found *donburi.Entry
	tags.Button.Each(e.World, func(entry *donburi.Entry) {
		if components.Button.Get(entry).DoorID == doorID {
			found = entry
		}
	})
	require.NotNil(t, found)
	return found, components.Button.Get(found)
}

func TestDefaultButtonOpensOnce(t *testing.T) {
	e, player := newWorld(t, buttonLevel(1))
	button, data := buttonFor(t, e, 1)
	require.Equal(t, components.PolicyDefault, data.Policy)

	assert.True(t, PressButton(e, button, player))
	assert.True(t, components.Door.Get(data.Door).Moving)
	assert.False(t, PressButton(e, button, player), "pressed buttons stay pressed")
}

func TestKeyGatedButton(t *testing.T) {
	e, player := newWorld(t, buttonLevel(2))
	button, data := buttonFor(t, e, 2)
	require.Equal(t, components.PolicyKeyGated, data.Policy)

	assert.False(t, PressButton(e, button, player))
	assert.False(t, data.Pressed)
	assert.False(t, components.Door.Get(data.Door).Moving)
	assert.Contains(t, pendingSFX(e), cfg.SoundDenied)

	components.Player.Get(player).HasKey = true
	assert.True(t, PressButton(e, button, player))

	door := components.Door.Get(data.Door)
	assert.True(t, door.Moving)
	assert.Equal(t, cfg.Door.KeyedSpeed, door.Speed)
	assert.Contains(t, pendingSFX(e), cfg.SoundDoorOpen)
}

func TestMultiPressButton(t *testing.T) {
	e, player := newWorld(t, buttonLevel(3))
	button, data := buttonFor(t, e, 3)
	require.Equal(t, components.PolicyMultiPress, data.Policy)

	assert.False(t, PressButton(e, button, player))
	assert.False(t, components.Door.Get(data.Door).Moving)
	assert.True(t, PressButton(e, button, player))
	assert.True(t, components.Door.Get(data.Door).Moving)
	assert.Equal(t, 2, data.Presses)
}

func TestRandomButtonEventuallyOpens(t *testing.T) {
	e, player := newWorld(t, buttonLevel(4))
	button, data := buttonFor(t, e, 4)
	require.Equal(t, components.PolicyRandom, data.Policy)

	opened := false
	for i := 0; i < 64 && !opened; i++ {
		opened = PressButton(e, button, player)
		if !opened {
			assert.False(t, components.Door.Get(data.Door).Moving)
		}
	}
	require.True(t, opened)
	assert.True(t, data.Pressed)
	assert.False(t, PressButton(e, button, player), "success is sticky")
}

func TestExplicitPolicyOverridesDoorID(t *testing.T) {
	level := buttonLevel(2)
	level.Buttons[0].Policy = "default"
	e, player := newWorld(t, level)
	button, _ := buttonFor(t, e, 2)

	assert.True(t, PressButton(e, button, player))
}

func TestButtonWithoutDoor(t *testing.T) {
	e, player := newWorld(t, &leveldata.Level{
		Buttons: []leveldata.ButtonDef{{Rect: rect(10, 10, 16, 16), Door: 9}},
	})
	button, data := buttonFor(t, e, 9)

	assert.False(t, PressButton(e, button, player))
	assert.True(t, data.Pressed)
}

func TestInteractPressesNearbyButton(t *testing.T) {
	level := buttonLevel(1)
	level.PlayerSpawn.X, level.PlayerSpawn.Y = 108, 350
	e, _ := newWorld(t, level)
	_, data := buttonFor(t, e, 1)

	input, _ := inputOf(e)
	input.Press(cfg.ActionInteract, true)
	Advance(e, step)
	UpdatePlayer(e)

	assert.True(t, data.Pressed)
	assert.True(t, components.Door.Get(data.Door).Moving)
}
