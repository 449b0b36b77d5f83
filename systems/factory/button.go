package factory

import (
	"github.com/automoto/coffin-escape/archetypes"
	"github.com/automoto/coffin-escape/components"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateButton creates a button linked to door, which may be nil.
func CreateButton(ecs *ecs.ECS, def leveldata.ButtonDef, door *donburi.Entry, img *ebiten.Image) *donburi.Entry {
	button := archetypes.Button.Spawn(ecs)
	addToSpace(ecs, button, solidObject(def.Rect, components.CategoryButton))

	components.Button.SetValue(button, components.ButtonData{
		DoorID: def.Door,
		Policy: components.ParseButtonPolicy(def.Policy, def.Door),
		Door:   door,
	})
	components.Sprite.SetValue(button, components.SpriteData{Image: img})
	return button
}

// CreateKey creates a key item. Keys do not block movement.
func CreateKey(ecs *ecs.ECS, r gamemath.Rect, img *ebiten.Image) *donburi.Entry {
	key := archetypes.Key.Spawn(ecs)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, components.CategoryKey.String())
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	addToSpace(ecs, key, obj)
	components.Sprite.SetValue(key, components.SpriteData{Image: img})
	return key
}
