package factory

import (
	"github.com/automoto/coffin-escape/archetypes"
	"github.com/automoto/coffin-escape/components"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/automoto/coffin-escape/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a static blocking rectangle of the given category
// (wall, piston wall or breakable).
func CreateWall(ecs *ecs.ECS, r gamemath.Rect, category components.Category) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	obj := solidObject(r, category)
	addToSpace(ecs, wall, obj)
	return wall
}

func solidObject(r gamemath.Rect, category components.Category) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid, category.String())
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	return obj
}
