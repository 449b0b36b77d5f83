// Package leveldata parses TMX levels into plain data. It has no dependencies on
// ebitengine, the ECS or the collision space.
package leveldata

import (
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// Layer and object group names read from the TMX file.
const (
	LayerWalls      = "Walls"
	LayerPistonWall = "Pistonwall"
	LayerBreakable  = "Breakable"
	GroupPistons    = "Pistons"
	GroupDoorStops  = "DoorStops"
	GroupButtons    = "Buttons"
	GroupKeys       = "Keys"
	GroupSpawnZones = "SpawnZones"
	GroupEntities   = "Entities"
)

// Spawner trigger modes.
const (
	TriggerZone  = "zone"
	TriggerSight = "sight"
)

// Level holds everything the simulation needs from a TMX level file.
type Level struct {
	Name       string
	Path       string
	Width      int // pixels
	Height     int
	TileWidth  int
	TileHeight int

	Walls       []gamemath.Rect
	PistonWalls []gamemath.Rect
	Breakables  []gamemath.Rect

	Doors     []DoorDef
	DoorStops []ZoneDef
	Buttons   []ButtonDef
	Keys      []gamemath.Rect
	Spawners  []SpawnerDef
	Zones     map[int]gamemath.Rect

	PlayerSpawn math.Vec2
}

// DoorDef is a piston door. Doors sharing a Group are paired.
type DoorDef struct {
	Rect      gamemath.Rect
	Group     int
	Direction string // "up", "down", "left", "right" or empty
}

// ZoneDef is a rectangle bound to an id.
type ZoneDef struct {
	Rect gamemath.Rect
	ID   int
}

// ButtonDef is a button linked to the door group Door.
type ButtonDef struct {
	Rect   gamemath.Rect
	Door   int
	Policy string // explicit policy name, empty selects by door id
}

// SpawnerDef is an enemy spawner.
type SpawnerDef struct {
	Rect    gamemath.Rect
	Number  int
	Trigger string
	Zone    *gamemath.Rect // resolved for zone triggers
}
