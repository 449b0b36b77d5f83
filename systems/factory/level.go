package factory

import (
	"github.com/automoto/coffin-escape/archetypes"
	"github.com/automoto/coffin-escape/assets/animations"
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/logger"
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Sprites are the images used while building a level. Any of them may be nil.
type Sprites struct {
	Player     *animations.Set
	Background *ebiten.Image
	Door       *ebiten.Image
	Button     *ebiten.Image
	Key        *ebiten.Image
}

func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, background *ebiten.Image) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		Level:      level,
		Background: background,
	})
	return entry
}

// BuildLevel creates the level, its collision space and every entity it defines.
// It returns the player.
func BuildLevel(ecs *ecs.ECS, level *leveldata.Level, sprites Sprites) *donburi.Entry {
	CreateLevel(ecs, level, sprites.Background)
	CreateSpace(ecs, level.Width, level.Height, CellSize, CellSize)
	CreateCamera(ecs)

	for _, r := range level.Walls {
		CreateWall(ecs, r, components.CategoryWall)
	}
	for _, r := range level.PistonWalls {
		CreateWall(ecs, r, components.CategoryPistonWall)
	}
	for _, r := range level.Breakables {
		CreateWall(ecs, r, components.CategoryBreakable)
	}

	doors := make([]*donburi.Entry, 0, len(level.Doors))
	for _, def := range level.Doors {
		doors = append(doors, CreateDoor(ecs, def, sprites.Door))
	}
	firstDoor := LinkDoors(doors)
	AssignDoorStops(doors, level.DoorStops)

	for _, def := range level.Buttons {
		door := firstDoor[def.Door]
		if door == nil {
			logger.For("button").WithField("door", def.Door).Warn("button has no door in its group")
		}
		CreateButton(ecs, def, door, sprites.Button)
	}

	for _, r := range level.Keys {
		CreateKey(ecs, r, sprites.Key)
	}

	var spawnerImages []*ebiten.Image
	if lib, ok := components.Library.First(ecs.World); ok {
		spawnerImages = components.Library.Get(lib).SpawnerImages
	}
	for _, def := range level.Spawners {
		CreateSpawner(ecs, def, spawnerImages)
	}

	set := sprites.Player
	if set == nil {
		set = PlaceholderSet(cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	}
	player := CreatePlayer(ecs, level.PlayerSpawn, set)

	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		components.Camera.Get(cameraEntry).Position = level.PlayerSpawn
	}

	logger.For("level").WithFields(logrus.Fields{
		"level":    level.Name,
		"walls":    len(level.Walls) + len(level.PistonWalls) + len(level.Breakables),
		"doors":    len(doors),
		"buttons":  len(level.Buttons),
		"spawners": len(level.Spawners),
	}).Info("level built")

	return player
}
