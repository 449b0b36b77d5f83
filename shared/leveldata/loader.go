package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

var (
	ErrNoPlayerSpawn = errors.New("no player spawn point defined in map")
	ErrZoneNotFound  = errors.New("spawn zone not found")
)

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Path:       tmxPath,
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Zones:      map[int]gamemath.Rect{},
	}

	for _, layer := range levelMap.Layers {
		var dst *[]gamemath.Rect
		switch layer.Name {
		case LayerWalls:
			dst = &level.Walls
		case LayerPistonWall:
			dst = &level.PistonWalls
		case LayerBreakable:
			dst = &level.Breakables
		default:
			continue
		}
		*dst = append(*dst, tileRects(levelMap, layer)...)
	}

	hasPlayer := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			r := objectRect(o)
			switch og.Name {
			case GroupPistons:
				level.Doors = append(level.Doors, DoorDef{
					Rect:      r,
					Group:     o.Properties.GetInt("door"),
					Direction: strings.ToLower(o.Properties.GetString("direction")),
				})
			case GroupDoorStops:
				level.DoorStops = append(level.DoorStops, ZoneDef{Rect: r, ID: o.Properties.GetInt("door")})
			case GroupButtons:
				level.Buttons = append(level.Buttons, ButtonDef{
					Rect:   r,
					Door:   o.Properties.GetInt("door"),
					Policy: strings.ToLower(o.Properties.GetString("policy")),
				})
			case GroupKeys:
				level.Keys = append(level.Keys, r)
			case GroupSpawnZones:
				level.Zones[o.Properties.GetInt("spawner")] = r
			case GroupEntities:
				switch o.Name {
				case "Player":
					level.PlayerSpawn = math.Vec2{X: r.X, Y: r.Y}
					hasPlayer = true
				case "Spawner":
					trigger := strings.ToLower(o.Properties.GetString("trigger"))
					if trigger == "" {
						trigger = TriggerSight
					}
					level.Spawners = append(level.Spawners, SpawnerDef{
						Rect:    r,
						Number:  o.Properties.GetInt("spawner"),
						Trigger: trigger,
					})
				case "Key":
					level.Keys = append(level.Keys, r)
				}
			}
		}
	}

	if !hasPlayer {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Zones are resolved after all groups are read since group order in the file is arbitrary.
	for i := range level.Spawners {
		sp := &level.Spawners[i]
		if sp.Trigger != TriggerZone {
			continue
		}
		zone, ok := level.Zones[sp.Number]
		if !ok {
			return nil, fmt.Errorf("%s: spawner %d: %w", tmxPath, sp.Number, ErrZoneNotFound)
		}
		sp.Zone = &zone
	}

	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		level, err := Load(fsys, match)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func tileRects(levelMap *tiled.Map, layer *tiled.Layer) []gamemath.Rect {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	var rects []gamemath.Rect
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			i := y*levelMap.Width + x
			if i >= len(layer.Tiles) || layer.Tiles[i].IsNil() {
				continue
			}
			rects = append(rects, gamemath.Rect{X: float64(x) * tileW, Y: float64(y) * tileH, W: tileW, H: tileH})
		}
	}
	return rects
}

// objectRect converts a Tiled object to a top-left rectangle. Tile objects are
// anchored at their bottom-left corner in Tiled.
func objectRect(o *tiled.Object) gamemath.Rect {
	r := gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
	if o.GID != 0 {
		r.Y -= o.Height
	}
	return r
}
