package leveldata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tmxTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="10" nextobjectid="20">
 <tileset firstgid="1" name="walls" tilewidth="32" tileheight="32" tilecount="1" columns="1">
  <image source="walls.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="Walls" width="4" height="3">
  <data encoding="csv">
1,1,1,1,
1,0,0,1,
1,1,1,1
</data>
 </layer>
 <layer id="2" name="Pistonwall" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,1,0,
0,0,0,0
</data>
 </layer>
 <objectgroup id="3" name="Pistons">
  <object id="1" x="32" y="32" width="32" height="64">
   <properties><property name="door" type="int" value="1"/><property name="direction" value="Up"/></properties>
  </object>
  <object id="2" x="64" y="32" width="32" height="64">
   <properties><property name="door" type="int" value="1"/></properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Buttons">
  <object id="3" x="10" y="10" width="16" height="16">
   <properties><property name="door" type="int" value="2"/></properties>
  </object>
 </objectgroup>
 <objectgroup id="5" name="Entities">
  <object id="4" name="Player" x="48" y="48"/>
  <object id="5" name="Spawner" x="80" y="80" width="64" height="64">
   <properties><property name="spawner" type="int" value="7"/><property name="trigger" value="zone"/></properties>
  </object>
 </objectgroup>
%s
</map>
`

const zoneGroup = ` <objectgroup id="6" name="SpawnZones">
  <object id="6" x="0" y="0" width="100" height="50">
   <properties><property name="spawner" type="int" value="7"/></properties>
  </object>
 </objectgroup>`

func writeLevel(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level01.tmx"), []byte(fmt.Sprintf(tmxTemplate, extra)), 0o644))
	return dir
}

func TestLoadParsesLayersAndObjects(t *testing.T) {
	dir := writeLevel(t, zoneGroup)

	level, err := Load(os.DirFS(dir), "level01.tmx")
	require.NoError(t, err)

	assert.Equal(t, "level01", level.Name)
	assert.Equal(t, 128, level.Width)
	assert.Equal(t, 96, level.Height)
	assert.Len(t, level.Walls, 10)
	assert.Equal(t, []gamemath.Rect{{X: 64, Y: 32, W: 32, H: 32}}, level.PistonWalls)

	require.Len(t, level.Doors, 2)
	assert.Equal(t, 1, level.Doors[0].Group)
	assert.Equal(t, "up", level.Doors[0].Direction)
	assert.Equal(t, "", level.Doors[1].Direction)

	require.Len(t, level.Buttons, 1)
	assert.Equal(t, 2, level.Buttons[0].Door)

	assert.Equal(t, 48.0, level.PlayerSpawn.X)

	require.Len(t, level.Spawners, 1)
	sp := level.Spawners[0]
	assert.Equal(t, 7, sp.Number)
	assert.Equal(t, TriggerZone, sp.Trigger)
	require.NotNil(t, sp.Zone)
	assert.Equal(t, gamemath.Rect{W: 100, H: 50}, *sp.Zone)
}

func TestLoadFailsOnMissingZone(t *testing.T) {
	dir := writeLevel(t, "")

	_, err := Load(os.DirFS(dir), "level01.tmx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrZoneNotFound))
	assert.Contains(t, err.Error(), "spawner 7")
}

func TestLoadAll(t *testing.T) {
	dir := writeLevel(t, zoneGroup)

	levels, names, err := LoadAll(os.DirFS(dir), ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"level01"}, names)
	assert.Contains(t, levels, "level01")

	_, _, err = LoadAll(os.DirFS(t.TempDir()), ".")
	assert.Error(t, err)
}
