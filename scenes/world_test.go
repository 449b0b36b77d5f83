package scenes

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptyLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="32" tileheight="32" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Entities">
  <object id="1" name="Player" x="32" y="32"/>
 </objectgroup>
</map>
`

func TestNewWorldSceneMissingLevel(t *testing.T) {
	_, err := NewWorldScene(Options{FS: os.DirFS(t.TempDir()), Level: "levels/missing.tmx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load level")
}

func TestNewWorldSceneRequiresAnimations(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level.tmx"), []byte(emptyLevel), 0o644))

	_, err := NewWorldScene(Options{FS: os.DirFS(dir), Level: "level.tmx"})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "enemy")
}

func TestNewWorldSceneLevelWithoutPlayer(t *testing.T) {
	dir := t.TempDir()
	noPlayer := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="32" tileheight="32" infinite="0" nextlayerid="1" nextobjectid="1">
</map>
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level.tmx"), []byte(noPlayer), 0o644))

	_, err := NewWorldScene(Options{FS: os.DirFS(dir), Level: "level.tmx"})
	assert.ErrorIs(t, err, leveldata.ErrNoPlayerSpawn)
}
