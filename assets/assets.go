package assets

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/coffin-escape/assets/animations"
	"github.com/automoto/coffin-escape/logger"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// Loader reads images, animation sets and level art from an asset filesystem.
// Frames are cached by path.
type Loader struct {
	fsys  fs.FS
	cache map[string]animations.Frame
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]animations.Frame),
	}
}

// FS returns the filesystem the loader reads from.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadFrame decodes an image and derives its collision mask from the alpha channel.
func (l *Loader) LoadFrame(name string) (animations.Frame, error) {
	if frame, ok := l.cache[name]; ok {
		return frame, nil
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return animations.Frame{}, fmt.Errorf("failed to read image %s: %w", name, err)
	}
	img, src, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return animations.Frame{}, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	frame := animations.Frame{Image: img, Mask: gamemath.NewMask(src)}
	l.cache[name] = frame
	return frame, nil
}

// LoadImage is LoadFrame without the mask.
func (l *Loader) LoadImage(name string) (*ebiten.Image, error) {
	frame, err := l.LoadFrame(name)
	return frame.Image, err
}

// LoadImages loads every path in order.
func (l *Loader) LoadImages(names []string) ([]*ebiten.Image, error) {
	images := make([]*ebiten.Image, 0, len(names))
	for _, name := range names {
		img, err := l.LoadImage(name)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

// LoadAnimationSet reads a directory holding one subdirectory per status. Frames
// are ordered by the number in their file name, so 10.png follows 9.png.
func (l *Loader) LoadAnimationSet(dir, defaultKey string) (*animations.Set, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read animation dir %s: %w", dir, err)
	}

	sequences := make(map[string][]animations.Frame)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		status := entry.Name()
		files, err := frameFiles(l.fsys, path.Join(dir, status))
		if err != nil {
			return nil, err
		}
		for _, name := range files {
			frame, err := l.LoadFrame(name)
			if err != nil {
				return nil, err
			}
			sequences[status] = append(sequences[status], frame)
		}
	}

	if _, ok := sequences[defaultKey]; !ok && len(sequences) > 0 {
		keys := make([]string, 0, len(sequences))
		for k := range sequences {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		logger.For("assets").WithField("dir", dir).Warnf("no %q status, defaulting to %q", defaultKey, keys[0])
		defaultKey = keys[0]
	}

	set, err := animations.NewSet(defaultKey, sequences)
	if err != nil {
		return nil, fmt.Errorf("animation set %s: %w", dir, err)
	}
	return set, nil
}

func frameFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read frames %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(path.Ext(entry.Name()), ".png") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Slice(names, func(i, j int) bool {
		return frameLess(names[i], names[j])
	})
	for i, name := range names {
		names[i] = path.Join(dir, name)
	}
	return names, nil
}

// frameLess orders numeric file names numerically and everything else lexically.
func frameLess(a, b string) bool {
	na, errA := strconv.Atoi(strings.TrimSuffix(a, path.Ext(a)))
	nb, errB := strconv.Atoi(strings.TrimSuffix(b, path.Ext(b)))
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}

// RenderBackground draws every visible tile layer of a level into one image.
func (l *Loader) RenderBackground(levelPath string) (*ebiten.Image, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", levelPath, err)
	}
	renderer, err := render.NewRendererWithFileSystem(levelMap, l.fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	background := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)
	for i, layer := range levelMap.Layers {
		if !layer.Visible || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			logger.For("assets").WithError(err).WithField("layer", layer.Name).Warn("failed to render layer")
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return background, nil
}
