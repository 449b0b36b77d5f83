package scenes

import (
	"fmt"
	"image/color"
	"io/fs"
	"sync"

	"github.com/automoto/coffin-escape/assets"
	"github.com/automoto/coffin-escape/assets/animations"
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/fonts"
	"github.com/automoto/coffin-escape/logger"
	"github.com/automoto/coffin-escape/shared/leveldata"
	"github.com/automoto/coffin-escape/systems"
	"github.com/automoto/coffin-escape/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options select the assets and level a WorldScene plays.
type Options struct {
	FS    fs.FS
	Level string // TMX path inside FS
	Seed  uint64
}

// WorldScene runs one level from start to the end screen.
type WorldScene struct {
	ecs     *ecs.ECS
	opts    Options
	level   *leveldata.Level
	library components.LibraryData
	sprites factory.Sprites
	once    sync.Once
}

// NewWorldScene loads the level and its assets up front so a broken map or a
// missing animation fails before the window opens. Decorative images are optional.
func NewWorldScene(opts Options) (*WorldScene, error) {
	level, err := leveldata.Load(opts.FS, opts.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to load level: %w", err)
	}

	log := logger.For("scene")
	loader := assets.NewLoader(opts.FS)

	library, err := loadLibrary(loader, log)
	if err != nil {
		return nil, err
	}
	sprites, err := loadSprites(loader, opts.Level, log)
	if err != nil {
		return nil, err
	}

	return &WorldScene{
		opts:    opts,
		level:   level,
		library: library,
		sprites: sprites,
	}, nil
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

// Done reports whether the end screen has finished.
func (ws *WorldScene) Done() bool {
	return ws.ecs != nil && systems.Finished(ws.ecs)
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	if err := fonts.Load(ws.opts.FS, cfg.UI.FontPath); err != nil {
		logger.For("scene").WithError(err).Warn("using fallback font")
	}
	systems.InitAudio(ws.opts.FS)

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	systems.AddSimulation(ecs)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawEndScreen)

	ws.ecs = ecs

	factory.CreateSession(ws.ecs, ws.opts.Seed, ws.library)
	factory.BuildLevel(ws.ecs, ws.level, ws.sprites)

	systems.PlayMusic(cfg.Sound.Music)
}

// loadLibrary loads the assets used for entities created mid-game. Enemy
// animations are required; a missing projectile or spawner image is drawn as a
// placeholder.
func loadLibrary(loader *assets.Loader, log *logrus.Entry) (components.LibraryData, error) {
	lib := components.LibraryData{
		Enemies: make(map[cfg.EnemyKind]*animations.Set, len(cfg.Enemies)),
	}

	if frame, err := loader.LoadFrame(cfg.Projectile.ImagePath); err != nil {
		log.WithError(err).Warn("projectile image unavailable")
	} else {
		lib.Projectile = frame
	}

	for kind, enemyType := range cfg.Enemies {
		set, err := loadActorSet(loader, enemyType.AnimationDir)
		if err != nil {
			return lib, fmt.Errorf("enemy %s: %w", kind, err)
		}
		lib.Enemies[kind] = set
	}

	if images, err := loader.LoadImages(cfg.Spawner.ImagePaths); err != nil {
		log.WithError(err).Warn("spawner images unavailable")
	} else {
		lib.SpawnerImages = images
	}
	return lib, nil
}

func loadSprites(loader *assets.Loader, levelPath string, log *logrus.Entry) (factory.Sprites, error) {
	var sprites factory.Sprites

	set, err := loadActorSet(loader, cfg.Player.AnimationDir)
	if err != nil {
		return sprites, fmt.Errorf("player: %w", err)
	}
	sprites.Player = set

	if bg, err := loader.RenderBackground(levelPath); err != nil {
		log.WithError(err).Warn("level background unavailable")
	} else {
		sprites.Background = bg
	}

	for path, dst := range map[string]**ebiten.Image{
		cfg.Door.DoorImage:   &sprites.Door,
		cfg.Door.ButtonImage: &sprites.Button,
		cfg.Door.KeyImage:    &sprites.Key,
	} {
		img, err := loader.LoadImage(path)
		if err != nil {
			log.WithError(err).Debug("sprite unavailable, drawing placeholder")
			continue
		}
		*dst = img
	}
	return sprites, nil
}

// loadActorSet loads an animated actor and checks it can play every action.
func loadActorSet(loader *assets.Loader, dir string) (*animations.Set, error) {
	set, err := loader.LoadAnimationSet(dir, cfg.Status(cfg.FacingDown, cfg.ActionIdle))
	if err != nil {
		return nil, err
	}
	if err := set.Require(
		cfg.Status(cfg.FacingDown, cfg.ActionWalk),
		cfg.Status(cfg.FacingDown, cfg.ActionAttack),
		cfg.Status(cfg.FacingDown, cfg.ActionDeath),
	); err != nil {
		return nil, fmt.Errorf("animation set %s: %w", dir, err)
	}
	return set, nil
}
