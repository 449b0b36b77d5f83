package main

import (
	"flag"
	"image"
	"os"
	"time"

	"github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/logger"
	"github.com/automoto/coffin-escape/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Done() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	assetsDir := flag.String("assets", "assets", "directory holding levels, images, audio and fonts")
	levelPath := flag.String("level", "levels/level1.tmx", "level TMX path inside the assets directory")
	configPath := flag.String("config", "", "optional YAML tuning overrides")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.WithError(err).Fatal("invalid configuration")
		}
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	scene, err := scenes.NewWorldScene(scenes.Options{
		FS:    os.DirFS(*assetsDir),
		Level: *levelPath,
		Seed:  *seed,
	})
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"assets": *assetsDir,
			"level":  *levelPath,
		}).Fatal("failed to start")
	}
	log.WithField("seed", *seed).Info("starting")

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		log.WithError(err).Fatal("game loop failed")
	}
}
