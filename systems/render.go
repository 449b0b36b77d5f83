package systems

import (
	"image/color"
	stdmath "math"
	"sort"
	"time"

	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/automoto/coffin-escape/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp      = &ebiten.DrawImageOptions{}
	flashOp     = &colorm.DrawImageOptions{}
	flashMatrix colorm.ColorM
)

func init() {
	// Every visible pixel becomes opaque white
	flashMatrix.Scale(0, 0, 0, 1)
	flashMatrix.Translate(1, 1, 1, 0)
}

// drawable is one sprite queued for depth-sorted drawing.
type drawable struct {
	img   *ebiten.Image
	rect  gamemath.Rect
	fill  color.Color
	flash bool
}

// Blinking reports whether an invulnerable entity is in the white half of its blink.
func Blinking(now time.Duration, health *components.HealthData) bool {
	if health == nil || health.Vulnerable {
		return false
	}
	period := cfg.Combat.BlinkPeriod.Seconds()
	if period <= 0 {
		return false
	}
	return stdmath.Sin(2*stdmath.Pi*now.Seconds()/period) >= 0
}

// DrawLevel draws the pre-rendered level background.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	bg := components.Level.Get(entry).Background
	if bg == nil {
		return
	}
	offset := cameraOffset(e, screen)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(offset.X, offset.Y)
	screen.DrawImage(bg, drawOp)
}

// DrawEntities draws every visible entity sorted by the centre of its rect so
// lower sprites overlap higher ones.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	now := clockOf(e).Now
	offset := cameraOffset(e, screen)
	view := gamemath.Rect{
		X: -offset.X,
		Y: -offset.Y,
		W: float64(screen.Bounds().Dx()),
		H: float64(screen.Bounds().Dy()),
	}.Inflate(128, 128)

	var queue []drawable
	add := func(d drawable) {
		if view.Overlaps(d.rect) {
			queue = append(queue, d)
		}
	}

	addStatic := func(entry *donburi.Entry) {
		add(drawable{
			img:  components.Sprite.Get(entry).Image,
			rect: components.Object.Get(entry).Rect(),
			fill: staticFill(entry),
		})
	}
	tags.Door.Each(e.World, addStatic)
	tags.Button.Each(e.World, addStatic)
	tags.Key.Each(e.World, addStatic)

	tags.Spawner.Each(e.World, func(entry *donburi.Entry) {
		s := components.Spawner.Get(entry)
		r := components.Body.Get(entry).VisualRect()
		r.X += float64(s.ShakeOffset)
		var img *ebiten.Image
		if len(s.Images) > 0 {
			img = s.Images[min(s.DamageState, len(s.Images)-1)]
		}
		add(drawable{img: img, rect: r, fill: cfg.DarkGray})
	})

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		add(drawable{
			img:  components.Sprite.Get(entry).Image,
			rect: components.Body.Get(entry).VisualRect(),
			fill: cfg.Yellow,
		})
	})

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		fill := color.Color(cfg.Red)
		if entry.HasComponent(tags.Player) {
			fill = cfg.White
		}
		add(drawable{
			img:   components.Animation.Get(entry).Current().Image,
			rect:  components.Body.Get(entry).VisualRect(),
			fill:  fill,
			flash: Blinking(now, components.Health.Get(entry)),
		})
	})

	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].rect.Center().Y < queue[j].rect.Center().Y
	})
	for _, d := range queue {
		drawOne(screen, d, offset)
	}
}

func drawOne(screen *ebiten.Image, d drawable, offset math.Vec2) {
	x, y := d.rect.X+offset.X, d.rect.Y+offset.Y
	if d.img == nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(d.rect.W), float32(d.rect.H), d.fill, false)
		return
	}
	if d.flash {
		flashOp.GeoM.Reset()
		flashOp.GeoM.Translate(x, y)
		colorm.DrawImage(screen, d.img, flashMatrix, flashOp)
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(d.img, drawOp)
}

func staticFill(entry *donburi.Entry) color.Color {
	switch {
	case entry.HasComponent(tags.Key):
		return cfg.Yellow
	case entry.HasComponent(tags.Button):
		return cfg.Red
	}
	return cfg.DarkGray
}

// cameraOffset maps world coordinates to screen coordinates.
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) math.Vec2 {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return math.Vec2{}
	}
	cam := components.Camera.Get(entry).Position
	return math.Vec2{
		X: float64(screen.Bounds().Dx())/2 - cam.X,
		Y: float64(screen.Bounds().Dy())/2 - cam.Y,
	}
}
