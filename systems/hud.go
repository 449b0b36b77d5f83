package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders hearts, ammo, score and the key indicator in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	player, ok := playerOf(e)
	if !ok {
		return
	}
	hp := components.Health.Get(player)
	data := components.Player.Get(player)
	ui := cfg.UI

	for i := 0; i < hp.Max; i++ {
		c := ui.HeartColor
		if i >= hp.Current {
			c = ui.EmptyColor
		}
		x := ui.Margin + float64(i)*(ui.HeartSize+ui.HeartGap)
		vector.DrawFilledRect(screen, float32(x), float32(ui.Margin), float32(ui.HeartSize), float32(ui.HeartSize), c, false)
	}

	face := fonts.HUD.Get()
	lineH := face.Metrics().Height.Ceil() + 4
	y := int(ui.Margin+ui.HeartSize) + lineH
	x := int(ui.Margin)

	ammo := fmt.Sprintf("Ammo: %d/%d", data.Ammo, data.MaxAmmo)
	if data.Reloading {
		ammo += "  Reloading..."
	}
	text.Draw(screen, ammo, face, x, y, ui.TextColor)
	y += lineH
	text.Draw(screen, fmt.Sprintf("Score: %d/%d", data.Score, cfg.Combat.WinScore), face, x, y, ui.TextColor)
	if data.HasKey {
		y += lineH
		text.Draw(screen, "Key", face, x, y, cfg.Yellow)
	}
}

// DrawEndScreen fades in the win or lose overlay once the session has ended.
func DrawEndScreen(e *ecs.ECS, screen *ebiten.Image) {
	game := gameOf(e)
	if game == nil || game.State == components.GamePlaying {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	overlay := cfg.BlackOverlay
	overlay.A = uint8(float32(overlay.A) * game.Alpha)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlay, false)

	msg := cfg.EndScreen.LoseMessage
	if game.State == components.GameWon {
		msg = cfg.EndScreen.WinMessage
	}
	face := fonts.Title.Get()
	bounds := text.BoundString(face, msg)
	c := cfg.White
	c.A = uint8(255 * game.Alpha)
	text.Draw(screen, msg, face, (w-bounds.Dx())/2, (h+bounds.Dy())/2, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}
