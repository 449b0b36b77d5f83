package factory

import (
	"github.com/automoto/coffin-escape/archetypes"
	"github.com/automoto/coffin-escape/assets/animations"
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer creates the player centred on pos.
func CreatePlayer(ecs *ecs.ECS, pos math.Vec2, set *animations.Set) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	body := components.BodyData{
		Category: components.CategoryPlayer,
		Pos:      pos,
		W:        cfg.Player.FrameWidth,
		H:        cfg.Player.FrameHeight,
	}
	components.Body.SetValue(player, body)
	addToSpace(ecs, player, actorObject(body, cfg.Player.HitboxScaleX, cfg.Player.HitboxScaleY))

	components.Player.SetValue(player, components.PlayerData{
		Ammo:    cfg.Player.MaxAmmo,
		MaxAmmo: cfg.Player.MaxAmmo,
		Aim:     math.Vec2{X: 0, Y: 1},
	})
	components.Velocity.SetValue(player, components.VelocityData{Speed: cfg.Player.Speed})
	components.Health.SetValue(player, components.HealthData{
		Current:    cfg.Player.Health,
		Max:        cfg.Player.Health,
		Vulnerable: true,
	})
	components.Combat.SetValue(player, components.CombatData{
		Action: cfg.ActionIdle,
		Facing: cfg.FacingDown,
	})
	components.Animation.SetValue(player, newAnimation(set, cfg.FacingDown))

	return player
}

// actorObject builds a hitbox scaled from the visual rectangle and centred on it.
// Actors carry only their category tag so they never block each other.
func actorObject(body components.BodyData, scaleX, scaleY float64) *resolv.Object {
	hb := gamemath.RectFromCenter(body.Pos, body.W*scaleX, body.H*scaleY)
	obj := resolv.NewObject(hb.X, hb.Y, hb.W, hb.H, body.Category.String())
	obj.SetShape(resolv.NewRectangle(0, 0, hb.W, hb.H))
	return obj
}
