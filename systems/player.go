package systems

import (
	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/automoto/coffin-escape/logger"
	"github.com/automoto/coffin-escape/shared/gamemath"
	"github.com/automoto/coffin-escape/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayer turns the input state into movement, shooting, reloading and
// button presses.
func UpdatePlayer(e *ecs.ECS) {
	player, ok := playerOf(e)
	if !ok {
		return
	}
	combat := components.Combat.Get(player)
	vel := components.Velocity.Get(player)
	data := components.Player.Get(player)
	now := clockOf(e).Now

	if data.Reloading && now-data.ReloadStart >= cfg.Player.ReloadDuration {
		data.Reloading = false
		data.Ammo = data.MaxAmmo
		logger.For("player").WithField("ammo", data.Ammo).Debug("reload finished")
	}

	if combat.Dead {
		vel.Dir = math.Vec2{}
		return
	}

	input, hasInput := inputOf(e)
	if !hasInput {
		return
	}
	data.Aim = aimDirection(e, player, input.Pointer)

	if combat.Attacking {
		vel.Dir = math.Vec2{}
		return
	}

	dir := math.Vec2{}
	if input.Pressed(cfg.ActionMoveUp) {
		dir.Y--
		combat.Facing = cfg.FacingUp
	}
	if input.Pressed(cfg.ActionMoveDown) {
		dir.Y++
		combat.Facing = cfg.FacingDown
	}
	if input.Pressed(cfg.ActionMoveLeft) {
		dir.X--
		combat.Facing = cfg.FacingLeft
	}
	if input.Pressed(cfg.ActionMoveRight) {
		dir.X++
		combat.Facing = cfg.FacingRight
	}
	vel.Dir = dir
	if dir.X != 0 || dir.Y != 0 {
		combat.Action = cfg.ActionWalk
	} else {
		combat.Action = cfg.ActionIdle
	}

	if input.JustPressed(cfg.ActionReload) {
		Reload(e, player)
	}
	if input.JustPressed(cfg.ActionFire) {
		Fire(e, player)
	}
	if input.JustPressed(cfg.ActionInteract) {
		pressNearbyButtons(e, player)
	}
}

// Fire shoots one projectile along the player's aim. It fails without ammo, while
// reloading and while the previous shot is still playing.
func Fire(e *ecs.ECS, player *donburi.Entry) bool {
	data := components.Player.Get(player)
	combat := components.Combat.Get(player)
	if data.Ammo <= 0 || data.Reloading || combat.Attacking || combat.Dead {
		return false
	}

	aim := data.Aim
	if aim.X == 0 && aim.Y == 0 {
		aim = facingVector(combat.Facing)
	}
	body := components.Body.Get(player)
	origin := gamemath.Add(body.Pos, gamemath.Scale(aim, cfg.Projectile.SpawnOffset))
	if factory.CreateProjectile(e, origin, aim, player) == nil {
		return false
	}

	data.Ammo--
	combat.Attacking = true
	combat.Action = cfg.ActionAttack
	combat.Facing = facingToward(body.Pos, origin)
	components.Velocity.Get(player).Dir = math.Vec2{}
	PlaySFX(e, cfg.SoundShoot)
	return true
}

// Reload starts refilling the magazine. Completion happens in UpdatePlayer once
// the reload duration has passed.
func Reload(e *ecs.ECS, player *donburi.Entry) bool {
	data := components.Player.Get(player)
	if data.Reloading || data.Ammo >= data.MaxAmmo || components.Combat.Get(player).Dead {
		return false
	}
	data.Reloading = true
	data.ReloadStart = clockOf(e).Now
	PlaySFX(e, cfg.SoundReload)
	logger.For("player").WithFields(logrus.Fields{
		"ammo": data.Ammo,
	}).Debug("reload started")
	return true
}

// aimDirection converts the screen-space pointer to a world direction from the player.
func aimDirection(e *ecs.ECS, player *donburi.Entry, pointer math.Vec2) math.Vec2 {
	world := pointer
	if entry, ok := components.Camera.First(e.World); ok {
		cam := components.Camera.Get(entry).Position
		world = math.Vec2{
			X: pointer.X + cam.X - float64(cfg.C.Width)/2,
			Y: pointer.Y + cam.Y - float64(cfg.C.Height)/2,
		}
	}
	return gamemath.Direction(components.Body.Get(player).Pos, world)
}

func facingVector(f cfg.Facing) math.Vec2 {
	switch f {
	case cfg.FacingUp:
		return math.Vec2{Y: -1}
	case cfg.FacingLeft:
		return math.Vec2{X: -1}
	case cfg.FacingRight:
		return math.Vec2{X: 1}
	}
	return math.Vec2{Y: 1}
}

func inputOf(e *ecs.ECS) (*components.InputData, bool) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Input.Get(entry), true
}
