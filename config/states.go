package config

// Action is the base name of an animation status.
type Action string

const (
	ActionIdle   Action = "idle"
	ActionWalk   Action = "walk"
	ActionAttack Action = "attack"
	ActionDeath  Action = "death"
)

// OneShot reports whether the action plays once and then resolves.
func (a Action) OneShot() bool {
	return a == ActionAttack || a == ActionDeath
}

// Facing is the cardinal direction an entity looks toward
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	}
	return "down"
}

// Status is the animation key for a facing and action, e.g. "left_walk".
func Status(f Facing, a Action) string {
	return f.String() + "_" + string(a)
}
