package components

import (
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/yohamta/donburi"
)

// AttackKind is the attack an enemy is currently playing.
type AttackKind int

const (
	AttackNone AttackKind = iota
	AttackMelee
	AttackRanged
)

type EnemyData struct {
	Kind   cfg.EnemyKind
	Config cfg.EnemyTypeConfig

	Melee  Cooldown
	Ranged Cooldown
	Global Cooldown

	Attack AttackKind
	Fired  bool // the current ranged attack already spawned its projectile

	Spawner *donburi.Entry // non-owning, nil for placed enemies
}

var Enemy = donburi.NewComponentType[EnemyData]()
