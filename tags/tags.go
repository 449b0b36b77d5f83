package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Wall       = donburi.NewTag().SetName("Wall")
	Door       = donburi.NewTag().SetName("Door")
	Button     = donburi.NewTag().SetName("Button")
	Key        = donburi.NewTag().SetName("Key")
	Spawner    = donburi.NewTag().SetName("Spawner")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for collision queries. Every blocking body also carries its
// category name (see components.Category).
const (
	ResolvSolid = "solid"
)
