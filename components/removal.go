package components

import "github.com/yohamta/donburi"

// RemovalData marks an entity for deletion at the end-of-tick barrier.
type RemovalData struct {
	Reason string
}

var Removal = donburi.NewComponentType[RemovalData]()
