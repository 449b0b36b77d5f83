package components

import "github.com/yohamta/donburi"

// ButtonPolicy decides what a press does.
type ButtonPolicy int

const (
	PolicyDefault ButtonPolicy = iota
	PolicyKeyGated
	PolicyMultiPress
	PolicyRandom
)

func (p ButtonPolicy) String() string {
	switch p {
	case PolicyKeyGated:
		return "key"
	case PolicyMultiPress:
		return "multi"
	case PolicyRandom:
		return "random"
	}
	return "default"
}

// ParseButtonPolicy maps a policy name to a policy, falling back to the door id:
// 2 is key gated, 3 multi press, 4 random, anything else default.
func ParseButtonPolicy(name string, doorID int) ButtonPolicy {
	switch name {
	case "key":
		return PolicyKeyGated
	case "multi":
		return PolicyMultiPress
	case "random":
		return PolicyRandom
	case "default":
		return PolicyDefault
	}
	switch doorID {
	case 2:
		return PolicyKeyGated
	case 3:
		return PolicyMultiPress
	case 4:
		return PolicyRandom
	}
	return PolicyDefault
}

type ButtonData struct {
	DoorID  int
	Policy  ButtonPolicy
	Pressed bool
	Presses int
	Door    *donburi.Entry // non-owning, nil when no door has this id
}

var Button = donburi.NewComponentType[ButtonData]()
