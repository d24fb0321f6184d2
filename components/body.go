package components

import (
	"github.com/automoto/bounce/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is the collision box every entity is drawn and collided with.
// Previous is the box before the current tick's movement; only the player
// uses it, to tell edge contacts from face contacts.
type BodyData struct {
	Rect     gamemath.Rect
	Previous gamemath.Rect
}

var Body = donburi.NewComponentType[BodyData]()
