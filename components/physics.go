package components

import (
	"github.com/automoto/bounce/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Velocity gamemath.Vector
	OnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
