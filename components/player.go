package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing  int // -1 or 1, last horizontal steering direction
	Impacts int // Landings that raised an explosion
}

var Player = donburi.NewComponentType[PlayerData]()
