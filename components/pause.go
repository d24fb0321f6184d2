package components

import "github.com/yohamta/donburi"

// PauseData freezes the simulation while the menu is open.
type PauseData struct {
	IsPaused bool
	Quit     bool // chosen from the menu, read by the scene
}

var Pause = donburi.NewComponentType[PauseData]()
