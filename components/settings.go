package components

import "github.com/yohamta/donburi"

// SettingsData holds display toggles that survive restarts.
type SettingsData struct {
	Fullscreen bool
	Debug      bool
	Dirty      bool // changed since the last save
}

func (s *SettingsData) ToggleFullscreen() {
	s.Fullscreen = !s.Fullscreen
	s.Dirty = true
}

func (s *SettingsData) ToggleDebug() {
	s.Debug = !s.Debug
	s.Dirty = true
}

var Settings = donburi.NewComponentType[SettingsData]()
