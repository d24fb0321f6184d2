package systems

import (
	"github.com/automoto/bounce/archetypes"
	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies the fullscreen and debug overlay toggles and saves
// them when they change.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if input.Action(cfg.ActionToggleFullscreen).JustPressed {
		settings.ToggleFullscreen()
	}
	if input.Action(cfg.ActionToggleDebug).JustPressed {
		settings.ToggleDebug()
	}

	// The pause menu toggles the same component and leaves it dirty.
	if settings.Dirty {
		ebiten.SetFullscreen(settings.Fullscreen)
		SaveCurrentSettings(settings)
		settings.Dirty = false
	}
}

// GetOrCreateSettings returns the settings component, seeding a new one
// from the saved settings and the command line.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(ecs.World); ok {
		return components.Settings.Get(entry)
	}

	ent := archetypes.Settings.Spawn(ecs.World)
	data := components.SettingsData{
		Fullscreen: ebiten.IsFullscreen(),
		Debug:      cfg.Debug.Overlay,
	}
	if saved, err := LoadSettings(); err == nil && saved != nil {
		data.Debug = data.Debug || saved.Debug
	}
	components.Settings.SetValue(ent, data)
	return components.Settings.Get(ent)
}
