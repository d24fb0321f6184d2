package systems

import (
	"github.com/automoto/bounce/archetypes"
	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause menu. Runs after UpdateInput and before the
// gameplay systems it gates.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	if getOrCreateInput(ecs).Action(cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
}

// DrawPause dims the level behind the menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs) {
		return
	}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), cfg.Menu.Overlay, false)
}

// WithPauseCheck wraps a system to skip execution while paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if entry, ok := components.Pause.First(ecs.World); ok {
		return components.Pause.Get(entry)
	}
	return components.Pause.Get(archetypes.Pause.Spawn(ecs.World))
}
