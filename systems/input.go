package systems

import (
	"github.com/automoto/bounce/archetypes"
	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Bindings maps each action to the keys that trigger it.
var Bindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:         {ebiten.KeyArrowLeft, ebiten.KeyA},
	cfg.ActionMoveRight:        {ebiten.KeyArrowRight, ebiten.KeyD},
	cfg.ActionJump:             {ebiten.KeyArrowUp, ebiten.KeyW},
	cfg.ActionExplode:          {ebiten.KeySpace},
	cfg.ActionReset:            {ebiten.KeyR},
	cfg.ActionQuit:             {ebiten.KeyQ},
	cfg.ActionPause:            {ebiten.KeyEscape, ebiten.KeyP},
	cfg.ActionToggleFullscreen: {ebiten.KeyF},
	cfg.ActionToggleDebug:      {ebiten.KeyF3},
}

// UpdateInput polls the keyboard into the Input component.
// Must run before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Swap()

	for actionID, keys := range Bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// QuitRequested reports whether quit was pressed this frame or chosen from
// the pause menu.
func QuitRequested(ecs *ecs.ECS) bool {
	return getOrCreateInput(ecs).Action(cfg.ActionQuit).JustPressed || GetOrCreatePause(ecs).Quit
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(ecs.World); ok {
		return components.Input.Get(entry)
	}
	return components.Input.Get(archetypes.Input.Spawn(ecs.World))
}
