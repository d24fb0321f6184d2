package scenes

import (
	"fmt"
	"log"

	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/core"
	"github.com/automoto/bounce/systems"
	"github.com/automoto/bounce/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

type PlatformerScene struct {
	ecs     *ecs.ECS
	session *core.Session
	pauseUI *ui.PauseUI

	tuningPath string
	watcher    *cfg.Watcher
	done       bool
}

// NewPlatformerScene builds the session and wires the systems around it.
// A non-empty tuningPath is watched and reloaded while the scene runs.
func NewPlatformerScene(opts core.Options, tuningPath string) (*PlatformerScene, error) {
	session, err := core.NewSession(opts)
	if err != nil {
		return nil, fmt.Errorf("platformer scene: %w", err)
	}

	ps := &PlatformerScene{
		session:    session,
		tuningPath: tuningPath,
	}
	ps.configure()

	if tuningPath != "" {
		w, err := cfg.NewWatcher(tuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", tuningPath, err)
		} else {
			ps.watcher = w
		}
	}

	return ps, nil
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(ps.session.World)

	// Input first so every later system sees this frame's actions
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSession(ps.session)))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))

	ecs.AddRenderer(layerDefault, systems.DrawLevel)
	ecs.AddRenderer(layerDefault, systems.DrawParticles)
	ecs.AddRenderer(layerDefault, systems.DrawPlayer)
	ecs.AddRenderer(layerDefault, systems.DrawHUD)
	ecs.AddRenderer(layerDefault, systems.DrawDebug)
	ecs.AddRenderer(layerDefault, systems.DrawPause)

	ps.ecs = ecs
	ps.pauseUI = ui.NewPauseUI(
		func() *components.SettingsData { return systems.GetOrCreateSettings(ps.ecs) },
		func() { systems.GetOrCreatePause(ps.ecs).IsPaused = false },
		func() {
			ps.session.Reset()
			systems.GetOrCreatePause(ps.ecs).IsPaused = false
		},
		func() { systems.GetOrCreatePause(ps.ecs).Quit = true },
	)
}

func (ps *PlatformerScene) Update() {
	if ps.done {
		return
	}
	ps.reloadTuning()
	ps.ecs.Update()
	if systems.IsPaused(ps.ecs) {
		ps.pauseUI.Update()
	}

	if systems.QuitRequested(ps.ecs) {
		ps.done = true
		if ps.watcher != nil {
			_ = ps.watcher.Close()
		}
	}
}

// reloadTuning applies pending tuning file changes between ticks. A broken
// file keeps the current tuning.
func (ps *PlatformerScene) reloadTuning() {
	if ps.watcher == nil {
		return
	}
	for {
		select {
		case path := <-ps.watcher.Events:
			t, err := cfg.LoadFile(path, ps.session.Tuning())
			if err != nil {
				log.Printf("Tuning reload failed: %v", err)
				continue
			}
			if err := ps.session.SetTuning(t); err != nil {
				log.Printf("Tuning rejected: %v", err)
				continue
			}
			log.Printf("Reloaded tuning from %s", path)
		case err := <-ps.watcher.Errors:
			log.Printf("Tuning watch error: %v", err)
		default:
			return
		}
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	ps.ecs.Draw(screen)
	if systems.IsPaused(ps.ecs) {
		ps.pauseUI.UI.Draw(screen)
	}
}

// Done reports whether the player asked to quit.
func (ps *PlatformerScene) Done() bool {
	return ps.done
}
