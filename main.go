package main

import (
	"errors"
	"flag"
	"log"

	"github.com/automoto/bounce/config"
	"github.com/automoto/bounce/core"
	"github.com/automoto/bounce/fonts"
	"github.com/automoto/bounce/scenes"
	"github.com/automoto/bounce/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Done() bool
}

type Game struct {
	scene Scene
}

func NewGame(opts core.Options, tuningPath string) (*Game, error) {
	if err := fonts.Load(); err != nil {
		return nil, err
	}

	scene, err := scenes.NewPlatformerScene(opts, tuningPath)
	if err != nil {
		return nil, err
	}

	return &Game{scene: scene}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("config", "", "tuning file (.yaml, .yml or .toml), reloaded on change")
	debug := flag.Bool("debug", false, "draw the broad-phase overlay")
	seed := flag.Uint64("seed", 0, "seed for particle randomness (0 picks one)")
	flag.Parse()

	config.Debug.Overlay = *debug

	opts := core.DefaultOptions()
	if *tuningPath != "" {
		t, err := config.LoadFile(*tuningPath, opts.Tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		opts.Tuning = t
		log.Printf("Loaded tuning from %s", *tuningPath)
	}
	if *seed != 0 {
		opts.Rand = core.NewRand(*seed)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TickRate)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	game, err := NewGame(opts, *tuningPath)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Println("Bye")
}
