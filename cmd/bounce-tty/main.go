// Command bounce-tty runs the platformer in a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/core"
	"github.com/gdamore/tcell/v2"
)

func main() {
	tuningPath := flag.String("config", "", "tuning file (.yaml, .yml or .toml)")
	seed := flag.Uint64("seed", 0, "seed for particle randomness (0 picks one)")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	opts := core.DefaultOptions()
	if *tuningPath != "" {
		t, err := cfg.LoadFile(*tuningPath, opts.Tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		opts.Tuning = t
	}
	if *seed != 0 {
		opts.Rand = core.NewRand(*seed)
	}

	session, err := core.NewSession(opts)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	defer screen.Fini()

	// The terminal is the display now; logging to it would corrupt the screen.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	run(screen, session)
}

// run drives session from terminal events until the player quits.
func run(screen tcell.Screen, session *core.Session) {
	presses := make(chan cfg.ActionID, 64)
	resized := make(chan struct{}, 1)
	go pollEvents(screen, presses, resized)

	var keys keyState
	var loop *GameLoop
	quit := false

	tick := func() {
		for drained := false; !drained; {
			select {
			case a := <-presses:
				keys.Press(a)
			case <-resized:
				screen.Sync()
			default:
				drained = true
			}
		}

		input := keys.Advance()
		if input.Action(cfg.ActionQuit).JustPressed {
			if !quit {
				quit = true
				loop.Stop()
			}
			return
		}
		if input.Action(cfg.ActionReset).JustPressed {
			session.Reset()
		} else {
			session.Advance(core.IntentFromInput(input))
		}
		draw(screen, session.Snapshot(), session.Bounds)
	}

	loop = NewGameLoop(tick, cfg.C.TickRate)
	loop.Run()
	log.Printf("Quit after %d ticks", session.Tick())
}

// pollEvents forwards key presses until the screen is finalized.
func pollEvents(screen tcell.Screen, presses chan<- cfg.ActionID, resized chan<- struct{}) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if a := actionForKey(ev.Key(), ev.Rune()); a != cfg.ActionNone {
				select {
				case presses <- a:
				default:
				}
			}
		case *tcell.EventResize:
			select {
			case resized <- struct{}{}:
			default:
			}
		}
	}
}
