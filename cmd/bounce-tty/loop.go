package main

import (
	"log"
	"time"
)

// GameLoop calls tick at a fixed rate until stopped.
type GameLoop struct {
	tick     func()
	tickRate int
	stopChan chan struct{}
}

func NewGameLoop(tick func(), tickRate int) *GameLoop {
	return &GameLoop{
		tick:     tick,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends Run. It must be called at most once.
func (g *GameLoop) Stop() {
	close(g.stopChan)
}
