package main

import (
	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/gdamore/tcell/v2"
)

// holdTicks is how long a key counts as held after its last press event.
// Terminals only report presses, and autorepeat fills the gaps while a key
// stays down.
const holdTicks = 8

// actionForKey maps a terminal key event to a game action.
func actionForKey(key tcell.Key, r rune) cfg.ActionID {
	switch key {
	case tcell.KeyLeft:
		return cfg.ActionMoveLeft
	case tcell.KeyRight:
		return cfg.ActionMoveRight
	case tcell.KeyUp:
		return cfg.ActionJump
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cfg.ActionQuit
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return cfg.ActionMoveLeft
		case 'd', 'D':
			return cfg.ActionMoveRight
		case 'w', 'W':
			return cfg.ActionJump
		case ' ':
			return cfg.ActionExplode
		case 'r', 'R':
			return cfg.ActionReset
		case 'q', 'Q':
			return cfg.ActionQuit
		}
	}
	return cfg.ActionNone
}

// keyState turns press events into per-tick held state.
type keyState struct {
	tick      int
	lastPress [cfg.ActionCount]int
	pressed   [cfg.ActionCount]bool
	input     components.InputData
}

// Press marks a as held. A direction press releases the opposite direction,
// since a terminal never reports the release of the previous key.
func (k *keyState) Press(a cfg.ActionID) {
	if a == cfg.ActionNone {
		return
	}
	k.lastPress[a] = k.tick
	k.pressed[a] = true
	switch a {
	case cfg.ActionMoveLeft:
		k.pressed[cfg.ActionMoveRight] = false
	case cfg.ActionMoveRight:
		k.pressed[cfg.ActionMoveLeft] = false
	}
}

// Advance rolls the input forward one tick and returns it.
func (k *keyState) Advance() *components.InputData {
	k.input.Swap()
	for a := range cfg.ActionCount {
		if k.pressed[a] && k.tick-k.lastPress[a] < holdTicks {
			k.input.Current[a] = true
		} else {
			k.pressed[a] = false
		}
	}
	k.tick++
	return &k.input
}
