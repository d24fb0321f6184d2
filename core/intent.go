package core

import (
	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
)

// Intent is the input for one tick.
type Intent struct {
	Direction int // -1 left, 0 none, 1 right
	Jump      bool
	Explode   bool
}

// IntentFromInput maps polled actions to an intent. Right wins when both
// directions are held. Jump repeats while held; explode fires once per press.
func IntentFromInput(in *components.InputData) Intent {
	var intent Intent
	switch {
	case in.Action(cfg.ActionMoveRight).Pressed:
		intent.Direction = 1
	case in.Action(cfg.ActionMoveLeft).Pressed:
		intent.Direction = -1
	}
	intent.Jump = in.Action(cfg.ActionJump).Pressed
	intent.Explode = in.Action(cfg.ActionExplode).JustPressed
	return intent
}
