package components

import (
	cfg "github.com/automoto/bounce/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// Action derives the temporal state of one action.
func (in *InputData) Action(a cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[a],
		JustPressed:  in.Current[a] && !in.Previous[a],
		JustReleased: !in.Current[a] && in.Previous[a],
	}
}

// Swap moves the current frame into the previous slot and clears current.
func (in *InputData) Swap() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}

var Input = donburi.NewComponentType[InputData]()
