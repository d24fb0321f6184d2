package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionExplode
	ActionReset
	ActionQuit
	ActionToggleFullscreen
	ActionToggleDebug
	ActionPause
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:             "none",
	ActionMoveLeft:         "move_left",
	ActionMoveRight:        "move_right",
	ActionJump:             "jump",
	ActionExplode:          "explode",
	ActionReset:            "reset",
	ActionQuit:             "quit",
	ActionToggleFullscreen: "toggle_fullscreen",
	ActionToggleDebug:      "toggle_debug",
	ActionPause:            "pause",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
