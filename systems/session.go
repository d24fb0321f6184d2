package systems

import (
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/core"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession returns the system that advances s by one tick from the
// polled input. Landing impacts squash the player sprite.
func UpdateSession(s *core.Session) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)
		if input.Action(cfg.ActionReset).JustPressed {
			s.Reset()
			return
		}

		res := s.Advance(core.IntentFromInput(input))
		if res.Landed() {
			TriggerSquashStretch(s.Player(), cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
		}
	}
}
