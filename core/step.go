package core

import (
	"github.com/automoto/bounce/components"
	"github.com/automoto/bounce/shared/gamemath"
)

// ImpactSource names what raised an explosion.
type ImpactSource int

const (
	ImpactFloor ImpactSource = iota
	ImpactPlatform
	ImpactManual
)

func (s ImpactSource) String() string {
	switch s {
	case ImpactFloor:
		return "floor"
	case ImpactPlatform:
		return "platform"
	case ImpactManual:
		return "manual"
	}
	return "unknown"
}

// Impact describes one explosion raised during a tick.
type Impact struct {
	Source    ImpactSource
	Center    gamemath.Vector // player center when the particles spawned
	Speed     float64         // vertical speed that picked the particle count
	Particles int
}

// StepResult is what one Advance produced besides the world state.
type StepResult struct {
	Tick    uint64
	Impacts []Impact
}

// Landed reports whether the tick ended with the player landing somewhere.
func (r StepResult) Landed() bool {
	for _, im := range r.Impacts {
		if im.Source != ImpactManual {
			return true
		}
	}
	return false
}

// Advance runs one fixed tick: input, gravity, integration, bounds,
// platforms, grounded decay and particles, in that order.
func (s *Session) Advance(in Intent) StepResult {
	s.impacts = nil

	body := components.Body.Get(s.player)
	physics := components.Physics.Get(s.player)
	airborne := !physics.OnGround

	s.applyIntent(in, physics)
	if airborne {
		physics.Velocity.Y += s.tuning.Physics.Gravity
	}
	s.integrate(body, physics)
	s.resolveBounds(body, physics)
	s.resolvePlatforms(body, physics)
	s.updateGrounded(body, physics)
	syncProxy(components.Object.Get(s.player).Object, body.Rect)

	s.updateParticles()

	s.tick++
	return StepResult{Tick: s.tick, Impacts: s.impacts}
}

// applyIntent handles the manual trigger, then jump, then steering.
func (s *Session) applyIntent(in Intent, physics *components.PhysicsData) {
	if in.Explode {
		s.explode(ImpactManual, physics.Velocity.Y)
	}

	player := s.tuning.Player
	if in.Jump && physics.OnGround {
		physics.OnGround = false
		physics.Velocity.Y = -player.JumpImpulse
	}

	direction := gamemath.Sign(float64(in.Direction))
	if direction != 0 {
		components.Player.Get(s.player).Facing = direction
	}

	if physics.OnGround {
		// No key on the ground is a stop.
		physics.Velocity.X = gamemath.GroundSpeed(direction, player.MaxSpeed)
		return
	}
	physics.Velocity.X = gamemath.AirSpeed(physics.Velocity.X, direction, player.AirAccel, player.MaxSpeed)
}

func (s *Session) integrate(body *components.BodyData, physics *components.PhysicsData) {
	body.Previous = body.Rect
	body.Rect.Translate(physics.Velocity)
}
