package core

import (
	"math"

	"github.com/automoto/bounce/components"
	"github.com/automoto/bounce/shared/gamemath"
	"github.com/automoto/bounce/tags"
	"github.com/yohamta/donburi"
)

// explode spawns a burst of particles at the player's center. Harder
// impacts throw more particles.
func (s *Session) explode(source ImpactSource, speedY float64) int {
	center := components.Body.Get(s.player).Rect.Center()
	pc := s.tuning.Particle

	n := s.particleCount(speedY)
	for range n {
		velocity := gamemath.Vector{
			X: randRange(s.rng, pc.SpeedXMin, pc.SpeedXMax),
			Y: randRange(s.rng, pc.SpeedYMin, pc.SpeedYMax),
		}
		spawnParticle(s.World, center, pc.Size, velocity)
	}

	if source != ImpactManual {
		components.Player.Get(s.player).Impacts++
	}
	s.impacts = append(s.impacts, Impact{
		Source:    source,
		Center:    center,
		Speed:     speedY,
		Particles: n,
	})
	return n
}

// particleCount picks the burst size for an impact at speedY.
func (s *Session) particleCount(speedY float64) int {
	pc := s.tuning.Particle
	if speedY <= pc.SoftImpactSpeed {
		return pc.SoftCount
	}
	return pc.BaseCount + randInt(s.rng, 1, 2+int(math.Floor(speedY)))
}

// updateParticles moves every particle and retires the ones that left the
// screen this tick.
func (s *Session) updateParticles() {
	gravity := s.tuning.Physics.Gravity

	var retired []*donburi.Entry
	tags.Particle.Each(s.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		physics := components.Physics.Get(e)

		physics.Velocity.Y += gravity
		body.Previous = body.Rect
		body.Rect.Translate(physics.Velocity)
		components.Particle.Get(e).Age++

		if !body.Rect.Intersects(s.Bounds) {
			retired = append(retired, e)
		}
	})

	for _, e := range retired {
		e.Remove()
	}
}
