package core

import (
	"testing"

	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/shared/gamemath"
)

const (
	testWidth  = 700
	testHeight = 500
)

// fixedRand returns the same draws every time and records IntN bounds.
type fixedRand struct {
	n      int
	f      float64
	bounds []int
}

func (r *fixedRand) IntN(bound int) int {
	r.bounds = append(r.bounds, bound)
	return min(max(r.n, 0), bound-1)
}

func (r *fixedRand) Float64() float64 { return r.f }

func newTestSession(t *testing.T, r Rand, platforms ...gamemath.Rect) *Session {
	t.Helper()
	return newTunedSession(t, r, cfg.Default(), platforms...)
}

func newTunedSession(t *testing.T, r Rand, tuning cfg.Tuning, platforms ...gamemath.Rect) *Session {
	t.Helper()
	if r == nil {
		r = &fixedRand{f: 0.5}
	}
	s, err := NewSession(Options{
		Width:     testWidth,
		Height:    testHeight,
		Tuning:    tuning,
		Platforms: platforms,
		Rand:      r,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// place puts the player at r with the given motion state.
func place(s *Session, r gamemath.Rect, velocity gamemath.Vector, onGround bool) (*components.BodyData, *components.PhysicsData) {
	body := components.Body.Get(s.Player())
	body.Rect = r
	body.Previous = r
	physics := components.Physics.Get(s.Player())
	physics.Velocity = velocity
	physics.OnGround = onGround
	syncProxy(components.Object.Get(s.Player()).Object, r)
	return body, physics
}

func box(left, top float64) gamemath.Rect {
	return gamemath.NewRect(left, top, 30, 30)
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
