package core

import (
	"testing"

	"github.com/automoto/bounce/components"
	"github.com/automoto/bounce/shared/gamemath"
)

func TestFaceLanding(t *testing.T) {
	tests := []struct {
		name      string
		start     gamemath.Rect
		velocity  gamemath.Vector
		direction int
	}{
		{"straight down", box(150, 268), gamemath.Vector{Y: 5}, 0},
		{"moving right over the top", box(190, 268), gamemath.Vector{X: 4, Y: 5}, 1},
		{"moving left over the top", box(110, 268), gamemath.Vector{X: -4, Y: 5}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform := gamemath.NewRect(100, 300, 200, 10)
			s := newTestSession(t, &fixedRand{f: 0.5}, platform)
			body, physics := place(s, tt.start, tt.velocity, false)

			res := s.Advance(Intent{Direction: tt.direction})

			if body.Rect.Bottom() != platform.Top {
				t.Errorf("bottom = %v, want %v", body.Rect.Bottom(), platform.Top)
			}
			if physics.Velocity.Y != 0 {
				t.Errorf("velocity.Y = %v, want 0", physics.Velocity.Y)
			}
			if !physics.OnGround {
				t.Error("expected player to be grounded")
			}
			if len(res.Impacts) != 1 || res.Impacts[0].Source != ImpactPlatform {
				t.Fatalf("impacts = %+v, want one platform impact", res.Impacts)
			}
			if res.Impacts[0].Speed != 5.5 {
				t.Errorf("impact speed = %v, want 5.5", res.Impacts[0].Speed)
			}
			if !res.Landed() {
				t.Error("expected Landed to report the platform impact")
			}
		})
	}
}

func TestStaysOnPlatform(t *testing.T) {
	platform := gamemath.NewRect(100, 300, 200, 10)
	s := newTestSession(t, nil, platform)
	body, physics := place(s, box(150, 270), gamemath.Vector{}, true)

	for range 5 {
		s.Advance(Intent{})
	}
	if !physics.OnGround || body.Rect.Bottom() != platform.Top {
		t.Errorf("player left the platform: onground=%v bottom=%v", physics.OnGround, body.Rect.Bottom())
	}
	if s.ParticleCount() != 0 {
		t.Errorf("standing still spawned %d particles", s.ParticleCount())
	}
}

func TestRisingIntoUnderside(t *testing.T) {
	platform := gamemath.NewRect(100, 300, 200, 10)
	s := newTestSession(t, nil, platform)
	body, physics := place(s, box(150, 314), gamemath.Vector{Y: -8}, false)

	res := s.Advance(Intent{})

	if body.Rect.Top != platform.Bottom() {
		t.Errorf("top = %v, want %v", body.Rect.Top, platform.Bottom())
	}
	if physics.Velocity.Y != 0 {
		t.Errorf("velocity.Y = %v, want 0", physics.Velocity.Y)
	}
	if physics.OnGround {
		t.Error("bumping a ceiling must not ground the player")
	}
	if len(res.Impacts) != 0 || s.ParticleCount() != 0 {
		t.Errorf("ceiling bump raised impacts %+v", res.Impacts)
	}
}

func TestEdgeContact(t *testing.T) {
	platform := gamemath.NewRect(200, 300, 100, 10)
	tests := []struct {
		name      string
		start     gamemath.Rect
		velocity  gamemath.Vector
		direction int
		wantLeft  float64
	}{
		{"moving right", box(168, 290), gamemath.Vector{X: 4}, 1, platform.Left - 30},
		{"moving left", box(302, 290), gamemath.Vector{X: -4}, -1, platform.Right()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil, platform)
			body, physics := place(s, tt.start, tt.velocity, false)

			res := s.Advance(Intent{Direction: tt.direction})

			if physics.Velocity.X != 0 {
				t.Errorf("velocity.X = %v, want 0", physics.Velocity.X)
			}
			if body.Rect.Left != tt.wantLeft {
				t.Errorf("left = %v, want %v", body.Rect.Left, tt.wantLeft)
			}
			if physics.Velocity.Y != 0.5 {
				t.Errorf("velocity.Y = %v, want 0.5", physics.Velocity.Y)
			}
			if len(res.Impacts) != 0 {
				t.Errorf("edge contact raised impacts %+v", res.Impacts)
			}
		})
	}
}

func TestEdgeContactSubUnitOverlapAtCellBoundary(t *testing.T) {
	platform := gamemath.NewRect(96, 300, 100, 10)
	s := newTestSession(t, nil, platform)
	body, physics := place(s, box(66, 290), gamemath.Vector{X: 0.5}, false)

	s.Advance(Intent{})

	if body.Rect.Right() != platform.Left {
		t.Errorf("right = %v, want %v", body.Rect.Right(), platform.Left)
	}
	if physics.Velocity.X != 0 {
		t.Errorf("velocity.X = %v, want 0", physics.Velocity.X)
	}
}

func TestFaceContact(t *testing.T) {
	platform := gamemath.NewRect(200, 300, 100, 10)
	tests := []struct {
		name     string
		previous gamemath.Rect
		speedX   float64
		want     bool
	}{
		{"no horizontal motion", box(0, 0), 0, true},
		{"right, already overlapping", box(180, 260), 4, true},
		{"right, touching edge", box(170, 260), 4, false},
		{"left, already overlapping", box(280, 260), -4, true},
		{"left, touching edge", box(300, 260), -4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := faceContact(tt.previous, platform, tt.speedX); got != tt.want {
				t.Errorf("faceContact = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundsClampIsIdempotent(t *testing.T) {
	tests := []struct {
		name     string
		start    gamemath.Rect
		velocity gamemath.Vector
	}{
		{"past right wall and floor", box(690, 480), gamemath.Vector{X: 3, Y: 7}},
		{"past left wall", box(-12, 200), gamemath.Vector{X: -4, Y: 1}},
		{"inside", box(300, 200), gamemath.Vector{X: 1, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil)
			body, physics := place(s, tt.start, tt.velocity, false)

			s.resolveBounds(body, physics)
			onceBody, oncePhysics, onceParticles := *body, *physics, s.ParticleCount()

			s.resolveBounds(body, physics)
			if *body != onceBody || *physics != oncePhysics {
				t.Errorf("second clamp changed state: %+v %+v -> %+v %+v", onceBody, oncePhysics, *body, *physics)
			}
			if s.ParticleCount() != onceParticles {
				t.Errorf("second clamp spawned particles: %d -> %d", onceParticles, s.ParticleCount())
			}
			if body.Rect.Left < 0 || body.Rect.Right() > testWidth {
				t.Errorf("player outside walls: %+v", body.Rect)
			}
		})
	}
}

func TestWallClamp(t *testing.T) {
	s := newTestSession(t, nil)
	body, physics := place(s, box(1, testHeight-30), gamemath.Vector{}, true)

	s.Advance(Intent{Direction: -1})

	if body.Rect.Left != 0 || physics.Velocity.X != 0 {
		t.Errorf("left = %v vx = %v, want 0 and 0", body.Rect.Left, physics.Velocity.X)
	}
}

func TestGroundedDecay(t *testing.T) {
	platform := gamemath.NewRect(100, 300, 100, 10)
	s := newTestSession(t, nil, platform)
	body, physics := place(s, box(195, 270), gamemath.Vector{}, true)

	// Left edge at 199 still touches the platform's right edge at 200.
	s.Advance(Intent{Direction: 1})
	if !physics.OnGround {
		t.Fatalf("player at left=%v should still stand on the platform", body.Rect.Left)
	}

	s.Advance(Intent{Direction: 1})
	if physics.OnGround {
		t.Fatalf("player at left=%v should have walked off", body.Rect.Left)
	}

	s.Advance(Intent{})
	if physics.Velocity.Y != 0.5 {
		t.Errorf("velocity.Y = %v, want 0.5 once falling", physics.Velocity.Y)
	}
}

func TestStandsOn(t *testing.T) {
	platform := gamemath.NewRect(100, 300, 100, 10)
	tests := []struct {
		name string
		r    gamemath.Rect
		want bool
	}{
		{"centered", box(120, 270), true},
		{"touching left corner", box(70, 270), true},
		{"touching right corner", box(200, 270), true},
		{"past right corner", box(200.5, 270), false},
		{"hovering", box(120, 269.5), false},
		{"sunk in", box(120, 270.5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := standsOn(tt.r, platform); got != tt.want {
				t.Errorf("standsOn = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlatformsResolveInCreationOrder(t *testing.T) {
	// The lower platform lands the player first. That zeroes velocity.Y, so
	// the overlap with the upper platform then resolves as a ceiling.
	lower := gamemath.NewRect(100, 300, 200, 10)
	upper := gamemath.NewRect(100, 270, 200, 10)
	s := newTestSession(t, nil, lower, upper)
	body, physics := place(s, box(150, 262), gamemath.Vector{Y: 8}, false)

	s.Advance(Intent{})

	if body.Rect.Top != upper.Bottom() {
		t.Errorf("top = %v, want %v", body.Rect.Top, upper.Bottom())
	}
	if physics.OnGround {
		t.Error("player pushed off the landing platform must not stay grounded")
	}
	if got := components.Player.Get(s.Player()).Impacts; got != 1 {
		t.Errorf("impacts = %d, want 1", got)
	}
}

func TestSweep(t *testing.T) {
	got := sweep(gamemath.NewRect(10, 20, 30, 30), gamemath.NewRect(15, 5, 30, 30))
	want := gamemath.NewRect(10, 5, 35, 45)
	if got != want {
		t.Errorf("sweep = %+v, want %+v", got, want)
	}
}
