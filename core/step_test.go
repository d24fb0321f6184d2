package core

import (
	"testing"

	"github.com/automoto/bounce/components"
	"github.com/automoto/bounce/shared/gamemath"
)

func TestGravityWhileAirborne(t *testing.T) {
	s := newTestSession(t, nil)
	body, physics := place(s, box(100, 100), gamemath.Vector{Y: 2}, false)

	s.Advance(Intent{})

	if physics.Velocity.Y != 2.5 {
		t.Errorf("velocity.Y = %v, want 2.5", physics.Velocity.Y)
	}
	if body.Rect.Top != 102.5 {
		t.Errorf("top = %v, want 102.5", body.Rect.Top)
	}
	if body.Previous.Top != 100 {
		t.Errorf("previous top = %v, want 100", body.Previous.Top)
	}
	if physics.OnGround {
		t.Error("expected player to stay airborne")
	}
}

func TestNoGravityWhileGrounded(t *testing.T) {
	s := newTestSession(t, nil)
	for range 10 {
		s.Advance(Intent{})
	}
	physics := components.Physics.Get(s.Player())
	if !physics.OnGround || physics.Velocity.Y != 0 {
		t.Fatalf("grounded player drifted: onground=%v vy=%v", physics.OnGround, physics.Velocity.Y)
	}
	if got := components.Body.Get(s.Player()).Rect.Bottom(); got != testHeight {
		t.Errorf("bottom = %v, want %v", got, testHeight)
	}
}

func TestGroundedJump(t *testing.T) {
	s := newTestSession(t, nil)

	s.Advance(Intent{Jump: true})

	physics := components.Physics.Get(s.Player())
	if physics.OnGround {
		t.Error("expected player to be airborne after jumping")
	}
	if physics.Velocity.Y != -10 {
		t.Errorf("velocity.Y = %v, want -10", physics.Velocity.Y)
	}
	if got := components.Body.Get(s.Player()).Rect.Top; got != testHeight-30-10 {
		t.Errorf("top = %v, want %v", got, testHeight-30-10)
	}

	s.Advance(Intent{})
	if physics.Velocity.Y != -9.5 {
		t.Errorf("velocity.Y after second tick = %v, want -9.5", physics.Velocity.Y)
	}
}

func TestJumpIgnoredWhileAirborne(t *testing.T) {
	s := newTestSession(t, nil)
	_, physics := place(s, box(100, 100), gamemath.Vector{Y: 3}, false)

	s.Advance(Intent{Jump: true})

	if physics.Velocity.Y != 3.5 {
		t.Errorf("velocity.Y = %v, want 3.5", physics.Velocity.Y)
	}
}

func TestGroundSteering(t *testing.T) {
	tests := []struct {
		name      string
		direction int
		want      float64
	}{
		{"right", 1, 4},
		{"left", -1, -4},
		{"stop", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil)
			_, physics := place(s, box(300, testHeight-30), gamemath.Vector{X: 2}, true)

			s.Advance(Intent{Direction: tt.direction})

			if physics.Velocity.X != tt.want {
				t.Errorf("velocity.X = %v, want %v", physics.Velocity.X, tt.want)
			}
		})
	}
}

func TestAirControl(t *testing.T) {
	s := newTestSession(t, nil)
	_, physics := place(s, box(300, 0), gamemath.Vector{}, false)

	for i := 1; i <= 25; i++ {
		s.Advance(Intent{Direction: 1})
		want := min(0.2*float64(i), 4)
		if !approx(physics.Velocity.X, want) {
			t.Fatalf("tick %d: velocity.X = %v, want %v", i, physics.Velocity.X, want)
		}
	}
	if physics.Velocity.X != 4 {
		t.Errorf("velocity.X = %v, want clamp at 4", physics.Velocity.X)
	}
}

func TestAirDriftWithoutInput(t *testing.T) {
	s := newTestSession(t, nil)
	_, physics := place(s, box(300, 0), gamemath.Vector{X: 1.5}, false)

	s.Advance(Intent{})

	if physics.Velocity.X != 1.5 {
		t.Errorf("velocity.X = %v, want 1.5", physics.Velocity.X)
	}
}

func TestFacingFollowsSteering(t *testing.T) {
	s := newTestSession(t, nil)
	player := components.Player.Get(s.Player())

	s.Advance(Intent{Direction: -1})
	if player.Facing != -1 {
		t.Errorf("facing = %d, want -1", player.Facing)
	}
	s.Advance(Intent{})
	if player.Facing != -1 {
		t.Errorf("facing = %d after release, want -1", player.Facing)
	}
}

func TestTickCounter(t *testing.T) {
	s := newTestSession(t, nil)
	var res StepResult
	for range 3 {
		res = s.Advance(Intent{})
	}
	if res.Tick != 3 || s.Tick() != 3 {
		t.Errorf("tick = %d/%d, want 3", res.Tick, s.Tick())
	}
}
