package core

import (
	"errors"
	"testing"

	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/shared/gamemath"
)

func TestNewSessionValidation(t *testing.T) {
	valid := func() Options {
		return Options{
			Width:     testWidth,
			Height:    testHeight,
			Tuning:    cfg.Default(),
			Platforms: []gamemath.Rect{gamemath.NewRect(100, 420, 300, 10)},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero width", func(o *Options) { o.Width = 0 }},
		{"negative height", func(o *Options) { o.Height = -1 }},
		{"zero gravity", func(o *Options) { o.Tuning.Physics.Gravity = 0 }},
		{"zero max speed", func(o *Options) { o.Tuning.Player.MaxSpeed = 0 }},
		{"player larger than screen", func(o *Options) { o.Tuning.Player.Size = 600 }},
		{"spawn off screen", func(o *Options) { o.Tuning.Player.SpawnX = 680 }},
		{"platform off screen", func(o *Options) {
			o.Platforms = append(o.Platforms, gamemath.NewRect(650, 100, 100, 10))
		}},
		{"platform without area", func(o *Options) {
			o.Platforms = append(o.Platforms, gamemath.NewRect(100, 100, 0, 10))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid()
			tt.mutate(&opts)

			s, err := NewSession(opts)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, cfg.ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
			if s != nil {
				t.Error("expected no session on error")
			}
		})
	}

	if _, err := NewSession(valid()); err != nil {
		t.Fatalf("valid options rejected: %v", err)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}
	if len(opts.Platforms) != 4 {
		t.Errorf("platforms = %d, want 4", len(opts.Platforms))
	}
	if opts.Width != 700 || opts.Height != 500 {
		t.Errorf("screen = %vx%v, want 700x500", opts.Width, opts.Height)
	}
}

func TestPlayerSpawnsOnFloor(t *testing.T) {
	s := newTestSession(t, nil)
	snap := s.Snapshot()

	want := gamemath.NewRect(0, testHeight-30, 30, 30)
	if snap.Player != want {
		t.Errorf("player = %+v, want %+v", snap.Player, want)
	}
	if !snap.OnGround || snap.Velocity != (gamemath.Vector{}) {
		t.Errorf("spawn state: onground=%v velocity=%+v", snap.OnGround, snap.Velocity)
	}
}

func TestSnapshot(t *testing.T) {
	platforms := []gamemath.Rect{
		gamemath.NewRect(100, 420, 300, 10),
		gamemath.NewRect(200, 340, 100, 10),
	}
	s := newTestSession(t, nil, platforms...)
	s.Advance(Intent{Explode: true, Direction: 1})

	snap := s.Snapshot()
	if snap.Tick != 1 {
		t.Errorf("tick = %d, want 1", snap.Tick)
	}
	if len(snap.Platforms) != 2 || snap.Platforms[0] != platforms[0] || snap.Platforms[1] != platforms[1] {
		t.Errorf("platforms = %+v, want %+v in order", snap.Platforms, platforms)
	}
	if len(snap.Particles) != 25 {
		t.Errorf("particles = %d, want 25", len(snap.Particles))
	}
	if snap.Facing != 1 {
		t.Errorf("facing = %d, want 1", snap.Facing)
	}

	// The snapshot is a copy.
	snap.Player.Left = 999
	if components.Body.Get(s.Player()).Rect.Left == 999 {
		t.Error("snapshot aliases the player body")
	}
}

func TestReset(t *testing.T) {
	s := newTestSession(t, nil)
	s.Advance(Intent{Jump: true, Direction: 1, Explode: true})
	s.Advance(Intent{Direction: 1})

	s.Reset()

	snap := s.Snapshot()
	if snap.Player != gamemath.NewRect(0, testHeight-30, 30, 30) {
		t.Errorf("player = %+v, want spawn", snap.Player)
	}
	if !snap.OnGround || snap.Velocity != (gamemath.Vector{}) {
		t.Errorf("reset state: onground=%v velocity=%+v", snap.OnGround, snap.Velocity)
	}
	if len(snap.Particles) != 0 {
		t.Errorf("particles = %d after reset", len(snap.Particles))
	}
}

func TestSetTuning(t *testing.T) {
	s := newTestSession(t, nil)

	bigger := cfg.Default()
	bigger.Player.Size = 40
	bigger.Player.MaxSpeed = 6
	if err := s.SetTuning(bigger); err != nil {
		t.Fatalf("SetTuning: %v", err)
	}

	body := components.Body.Get(s.Player())
	if body.Rect.Width != 40 || body.Rect.Height != 40 || body.Rect.Bottom() != testHeight {
		t.Errorf("resized player = %+v, want 40x40 on the floor", body.Rect)
	}

	s.Advance(Intent{Direction: 1})
	if got := components.Physics.Get(s.Player()).Velocity.X; got != 6 {
		t.Errorf("velocity.X = %v, want new max speed 6", got)
	}

	broken := cfg.Default()
	broken.Physics.Gravity = -1
	if err := s.SetTuning(broken); !errors.Is(err, cfg.ErrInvalid) {
		t.Errorf("SetTuning(broken) = %v, want ErrInvalid", err)
	}
	if s.Tuning().Physics.Gravity != bigger.Physics.Gravity {
		t.Error("rejected tuning was applied")
	}
}

func TestInvariantsOverLongRun(t *testing.T) {
	opts := DefaultOptions()
	opts.Rand = NewRand(7)
	s, err := NewSession(opts)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	for tick := range 900 {
		in := Intent{
			Direction: (tick/45)%3 - 1,
			Jump:      tick%37 == 0,
			Explode:   tick%101 == 0,
		}
		s.Advance(in)

		snap := s.Snapshot()
		if snap.OnGround {
			if snap.Velocity.Y != 0 {
				t.Fatalf("tick %d: grounded with velocity.Y %v", tick, snap.Velocity.Y)
			}
			supported := snap.Player.Bottom() == testHeight
			for _, p := range snap.Platforms {
				supported = supported || standsOn(snap.Player, p)
			}
			if !supported {
				t.Fatalf("tick %d: grounded in mid-air at %+v", tick, snap.Player)
			}
		}
		for _, p := range snap.Particles {
			if !p.Intersects(s.Bounds) {
				t.Fatalf("tick %d: particle %+v left the screen but is still live", tick, p)
			}
		}
	}
}
