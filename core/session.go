package core

import (
	"fmt"
	"math"

	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/shared/gamemath"
	"github.com/automoto/bounce/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Options describes a session. Screen size and platforms are fixed for the
// session's lifetime; tuning can be swapped between ticks.
type Options struct {
	Width, Height float64
	Tuning        cfg.Tuning
	Platforms     []gamemath.Rect

	// Rand defaults to the process-wide source when nil.
	Rand Rand
}

// DefaultOptions builds options from the package-level configuration.
func DefaultOptions() Options {
	platforms := make([]gamemath.Rect, 0, len(cfg.Level.Platforms))
	for _, p := range cfg.Level.Platforms {
		platforms = append(platforms, gamemath.NewRect(p.Left, p.Top, p.Width, cfg.Level.PlatformHeight))
	}
	return Options{
		Width:     float64(cfg.C.Width),
		Height:    float64(cfg.C.Height),
		Tuning:    cfg.Default(),
		Platforms: platforms,
	}
}

// Validate reports programmer errors in the session layout.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: screen must have positive size, got %vx%v", cfg.ErrInvalid, o.Width, o.Height)
	}
	if err := o.Tuning.Validate(); err != nil {
		return err
	}

	size := o.Tuning.Player.Size
	if size > o.Width || size > o.Height {
		return fmt.Errorf("%w: player size %v does not fit a %vx%v screen", cfg.ErrInvalid, size, o.Width, o.Height)
	}
	if spawn := o.Tuning.Player.SpawnX; spawn < 0 || spawn+size > o.Width {
		return fmt.Errorf("%w: player spawn x %v is off screen", cfg.ErrInvalid, spawn)
	}

	screen := gamemath.NewRect(0, 0, o.Width, o.Height)
	for i, p := range o.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("%w: platform %d has no area", cfg.ErrInvalid, i)
		}
		if !screen.Contains(p) {
			return fmt.Errorf("%w: platform %d at %+v leaves the screen", cfg.ErrInvalid, i, p)
		}
	}
	return nil
}

// Session owns one game: the player, the platforms, the live particles and
// the collision space, all held in a donburi world.
type Session struct {
	World  donburi.World
	Space  *resolv.Space
	Bounds gamemath.Rect

	tuning    cfg.Tuning
	rng       Rand
	player    *donburi.Entry
	platforms []*donburi.Entry
	tick      uint64
	impacts   []Impact
}

// NewSession validates opts and builds the world.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		rng = processRand{}
	}

	s := &Session{
		World:  donburi.NewWorld(),
		Bounds: gamemath.NewRect(0, 0, opts.Width, opts.Height),
		tuning: opts.Tuning,
		rng:    rng,
	}

	s.Space = createSpace(s.World, int(math.Ceil(opts.Width)), int(math.Ceil(opts.Height)))
	for i, p := range opts.Platforms {
		s.platforms = append(s.platforms, createPlatform(s.World, s.Space, i, p))
	}
	s.player = createPlayer(s.World, s.Space, s.spawnRect())

	return s, nil
}

// spawnRect is the player's box standing on the floor at the spawn point.
func (s *Session) spawnRect() gamemath.Rect {
	size := s.tuning.Player.Size
	r := gamemath.NewRect(s.tuning.Player.SpawnX, 0, size, size)
	r.SetBottom(s.Bounds.Bottom())
	return r
}

// Player returns the player entry.
func (s *Session) Player() *donburi.Entry {
	return s.player
}

// Platforms returns the platform entries in creation order.
func (s *Session) Platforms() []*donburi.Entry {
	return s.platforms
}

// Tick returns the number of completed Advance calls.
func (s *Session) Tick() uint64 {
	return s.tick
}

func (s *Session) Tuning() cfg.Tuning {
	return s.tuning
}

// SetTuning swaps the tuning used from the next tick on. A player size
// change keeps the player's bottom-left corner in place.
func (s *Session) SetTuning(t cfg.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.Player.Size > s.Bounds.Width || t.Player.Size > s.Bounds.Height {
		return fmt.Errorf("%w: player size %v does not fit the screen", cfg.ErrInvalid, t.Player.Size)
	}

	if t.Player.Size != s.tuning.Player.Size {
		body := components.Body.Get(s.player)
		bottom := body.Rect.Bottom()
		body.Rect.Width = t.Player.Size
		body.Rect.Height = t.Player.Size
		body.Rect.SetBottom(bottom)
		if body.Rect.Right() > s.Bounds.Right() {
			body.Rect.SetRight(s.Bounds.Right())
		}
		body.Previous = body.Rect
		syncProxy(components.Object.Get(s.player).Object, body.Rect)
	}

	s.tuning = t
	return nil
}

// Reset puts the player back on its spawn point and clears all particles.
func (s *Session) Reset() {
	body := components.Body.Get(s.player)
	body.Rect = s.spawnRect()
	body.Previous = body.Rect

	physics := components.Physics.Get(s.player)
	physics.Velocity = gamemath.Vector{}
	physics.OnGround = true

	syncProxy(components.Object.Get(s.player).Object, body.Rect)

	var particles []*donburi.Entry
	tags.Particle.Each(s.World, func(e *donburi.Entry) {
		particles = append(particles, e)
	})
	for _, e := range particles {
		e.Remove()
	}
}

// ParticleCount returns the number of live particles.
func (s *Session) ParticleCount() int {
	n := 0
	tags.Particle.Each(s.World, func(*donburi.Entry) {
		n++
	})
	return n
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Tick      uint64
	Player    gamemath.Rect
	Velocity  gamemath.Vector
	OnGround  bool
	Facing    int
	Platforms []gamemath.Rect
	Particles []gamemath.Rect
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	physics := components.Physics.Get(s.player)
	snap := Snapshot{
		Tick:      s.tick,
		Player:    components.Body.Get(s.player).Rect,
		Velocity:  physics.Velocity,
		OnGround:  physics.OnGround,
		Facing:    components.Player.Get(s.player).Facing,
		Platforms: make([]gamemath.Rect, 0, len(s.platforms)),
	}
	for _, p := range s.platforms {
		snap.Platforms = append(snap.Platforms, components.Body.Get(p).Rect)
	}
	tags.Particle.Each(s.World, func(e *donburi.Entry) {
		snap.Particles = append(snap.Particles, components.Body.Get(e).Rect)
	})
	return snap
}
