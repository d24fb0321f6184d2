package systems

import (
	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel clears the screen and draws the platforms.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Body.Get(e).Rect
		vector.FillRect(screen, float32(r.Left), float32(r.Top), float32(r.Width), float32(r.Height), cfg.Colors.Platform, false)
	})
}

func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Body.Get(e).Rect
		vector.FillRect(screen, float32(r.Left), float32(r.Top), float32(r.Width), float32(r.Height), cfg.Colors.Particle, false)
	})
}

// DrawPlayer draws the player box, scaled around its bottom-center while a
// squash/stretch effect runs so the feet stay on the ground.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	e, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	r := components.Body.Get(e).Rect

	w, h := r.Width, r.Height
	if e.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(e)
		w *= ss.ScaleX
		h *= ss.ScaleY
	}
	x := r.Center().X - w/2
	y := r.Bottom() - h

	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Colors.Player, false)
}
