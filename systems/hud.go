package systems

import (
	"fmt"

	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/fonts"
	"github.com/automoto/bounce/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
)

// DrawHUD renders particle count, grounded state and speeds in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	physics := components.Physics.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	particles := 0
	tags.Particle.Each(ecs.World, func(*donburi.Entry) {
		particles++
	})

	lines := []string{
		fmt.Sprintf("particles: %d", particles),
		fmt.Sprintf("grounded: %t  impacts: %d", physics.OnGround, player.Impacts),
		fmt.Sprintf("velocity: %.1f, %.1f", physics.Velocity.X, physics.Velocity.Y),
		fmt.Sprintf("fps: %.0f  tps: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}

	face := fonts.HUD.Bitmap()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+hudLineHeight*(i+1), cfg.Colors.HUDText)
	}

	hint := "arrows/WASD move  space explode  R reset  F fullscreen  F3 debug  Esc pause  Q quit"
	text.Draw(screen, hint, fonts.HUDSmall.Bitmap(), hudMargin, screen.Bounds().Dy()-hudMargin, cfg.Colors.HUDText)
}
