package systems

import (
	"image/color"

	"github.com/automoto/bounce/components"
	cfg "github.com/automoto/bounce/config"
	"github.com/automoto/bounce/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var occupiedCell = color.RGBA{0, 120, 255, 40}

// DrawDebug shades occupied broad-phase cells and outlines every proxy.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	cw, ch := float32(space.CellWidth), float32(space.CellHeight)
	for y, row := range space.Cells {
		for x, cell := range row {
			if len(cell.Objects) == 0 {
				continue
			}
			vector.FillRect(screen, float32(x)*cw, float32(y)*ch, cw, ch, occupiedCell, false)
		}
	}

	for _, obj := range space.Objects() {
		c := cfg.Colors.Debug
		if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.Colors.Player
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
