package main

import (
	"fmt"

	"github.com/automoto/bounce/core"
	"github.com/automoto/bounce/shared/gamemath"
	"github.com/gdamore/tcell/v2"
)

var (
	platformStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	playerStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	particleStyle = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// cellRange is a half-open block of terminal cells.
type cellRange struct {
	X0, Y0, X1, Y1 int
}

// project maps a world rect onto a cols x rows grid covering bounds. Every
// rect with area covers at least one cell.
func project(r, bounds gamemath.Rect, cols, rows int) cellRange {
	sx := float64(cols) / bounds.Width
	sy := float64(rows) / bounds.Height

	c := cellRange{
		X0: int((r.Left - bounds.Left) * sx),
		Y0: int((r.Top - bounds.Top) * sy),
		X1: int((r.Right() - bounds.Left) * sx),
		Y1: int((r.Bottom() - bounds.Top) * sy),
	}
	if c.X1 <= c.X0 {
		c.X1 = c.X0 + 1
	}
	if c.Y1 <= c.Y0 {
		c.Y1 = c.Y0 + 1
	}

	c.X0, c.X1 = max(c.X0, 0), min(c.X1, cols)
	c.Y0, c.Y1 = max(c.Y0, 0), min(c.Y1, rows)
	return c
}

func fill(screen tcell.Screen, c cellRange, ch rune, style tcell.Style) {
	for y := c.Y0; y < c.Y1; y++ {
		for x := c.X0; x < c.X1; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// draw renders snap with the last row reserved for status.
func draw(screen tcell.Screen, snap core.Snapshot, bounds gamemath.Rect) {
	screen.Clear()
	cols, rows := screen.Size()
	rows--
	if cols <= 0 || rows <= 0 {
		screen.Show()
		return
	}

	for _, p := range snap.Platforms {
		fill(screen, project(p, bounds, cols, rows), '=', platformStyle)
	}
	for _, p := range snap.Particles {
		fill(screen, project(p, bounds, cols, rows), '*', particleStyle)
	}
	fill(screen, project(snap.Player, bounds, cols, rows), '█', playerStyle)

	status := fmt.Sprintf("particles %d  grounded %t  v %.1f,%.1f  arrows/wasd move, space explode, r reset, q quit",
		len(snap.Particles), snap.OnGround, snap.Velocity.X, snap.Velocity.Y)
	for i, ch := range []rune(status) {
		if i >= cols {
			break
		}
		screen.SetContent(i, rows, ch, nil, statusStyle)
	}

	screen.Show()
}
