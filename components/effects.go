package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashStretchData tracks sprite scale deformation for landing feel. The
// tweens ease each axis back to 1.
type SquashStretchData struct {
	ScaleX, ScaleY float64
	TweenX, TweenY *gween.Tween
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
