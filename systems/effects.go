package systems

import (
	"github.com/automoto/bounce/components"
	"github.com/automoto/bounce/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances visual effects (squash/stretch).
func UpdateEffects(ecs *ecs.ECS) {
	updateSquashStretchEffects(ecs)
}

// updateSquashStretchEffects steps the scale tweens and removes finished ones
func updateSquashStretchEffects(ecs *ecs.ECS) {
	dt := float32(1 / float64(ebiten.TPS()))
	var toRemove []*donburi.Entry

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		x, doneX := ss.TweenX.Update(dt)
		y, doneY := ss.TweenY.Update(dt)
		ss.ScaleX = float64(x)
		ss.ScaleY = float64(y)

		if doneX && doneY {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.SquashStretch)
	}
}

// TriggerSquashStretch deforms an entity and eases it back to normal scale
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	d := config.SquashStretch.Duration
	data := components.SquashStretchData{
		ScaleX: scaleX,
		ScaleY: scaleY,
		TweenX: gween.New(float32(scaleX), 1, d, ease.OutElastic),
		TweenY: gween.New(float32(scaleY), 1, d, ease.OutElastic),
	}

	if !entry.HasComponent(components.SquashStretch) {
		entry.AddComponent(components.SquashStretch)
	}
	components.SquashStretch.SetValue(entry, data)
}
