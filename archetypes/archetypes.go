package archetypes

import (
	"github.com/automoto/bounce/components"
	"github.com/automoto/bounce/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Physics,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Body,
		components.Object,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
		components.Body,
		components.Physics,
	)
	Space = newArchetype(
		components.Space,
	)
	Input = newArchetype(
		components.Input,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Pause = newArchetype(
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
