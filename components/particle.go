package components

import "github.com/yohamta/donburi"

type ParticleData struct {
	Age int // ticks since spawn
}

var Particle = donburi.NewComponentType[ParticleData]()
