package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Particle = donburi.NewTag().SetName("Particle")
)

// Resolv tags for physics collision
const (
	ResolvPlayer   = "Player"
	ResolvPlatform = "platform"
)
