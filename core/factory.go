package core

import (
	"github.com/automoto/bounce/archetypes"
	"github.com/automoto/bounce/components"
	"github.com/automoto/bounce/shared/gamemath"
	"github.com/automoto/bounce/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const (
	spaceCellSize = 16

	// proxyPadding grows broad-phase proxies so sub-unit overlaps at cell
	// boundaries still share a cell.
	proxyPadding = 1
)

func createSpace(w donburi.World, width, height int) *resolv.Space {
	space := resolv.NewSpace(width, height, spaceCellSize, spaceCellSize)
	entry := archetypes.Space.Spawn(w)
	components.Space.SetValue(entry, components.SpaceData{Space: space})
	return space
}

func createPlatform(w donburi.World, space *resolv.Space, order int, r gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	components.Platform.SetValue(platform, components.PlatformData{Order: order})
	components.Body.SetValue(platform, components.BodyData{Rect: r, Previous: r})

	obj := resolv.NewObject(r.Left, r.Top, r.Width, r.Height, tags.ResolvPlatform)
	obj.Data = platform
	space.Add(obj)
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	return platform
}

func createPlayer(w donburi.World, space *resolv.Space, r gamemath.Rect) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	components.Player.SetValue(player, components.PlayerData{Facing: 1})
	components.Body.SetValue(player, components.BodyData{Rect: r, Previous: r})
	components.Physics.SetValue(player, components.PhysicsData{OnGround: true})

	obj := resolv.NewObject(0, 0, 0, 0, tags.ResolvPlayer)
	obj.Data = player
	space.Add(obj)
	syncProxy(obj, r)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	return player
}

func spawnParticle(w donburi.World, center gamemath.Vector, size float64, velocity gamemath.Vector) *donburi.Entry {
	particle := archetypes.Particle.Spawn(w)
	r := gamemath.NewRect(0, 0, size, size)
	r.SetCenter(center)
	components.Body.SetValue(particle, components.BodyData{Rect: r, Previous: r})
	components.Physics.SetValue(particle, components.PhysicsData{Velocity: velocity})
	return particle
}

// syncProxy moves a broad-phase proxy over area, padded.
func syncProxy(obj *resolv.Object, area gamemath.Rect) {
	obj.X = area.Left - proxyPadding
	obj.Y = area.Top - proxyPadding
	obj.W = area.Width + 2*proxyPadding
	obj.H = area.Height + 2*proxyPadding
	obj.Update()
}
