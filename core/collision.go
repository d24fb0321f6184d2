package core

import (
	"slices"

	"github.com/automoto/bounce/components"
	"github.com/automoto/bounce/shared/gamemath"
	"github.com/automoto/bounce/tags"
	"github.com/yohamta/donburi"
)

// resolveBounds keeps the player on screen. Walls are plain clamps; the
// floor lands an airborne player and may raise an impact. Calling it again
// on its own output changes nothing.
func (s *Session) resolveBounds(body *components.BodyData, physics *components.PhysicsData) {
	if body.Rect.Left < s.Bounds.Left {
		body.Rect.Left = s.Bounds.Left
		physics.Velocity.X = 0
	}
	if body.Rect.Right() > s.Bounds.Right() {
		body.Rect.SetRight(s.Bounds.Right())
		physics.Velocity.X = 0
	}

	if physics.OnGround || body.Rect.Bottom() < s.Bounds.Bottom() {
		return
	}
	body.Rect.SetBottom(s.Bounds.Bottom())
	if s.tuning.Particle.FloorImpact {
		s.explode(ImpactFloor, physics.Velocity.Y)
	}
	physics.Velocity.Y = 0
	physics.OnGround = true
}

// resolvePlatforms pushes the player out of every platform it overlaps,
// in creation order. Each resolution sees the effects of the ones before.
func (s *Session) resolvePlatforms(body *components.BodyData, physics *components.PhysicsData) {
	// Snapping only moves the player back toward where it came from, so the
	// swept box covers every position this loop can produce.
	swept := sweep(body.Previous, body.Rect)

	for _, platform := range s.nearbyPlatforms(swept) {
		p := components.Body.Get(platform).Rect
		if !body.Rect.Intersects(p) {
			continue
		}

		if !faceContact(body.Previous, p, physics.Velocity.X) {
			if physics.Velocity.X > 0 {
				body.Rect.SetRight(p.Left)
			} else {
				body.Rect.Left = p.Right()
			}
			physics.Velocity.X = 0
			continue
		}

		if physics.Velocity.Y > 0 {
			body.Rect.SetBottom(p.Top)
			physics.OnGround = true
			s.explode(ImpactPlatform, physics.Velocity.Y)
		} else {
			body.Rect.Top = p.Bottom()
		}
		physics.Velocity.Y = 0
	}
}

// faceContact reports whether an overlap with platform came through its top
// or bottom face rather than a side edge. A player that already overlapped
// the platform horizontally last tick can only have entered vertically.
func faceContact(previous, platform gamemath.Rect, speedX float64) bool {
	switch {
	case speedX > 0:
		return platform.Left < previous.Right()
	case speedX < 0:
		return previous.Left < platform.Right()
	}
	return true
}

// updateGrounded drops the grounded flag once the player stands on nothing.
func (s *Session) updateGrounded(body *components.BodyData, physics *components.PhysicsData) {
	for _, platform := range s.nearbyPlatforms(body.Rect) {
		if standsOn(body.Rect, components.Body.Get(platform).Rect) {
			return
		}
	}
	if body.Rect.Bottom() < s.Bounds.Bottom() {
		physics.OnGround = false
	}
}

// standsOn needs the bottom edge exactly on the platform top.
func standsOn(r, platform gamemath.Rect) bool {
	return r.SpansTouch(platform) && r.Bottom() == platform.Top
}

// nearbyPlatforms moves the player's proxy over area and returns the
// platforms it shares a cell with, in creation order.
func (s *Session) nearbyPlatforms(area gamemath.Rect) []*donburi.Entry {
	obj := components.Object.Get(s.player).Object
	syncProxy(obj, area)

	collision := obj.Check(0, 0, tags.ResolvPlatform)
	if collision == nil {
		return nil
	}

	var found []*donburi.Entry
	for _, o := range collision.ObjectsByTags(tags.ResolvPlatform) {
		if e, ok := o.Data.(*donburi.Entry); ok && e.Valid() {
			found = append(found, e)
		}
	}
	slices.SortFunc(found, func(a, b *donburi.Entry) int {
		return components.Platform.Get(a).Order - components.Platform.Get(b).Order
	})
	return found
}

// sweep returns the smallest rect covering a and b.
func sweep(a, b gamemath.Rect) gamemath.Rect {
	left := min(a.Left, b.Left)
	top := min(a.Top, b.Top)
	return gamemath.NewRect(left, top,
		max(a.Right(), b.Right())-left,
		max(a.Bottom(), b.Bottom())-top)
}
