package components

import "github.com/yohamta/donburi"

// PlatformData keeps the creation order; platforms resolve in this order.
type PlatformData struct {
	Order int
}

var Platform = donburi.NewComponentType[PlatformData]()
