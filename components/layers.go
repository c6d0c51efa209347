package components

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in order.
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
	LayerOverlay
)
