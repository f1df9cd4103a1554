// internal/defs/powerups.go
package defs

import (
	"space-shooter/internal/component"
	"space-shooter/internal/utils"
)

// NewPowerUps places the initial pickups relative to the player start.
func NewPowerUps(tex Textures, playerPos utils.Vec2) []component.PowerUp {
	return []component.PowerUp{{
		Pos:     playerPos.Add(utils.Vec2{X: 0, Y: 2000}),
		Kind:    component.PowerUpRepair,
		Size:    16,
		Texture: tex.Repair,
	}}
}
