// internal/component/powerup.go
package component

import (
	"space-shooter/internal/render"
	"space-shooter/internal/utils"
)

// PowerUpKind selects what a pickup does.
type PowerUpKind int

const (
	PowerUpRepair PowerUpKind = iota
)

func (k PowerUpKind) String() string {
	if k == PowerUpRepair {
		return "Repair"
	}
	return "Unknown"
}

// PowerUp is a pickup floating in the world.
type PowerUp struct {
	Pos     utils.Vec2
	Kind    PowerUpKind
	Size    float64
	Texture render.TextureID
}
