// internal/defs/types.go
package defs

import (
	"space-shooter/internal/render"
	"space-shooter/internal/utils"
)

// Textures are the handles the content tables reference. They are created
// by the rendering collaborator before the world is built.
type Textures struct {
	Player       render.TextureID
	BasicEnemy   render.TextureID
	TurretBase   render.TextureID
	TurretCannon render.TextureID
	Warning      render.TextureID
	Repair       render.TextureID
}

func rgba(r, g, b, a float64) utils.Vec4 { return utils.RGBA255(r, g, b, a) }
