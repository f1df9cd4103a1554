// internal/render/render.go
package render

import (
	"space-shooter/internal/utils"
)

// TextureID is an opaque handle to a texture owned by a rendering backend.
type TextureID int

// NoTexture draws a flat colored quad.
const NoTexture TextureID = 0

// TextureFactory creates textures from raw RGBA8 pixels, row-major.
type TextureFactory interface {
	CreateTexture(label string, width, height int, pixels []byte) TextureID
}

// Frame receives the draw primitives of one frame, in world coordinates.
type Frame interface {
	// DrawQuad draws a rectangle centred on pos. rotation is in degrees.
	DrawQuad(pos, size utils.Vec2, color utils.Vec4, rotation float64, tex TextureID)
	// DrawCircle draws a filled circle centred on pos.
	DrawCircle(pos utils.Vec2, radius float64, color utils.Vec4)
}

// Camera maps world space onto a screen of Width x Height pixels, showing
// ViewHeight world units vertically around Pos.
type Camera struct {
	Pos        utils.Vec2
	ViewHeight float64
	Width      int
	Height     int
}

// Scale returns screen pixels per world unit.
func (c Camera) Scale() float64 {
	if c.ViewHeight <= 0 {
		return 1
	}
	return float64(c.Height) / c.ViewHeight
}

// ToScreen converts a world position to screen pixels. World +Y points up.
func (c Camera) ToScreen(p utils.Vec2) (float64, float64) {
	s := c.Scale()
	x := (p.X-c.Pos.X)*s + float64(c.Width)/2
	y := float64(c.Height)/2 - (p.Y-c.Pos.Y)*s
	return x, y
}

// Visible reports whether a circle of the given radius touches the screen.
func (c Camera) Visible(p utils.Vec2, radius float64) bool {
	x, y := c.ToScreen(p)
	r := radius * c.Scale()
	return x+r >= 0 && y+r >= 0 && x-r <= float64(c.Width) && y-r <= float64(c.Height)
}
