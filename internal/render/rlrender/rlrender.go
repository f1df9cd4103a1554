// internal/render/rlrender/rlrender.go
package rlrender

import (
	"space-shooter/internal/render"
	"space-shooter/internal/utils"
	prender "space-shooter/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Backend draws through raylib. A window must be open before textures are
// created.
type Backend struct {
	textures []rl.Texture2D // index = id - 1
	cam      render.Camera
}

func New() *Backend {
	return &Backend{}
}

func (b *Backend) CreateTexture(label string, width, height int, pixels []byte) render.TextureID {
	img := rl.NewImage(pixels, int32(width), int32(height), 1, rl.UncompressedR8g8b8a8)
	tex := rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	b.textures = append(b.textures, tex)
	return render.TextureID(len(b.textures))
}

// Unload frees every texture. Call before closing the window.
func (b *Backend) Unload() {
	for _, t := range b.textures {
		rl.UnloadTexture(t)
	}
	b.textures = nil
}

// SetCamera selects the view used by the following draw calls.
func (b *Backend) SetCamera(cam render.Camera) {
	b.cam = cam
}

func toColor(c utils.Vec4) rl.Color {
	n := prender.UnitColor(c.X, c.Y, c.Z, c.W)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func (b *Backend) DrawQuad(pos, size utils.Vec2, clr utils.Vec4, rotation float64, tex render.TextureID) {
	scale := b.cam.Scale()
	x, y := b.cam.ToScreen(pos)
	w, h := float32(size.X*scale), float32(size.Y*scale)
	dest := rl.NewRectangle(float32(x), float32(y), w, h)
	origin := rl.NewVector2(w/2, h/2)
	// raylib rotates clockwise on screen
	angle := float32(-rotation)

	if tex <= render.NoTexture || int(tex) > len(b.textures) {
		rl.DrawRectanglePro(dest, origin, angle, toColor(clr))
		return
	}
	t := b.textures[tex-1]
	src := rl.NewRectangle(0, 0, float32(t.Width), float32(t.Height))
	rl.DrawTexturePro(t, src, dest, origin, angle, toColor(clr))
}

func (b *Backend) DrawCircle(pos utils.Vec2, radius float64, clr utils.Vec4) {
	x, y := b.cam.ToScreen(pos)
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(radius*b.cam.Scale()), toColor(clr))
}
