// internal/render/ebitenrender/ebitenrender.go
package ebitenrender

import (
	"image"
	"image/color"
	"space-shooter/internal/render"
	"space-shooter/internal/utils"
	prender "space-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Backend owns the ebiten images behind every texture id.
type Backend struct {
	images []*ebiten.Image // index = id - 1
	white  *ebiten.Image
}

func New() *Backend {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Backend{white: white}
}

// CreateTexture uploads straight-alpha RGBA8 pixels.
func (b *Backend) CreateTexture(label string, width, height int, pixels []byte) render.TextureID {
	src := &image.NRGBA{Pix: pixels, Stride: 4 * width, Rect: image.Rect(0, 0, width, height)}
	b.images = append(b.images, ebiten.NewImageFromImage(src))
	return render.TextureID(len(b.images))
}

func (b *Backend) image(id render.TextureID) *ebiten.Image {
	if id <= render.NoTexture || int(id) > len(b.images) {
		return b.white
	}
	return b.images[id-1]
}

// Frame starts drawing onto screen through cam.
func (b *Backend) Frame(screen *ebiten.Image, cam render.Camera) *Frame {
	return &Frame{backend: b, screen: screen, cam: cam}
}

// Frame draws world-space primitives onto one screen image.
type Frame struct {
	backend *Backend
	screen  *ebiten.Image
	cam     render.Camera
}

func toColor(c utils.Vec4) color.NRGBA {
	return prender.UnitColor(c.X, c.Y, c.Z, c.W)
}

func (f *Frame) DrawQuad(pos, size utils.Vec2, clr utils.Vec4, rotation float64, tex render.TextureID) {
	img := f.backend.image(tex)
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	scale := f.cam.Scale()
	x, y := f.cam.ToScreen(pos)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
	op.GeoM.Scale(size.X*scale/float64(iw), size.Y*scale/float64(ih))
	// screen Y points down, so a counter-clockwise world rotation is negative here
	op.GeoM.Rotate(-utils.ToRadians(rotation))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(toColor(clr))
	op.Filter = ebiten.FilterLinear
	f.screen.DrawImage(img, op)
}

func (f *Frame) DrawCircle(pos utils.Vec2, radius float64, clr utils.Vec4) {
	x, y := f.cam.ToScreen(pos)
	vector.DrawFilledCircle(f.screen, float32(x), float32(y), float32(radius*f.cam.Scale()), toColor(clr), true)
}
