// internal/render/ttyrender/ttyrender.go
package ttyrender

import (
	"math"
	"space-shooter/internal/render"
	"space-shooter/internal/utils"
	prender "space-shooter/pkg/render"

	"github.com/gdamore/tcell/v2"
)

// Terminal cells are roughly twice as tall as wide; the camera works in
// half-cell rows so world distances stay round on screen.
const rowScale = 2

var glyphs = map[string]rune{
	"player":            '▲',
	"enemy_basic":       'v',
	"enemy_turret_base": 'T',
	"enemy_warning":     '!',
	"powerup_repair":    '+',
}

type glyph struct {
	r     rune
	style tcell.Style
}

// Backend draws the scene as a character radar on a tcell screen.
type Backend struct {
	screen tcell.Screen
	glyphs []glyph // index = id - 1; r == 0 is not drawn
	cam    render.Camera
}

func New(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// CreateTexture keeps a glyph for the label. Pixel data only picks the
// glyph color.
func (b *Backend) CreateTexture(label string, width, height int, pixels []byte) render.TextureID {
	g := glyph{r: glyphs[label], style: tcell.StyleDefault.Foreground(averageColor(pixels))}
	b.glyphs = append(b.glyphs, g)
	return render.TextureID(len(b.glyphs))
}

func averageColor(pixels []byte) tcell.Color {
	var r, g, bl, n float64
	for i := 0; i+3 < len(pixels); i += 4 {
		a := float64(pixels[i+3]) / 255
		if a == 0 {
			continue
		}
		r += float64(pixels[i]) * a
		g += float64(pixels[i+1]) * a
		bl += float64(pixels[i+2]) * a
		n += a
	}
	if n == 0 {
		return tcell.ColorWhite
	}
	return tcell.NewRGBColor(int32(r/n), int32(g/n), int32(bl/n))
}

// Camera returns a camera covering the whole screen around pos.
func (b *Backend) Camera(pos utils.Vec2, viewHeight float64) render.Camera {
	w, h := b.screen.Size()
	return render.Camera{Pos: pos, ViewHeight: viewHeight, Width: w, Height: h * rowScale}
}

// SetCamera selects the view used by the following draw calls.
func (b *Backend) SetCamera(cam render.Camera) {
	b.cam = cam
}

func (b *Backend) cell(pos utils.Vec2) (int, int, bool) {
	sx, sy := b.cam.ToScreen(pos)
	x, y := int(math.Floor(sx)), int(math.Floor(sy/rowScale))
	w, h := b.screen.Size()
	return x, y, x >= 0 && y >= 0 && x < w && y < h
}

func (b *Backend) DrawQuad(pos, size utils.Vec2, clr utils.Vec4, rotation float64, tex render.TextureID) {
	x, y, ok := b.cell(pos)
	if !ok {
		return
	}
	if tex > render.NoTexture && int(tex) <= len(b.glyphs) {
		g := b.glyphs[tex-1]
		if g.r != 0 {
			b.screen.SetContent(x, y, g.r, nil, g.style)
		}
		return
	}
	b.dot(x, y, '•', clr)
}

func (b *Backend) DrawCircle(pos utils.Vec2, radius float64, clr utils.Vec4) {
	if x, y, ok := b.cell(pos); ok {
		b.dot(x, y, '·', clr)
	}
}

func (b *Backend) dot(x, y int, r rune, clr utils.Vec4) {
	if clr.W < 0.1 {
		return
	}
	c := prender.UnitColor(clr.X, clr.Y, clr.Z, 1)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	b.screen.SetContent(x, y, r, nil, style)
}
