// internal/assets/sprites.go
package assets

import (
	"image"
	"image/color"
	"image/draw"
	"space-shooter/internal/defs"
	"space-shooter/internal/render"

	"golang.org/x/image/vector"
)

// Sprites face the top of the image; the renderer rotates them to the
// ship's heading.

type point struct{ x, y float32 }

type layer struct {
	color  color.NRGBA
	points []point
}

type sprite struct {
	label  string
	size   int
	layers []layer
}

var (
	hullColor    = color.NRGBA{140, 255, 251, 255}
	engineColor  = color.NRGBA{60, 120, 200, 255}
	cockpitColor = color.NRGBA{20, 40, 80, 255}
	enemyColor   = color.NRGBA{255, 200, 0, 255}
	enemyTrim    = color.NRGBA{255, 60, 50, 255}
	turretColor  = color.NRGBA{150, 150, 160, 255}
	cannonColor  = color.NRGBA{220, 60, 60, 255}
	warnColor    = color.NRGBA{255, 80, 40, 200}
	repairColor  = color.NRGBA{50, 205, 50, 255}
)

func octagon(cx, cy, r float32) []point {
	k := r * 0.4142
	return []point{
		{cx - k, cy - r}, {cx + k, cy - r}, {cx + r, cy - k}, {cx + r, cy + k},
		{cx + k, cy + r}, {cx - k, cy + r}, {cx - r, cy + k}, {cx - r, cy - k},
	}
}

func rect(x0, y0, x1, y1 float32) []point {
	return []point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

var sprites = []sprite{
	{label: "player", size: 64, layers: []layer{
		{engineColor, rect(6, 34, 22, 58)},
		{engineColor, rect(42, 34, 58, 58)},
		{hullColor, []point{{32, 2}, {50, 44}, {32, 36}, {14, 44}}},
		{cockpitColor, []point{{32, 14}, {37, 26}, {27, 26}}},
	}},
	{label: "enemy_basic", size: 32, layers: []layer{
		{enemyColor, []point{{16, 1}, {29, 30}, {16, 22}, {3, 30}}},
		{enemyTrim, []point{{16, 8}, {20, 18}, {12, 18}}},
	}},
	{label: "enemy_turret_base", size: 32, layers: []layer{
		{turretColor, octagon(16, 16, 14)},
		{cockpitColor, octagon(16, 16, 7)},
	}},
	{label: "enemy_turret_cannon", size: 32, layers: []layer{
		{cannonColor, rect(13, 1, 19, 16)},
		{cannonColor, octagon(16, 16, 5)},
	}},
	{label: "enemy_warning", size: 32, layers: []layer{
		{warnColor, []point{{16, 2}, {30, 28}, {2, 28}}},
		{color.NRGBA{0, 0, 0, 255}, rect(14.5, 10, 17.5, 20)},
		{color.NRGBA{0, 0, 0, 255}, rect(14.5, 22, 17.5, 25)},
	}},
	{label: "powerup_repair", size: 32, layers: []layer{
		{repairColor, rect(12, 3, 20, 29)},
		{repairColor, rect(3, 12, 29, 20)},
	}},
}

// Rasterize renders one sprite into a non-premultiplied RGBA image.
func Rasterize(label string) (*image.NRGBA, bool) {
	for _, s := range sprites {
		if s.label == label {
			return s.rasterize(), true
		}
	}
	return nil, false
}

func (s sprite) rasterize() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.size, s.size))
	r := vector.NewRasterizer(s.size, s.size)
	for _, l := range s.layers {
		r.Reset(s.size, s.size)
		r.DrawOp = draw.Over
		r.MoveTo(l.points[0].x, l.points[0].y)
		for _, p := range l.points[1:] {
			r.LineTo(p.x, p.y)
		}
		r.ClosePath()
		r.Draw(img, img.Bounds(), image.NewUniform(l.color), image.Point{})
	}
	return img
}

// Load rasterizes every sprite and registers it with the backend.
func Load(factory render.TextureFactory) defs.Textures {
	ids := make(map[string]render.TextureID, len(sprites))
	for _, s := range sprites {
		img := s.rasterize()
		ids[s.label] = factory.CreateTexture(s.label, s.size, s.size, img.Pix)
	}
	return defs.Textures{
		Player:       ids["player"],
		BasicEnemy:   ids["enemy_basic"],
		TurretBase:   ids["enemy_turret_base"],
		TurretCannon: ids["enemy_turret_cannon"],
		Warning:      ids["enemy_warning"],
		Repair:       ids["powerup_repair"],
	}
}
