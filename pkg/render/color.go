// pkg/render/color.go
package render

import (
	"image/color"
	"math"
)

// UnitColor converts components in [0,1] to a straight-alpha color.
// Values outside the range are clamped.
func UnitColor(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{R: unitByte(r), G: unitByte(g), B: unitByte(b), A: unitByte(a)}
}

// Unit converts a color back to components in [0,1].
func Unit(c color.NRGBA) (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

func unitByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
