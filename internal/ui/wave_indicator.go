// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"space-shooter/internal/config"
	"space-shooter/internal/ui/hudtext"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator shows the number of spawn batches in roman numerals.
type WaveIndicator struct {
	X, Y             float64
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

func NewWaveIndicator(x, y float64) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.WaveColor,
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// waveColor picks the boss color every tenth wave.
func (i *WaveIndicator) waveColor(wave int) color.Color {
	if hudtext.BossWave(wave) {
		return config.BossWaveColor
	}
	return i.Color
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, wave int) {
	if wave <= 0 {
		return
	}
	label := hudtext.Roman(wave)
	bounds := text.BoundString(face, label)
	x := int(i.X) - bounds.Dx()/2
	y := int(i.Y)

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, y, i.waveColor(wave))
}
