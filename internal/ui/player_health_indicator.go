// internal/ui/player_health_indicator.go
package ui

import (
	"space-shooter/internal/component"
	"space-shooter/internal/config"
	"space-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	partBarWidth   = 160.0
	partBarHeight  = 8.0
	partBarSpacing = 6.0
)

// PartHealthIndicator draws one bar per ship part.
type PartHealthIndicator struct {
	X, Y float32
}

func NewPartHealthIndicator(x, y float32) *PartHealthIndicator {
	return &PartHealthIndicator{X: x, Y: y}
}

// barFill returns the filled fraction of a part's bar.
func barFill(p *component.Part) float64 {
	return utils.Clamp(p.Ratio(), 0, 1)
}

func (i *PartHealthIndicator) Draw(screen *ebiten.Image, parts []component.Part) {
	for j := range parts {
		y := i.Y + float32(j)*(partBarHeight+partBarSpacing)
		fill := barFill(&parts[j])
		c := config.HealthGoodColor
		if fill < 0.5 {
			c = config.HealthLowColor
		}
		vector.DrawFilledRect(screen, i.X, y, partBarWidth, partBarHeight, config.PauseOverlayColor, false)
		vector.DrawFilledRect(screen, i.X, y, float32(fill)*partBarWidth, partBarHeight, c, false)
		vector.StrokeRect(screen, i.X, y, partBarWidth, partBarHeight, 1, config.TextLightColor, false)
	}
}
