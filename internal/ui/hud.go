// internal/ui/hud.go
package ui

import (
	"space-shooter/internal/app"
	"space-shooter/internal/config"
	"space-shooter/internal/ui/hudtext"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD draws the status text, part health bars and wave indicator.
type HUD struct {
	face  font.Face
	wave  *WaveIndicator
	parts *PartHealthIndicator
	Debug bool
}

func NewHUD(face font.Face, debug bool) *HUD {
	return &HUD{
		face:  face,
		wave:  NewWaveIndicator(float64(config.ScreenWidth)/2, 48),
		parts: NewPartHealthIndicator(hudtext.Margin, hudtext.Margin+4*hudtext.LineHeight),
		Debug: debug,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, g *app.Game) {
	y := hudtext.Margin + hudtext.LineHeight
	for _, line := range hudtext.StatusLines(g) {
		text.Draw(screen, line, h.face, hudtext.Margin, y, config.TextLightColor)
		y += hudtext.LineHeight
	}
	h.parts.Y = float32(y)
	h.parts.Draw(screen, g.World.Player.Parts)
	h.wave.Draw(screen, h.face, g.Wave())

	if !h.Debug {
		return
	}
	y = hudtext.Margin + hudtext.LineHeight
	x := config.ScreenWidth - 320
	for _, line := range hudtext.DebugLines(g, ebiten.ActualFPS()) {
		text.Draw(screen, line, h.face, x, y, config.TextLightColor)
		y += hudtext.LineHeight
	}
}

// Face returns the font the HUD draws with.
func (h *HUD) Face() font.Face {
	return h.face
}
