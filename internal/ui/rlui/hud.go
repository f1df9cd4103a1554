// internal/ui/rlui/hud.go
package rlui

import (
	"space-shooter/internal/app"
	"space-shooter/internal/ui/hudtext"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DrawHUD draws the status text and wave number through raylib.
func DrawHUD(g *app.Game, debug bool) {
	y := int32(hudtext.Margin)
	for _, line := range hudtext.StatusLines(g) {
		rl.DrawText(line, hudtext.Margin, y, 20, rl.RayWhite)
		y += hudtext.LineHeight
	}
	if wave := g.Wave(); wave > 0 {
		label := hudtext.Roman(wave)
		clr := rl.SkyBlue
		if hudtext.BossWave(wave) {
			clr = rl.Orange
		}
		width := rl.MeasureText(label, 32)
		rl.DrawText(label, int32(rl.GetScreenWidth())/2-width/2, hudtext.Margin, 32, clr)
	}
	if !debug {
		return
	}
	y = hudtext.Margin
	x := int32(rl.GetScreenWidth()) - 320
	for _, line := range hudtext.DebugLines(g, float64(rl.GetFPS())) {
		rl.DrawText(line, x, y, 18, rl.LightGray)
		y += hudtext.LineHeight
	}
}

// DrawBanner dims the screen and centers a title with a hint below it.
func DrawBanner(title string, lines ...string) {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, w, h, rl.NewColor(0, 0, 0, 128))
	tw := rl.MeasureText(title, 48)
	rl.DrawText(title, w/2-tw/2, h/2-48, 48, rl.RayWhite)
	y := h/2 + 16
	for _, line := range lines {
		lw := rl.MeasureText(line, 20)
		rl.DrawText(line, w/2-lw/2, y, 20, rl.LightGray)
		y += hudtext.LineHeight
	}
}
