// internal/ui/hudtext/hudtext.go
package hudtext

import (
	"fmt"
	"space-shooter/internal/app"
	"strings"
)

// Layout shared by every frontend, in pixels.
const (
	Margin     = 16
	LineHeight = 22
)

// StatusLines returns the survival timer followed by one line per part.
func StatusLines(g *app.Game) []string {
	w := g.World
	lines := []string{fmt.Sprintf("Time: %.1f", w.State.SurvivalTime)}
	for _, part := range w.Player.Parts {
		lines = append(lines, fmt.Sprintf("%s Health: %.1f%%", part.Name, part.Ratio()*100))
	}
	return lines
}

// DebugLines describes the player's physics state.
func DebugLines(g *app.Game, fps float64) []string {
	p := &g.World.Player
	return []string{
		fmt.Sprintf("Pos: (%.1f, %.1f)", p.Pos.X, p.Pos.Y),
		fmt.Sprintf("Target speed: %.1f", p.Speed),
		fmt.Sprintf("Vel: (%.1f, %.1f) |%.1f|", p.Vel.X, p.Vel.Y, p.Vel.Len()),
		fmt.Sprintf("Dir: (%.2f, %.2f)", p.Dir.X, p.Dir.Y),
		fmt.Sprintf("FPS: %.0f", fps),
		fmt.Sprintf("Particles: %d", len(g.World.Particles)),
		fmt.Sprintf("Enemies: %d  Bullets: %d  Kills: %d", len(g.World.Enemies), len(g.World.Bullets), g.World.State.Kills),
	}
}

// SummaryLines describes a finished run.
func SummaryLines(g *app.Game) []string {
	st := g.World.State
	return []string{
		fmt.Sprintf("Survived %.1fs", st.SurvivalTime),
		fmt.Sprintf("Kills: %d  Waves: %d", st.Kills, g.Wave()),
	}
}

// Roman converts a positive integer to roman numerals.
func Roman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// BossWave reports whether wave gets the boss highlight.
func BossWave(wave int) bool {
	return wave > 0 && wave%10 == 0
}
