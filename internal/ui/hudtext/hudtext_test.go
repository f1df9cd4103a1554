package hudtext

import (
	"space-shooter/internal/app"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestRoman(t *testing.T) {
	cases := map[int]string{
		0:    "",
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		1994: "MCMXCIV",
	}
	for in, want := range cases {
		assert.Equal(t, want, Roman(in), "input %d", in)
	}
}

func TestBossWave(t *testing.T) {
	assert.True(t, BossWave(20))
	assert.False(t, BossWave(7))
	assert.False(t, BossWave(0))
}

func newGame(t *testing.T) *app.Game {
	t.Helper()
	g, err := app.NewGame(app.Options{Seed: 1, Meter: noop.NewMeterProvider().Meter("test")})
	require.NoError(t, err)
	return g
}

func TestStatusLines(t *testing.T) {
	g := newGame(t)
	g.World.State.SurvivalTime = 12.34
	g.World.Player.Parts[0].Health = 2

	lines := StatusLines(g)
	require.Len(t, lines, 4)
	assert.Equal(t, "Time: 12.3", lines[0])
	assert.Equal(t, "Left Engine Health: 50.0%", lines[1])
	assert.Equal(t, "Main Body Health: 100.0%", lines[3])
}

func TestDebugLines(t *testing.T) {
	g := newGame(t)
	lines := DebugLines(g, 59.7)
	assert.Contains(t, lines, "Pos: (50.0, 50.0)")
	assert.Contains(t, lines, "FPS: 60")
	assert.Contains(t, lines, "Particles: 0")
}

func TestSummaryLines(t *testing.T) {
	g := newGame(t)
	g.World.State.SurvivalTime = 42
	g.World.State.Kills = 3
	assert.Equal(t, []string{"Survived 42.0s", "Kills: 3  Waves: 0"}, SummaryLines(g))
}
