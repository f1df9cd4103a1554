package system

import (
	"space-shooter/internal/component"
	"space-shooter/internal/config"
	"space-shooter/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceParticlesMovesAndRetires(t *testing.T) {
	ps := []component.Particle{
		{Vel: utils.Vec2{X: 10}, Lifetime: 1},
		{Vel: utils.Vec2{Y: 10}, Lifetime: 0.05},
	}
	ps = AdvanceParticles(ps, 0.1)
	require.Len(t, ps, 1)
	assert.InDelta(t, 1.0, ps[0].Pos.X, 1e-9)
	assert.InDelta(t, 0.1, ps[0].Elapsed, 1e-9)
}

func TestExplodeSpawnsBurst(t *testing.T) {
	base := utils.Vec2{X: 100}
	ps := Explode(nil, utils.Vec2{X: 1, Y: 2}, base, config.DeathBurst, utils.NewPRNGService(3))
	require.Len(t, ps, config.DeathBurst.Amount)
	for _, p := range ps {
		assert.Equal(t, utils.Vec2{X: 1, Y: 2}, p.Pos)
		assert.LessOrEqual(t, p.Vel.Sub(base).Len(), config.DeathBurst.ForceMax+1e-9)
		assert.Equal(t, config.DeathBurst.Lifetime, p.Lifetime)
	}
}

func TestOverlapsBoundary(t *testing.T) {
	assert.True(t, Overlaps(utils.Vec2{}, 10, utils.Vec2{X: 24}, 15))
	assert.False(t, Overlaps(utils.Vec2{}, 10, utils.Vec2{X: 26}, 15))
	assert.False(t, Overlaps(utils.Vec2{}, 10, utils.Vec2{X: 25}, 15))
}
