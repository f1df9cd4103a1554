package system

import (
	"space-shooter/internal/component"
	"space-shooter/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticleEmitterCatchUp(t *testing.T) {
	const interval = 0.1
	em := component.ParticleEmitter{Interval: interval, Lifetime: 1, Size: 5}
	ship := component.Kinematics{Dir: utils.Vec2{X: 0, Y: 1}}
	rng := utils.NewPRNGService(1)

	out := TickParticleEmitter(&em, &ship, rng, 3.5*interval, nil)
	assert.Len(t, out, 3)
	assert.InDelta(t, 0.5*interval, em.Accumulator, 1e-9)
}

func TestBulletEmitterCatchUp(t *testing.T) {
	const interval = 0.2
	em := component.BulletEmitter{Interval: interval, Lifetime: 2, Damage: 1, Friendly: true}
	out := TickBulletEmitter(&em, utils.Vec2{Y: 500}, true, 3.5*interval, nil)
	require.Len(t, out, 3)
	assert.InDelta(t, 0.5*interval, em.Accumulator, 1e-9)
	assert.True(t, out[0].Friendly)
	assert.Equal(t, 0.0, out[0].Elapsed)
}

func TestBulletEmitterDrainsWhileHolding(t *testing.T) {
	em := component.BulletEmitter{Interval: 0.2}
	out := TickBulletEmitter(&em, utils.Vec2{}, false, 0.7, nil)
	assert.Empty(t, out)
	assert.InDelta(t, 0.1, em.Accumulator, 1e-9)
}

func TestEmitterIgnoresUnusableInterval(t *testing.T) {
	em := component.BulletEmitter{Interval: 0, Accumulator: 3}
	out := TickBulletEmitter(&em, utils.Vec2{}, true, 1, nil)
	assert.Empty(t, out)
	assert.Zero(t, em.Accumulator)
}

func TestParticleEmitterFollowsShip(t *testing.T) {
	em := component.ParticleEmitter{Location: utils.Vec2{X: 0, Y: -10}, Speed: 100, Interval: 1}
	ship := component.Kinematics{Pos: utils.Vec2{X: 5, Y: 5}, Dir: utils.Vec2{X: 0, Y: 1}}
	TickParticleEmitter(&em, &ship, utils.NewPRNGService(7), 0, nil)

	assert.InDelta(t, 5.0, em.Pos.X, 1e-9)
	assert.InDelta(t, -5.0, em.Pos.Y, 1e-9)
	// exhaust leaves backwards at Speed plus up to 40 units of jitter
	assert.InDelta(t, -100.0, em.Vel.Y, 40)
}
