package system

import (
	"space-shooter/internal/component"
	"space-shooter/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegrateZeroDeltaIsIdentity(t *testing.T) {
	k := component.Kinematics{
		Pos: utils.Vec2{X: 3, Y: 4},
		Vel: utils.Vec2{X: 10, Y: -2},
		Dir: utils.Vec2{X: 0, Y: 1},
	}
	before := k
	Integrate(&k, 250, 1, 0)
	k.Dir = Steer(k.Dir, k.Pos, utils.Vec2{X: 100}, 100, 0)
	assert.Equal(t, before, k)
}

func TestIntegrateVelocityZeroDeltaIsIdentity(t *testing.T) {
	v := utils.Vec2{X: 1, Y: 2}
	got := IntegrateVelocity(v, utils.Vec2{X: 0, Y: 1}, 300, 1, 0)
	assert.InDelta(t, v.X, got.X, 1e-12)
	assert.InDelta(t, v.Y, got.Y, 1e-12)
}

func TestSpeedGovernorConvergesWithoutOvershoot(t *testing.T) {
	const maxSpeed = 250.0
	k := component.Kinematics{Dir: utils.Vec2{X: 0, Y: 1}}
	prev := 0.0
	for i := 0; i < 2000; i++ {
		Integrate(&k, maxSpeed, 1, 1.0/60)
		speed := k.Vel.Len()
		assert.LessOrEqual(t, speed, maxSpeed+1e-6, "step %d", i)
		assert.GreaterOrEqual(t, speed, prev-1e-9, "step %d", i)
		prev = speed
	}
	assert.InDelta(t, maxSpeed, prev, 0.5)
}

func TestIntegrateFromRest(t *testing.T) {
	// A ship at rest treats its velocity direction as neutral.
	v := IntegrateVelocity(utils.Vec2{}, utils.Vec2{X: 1}, 100, 1, 0.1)
	assert.InDelta(t, 10.0, v.X, 1e-9)
	assert.InDelta(t, 0.0, v.Y, 1e-9)
}

func TestFrictionBleedsLateralVelocity(t *testing.T) {
	v := IntegrateVelocity(utils.Vec2{X: 100}, utils.Vec2{X: 0, Y: 1}, 0, 1, 0.1)
	assert.Less(t, v.X, 100.0)
}

func TestSteerTurnsTowardTarget(t *testing.T) {
	dir := utils.Vec2{X: 0, Y: 1}
	left := Steer(dir, utils.Vec2{}, utils.Vec2{X: -100, Y: 100}, 90, 1)
	right := Steer(dir, utils.Vec2{}, utils.Vec2{X: 100, Y: 100}, 90, 1)
	assert.InDelta(t, 1.0, left.Len(), 1e-9)
	assert.NotEqual(t, left.X > 0, right.X > 0)
}
