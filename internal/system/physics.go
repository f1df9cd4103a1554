// internal/system/physics.go
package system

import (
	"math"
	"space-shooter/internal/component"
	"space-shooter/internal/utils"
)

// IntegrateVelocity applies the soft speed governor along dir and bleeds
// the lateral component of the velocity through friction.
func IntegrateVelocity(vel, dir utils.Vec2, maxSpeed, friction, dt float64) utils.Vec2 {
	d := dir.Normalize()
	speed := vel.Len()
	alignment := vel.Normalize().Dot(dir)
	vel = vel.Add(d.Scale((maxSpeed - speed*(2+(alignment-1))/2) * dt))

	right := utils.Rotate(dir, math.Pi/2)
	return vel.Sub(right.Scale(right.Dot(vel) * friction * dt))
}

// Steer turns dir toward target at rateDeg degrees per second. A target on
// the right-hand side rotates the facing by a positive angle.
func Steer(dir, pos, target utils.Vec2, rateDeg, dt float64) utils.Vec2 {
	right := utils.Rotate(dir, math.Pi/2)
	step := utils.ToRadians(rateDeg) * dt
	if right.Dot(target.Sub(pos)) > 0 {
		return Turn(dir, step)
	}
	return Turn(dir, -step)
}

// Turn rotates a facing by angle radians and returns a unit vector.
func Turn(dir utils.Vec2, angle float64) utils.Vec2 {
	if angle == 0 {
		return dir
	}
	return utils.AngleToVector(utils.VectorToAngle(dir) + angle)
}

// Integrate advances velocity and position of a ship by one step.
func Integrate(k *component.Kinematics, maxSpeed, friction, dt float64) {
	if dt == 0 {
		return
	}
	k.Vel = IntegrateVelocity(k.Vel, k.Dir, maxSpeed, friction, dt)
	k.Pos = k.Pos.Add(k.Vel.Scale(dt))
}
