// internal/component/movement.go
package component

import (
	"math"
	"space-shooter/internal/utils"
)

// Kinematics is the physics state shared by the player and enemies.
type Kinematics struct {
	Pos utils.Vec2
	Vel utils.Vec2
	Dir utils.Vec2 // facing, unit length
}

// Angle returns the facing angle in radians.
func (k *Kinematics) Angle() float64 {
	return utils.VectorToAngle(k.Dir)
}

// Right returns the facing rotated by 90°.
func (k *Kinematics) Right() utils.Vec2 {
	return utils.Rotate(k.Dir, math.Pi/2)
}

// ToWorld maps a ship-local offset (+Y forward) to world space.
func (k *Kinematics) ToWorld(local utils.Vec2) utils.Vec2 {
	return k.Pos.Add(utils.Rotate(local, k.Angle()-math.Pi/2))
}
