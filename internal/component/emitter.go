// internal/component/emitter.go
package component

import "space-shooter/internal/utils"

// ParticleEmitter spawns one particle every Interval seconds.
type ParticleEmitter struct {
	Location   utils.Vec2 // offset in ship space
	Pos        utils.Vec2 // world position, derived
	Vel        utils.Vec2 // emission velocity, derived
	BaseSpeed  float64
	Speed      float64
	Size       float64
	Shape      Shape
	StartColor utils.Vec4
	EndColor   utils.Vec4
	Lifetime   float64
	Interval   float64

	// Accumulator holds time not yet turned into particles.
	Accumulator float64
}

// BulletEmitter spawns one bullet every Interval seconds while firing.
type BulletEmitter struct {
	Location     utils.Vec2
	Pos          utils.Vec2
	Size         float64
	Damage       float64
	Friendly     bool
	Lifetime     float64
	BaseInterval float64
	Interval     float64
	Accumulator  float64
}
