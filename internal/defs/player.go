// internal/defs/player.go
package defs

import (
	"space-shooter/internal/component"
	"space-shooter/internal/utils"
)

// Part indices of the default ship.
const (
	PartLeftEngine = iota
	PartRightEngine
	PartMainBody
)

func engineTrail(location utils.Vec2) component.ParticleEmitter {
	return component.ParticleEmitter{
		Location:   location,
		BaseSpeed:  200,
		Speed:      200,
		Size:       5,
		Shape:      component.ShapeSquare,
		StartColor: rgba(140, 255, 251, 255),
		EndColor:   rgba(255, 0, 50, 0),
		Lifetime:   1.0,
		Interval:   1.0 / 400.0,
	}
}

// NewPlayer builds the default two-engine ship.
func NewPlayer(tex Textures) component.Player {
	return component.Player{
		Kinematics: component.Kinematics{
			Pos: utils.Vec2{X: 50, Y: 50},
			Vel: utils.Vec2{X: 1, Y: 0},
			Dir: utils.Vec2{X: 0, Y: 1},
		},
		BaseSpeed:     250,
		BaseTurnLeft:  100,
		BaseTurnRight: 100,
		Speed:         250,
		TurnLeft:      100,
		TurnRight:     100,
		Friction:      1.0,
		Parts: []component.Part{
			{Location: utils.Vec2{X: 12, Y: -13}, Health: 4, StartingHealth: 4, Size: 17, Name: "Left Engine"},
			{Location: utils.Vec2{X: -12, Y: -13}, Health: 4, StartingHealth: 4, Size: 17, Name: "Right Engine"},
			{Location: utils.Vec2{X: 0, Y: 15}, Health: 3, StartingHealth: 3, Size: 20, Name: "Main Body"},
		},
		// A dead right engine stops left turns and vice versa.
		Damage: []component.Damage{
			{Sources: []int{PartRightEngine}, Target: component.ModTurnLeft, Op: component.OpMultiply, Scale: 1},
			{Sources: []int{PartLeftEngine}, Target: component.ModTurnRight, Op: component.OpMultiply, Scale: 1},
			{Sources: []int{PartLeftEngine, PartRightEngine, PartMainBody}, Target: component.ModSpeed, Op: component.OpMultiply, Scale: 1},
			{Sources: []int{PartLeftEngine}, Target: component.ModParticle, Index: 0, Op: component.OpMultiply, Scale: 1},
			{Sources: []int{PartRightEngine}, Target: component.ModParticle, Index: 1, Op: component.OpMultiply, Scale: 1},
		},
		ParticleEmitters: []component.ParticleEmitter{
			engineTrail(utils.Vec2{X: 21, Y: -26}),
			engineTrail(utils.Vec2{X: -21, Y: -26}),
		},
		BulletEmitters: []component.BulletEmitter{
			{
				Location:     utils.Vec2{X: 17, Y: 13},
				Size:         5,
				Damage:       2,
				Friendly:     true,
				Lifetime:     2,
				BaseInterval: 1.0 / 7.5,
				Interval:     1.0 / 7.5,
			},
			{
				Location:     utils.Vec2{X: -17, Y: 13},
				Size:         5,
				Damage:       2,
				Friendly:     true,
				Lifetime:     2,
				BaseInterval: 1.0 / 5.0,
				Interval:     1.0 / 5.0,
				Accumulator:  1.0 / 7.5 / 2.0, // offset so the guns alternate
			},
		},
		Texture: tex.Player,
	}
}
