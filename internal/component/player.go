// internal/component/player.go
package component

import (
	"space-shooter/internal/render"
	"space-shooter/internal/utils"
)

// Part is a destructible section of the player ship.
type Part struct {
	Location       utils.Vec2 // offset in ship space
	Pos            utils.Vec2 // world position, derived every frame
	Health         float64
	StartingHealth float64
	Size           float64 // collision radius
	Name           string
}

// Ratio returns Health / StartingHealth.
func (p *Part) Ratio() float64 {
	if p.StartingHealth == 0 {
		return 0
	}
	return p.Health / p.StartingHealth
}

// Player is the ship steered by the input collaborator.
type Player struct {
	Kinematics

	// Baselines restored at the start of every frame.
	BaseSpeed     float64
	BaseTurnLeft  float64 // degrees per second
	BaseTurnRight float64

	// Effective values after the damage graph ran.
	Speed     float64
	TurnLeft  float64
	TurnRight float64

	Friction float64

	Parts            []Part
	Damage           []Damage
	ParticleEmitters []ParticleEmitter
	BulletEmitters   []BulletEmitter

	Texture render.TextureID
}

// PartByName returns the first part with the given name.
func (p *Player) PartByName(name string) (*Part, bool) {
	for i := range p.Parts {
		if p.Parts[i].Name == name {
			return &p.Parts[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() Player {
	c := *p
	c.Parts = append([]Part(nil), p.Parts...)
	c.Damage = make([]Damage, len(p.Damage))
	for i, d := range p.Damage {
		c.Damage[i] = d
		c.Damage[i].Sources = append([]int(nil), d.Sources...)
	}
	c.ParticleEmitters = append([]ParticleEmitter(nil), p.ParticleEmitters...)
	c.BulletEmitters = append([]BulletEmitter(nil), p.BulletEmitters...)
	return c
}
