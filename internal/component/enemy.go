// internal/component/enemy.go
package component

import (
	"space-shooter/internal/render"
	"space-shooter/internal/utils"
)

// Archetype selects enemy behaviour.
type Archetype int

const (
	ArchetypeBasic Archetype = iota
	ArchetypeTurret
)

func (a Archetype) String() string {
	switch a {
	case ArchetypeBasic:
		return "Basic"
	case ArchetypeTurret:
		return "Turret"
	}
	return "Unknown"
}

// Enemy is a live hostile ship, cloned from a wave template.
type Enemy struct {
	Kinematics

	Kind         Archetype
	Target       utils.Vec2
	Speed        float64
	TurningSpeed float64 // degrees per second
	Predictive   bool
	TextureScale float64
	Friction     float64
	Size         float64
	Health       float64

	ParticleEmitters []ParticleEmitter
	BulletEmitters   []BulletEmitter

	Texture       render.TextureID
	ExtraTextures []render.TextureID
}

// Alive reports whether the enemy still has health.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// Destroy forces the enemy below zero health.
func (e *Enemy) Destroy() {
	e.Health = -1
}

// Clone returns a copy that shares no slices with e.
func (e *Enemy) Clone() Enemy {
	c := *e
	c.ParticleEmitters = append([]ParticleEmitter(nil), e.ParticleEmitters...)
	c.BulletEmitters = append([]BulletEmitter(nil), e.BulletEmitters...)
	c.ExtraTextures = append([]render.TextureID(nil), e.ExtraTextures...)
	return c
}
