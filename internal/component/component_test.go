package component

import (
	"space-shooter/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulletDamageDecaysLinearly(t *testing.T) {
	b := Bullet{Damage: 10, Lifetime: 2.0, Elapsed: 1.0}
	assert.InDelta(t, 5.0, b.EffectiveDamage(), 1e-9)

	b.Elapsed = 0
	assert.InDelta(t, 10.0, b.EffectiveDamage(), 1e-9)

	b.Elapsed = 2.0
	assert.InDelta(t, 0.0, b.EffectiveDamage(), 1e-9)
	assert.True(t, b.Expired())
}

func TestBulletHitRadius(t *testing.T) {
	b := Bullet{Size: 5}
	assert.Equal(t, 10.0, b.HitRadius())
}

func TestParticleColorFollowsAge(t *testing.T) {
	p := Particle{
		StartColor: utils.Vec4{X: 1, W: 1},
		EndColor:   utils.Vec4{Z: 1},
		Lifetime:   1.0,
		Elapsed:    0.25,
	}
	c := p.Color()
	assert.InDelta(t, 0.75, c.X, 1e-9)
	assert.InDelta(t, 0.25, c.Z, 1e-9)
	assert.InDelta(t, 0.75, c.W, 1e-9)
}

func TestEnemyCloneIsIndependent(t *testing.T) {
	tmpl := Enemy{
		Kind:             ArchetypeTurret,
		Health:           7,
		ParticleEmitters: []ParticleEmitter{{Speed: 1}},
		BulletEmitters:   []BulletEmitter{{Interval: 0.5}},
	}
	c := tmpl.Clone()
	c.ParticleEmitters[0].Speed = 99
	c.BulletEmitters[0].Accumulator = 3
	c.Health = 0

	assert.Equal(t, 1.0, tmpl.ParticleEmitters[0].Speed)
	assert.Equal(t, 0.0, tmpl.BulletEmitters[0].Accumulator)
	assert.True(t, tmpl.Alive())
	assert.False(t, c.Alive())
}

func TestPlayerCloneIsIndependent(t *testing.T) {
	p := Player{
		Parts:  []Part{{Health: 4, StartingHealth: 4, Name: "Left Engine"}},
		Damage: []Damage{{Sources: []int{0}}},
	}
	c := p.Clone()
	c.Parts[0].Health = 1
	c.Damage[0].Sources[0] = 5

	assert.Equal(t, 4.0, p.Parts[0].Health)
	assert.Equal(t, 0, p.Damage[0].Sources[0])
}

func TestPartByName(t *testing.T) {
	p := Player{Parts: []Part{{Name: "Left Engine"}, {Name: "Main Body", Health: 3, StartingHealth: 3}}}
	part, ok := p.PartByName("Main Body")
	assert.True(t, ok)
	assert.Equal(t, 1.0, part.Ratio())

	_, ok = p.PartByName("Cockpit")
	assert.False(t, ok)
}

func TestToWorldRotatesWithFacing(t *testing.T) {
	k := Kinematics{Pos: utils.Vec2{X: 10, Y: 10}, Dir: utils.Vec2{Y: 1}}
	p := k.ToWorld(utils.Vec2{X: 0, Y: 15})
	assert.InDelta(t, 10.0, p.X, 1e-9)
	assert.InDelta(t, 25.0, p.Y, 1e-9)

	k.Dir = utils.Vec2{X: 1}
	p = k.ToWorld(utils.Vec2{X: 0, Y: 15})
	assert.InDelta(t, 25.0, p.X, 1e-9)
	assert.InDelta(t, 10.0, p.Y, 1e-9)
}

func TestArchetypeString(t *testing.T) {
	assert.Equal(t, "Basic", ArchetypeBasic.String())
	assert.Equal(t, "Turret", ArchetypeTurret.String())
	assert.Equal(t, "Unknown", Archetype(42).String())
}
