package system

import (
	"space-shooter/internal/component"
	"space-shooter/internal/entity"
	"space-shooter/internal/event"
	"space-shooter/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBulletWorld() *entity.World {
	return entity.NewWorld(component.Player{
		Parts: []component.Part{{Pos: utils.Vec2{X: 1000}, Health: 3, StartingHealth: 3, Size: 20}},
	}, nil)
}

func TestBulletDamageDecaysLinearly(t *testing.T) {
	b := component.Bullet{Damage: 10, Lifetime: 2, Elapsed: 1}
	assert.InDelta(t, 5.0, b.EffectiveDamage(), 1e-9)
}

func TestFriendlyBulletDamagesAllOverlappingEnemies(t *testing.T) {
	w := newBulletWorld()
	w.Enemies = []component.Enemy{
		{Kinematics: component.Kinematics{Pos: utils.Vec2{X: 5}}, Size: 16, Health: 7},
		{Kinematics: component.Kinematics{Pos: utils.Vec2{X: -5}}, Size: 16, Health: 7},
		{Kinematics: component.Kinematics{Pos: utils.Vec2{X: 500}}, Size: 16, Health: 7},
	}
	w.Bullets = []component.Bullet{{Size: 5, Damage: 10, Lifetime: 2, Elapsed: 0.9, Friendly: true}}

	NewBulletSystem(w, utils.NewPRNGService(1), event.NewDispatcher()).Update(0.1)

	assert.InDelta(t, 2.0, w.Enemies[0].Health, 1e-9)
	assert.InDelta(t, 2.0, w.Enemies[1].Health, 1e-9)
	assert.InDelta(t, 7.0, w.Enemies[2].Health, 1e-9)
	assert.Empty(t, w.Bullets)
	assert.NotEmpty(t, w.Particles)
}

func TestHostileBulletDamagesParts(t *testing.T) {
	w := newBulletWorld()
	w.Bullets = []component.Bullet{
		{Pos: utils.Vec2{X: 1000}, Size: 5, Damage: 1, Lifetime: 2},
		{Pos: utils.Vec2{X: -1000}, Size: 5, Damage: 1, Lifetime: 2},
	}
	d := event.NewDispatcher()
	var got []event.PartDamagedData
	d.Subscribe(event.PartDamaged, event.ListenerFunc(func(e event.Event) {
		got = append(got, e.Data.(event.PartDamagedData))
	}))

	NewBulletSystem(w, utils.NewPRNGService(1), d).Update(0)

	assert.InDelta(t, 2.0, w.Player.Parts[0].Health, 1e-9)
	require.Len(t, w.Bullets, 1)
	assert.Equal(t, -1000.0, w.Bullets[0].Pos.X)
	require.Len(t, got, 1)
	assert.Equal(t, "bullet", got[0].Cause)
}

func TestHostileBulletIgnoresEnemies(t *testing.T) {
	w := newBulletWorld()
	w.Enemies = []component.Enemy{{Size: 16, Health: 1}}
	w.Bullets = []component.Bullet{{Size: 5, Damage: 1, Lifetime: 2}}

	NewBulletSystem(w, utils.NewPRNGService(1), event.NewDispatcher()).Update(0)

	assert.Equal(t, 1.0, w.Enemies[0].Health)
	assert.Len(t, w.Bullets, 1)
}

func TestExpiredBulletsAreRetired(t *testing.T) {
	w := newBulletWorld()
	w.Bullets = []component.Bullet{
		{Vel: utils.Vec2{X: 10}, Size: 5, Lifetime: 1, Elapsed: 0.95},
		{Vel: utils.Vec2{X: 10}, Size: 5, Lifetime: 1},
	}
	NewBulletSystem(w, utils.NewPRNGService(1), event.NewDispatcher()).Update(0.1)
	require.Len(t, w.Bullets, 1)
	assert.InDelta(t, 1.0, w.Bullets[0].Pos.X, 1e-9)
}
