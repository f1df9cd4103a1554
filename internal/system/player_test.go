package system

import (
	"space-shooter/internal/component"
	"space-shooter/internal/defs"
	"space-shooter/internal/entity"
	"space-shooter/internal/event"
	"space-shooter/internal/input"
	"space-shooter/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayerWorld() *entity.World {
	return entity.NewWorld(defs.NewPlayer(defs.Textures{}), nil)
}

func TestPlayerHoldsFireWithoutTarget(t *testing.T) {
	w := newPlayerWorld()
	s := NewPlayerSystem(w, input.Static{}, utils.NewPRNGService(1), event.NewDispatcher())
	for i := 0; i < 60; i++ {
		s.Update(1.0 / 60)
	}
	assert.Empty(t, w.Bullets)
	assert.NotEmpty(t, w.Particles)
}

func TestPlayerFiresAtEnemyAhead(t *testing.T) {
	w := newPlayerWorld()
	ahead := w.Player.Pos.Add(w.Player.Dir.Scale(300))
	w.Enemies = []component.Enemy{{Kinematics: component.Kinematics{Pos: ahead}, Size: 16, Health: 1}}

	d := event.NewDispatcher()
	fired := 0
	d.Subscribe(event.BulletFired, event.ListenerFunc(func(event.Event) { fired++ }))
	s := NewPlayerSystem(w, input.Static{}, utils.NewPRNGService(1), d)
	s.Update(1.0)

	require.NotEmpty(t, w.Bullets)
	assert.Equal(t, len(w.Bullets), fired)
	for _, b := range w.Bullets {
		assert.True(t, b.Friendly)
		assert.Greater(t, b.Vel.Dot(w.Player.Dir), 0.0)
	}
}

func TestPlayerTurnsWithControls(t *testing.T) {
	left := newPlayerWorld()
	NewPlayerSystem(left, input.Static{Left: true}, utils.NewPRNGService(1), event.NewDispatcher()).Update(0.1)
	right := newPlayerWorld()
	NewPlayerSystem(right, input.Static{Right: true}, utils.NewPRNGService(1), event.NewDispatcher()).Update(0.1)

	// Y-up world: a left turn from +Y heads toward -X.
	assert.Less(t, left.Player.Dir.X, 0.0)
	assert.Greater(t, right.Player.Dir.X, 0.0)
}

func TestDeadEngineBlocksTurn(t *testing.T) {
	w := newPlayerWorld()
	w.Player.Parts[defs.PartRightEngine].Health = 0
	NewPlayerSystem(w, input.Static{Left: true}, utils.NewPRNGService(1), event.NewDispatcher()).Update(0.1)
	assert.InDelta(t, 0.0, w.Player.Dir.X, 1e-9)
	assert.Zero(t, w.Player.TurnLeft)
}

func TestPlayerPartsFollowShip(t *testing.T) {
	w := newPlayerWorld()
	NewPlayerSystem(w, input.Static{}, utils.NewPRNGService(1), event.NewDispatcher()).Update(0.5)
	for _, part := range w.Player.Parts {
		assert.InDelta(t, part.Location.Len(), part.Pos.Distance(w.Player.Pos), 1e-9, part.Name)
	}
}

func TestPlayerCountsKills(t *testing.T) {
	w := newPlayerWorld()
	d := event.NewDispatcher()
	NewPlayerSystem(w, input.Static{}, utils.NewPRNGService(1), d)
	d.Dispatch(event.Event{Type: event.EnemyDestroyed})
	assert.Equal(t, 1, w.State.Kills)
}

func TestFiringCone(t *testing.T) {
	ship := component.Kinematics{Dir: utils.Vec2{X: 0, Y: 1}}
	enemy := func(x, y float64) []component.Enemy {
		return []component.Enemy{{Kinematics: component.Kinematics{Pos: utils.Vec2{X: x, Y: y}}}}
	}
	assert.True(t, InFiringCone(&ship, enemy(0, 100)))
	assert.True(t, InFiringCone(&ship, enemy(30, 100)))
	assert.False(t, InFiringCone(&ship, enemy(100, 0)))
	assert.False(t, InFiringCone(&ship, enemy(0, -100)))
	assert.False(t, InFiringCone(&ship, nil))
}
