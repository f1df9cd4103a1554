// internal/system/player.go
package system

import (
	"math"
	"space-shooter/internal/component"
	"space-shooter/internal/config"
	"space-shooter/internal/entity"
	"space-shooter/internal/event"
	"space-shooter/internal/input"
	"space-shooter/internal/utils"

	"github.com/rs/zerolog/log"
)

// PlayerSystem applies damage, steering, physics and emitters to the
// player ship, and counts kills.
type PlayerSystem struct {
	world           *entity.World
	controls        input.Controls
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	warnedRules     map[int]bool
}

func NewPlayerSystem(world *entity.World, controls input.Controls, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{
		world:           world,
		controls:        controls,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		warnedRules:     make(map[int]bool),
	}
	eventDispatcher.Subscribe(event.EnemyDestroyed, s)
	return s
}

// OnEvent counts destroyed enemies.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyDestroyed {
		s.world.State.Kills++
	}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	p := &s.world.Player

	ResetCapabilities(p)
	for _, i := range ApplyDamageGraph(p) {
		if !s.warnedRules[i] {
			s.warnedRules[i] = true
			log.Warn().Int("rule", i).Stringer("target", p.Damage[i].Target).Msg("damage rule skipped: unknown part or emitter")
		}
	}

	fire := InFiringCone(&p.Kinematics, s.world.Enemies)

	if s.controls.TurnLeft() {
		p.Dir = Turn(p.Dir, utils.ToRadians(p.TurnLeft)*deltaTime)
	}
	if s.controls.TurnRight() {
		p.Dir = Turn(p.Dir, -utils.ToRadians(p.TurnRight)*deltaTime)
	}
	Integrate(&p.Kinematics, p.Speed, p.Friction, deltaTime)

	for i := range p.Parts {
		p.Parts[i].Pos = p.ToWorld(p.Parts[i].Location)
	}
	for i := range p.ParticleEmitters {
		s.world.Particles = TickParticleEmitter(&p.ParticleEmitters[i], &p.Kinematics, s.rng, deltaTime, s.world.Particles)
	}

	muzzle := p.Vel.Add(p.Dir.Scale(config.PlayerBulletSpeed))
	for i := range p.BulletEmitters {
		em := &p.BulletEmitters[i]
		em.Pos = p.ToWorld(em.Location)
		before := len(s.world.Bullets)
		s.world.Bullets = TickBulletEmitter(em, muzzle, fire, deltaTime, s.world.Bullets)
		for n := before; n < len(s.world.Bullets); n++ {
			s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: event.BulletFiredData{Friendly: true}})
		}
	}
}

// InFiringCone reports whether any enemy lies close enough to the ship's
// facing for the guns to fire.
func InFiringCone(ship *component.Kinematics, enemies []component.Enemy) bool {
	for i := range enemies {
		toEnemy := enemies[i].Pos.Sub(ship.Pos).Normalize()
		if math.Abs(toEnemy.Dot(ship.Dir)-1) < config.FiringConeTolerance {
			return true
		}
	}
	return false
}
