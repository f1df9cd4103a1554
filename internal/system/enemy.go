// internal/system/enemy.go
package system

import (
	"math"
	"space-shooter/internal/component"
	"space-shooter/internal/config"
	"space-shooter/internal/entity"
	"space-shooter/internal/event"
	"space-shooter/internal/utils"

	"github.com/rs/zerolog/log"
)

// EnemySystem steers enemies, runs their emitters and resolves ramming,
// enemy-enemy collisions and deaths.
type EnemySystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewEnemySystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *EnemySystem) Update(deltaTime float64) {
	w := s.world
	for i := range w.Enemies {
		e := &w.Enemies[i]

		e.Target = ChooseTarget(e, &w.Player)
		e.Dir = Steer(e.Dir, e.Pos, e.Target, e.TurningSpeed, deltaTime)
		Integrate(&e.Kinematics, e.Speed, e.Friction, deltaTime)

		for j := range e.ParticleEmitters {
			em := &e.ParticleEmitters[j]
			em.Speed = em.BaseSpeed
			w.Particles = TickParticleEmitter(em, &e.Kinematics, s.rng, deltaTime, w.Particles)
		}

		s.ram(e)
		s.fire(e, deltaTime)

		for j := range w.Enemies {
			a, b, ok := entity.Pair(w.Enemies, i, j)
			if !ok {
				continue
			}
			if Overlaps(a.Pos, a.Size, b.Pos, b.Size) {
				a.Destroy()
				b.Destroy()
			}
		}
	}
	s.removeDead()
}

// ram destroys an enemy that touched the player and damages every part it
// touched.
func (s *EnemySystem) ram(e *component.Enemy) {
	w := s.world
	for j := range w.Player.Parts {
		part := &w.Player.Parts[j]
		if !Overlaps(e.Pos, e.Size, part.Pos, part.Size) {
			continue
		}
		e.Destroy()
		part.Health -= config.RamDamage
		w.Particles = Explode(w.Particles, part.Pos, w.Player.Vel, config.RamBurst, s.rng)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PartDamaged,
			Data: event.PartDamagedData{Part: j, Amount: config.RamDamage, Cause: "ram"},
		})
	}
}

// fire runs hostile guns. They are always aimed at the player.
func (s *EnemySystem) fire(e *component.Enemy, deltaTime float64) {
	if len(e.BulletEmitters) == 0 {
		return
	}
	w := s.world
	aim := w.Player.Pos.Sub(e.Pos)
	angle := utils.VectorToAngle(aim) - math.Pi/2
	vel := e.Vel.Add(w.Player.Vel).Scale(0.5).Add(aim.Normalize().Scale(config.HostileBulletSpeed))
	for j := range e.BulletEmitters {
		em := &e.BulletEmitters[j]
		em.Pos = e.Pos.Add(utils.Rotate(em.Location, angle))
		before := len(w.Bullets)
		w.Bullets = TickBulletEmitter(em, vel, true, deltaTime, w.Bullets)
		for n := before; n < len(w.Bullets); n++ {
			s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: event.BulletFiredData{Friendly: false}})
		}
	}
}

func (s *EnemySystem) removeDead() {
	w := s.world
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Alive() {
			continue
		}
		w.Particles = Explode(w.Particles, e.Pos, e.Vel, config.DeathBurst, s.rng)
		log.Debug().Stringer("kind", e.Kind).Float64("x", e.Pos.X).Float64("y", e.Pos.Y).Msg("enemy destroyed")
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyDestroyed,
			Data: event.EnemyDestroyedData{Kind: e.Kind, Pos: e.Pos},
		})
	}
	w.Enemies = entity.Filter(w.Enemies, func(e *component.Enemy) bool { return e.Alive() })
}
