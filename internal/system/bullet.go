// internal/system/bullet.go
package system

import (
	"space-shooter/internal/component"
	"space-shooter/internal/config"
	"space-shooter/internal/entity"
	"space-shooter/internal/event"
	"space-shooter/internal/utils"
)

// BulletSystem moves bullets, applies their damage and retires spent ones.
type BulletSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewBulletSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *BulletSystem {
	return &BulletSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Update damages every target a bullet overlaps, then removes each bullet
// that hit anything. A bullet over two enemies damages both.
func (s *BulletSystem) Update(deltaTime float64) {
	w := s.world
	for i := range w.Bullets {
		b := &w.Bullets[i]
		b.Pos = b.Pos.Add(b.Vel.Scale(deltaTime))
		b.Elapsed += deltaTime
		if b.Expired() {
			continue
		}
		if b.Friendly {
			s.hitEnemies(b)
		} else {
			s.hitParts(b)
		}
	}

	w.Bullets = entity.Filter(w.Bullets, func(b *component.Bullet) bool {
		if b.Expired() {
			return false
		}
		if b.Friendly {
			return !s.overlapsEnemy(b)
		}
		return !s.overlapsPart(b)
	})
}

func (s *BulletSystem) hitEnemies(b *component.Bullet) {
	w := s.world
	for j := range w.Enemies {
		e := &w.Enemies[j]
		if !Overlaps(b.Pos, b.HitRadius(), e.Pos, e.Size) {
			continue
		}
		e.Health -= b.EffectiveDamage()
		w.Particles = Explode(w.Particles, b.Pos, w.Player.Vel, config.EnemyHitBurst, s.rng)
	}
}

func (s *BulletSystem) hitParts(b *component.Bullet) {
	w := s.world
	for j := range w.Player.Parts {
		part := &w.Player.Parts[j]
		if !Overlaps(b.Pos, b.HitRadius(), part.Pos, part.Size) {
			continue
		}
		amount := b.EffectiveDamage()
		part.Health -= amount
		w.Particles = Explode(w.Particles, b.Pos, w.Player.Vel, config.PartHitBurst, s.rng)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PartDamaged,
			Data: event.PartDamagedData{Part: j, Amount: amount, Cause: "bullet"},
		})
	}
}

func (s *BulletSystem) overlapsEnemy(b *component.Bullet) bool {
	for j := range s.world.Enemies {
		e := &s.world.Enemies[j]
		if Overlaps(b.Pos, b.HitRadius(), e.Pos, e.Size) {
			return true
		}
	}
	return false
}

func (s *BulletSystem) overlapsPart(b *component.Bullet) bool {
	for j := range s.world.Player.Parts {
		part := &s.world.Player.Parts[j]
		if Overlaps(b.Pos, b.HitRadius(), part.Pos, part.Size) {
			return true
		}
	}
	return false
}
