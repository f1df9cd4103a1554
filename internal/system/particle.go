// internal/system/particle.go
package system

import (
	"space-shooter/internal/component"
	"space-shooter/internal/config"
	"space-shooter/internal/entity"
	"space-shooter/internal/utils"
)

// ParticleSystem moves particles and retires the ones that outlived their
// lifetime.
type ParticleSystem struct {
	world *entity.World
}

func NewParticleSystem(world *entity.World) *ParticleSystem {
	return &ParticleSystem{world: world}
}

func (s *ParticleSystem) Update(deltaTime float64) {
	s.world.Particles = AdvanceParticles(s.world.Particles, deltaTime)
}

// AdvanceParticles integrates every particle and drops expired ones in place.
func AdvanceParticles(particles []component.Particle, dt float64) []component.Particle {
	for i := range particles {
		p := &particles[i]
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Elapsed += dt
	}
	return entity.Filter(particles, func(p *component.Particle) bool {
		return p.Elapsed < p.Lifetime
	})
}

// Explode appends a radial burst of square particles around pos. Every
// particle inherits baseVel plus a random push in [ForceMin, ForceMax).
func Explode(out []component.Particle, pos, baseVel utils.Vec2, burst config.Burst, rng *utils.PRNGService) []component.Particle {
	start := utils.RGBA255(burst.Start[0], burst.Start[1], burst.Start[2], burst.Start[3])
	end := utils.RGBA255(burst.End[0], burst.End[1], burst.End[2], burst.End[3])
	for i := 0; i < burst.Amount; i++ {
		push := rng.Direction().Scale(rng.Range(burst.ForceMin, burst.ForceMax))
		out = append(out, component.Particle{
			Pos:        pos,
			Vel:        baseVel.Add(push),
			Size:       config.ParticleSize,
			Shape:      component.ShapeSquare,
			StartColor: start,
			EndColor:   end,
			Lifetime:   burst.Lifetime,
		})
	}
	return out
}
