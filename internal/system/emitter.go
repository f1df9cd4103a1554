// internal/system/emitter.go
package system

import (
	"math"
	"space-shooter/internal/component"
	"space-shooter/internal/config"
	"space-shooter/internal/utils"
)

func validInterval(interval float64) bool {
	return interval > 0 && !math.IsInf(interval, 1)
}

// TickParticleEmitter moves the emitter with its ship and appends one
// particle for every whole interval accumulated.
func TickParticleEmitter(em *component.ParticleEmitter, ship *component.Kinematics, rng *utils.PRNGService, dt float64, out []component.Particle) []component.Particle {
	em.Pos = ship.ToWorld(em.Location)
	jitter := rng.Direction().Scale(rng.Range(config.EmitterJitterMin, config.EmitterJitterMax))
	em.Vel = ship.Vel.Sub(ship.Dir.Scale(em.Speed)).Add(jitter)

	if !validInterval(em.Interval) {
		em.Accumulator = 0
		return out
	}
	em.Accumulator += dt
	for em.Accumulator > em.Interval {
		out = append(out, component.Particle{
			Pos:        em.Pos,
			Vel:        em.Vel,
			Size:       em.Size,
			Shape:      em.Shape,
			StartColor: em.StartColor,
			EndColor:   em.EndColor,
			Lifetime:   em.Lifetime,
		})
		em.Accumulator -= em.Interval
	}
	return out
}

// TickBulletEmitter drains the accumulator every interval and appends a
// bullet per interval only while fire is set. The caller positions the
// emitter and picks the muzzle velocity.
func TickBulletEmitter(em *component.BulletEmitter, vel utils.Vec2, fire bool, dt float64, out []component.Bullet) []component.Bullet {
	if !validInterval(em.Interval) {
		em.Accumulator = 0
		return out
	}
	em.Accumulator += dt
	for em.Accumulator > em.Interval {
		if fire {
			out = append(out, component.Bullet{
				Pos:      em.Pos,
				Vel:      vel,
				Size:     em.Size,
				Damage:   em.Damage,
				Friendly: em.Friendly,
				Lifetime: em.Lifetime,
			})
		}
		em.Accumulator -= em.Interval
	}
	return out
}
