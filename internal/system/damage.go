// internal/system/damage.go
package system

import (
	"math"
	"space-shooter/internal/component"
)

// ResetCapabilities restores every capability the damage graph touches.
func ResetCapabilities(p *component.Player) {
	p.Speed = p.BaseSpeed
	p.TurnLeft = p.BaseTurnLeft
	p.TurnRight = p.BaseTurnRight
	for i := range p.ParticleEmitters {
		p.ParticleEmitters[i].Speed = p.ParticleEmitters[i].BaseSpeed
	}
	for i := range p.BulletEmitters {
		p.BulletEmitters[i].Interval = p.BulletEmitters[i].BaseInterval
	}
}

// HealthRatio sums the health of the listed parts over their starting
// health. The result never drops below zero.
func HealthRatio(parts []component.Part, sources []int) (float64, bool) {
	var health, total float64
	for _, src := range sources {
		if src < 0 || src >= len(parts) {
			return 0, false
		}
		health += parts[src].Health
		total += parts[src].StartingHealth
	}
	if total <= 0 {
		return 0, false
	}
	return math.Max(0, health/total), true
}

// ApplyDamageGraph scales the player's capabilities by the health of the
// parts feeding each rule. Rules are applied in order and compound. Rules
// that reference a missing part or emitter are skipped and their indices
// returned.
func ApplyDamageGraph(p *component.Player) (skipped []int) {
	for i, rule := range p.Damage {
		value, ok := HealthRatio(p.Parts, rule.Sources)
		target := capability(p, rule)
		if !ok || target == nil {
			skipped = append(skipped, i)
			continue
		}
		factor := value * rule.Scale
		switch rule.Op {
		case component.OpMultiply:
			*target *= factor
		case component.OpDivide:
			*target /= factor
		}
	}
	return skipped
}

func capability(p *component.Player, rule component.Damage) *float64 {
	switch rule.Target {
	case component.ModTurnLeft:
		return &p.TurnLeft
	case component.ModTurnRight:
		return &p.TurnRight
	case component.ModSpeed:
		return &p.Speed
	case component.ModParticle:
		if rule.Index >= 0 && rule.Index < len(p.ParticleEmitters) {
			return &p.ParticleEmitters[rule.Index].Speed
		}
	case component.ModGun:
		if rule.Index >= 0 && rule.Index < len(p.BulletEmitters) {
			return &p.BulletEmitters[rule.Index].Interval
		}
	}
	return nil
}
