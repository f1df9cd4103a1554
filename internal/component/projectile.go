// internal/component/projectile.go
package component

import "space-shooter/internal/utils"

// BulletRadiusScale stretches the hit circle to match the elongated sprite.
const BulletRadiusScale = 2.0

// Bullet is a free-flying projectile.
type Bullet struct {
	Pos      utils.Vec2
	Vel      utils.Vec2
	Size     float64
	Damage   float64
	Friendly bool // true damages enemies, false damages player parts
	Lifetime float64
	Elapsed  float64
}

// EffectiveDamage decays linearly from Damage at spawn to zero at expiry.
func (b *Bullet) EffectiveDamage() float64 {
	if b.Lifetime <= 0 {
		return 0
	}
	return b.Damage - b.Elapsed/b.Lifetime*b.Damage
}

// HitRadius is the radius used for collision tests.
func (b *Bullet) HitRadius() float64 {
	return b.Size * BulletRadiusScale
}

// Expired reports whether the bullet outlived its lifetime.
func (b *Bullet) Expired() bool {
	return b.Elapsed >= b.Lifetime
}
