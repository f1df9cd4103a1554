// internal/component/visual.go
package component

import "space-shooter/internal/utils"

// Shape selects how a particle is drawn.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeCircle
	ShapeRotSquare
)

// Particle is purely visual. Gameplay never reads it.
type Particle struct {
	Pos        utils.Vec2
	Vel        utils.Vec2
	Size       float64
	Shape      Shape
	StartColor utils.Vec4
	EndColor   utils.Vec4
	Lifetime   float64
	Elapsed    float64
}

// Progress returns Elapsed / Lifetime.
func (p *Particle) Progress() float64 {
	if p.Lifetime <= 0 {
		return 1
	}
	return p.Elapsed / p.Lifetime
}

// Color returns the color interpolated by age.
func (p *Particle) Color() utils.Vec4 {
	return utils.ColorLerp(p.StartColor, p.EndColor, p.Progress())
}
