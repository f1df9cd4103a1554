// internal/system/render.go
package system

import (
	"space-shooter/internal/component"
	"space-shooter/internal/config"
	"space-shooter/internal/defs"
	"space-shooter/internal/entity"
	"space-shooter/internal/render"
	"space-shooter/internal/utils"
)

var white = utils.Vec4{X: 1, Y: 1, Z: 1, W: 1}

// RenderSystem draws the world. It never mutates it.
type RenderSystem struct {
	world    *entity.World
	textures defs.Textures
}

func NewRenderSystem(world *entity.World, textures defs.Textures) *RenderSystem {
	return &RenderSystem{world: world, textures: textures}
}

// Draw emits the scene back to front: particles, bullets, power-ups,
// enemies, then the player on top.
func (s *RenderSystem) Draw(frame render.Frame, cam render.Camera) {
	w := s.world
	for i := range w.Particles {
		p := &w.Particles[i]
		if !cam.Visible(p.Pos, p.Size) {
			continue
		}
		drawParticle(frame, p)
	}

	for i := range w.Bullets {
		b := &w.Bullets[i]
		if !cam.Visible(b.Pos, b.HitRadius()) {
			continue
		}
		scale := 1 - b.Elapsed/b.Lifetime
		color := utils.Vec4{X: config.HostileBulletColor[0], Y: config.HostileBulletColor[1], Z: config.HostileBulletColor[2], W: config.HostileBulletColor[3]}
		if b.Friendly {
			color = utils.Vec4{X: config.FriendlyBulletColor[0], Y: config.FriendlyBulletColor[1], Z: config.FriendlyBulletColor[2], W: config.FriendlyBulletColor[3]}
		}
		size := utils.Vec2{X: b.Size * scale, Y: b.Size * 2 * scale}
		frame.DrawQuad(b.Pos, size, color, spriteRotation(b.Vel), render.NoTexture)
	}

	player := &w.Player
	for i := range w.PowerUps {
		pu := &w.PowerUps[i]
		size := utils.Vec2{X: pu.Size * 2, Y: pu.Size * 2}
		frame.DrawQuad(pu.Pos, size, white, 0, pu.Texture)
		if player.Pos.Distance(pu.Pos) > config.PowerUpMarkerRange {
			marker := player.Pos.Add(pu.Pos.Sub(player.Pos).Normalize().Scale(config.PowerUpMarkerRange))
			frame.DrawQuad(marker, size, white, 0, pu.Texture)
		}
	}

	for i := range w.Enemies {
		s.drawEnemy(frame, &w.Enemies[i])
	}

	quad := utils.Vec2{X: config.PlayerQuadSize, Y: config.PlayerQuadSize}
	frame.DrawQuad(player.Pos, quad, white, spriteRotation(player.Dir), player.Texture)
}

func (s *RenderSystem) drawEnemy(frame render.Frame, e *component.Enemy) {
	player := &s.world.Player
	size := config.EnemyQuadSize * e.TextureScale
	quad := utils.Vec2{X: size, Y: size}
	frame.DrawQuad(e.Pos, quad, white, spriteRotation(e.Dir), e.Texture)
	if e.Kind == component.ArchetypeTurret && len(e.ExtraTextures) > 0 {
		frame.DrawQuad(e.Pos, quad, white, spriteRotation(player.Pos.Sub(e.Pos)), e.ExtraTextures[0])
	}
	if player.Pos.Distance(e.Pos) > config.WarningRadius {
		marker := player.Pos.Add(e.Pos.Sub(player.Pos).Normalize().Scale(config.WarningRadius))
		frame.DrawQuad(marker, utils.Vec2{X: config.WarningSize, Y: config.WarningSize}, white, 0, s.textures.Warning)
	}
}

func drawParticle(frame render.Frame, p *component.Particle) {
	color := p.Color()
	switch p.Shape {
	case component.ShapeCircle:
		frame.DrawCircle(p.Pos, p.Size/2, color)
	case component.ShapeRotSquare:
		frame.DrawQuad(p.Pos, utils.Vec2{X: p.Size, Y: p.Size}, color, spriteRotation(p.Vel), render.NoTexture)
	default:
		frame.DrawQuad(p.Pos, utils.Vec2{X: p.Size, Y: p.Size}, color, 0, render.NoTexture)
	}
}

// spriteRotation converts a heading into the quad rotation for sprites
// drawn pointing up.
func spriteRotation(dir utils.Vec2) float64 {
	return utils.ToDegrees(utils.VectorToAngle(dir)) - 90
}
