// internal/defs/enemies.go
package defs

import (
	"space-shooter/internal/component"
	"space-shooter/internal/render"
	"space-shooter/internal/utils"
)

func exhaust(location utils.Vec2, speed, size float64) component.ParticleEmitter {
	return component.ParticleEmitter{
		Location:   location,
		BaseSpeed:  speed,
		Speed:      speed,
		Size:       size,
		Shape:      component.ShapeSquare,
		StartColor: rgba(255, 255, 0, 255),
		EndColor:   rgba(255, 0, 50, 0),
		Lifetime:   1.0,
		Interval:   1.0 / 400.0,
	}
}

// BasicEnemy is a fast rammer that flies straight at the player.
func BasicEnemy(tex Textures) component.Enemy {
	return component.Enemy{
		Kind:             component.ArchetypeBasic,
		Target:           utils.Vec2{X: 200, Y: 200},
		Speed:            600,
		TurningSpeed:     100,
		TextureScale:     1.0,
		Friction:         1.0,
		Size:             16,
		Health:           1,
		ParticleEmitters: []component.ParticleEmitter{exhaust(utils.Vec2{X: 0, Y: -13}, 400, 5)},
		Texture:          tex.BasicEnemy,
	}
}

// TurretEnemy strafes around the player at a standoff distance and fires.
func TurretEnemy(tex Textures) component.Enemy {
	return component.Enemy{
		Kind:             component.ArchetypeTurret,
		Target:           utils.Vec2{X: 200, Y: 200},
		Speed:            500,
		TurningSpeed:     100,
		TextureScale:     1.5,
		Friction:         1.0,
		Size:             24,
		Health:           7,
		ParticleEmitters: []component.ParticleEmitter{exhaust(utils.Vec2{X: 0, Y: -15}, 800, 10)},
		BulletEmitters: []component.BulletEmitter{{
			Location:     utils.Vec2{X: 0, Y: 10},
			Size:         5,
			Damage:       0.3,
			Friendly:     false,
			Lifetime:     2,
			BaseInterval: 1.0 / 2.0,
			Interval:     1.0 / 2.0,
		}},
		Texture:       tex.TurretBase,
		ExtraTextures: []render.TextureID{tex.TurretCannon},
	}
}
