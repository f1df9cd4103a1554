// internal/entity/world.go
package entity

import (
	"space-shooter/internal/component"
)

// World owns every simulated collection. Systems borrow it for one frame;
// nothing outside the frame keeps pointers into the slices.
type World struct {
	GameTime  float64
	Player    component.Player
	Enemies   []component.Enemy
	Bullets   []component.Bullet
	Particles []component.Particle
	Waves     []component.Wave
	PowerUps  []component.PowerUp
	State     component.GameState
}

// NewWorld creates a world around the given player and wave schedule.
func NewWorld(player component.Player, waves []component.Wave) *World {
	return &World{
		Player:    player,
		Enemies:   make([]component.Enemy, 0, 64),
		Bullets:   make([]component.Bullet, 0, 256),
		Particles: make([]component.Particle, 0, 8192),
		Waves:     waves,
		State:     component.GameState{Phase: component.PhasePlaying},
	}
}

// Counts reports how many entities of each kind are alive.
func (w *World) Counts() map[string]int {
	return map[string]int{
		"enemy":    len(w.Enemies),
		"bullet":   len(w.Bullets),
		"particle": len(w.Particles),
		"powerup":  len(w.PowerUps),
	}
}
