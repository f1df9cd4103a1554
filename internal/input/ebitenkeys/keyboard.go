// internal/input/ebitenkeys/keyboard.go
package ebitenkeys

import "github.com/hajimehoshi/ebiten/v2"

// Keyboard steers with A/D or the arrow keys.
type Keyboard struct{}

func (Keyboard) TurnLeft() bool {
	return ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
}

func (Keyboard) TurnRight() bool {
	return ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
}
