// internal/input/rlkeys/keyboard.go
package rlkeys

import rl "github.com/gen2brain/raylib-go/raylib"

// Keyboard steers with A/D or the arrow keys through raylib.
type Keyboard struct{}

func (Keyboard) TurnLeft() bool {
	return rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft)
}

func (Keyboard) TurnRight() bool {
	return rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight)
}
