// internal/input/controls.go
package input

// Controls is polled once per frame by the player system.
type Controls interface {
	TurnLeft() bool
	TurnRight() bool
}

// Static reports fixed button states. Headless frontends and tests use it.
type Static struct {
	Left  bool
	Right bool
}

func (s Static) TurnLeft() bool  { return s.Left }
func (s Static) TurnRight() bool { return s.Right }
