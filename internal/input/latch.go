// internal/input/latch.go
package input

import "time"

// Latch turns key presses into held buttons for terminals, which report
// presses and repeats but never releases. A button stays down for Hold
// after its last press.
type Latch struct {
	Hold time.Duration
	Now  func() time.Time

	left, right time.Time
}

func NewLatch(hold time.Duration) *Latch {
	return &Latch{Hold: hold, Now: time.Now}
}

func (l *Latch) PressLeft()  { l.left = l.Now().Add(l.Hold) }
func (l *Latch) PressRight() { l.right = l.Now().Add(l.Hold) }

func (l *Latch) TurnLeft() bool  { return l.Now().Before(l.left) }
func (l *Latch) TurnRight() bool { return l.Now().Before(l.right) }
