package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()             { *s.log = append(*s.log, "enter "+s.name) }
func (s *recordingState) Update(float64)     { *s.log = append(*s.log, "update "+s.name) }
func (s *recordingState) Draw(*ebiten.Image) {}
func (s *recordingState) Exit()              { *s.log = append(*s.log, "exit "+s.name) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.1) // no state yet

	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)

	assert.Equal(t, []string{"enter a", "update a", "exit a", "enter b"}, log)
	assert.Same(t, b, sm.Current())
}

func TestStateMachineNilState(t *testing.T) {
	sm := NewStateMachine()
	assert.NotPanics(t, func() {
		sm.SetState(nil)
		sm.Draw(nil)
	})
}
