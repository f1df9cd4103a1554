package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingListener struct {
	got []Event
}

func (l *countingListener) OnEvent(e Event) { l.got = append(l.got, e) }

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(EnemyDestroyed, a)
	d.Subscribe(EnemyDestroyed, b)
	d.Subscribe(EnemySpawned, b)

	d.Dispatch(Event{Type: EnemyDestroyed})
	d.Dispatch(Event{Type: EnemySpawned})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 2)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(PartDamaged, a)
	d.Subscribe(PartDamaged, b)
	d.Unsubscribe(PartDamaged, a)

	d.Dispatch(Event{Type: PartDamaged})

	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(BulletFired, ListenerFunc(func(e Event) {
		calls++
		assert.Equal(t, BulletFiredData{Friendly: true}, e.Data)
	}))
	d.Dispatch(Event{Type: BulletFired, Data: BulletFiredData{Friendly: true}})
	assert.Equal(t, 1, calls)
}

func TestDispatchWithoutListeners(t *testing.T) {
	assert.NotPanics(t, func() {
		NewDispatcher().Dispatch(Event{Type: PlayerDestroyed})
	})
}
