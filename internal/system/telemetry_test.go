package system

import (
	"space-shooter/internal/component"
	"space-shooter/internal/entity"
	"space-shooter/internal/event"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestTelemetrySnapshotsCounts(t *testing.T) {
	w := entity.NewWorld(component.Player{}, nil)
	w.Bullets = append(w.Bullets, component.Bullet{}, component.Bullet{})
	d := event.NewDispatcher()

	s, err := NewTelemetrySystem(w, noop.NewMeterProvider().Meter("test"), d)
	require.NoError(t, err)

	s.Update(1.0 / 60)
	assert.Equal(t, 2, s.Counts()["bullet"])
	assert.Equal(t, 0, s.Counts()["enemy"])
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestTelemetryAcceptsEvents(t *testing.T) {
	w := entity.NewWorld(component.Player{}, nil)
	d := event.NewDispatcher()
	_, err := NewTelemetrySystem(w, noop.NewMeterProvider().Meter("test"), d)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		d.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemySpawnedData{Kind: component.ArchetypeTurret}})
		d.Dispatch(event.Event{Type: event.PartDamaged, Data: event.PartDamagedData{Amount: 0.3, Cause: "bullet"}})
		d.Dispatch(event.Event{Type: event.PowerUpCollected, Data: component.PowerUpRepair})
		d.Dispatch(event.Event{Type: event.BulletFired, Data: "unexpected payload"})
	})
}

func TestGlobalMeterIsUsable(t *testing.T) {
	_, err := NewTelemetrySystem(entity.NewWorld(component.Player{}, nil), Meter(), event.NewDispatcher())
	assert.NoError(t, err)
}
