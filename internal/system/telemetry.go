// internal/system/telemetry.go
package system

import (
	"context"
	"fmt"
	"space-shooter/internal/entity"
	"space-shooter/internal/event"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "space-shooter/internal/system"

// Meter returns the meter of the global provider. It is a no-op until a
// provider is installed.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// TelemetrySystem turns simulation events into OpenTelemetry metrics.
type TelemetrySystem struct {
	world *entity.World

	spawned   metric.Int64Counter
	destroyed metric.Int64Counter
	fired     metric.Int64Counter
	damage    metric.Float64Counter
	collected metric.Int64Counter
	frame     metric.Float64Histogram
	entities  metric.Int64ObservableGauge
	callback  metric.Registration

	// Entity counts are copied here every frame; the gauge callback runs
	// on the exporter's goroutine and must not touch the world.
	mu     sync.RWMutex
	counts map[string]int
}

func NewTelemetrySystem(world *entity.World, meter metric.Meter, eventDispatcher *event.Dispatcher) (*TelemetrySystem, error) {
	s := &TelemetrySystem{
		world:  world,
		counts: make(map[string]int),
	}

	var err error
	s.spawned, err = meter.Int64Counter("sim.enemies.spawned", metric.WithDescription("Enemies spawned by waves"))
	if err != nil {
		return nil, fmt.Errorf("creating spawned counter: %w", err)
	}
	s.destroyed, err = meter.Int64Counter("sim.enemies.destroyed", metric.WithDescription("Enemies destroyed"))
	if err != nil {
		return nil, fmt.Errorf("creating destroyed counter: %w", err)
	}
	s.fired, err = meter.Int64Counter("sim.bullets.fired", metric.WithDescription("Bullets fired"))
	if err != nil {
		return nil, fmt.Errorf("creating fired counter: %w", err)
	}
	s.damage, err = meter.Float64Counter("sim.parts.damage", metric.WithDescription("Health lost by player parts"))
	if err != nil {
		return nil, fmt.Errorf("creating damage counter: %w", err)
	}
	s.collected, err = meter.Int64Counter("sim.powerups.collected", metric.WithDescription("Power-ups collected"))
	if err != nil {
		return nil, fmt.Errorf("creating power-up counter: %w", err)
	}
	s.frame, err = meter.Float64Histogram("sim.frame.delta",
		metric.WithDescription("Simulated frame time"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frame histogram: %w", err)
	}
	s.entities, err = meter.Int64ObservableGauge("sim.entities", metric.WithDescription("Live entities by kind"))
	if err != nil {
		return nil, fmt.Errorf("creating entity gauge: %w", err)
	}
	s.callback, err = meter.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			s.mu.RLock()
			defer s.mu.RUnlock()
			for kind, n := range s.counts {
				o.ObserveInt64(s.entities, int64(n), metric.WithAttributes(attribute.String("kind", kind)))
			}
			return nil
		},
		s.entities,
	)
	if err != nil {
		return nil, fmt.Errorf("registering entity callback: %w", err)
	}

	for _, t := range []event.EventType{
		event.EnemySpawned,
		event.EnemyDestroyed,
		event.BulletFired,
		event.PartDamaged,
		event.PowerUpCollected,
	} {
		eventDispatcher.Subscribe(t, s)
	}
	return s, nil
}

func (s *TelemetrySystem) OnEvent(e event.Event) {
	ctx := context.Background()
	switch e.Type {
	case event.EnemySpawned:
		if d, ok := e.Data.(event.EnemySpawnedData); ok {
			s.spawned.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", d.Kind.String())))
		}
	case event.EnemyDestroyed:
		if d, ok := e.Data.(event.EnemyDestroyedData); ok {
			s.destroyed.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", d.Kind.String())))
		}
	case event.BulletFired:
		if d, ok := e.Data.(event.BulletFiredData); ok {
			s.fired.Add(ctx, 1, metric.WithAttributes(attribute.Bool("friendly", d.Friendly)))
		}
	case event.PartDamaged:
		if d, ok := e.Data.(event.PartDamagedData); ok {
			s.damage.Add(ctx, d.Amount, metric.WithAttributes(attribute.String("cause", d.Cause)))
		}
	case event.PowerUpCollected:
		s.collected.Add(ctx, 1)
	}
}

func (s *TelemetrySystem) Update(deltaTime float64) {
	s.frame.Record(context.Background(), deltaTime)

	counts := s.world.Counts()
	s.mu.Lock()
	s.counts = counts
	s.mu.Unlock()
}

// Counts returns the entity counts captured by the last Update.
func (s *TelemetrySystem) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}

// Close unregisters the gauge callback. Counters stay with the provider.
func (s *TelemetrySystem) Close() error {
	if s.callback == nil {
		return nil
	}
	err := s.callback.Unregister()
	s.callback = nil
	return err
}
