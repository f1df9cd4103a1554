// internal/system/wave.go
package system

import (
	"math"
	"space-shooter/internal/component"
	"space-shooter/internal/config"
	"space-shooter/internal/entity"
	"space-shooter/internal/event"
	"space-shooter/internal/utils"

	"github.com/rs/zerolog/log"
)

// WaveSystem runs every wave schedule and spawns enemies around the player.
type WaveSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	for i := range s.world.Waves {
		s.tick(&s.world.Waves[i], deltaTime)
	}
}

func (s *WaveSystem) tick(wave *component.Wave, deltaTime float64) {
	if !(wave.Interval > 0) {
		return
	}
	wave.Accumulator += deltaTime
	for wave.Accumulator > wave.Interval {
		amount := RollBatch(wave.DoubleSpawnChance, s.rng)
		wave.DoubleSpawnChance = math.Min(wave.DoubleSpawnChance+config.DoubleSpawnStep, wave.MaxDoubleSpawnChance)
		wave.Interval = math.Max(wave.Interval-wave.IntervalDelta, wave.MinInterval)
		if !(wave.Interval > 0) {
			wave.Accumulator = 0
			return
		}

		player := &s.world.Player
		for n := 0; n < amount; n++ {
			enemy := wave.Template.Clone()
			enemy.Pos = player.Pos.Add(s.rng.Direction().Scale(config.SpawnRadius))
			enemy.Dir = s.rng.Direction()
			s.world.Enemies = append(s.world.Enemies, enemy)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemySpawned,
				Data: event.EnemySpawnedData{Kind: enemy.Kind, Pos: enemy.Pos, Amount: amount},
			})
		}
		wave.Batches++
		wave.Spawned += amount
		log.Debug().
			Stringer("kind", wave.Template.Kind).
			Int("amount", amount).
			Float64("interval", wave.Interval).
			Float64("chance", wave.DoubleSpawnChance).
			Msg("wave spawned")

		wave.Accumulator -= wave.Interval
	}
}

// RollBatch decides how many enemies spawn together. Each extra unit is
// rolled with chance/amount², so large batches get rapidly rarer.
func RollBatch(chance float64, rng *utils.PRNGService) int {
	amount := 1
	for rng.Float64() < chance/float64(amount*amount) {
		amount++
	}
	return amount
}
