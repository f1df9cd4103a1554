// internal/system/powerup.go
package system

import (
	"space-shooter/internal/component"
	"space-shooter/internal/config"
	"space-shooter/internal/entity"
	"space-shooter/internal/event"
	"space-shooter/internal/utils"

	"github.com/rs/zerolog/log"
)

// PowerUpSystem applies pickups touched by any player part and moves them
// somewhere else.
type PowerUpSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewPowerUpSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *PowerUpSystem {
	return &PowerUpSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *PowerUpSystem) Update(deltaTime float64) {
	player := &s.world.Player
	for i := range s.world.PowerUps {
		pu := &s.world.PowerUps[i]
		for j := range player.Parts {
			if !Overlaps(player.Parts[j].Pos, player.Parts[j].Size, pu.Pos, pu.Size) {
				continue
			}
			s.collect(pu, j)
			break
		}
	}
}

func (s *PowerUpSystem) collect(pu *component.PowerUp, part int) {
	player := &s.world.Player
	switch pu.Kind {
	case component.PowerUpRepair:
		Repair(player.Parts, part)
	}

	away := s.rng.Direction().Scale(s.rng.Range(config.PowerUpRelocateMin, config.PowerUpRelocateMax))
	pu.Pos = player.Pos.Add(away)

	log.Info().Stringer("kind", pu.Kind).Str("part", player.Parts[part].Name).Msg("power-up collected")
	s.eventDispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: pu.Kind})
}

// Repair restores the collecting part and every other part to full health.
func Repair(parts []component.Part, collector int) {
	if collector >= 0 && collector < len(parts) {
		parts[collector].Health = parts[collector].StartingHealth
	}
	for other := range parts {
		a, b, ok := entity.Pair(parts, collector, other)
		if !ok {
			continue
		}
		a.Health = a.StartingHealth
		b.Health = b.StartingHealth
	}
}
