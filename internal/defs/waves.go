// internal/defs/waves.go
package defs

import "space-shooter/internal/component"

// NewWaves returns one independent schedule per archetype.
func NewWaves(tex Textures) []component.Wave {
	return []component.Wave{
		{
			Interval:             6.0,
			MinInterval:          1.0,
			IntervalDelta:        0.3,
			DoubleSpawnChance:    0.5,
			MaxDoubleSpawnChance: 0.7,
			Template:             BasicEnemy(tex),
		},
		{
			Interval:             16.0,
			MinInterval:          7.0,
			IntervalDelta:        0.3,
			DoubleSpawnChance:    0.1,
			MaxDoubleSpawnChance: 0.5,
			Template:             TurretEnemy(tex),
		},
	}
}
