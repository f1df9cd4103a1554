// internal/component/wave.go
package component

// Wave spawns clones of Template on an accelerating schedule.
type Wave struct {
	Interval             float64
	MinInterval          float64
	IntervalDelta        float64
	DoubleSpawnChance    float64
	MaxDoubleSpawnChance float64
	Accumulator          float64
	Template             Enemy

	Batches int // spawn ticks so far
	Spawned int // enemies spawned so far
}
