// internal/component/game_state.go
package component

// Phase is the coarse state of a run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// GameState holds run-wide counters.
type GameState struct {
	Phase        Phase
	SurvivalTime float64
	Kills        int
}
