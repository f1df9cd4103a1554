// internal/state/gameover_state.go
package state

import (
	"space-shooter/internal/ui/hudtext"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final score until the player restarts.
type GameOverState struct {
	stateMachine *StateMachine
	gameState    *GameState
}

func NewGameOverState(sm *StateMachine, gameState *GameState) *GameOverState {
	return &GameOverState{stateMachine: sm, gameState: gameState}
}

func (s *GameOverState) Enter() {
	log.Info().Msg("game over")
}

func (s *GameOverState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	if err := s.gameState.Game().Restart(); err != nil {
		log.Error().Err(err).Msg("restart failed")
		return
	}
	s.stateMachine.SetState(s.gameState)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.gameState.Draw(screen)
	lines := append(hudtext.SummaryLines(s.gameState.Game()), "Press Enter to restart")
	drawOverlay(screen, s.gameState.hud.Face(), "GAME OVER", lines...)
}

func (s *GameOverState) Exit() {}
