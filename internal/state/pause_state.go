// internal/state/pause_state.go
package state

import (
	"space-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the game and draws it under a dimmed overlay.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	log.Info().Msg("paused")
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	drawOverlay(screen, s.previousState.hud.Face(), "PAUSED", "Press P to resume")
}

func (s *PauseState) Exit() {}

// drawOverlay dims the screen and centres a title with a hint below it.
func drawOverlay(screen *ebiten.Image, face font.Face, title string, lines ...string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor, false)
	cy := config.ScreenHeight / 2
	for i, line := range append([]string{title}, lines...) {
		if line == "" {
			continue
		}
		b := text.BoundString(face, line)
		x := (config.ScreenWidth - b.Dx()) / 2
		text.Draw(screen, line, face, x, cy+i*32, config.TextLightColor)
	}
}
