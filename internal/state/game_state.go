// internal/state/game_state.go
package state

import (
	"space-shooter/internal/app"
	"space-shooter/internal/config"
	"space-shooter/internal/render/ebitenrender"
	"space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

var _ State = (*GameState)(nil)

// GameState runs the simulation and draws it with the HUD.
type GameState struct {
	sm      *StateMachine
	game    *app.Game
	backend *ebitenrender.Backend
	hud     *ui.HUD
}

func NewGameState(sm *StateMachine, game *app.Game, backend *ebitenrender.Backend, hud *ui.HUD) *GameState {
	return &GameState{
		sm:      sm,
		game:    game,
		backend: backend,
		hud:     hud,
	}
}

func (g *GameState) Enter() {
	log.Info().Msg("entering game")
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.hud.Debug = !g.hud.Debug
	}

	g.game.Update(deltaTime)
	if g.game.IsOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.SpaceColor)
	g.game.Draw(g.backend.Frame(screen, g.game.Camera))
	g.hud.Draw(screen, g.game)
}

func (g *GameState) Exit() {}

// Game returns the simulation driven by this state.
func (g *GameState) Game() *app.Game {
	return g.game
}
