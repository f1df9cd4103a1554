// cmd/game/main.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"space-shooter/internal/app"
	"space-shooter/internal/assets"
	"space-shooter/internal/config"
	"space-shooter/internal/input/ebitenkeys"
	"space-shooter/internal/logging"
	"space-shooter/internal/render/ebitenrender"
	"space-shooter/internal/state"
	"space-shooter/internal/ui"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/metric/noop"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	maxDeltaTime   float64
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.maxDeltaTime {
		deltaTime = a.maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	settings, err := config.LoadFromArgs(os.Args[0], os.Args[1:])
	if err != nil {
		logging.Setup("info", os.Stderr)
		log.Fatal().Err(err).Msg("loading settings")
	}
	logging.Setup(settings.LogLevel, os.Stderr)

	if settings.PprofAddr != "" {
		go func() {
			log.Info().Str("addr", settings.PprofAddr).Msg("pprof listening")
			log.Error().Err(http.ListenAndServe(settings.PprofAddr, nil)).Msg("pprof stopped")
		}()
	}

	backend := ebitenrender.New()
	opts := app.Options{
		Seed:       settings.Seed,
		Controls:   ebitenkeys.Keyboard{},
		Textures:   assets.Load(backend),
		Width:      config.ScreenWidth,
		Height:     config.ScreenHeight,
		ViewHeight: settings.ViewHeight,
	}
	if !settings.Telemetry {
		opts.Meter = noop.NewMeterProvider().Meter("space-shooter")
	}
	game, err := app.NewGame(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("creating game")
	}
	face, err := ui.LoadFace(18)
	if err != nil {
		log.Fatal().Err(err).Msg("loading font")
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game, backend, ui.NewHUD(face, settings.Debug)))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		maxDeltaTime:   settings.MaxDeltaTime,
		width:          config.ScreenWidth,
		height:         config.ScreenHeight,
	}
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(settings.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal().Err(err).Msg("game loop")
	}
}
