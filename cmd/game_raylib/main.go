// cmd/game_raylib/main.go
package main

import (
	"os"
	"space-shooter/internal/app"
	"space-shooter/internal/assets"
	"space-shooter/internal/config"
	"space-shooter/internal/input/rlkeys"
	"space-shooter/internal/logging"
	"space-shooter/internal/render/rlrender"
	"space-shooter/internal/ui/hudtext"
	"space-shooter/internal/ui/rlui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/metric/noop"
)

func main() {
	settings, err := config.LoadFromArgs(os.Args[0], os.Args[1:])
	if err != nil {
		logging.Setup("info", os.Stderr)
		log.Fatal().Err(err).Msg("loading settings")
	}
	logging.Setup(settings.LogLevel, os.Stderr)

	rl.SetConfigFlags(rl.FlagVsyncHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(settings.Width), int32(settings.Height), settings.Title)
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyEscape)

	backend := rlrender.New()
	defer backend.Unload()

	opts := app.Options{
		Seed:       settings.Seed,
		Controls:   rlkeys.Keyboard{},
		Textures:   assets.Load(backend),
		Width:      settings.Width,
		Height:     settings.Height,
		ViewHeight: settings.ViewHeight,
	}
	if !settings.Telemetry {
		opts.Meter = noop.NewMeterProvider().Meter("space-shooter")
	}
	game, err := app.NewGame(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("creating game")
	}

	space := rl.NewColor(config.SpaceColor.R, config.SpaceColor.G, config.SpaceColor.B, config.SpaceColor.A)
	paused, debug := false, settings.Debug
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			game.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		if rl.IsKeyPressed(rl.KeyP) {
			paused = !paused
		}
		if rl.IsKeyPressed(rl.KeyF3) {
			debug = !debug
		}
		if game.IsOver() && rl.IsKeyPressed(rl.KeyEnter) {
			if err := game.Restart(); err != nil {
				log.Fatal().Err(err).Msg("restarting game")
			}
		}

		deltaTime := float64(rl.GetFrameTime())
		if deltaTime > settings.MaxDeltaTime {
			deltaTime = settings.MaxDeltaTime
		}
		if !paused {
			game.Update(deltaTime)
		}

		rl.BeginDrawing()
		rl.ClearBackground(space)
		backend.SetCamera(game.Camera)
		game.Draw(backend)
		rlui.DrawHUD(game, debug)
		switch {
		case game.IsOver():
			lines := append(hudtext.SummaryLines(game), "press Enter to restart")
			rlui.DrawBanner("GAME OVER", lines...)
		case paused:
			rlui.DrawBanner("PAUSED", "press P to resume")
		}
		rl.EndDrawing()
	}
}
