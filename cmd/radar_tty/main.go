// cmd/radar_tty/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"space-shooter/internal/app"
	"space-shooter/internal/assets"
	"space-shooter/internal/config"
	"space-shooter/internal/input"
	"space-shooter/internal/logging"
	"space-shooter/internal/render/ttyrender"
	"space-shooter/internal/ui/hudtext"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	frameDuration = time.Second / 30
	keyHold       = 150 * time.Millisecond
)

func main() {
	settings, err := config.LoadFromArgs(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The terminal owns stdout and stderr while the screen is up.
	logPath := filepath.Join(os.TempDir(), "radar_tty.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()
	logging.Setup(settings.LogLevel, logFile)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("creating screen")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("initializing screen")
	}
	defer screen.Fini()
	screen.HideCursor()

	backend := ttyrender.New(screen)
	controls := input.NewLatch(keyHold)
	opts := app.Options{
		Seed:       settings.Seed,
		Controls:   controls,
		Textures:   assets.Load(backend),
		ViewHeight: settings.ViewHeight,
	}
	if !settings.Telemetry {
		opts.Meter = noop.NewMeterProvider().Meter("space-shooter")
	}
	game, err := app.NewGame(opts)
	if err != nil {
		screen.Fini()
		log.Fatal().Err(err).Msg("creating game")
	}
	resize(game, backend)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()
	lastFrame := time.Now()
	paused := false

	for {
	drain:
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					switch {
					case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
						return
					case ev.Key() == tcell.KeyLeft || ev.Rune() == 'a':
						controls.PressLeft()
					case ev.Key() == tcell.KeyRight || ev.Rune() == 'd':
						controls.PressRight()
					case ev.Rune() == 'p':
						paused = !paused
					case ev.Key() == tcell.KeyEnter && game.IsOver():
						if err := game.Restart(); err != nil {
							log.Error().Err(err).Msg("restarting game")
							return
						}
					}
				case *tcell.EventResize:
					screen.Sync()
					resize(game, backend)
				}
			default:
				break drain
			}
		}

		now := time.Now()
		deltaTime := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if deltaTime > settings.MaxDeltaTime {
			deltaTime = settings.MaxDeltaTime
		}
		if !paused {
			game.Update(deltaTime)
		}

		screen.Clear()
		backend.SetCamera(game.Camera)
		game.Draw(backend)
		drawStatus(screen, game, paused)
		screen.Show()

		<-ticker.C
	}
}

func resize(game *app.Game, backend *ttyrender.Backend) {
	cam := backend.Camera(game.Camera.Pos, game.Camera.ViewHeight)
	game.Resize(cam.Width, cam.Height)
}

func drawStatus(screen tcell.Screen, game *app.Game, paused bool) {
	style := tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	lines := hudtext.StatusLines(game)
	switch {
	case game.IsOver():
		lines = append(lines, hudtext.SummaryLines(game)...)
		lines = append(lines, "GAME OVER - Enter restarts, Esc quits")
	case paused:
		lines = append(lines, "PAUSED - p resumes")
	}
	for y, line := range lines {
		for x, r := range []rune(line) {
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
