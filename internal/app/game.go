// internal/app/game.go
package app

import (
	"fmt"
	"space-shooter/internal/component"
	"space-shooter/internal/config"
	"space-shooter/internal/defs"
	"space-shooter/internal/entity"
	"space-shooter/internal/event"
	"space-shooter/internal/input"
	"space-shooter/internal/render"
	"space-shooter/internal/system"
	"space-shooter/internal/utils"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/metric"
)

// Options configure a new Game.
type Options struct {
	Seed       int64 // 0 seeds from the clock
	Controls   input.Controls
	Textures   defs.Textures
	Meter      metric.Meter // nil uses the global provider
	Width      int
	Height     int
	ViewHeight float64
}

// Game owns the world and runs every system in a fixed order.
type Game struct {
	World           *entity.World
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Camera          render.Camera

	WaveSystem      *system.WaveSystem
	PlayerSystem    *system.PlayerSystem
	EnemySystem     *system.EnemySystem
	BulletSystem    *system.BulletSystem
	ParticleSystem  *system.ParticleSystem
	PowerUpSystem   *system.PowerUpSystem
	TelemetrySystem *system.TelemetrySystem
	RenderSystem    *system.RenderSystem

	opts Options
}

// NewGame builds the default world and wires its systems.
func NewGame(opts Options) (*Game, error) {
	if opts.Controls == nil {
		opts.Controls = input.Static{}
	}
	if opts.Meter == nil {
		opts.Meter = system.Meter()
	}
	if opts.Width == 0 || opts.Height == 0 {
		opts.Width, opts.Height = config.ScreenWidth, config.ScreenHeight
	}
	if opts.ViewHeight <= 0 {
		opts.ViewHeight = config.ViewHeight
	}

	g := &Game{
		Rng:  utils.NewPRNGService(opts.Seed),
		opts: opts,
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	log.Info().Int64("seed", g.Rng.Seed()).Msg("game created")
	return g, nil
}

func (g *Game) reset() error {
	player := defs.NewPlayer(g.opts.Textures)
	world := entity.NewWorld(player, defs.NewWaves(g.opts.Textures))
	world.PowerUps = defs.NewPowerUps(g.opts.Textures, player.Pos)
	dispatcher := event.NewDispatcher()

	telemetry, err := system.NewTelemetrySystem(world, g.opts.Meter, dispatcher)
	if err != nil {
		return fmt.Errorf("creating telemetry: %w", err)
	}
	if g.TelemetrySystem != nil {
		if err := g.TelemetrySystem.Close(); err != nil {
			log.Warn().Err(err).Msg("closing previous telemetry")
		}
	}

	g.World = world
	g.EventDispatcher = dispatcher
	g.WaveSystem = system.NewWaveSystem(world, g.Rng, dispatcher)
	g.PlayerSystem = system.NewPlayerSystem(world, g.opts.Controls, g.Rng, dispatcher)
	g.EnemySystem = system.NewEnemySystem(world, g.Rng, dispatcher)
	g.BulletSystem = system.NewBulletSystem(world, g.Rng, dispatcher)
	g.ParticleSystem = system.NewParticleSystem(world)
	g.PowerUpSystem = system.NewPowerUpSystem(world, g.Rng, dispatcher)
	g.TelemetrySystem = telemetry
	g.RenderSystem = system.NewRenderSystem(world, g.opts.Textures)
	g.Camera = render.Camera{
		Pos:        player.Pos,
		ViewHeight: g.opts.ViewHeight,
		Width:      g.opts.Width,
		Height:     g.opts.Height,
	}

	dispatcher.Subscribe(event.PlayerDestroyed, &GameEventListener{game: g})
	return nil
}

// Restart replaces the world with a fresh one. The random source keeps
// its sequence.
func (g *Game) Restart() error {
	if err := g.reset(); err != nil {
		return err
	}
	log.Info().Msg("game restarted")
	return nil
}

// Update advances the simulation by deltaTime seconds. Nothing moves once
// the run is over.
func (g *Game) Update(deltaTime float64) {
	if g.IsOver() {
		return
	}
	w := g.World
	w.GameTime += deltaTime
	w.State.SurvivalTime += deltaTime

	g.WaveSystem.Update(deltaTime)
	g.PlayerSystem.Update(deltaTime)
	g.EnemySystem.Update(deltaTime)
	g.BulletSystem.Update(deltaTime)
	g.ParticleSystem.Update(deltaTime)
	g.PowerUpSystem.Update(deltaTime)
	g.TelemetrySystem.Update(deltaTime)

	g.Camera.Pos = w.Player.Pos

	if body, ok := g.MainBody(); ok && body.Health <= 0 {
		w.State.Phase = component.PhaseGameOver
		g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDestroyed})
	}
}

// Resize changes the screen size the camera maps onto. It survives restarts.
func (g *Game) Resize(width, height int) {
	g.opts.Width, g.opts.Height = width, height
	g.Camera.Width, g.Camera.Height = width, height
}

// Draw emits the current scene.
func (g *Game) Draw(frame render.Frame) {
	g.RenderSystem.Draw(frame, g.Camera)
}

// IsOver reports whether the main body was destroyed.
func (g *Game) IsOver() bool {
	return g.World.State.Phase == component.PhaseGameOver
}

// MainBody returns the part whose destruction ends the run.
func (g *Game) MainBody() (*component.Part, bool) {
	return g.World.Player.PartByName(config.MainBodyPart)
}

// Wave returns the number of spawn batches so far, across every schedule.
func (g *Game) Wave() int {
	n := 0
	for _, w := range g.World.Waves {
		n += w.Batches
	}
	return n
}

// GameEventListener reacts to events that end the run.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	if e.Type != event.PlayerDestroyed {
		return
	}
	st := l.game.World.State
	log.Info().
		Float64("survived", st.SurvivalTime).
		Int("kills", st.Kills).
		Int("waves", l.game.Wave()).
		Msg("player destroyed")
}
