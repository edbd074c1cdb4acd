// Package sim runs the lander world tick by tick. Each Step applies the
// player's controls, lets the enemies and hostages act, integrates every
// moving body, grows explosions and pulses, resolves collisions and finally
// folds the world around the player and moves the camera.
package sim

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/collision"
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
	"github.com/vovakirdan/tui-lander/internal/scene"
)

// moving lists the categories integrated every tick. Ground enemies,
// hostages and the pad never move on their own.
var moving = []scene.Category{scene.Lander, scene.Missiles, scene.AirEnemies, scene.Explosions}

// Simulation is a running lander world.
type Simulation struct {
	cfg     config.LanderConfig
	runtime core.RuntimeConfig
	dt      float64
	logger  *log.Logger
	rng     *RNG

	world    physics.World
	wrap     scene.Wrap
	scene    *scene.Scene
	detector *collision.Detector
	ctx      Context

	launchers []*launcher
	hostages  []*hostage

	tick       int
	lander     *physics.Body
	outcome    core.Outcome
	collisions int
	deaths     int
	rescued    int
}

// New creates an empty world over flat terrain. A nil logger discards output.
func New(cfg config.LanderConfig, runtime core.RuntimeConfig, logger *log.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	wrap := scene.Wrap{WorldWidth: cfg.World.Width, ViewWidth: cfg.World.ViewWidth}
	view := scene.NewViewport(
		core.V(cfg.World.Width/2, cfg.World.ViewHeight/2),
		cfg.World.ViewWidth, cfg.World.ViewHeight,
	)
	terrain := scene.FlatTerrain(wrap, cfg.World.TerrainSegment, cfg.World.TerrainHeight)

	s := &Simulation{
		runtime: runtime,
		dt:      runtime.DeltaTime(),
		logger:  logger,
		rng:     NewRNG(runtime.Seed),
		wrap:    wrap,
		scene:   scene.New(terrain, view),
		outcome: core.OutcomeRunning,
	}
	s.ctx.View = view
	if err := s.Apply(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply swaps in new tuning for the forces, the restitution table and the
// resolver. Bodies already in the world keep their own parameters.
func (s *Simulation) Apply(cfg config.LanderConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	table, err := cfg.Table()
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	s.cfg = cfg
	s.world = cfg.PhysicsWorld()
	s.detector = collision.NewDetector(collision.Options{
		Restitution:      table,
		SafeLandingSpeed: cfg.Landing.SafeSpeed,
		StuckRetries:     cfg.Shield.StuckRetries,
		StuckCooldown:    cfg.Shield.StuckCooldown,
		NudgeBudget:      cfg.Shield.NudgeBudget,
		ShakeMagnitude:   cfg.Camera.Shake,
	}, s.logger)
	return nil
}

// Scene returns the body registry.
func (s *Simulation) Scene() *scene.Scene { return s.scene }

// Config returns the active tuning.
func (s *Simulation) Config() config.LanderConfig { return s.cfg }

// Context returns the tracked body and camera.
func (s *Simulation) Context() Context { return s.ctx }

// Lander returns the player's craft, dead or alive, or nil if none was spawned.
func (s *Simulation) Lander() *physics.Body { return s.lander }

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() int { return s.tick }

// DeltaTime returns the fixed step length in seconds.
func (s *Simulation) DeltaTime() float64 { return s.dt }

// World returns the force environment.
func (s *Simulation) World() physics.World { return s.world }

// Wrap returns the world-wrap geometry.
func (s *Simulation) Wrap() scene.Wrap { return s.wrap }

// Outcome returns how the run stands.
func (s *Simulation) Outcome() core.Outcome { return s.outcome }

// Rescued returns the number of hostages picked up so far.
func (s *Simulation) Rescued() int { return s.rescued }
