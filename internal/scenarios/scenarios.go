// Package scenarios holds the scripted setups the command layer can run
// headless. Each registers itself with the registry on init.
package scenarios

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/sim"
)

func init() {
	registry.Register("crash-landing", func() registry.Scenario { return crashLanding{} })
	registry.Register("safe-landing", func() registry.Scenario { return safeLanding{} })
	registry.Register("shield-clash", func() registry.Scenario { return shieldClash{} })
	registry.Register("missile-climb", func() registry.Scenario { return missileClimb{} })
	registry.Register("hostage-bounce", func() registry.Scenario { return hostageBounce{} })
	registry.Register("world-wrap", func() registry.Scenario { return worldWrap{} })
	registry.Register("explosion-push", func() registry.Scenario { return explosionPush{} })
}

// Prepare tunes cfg for the scenario and builds an empty world from it.
// Run the returned simulation with the scenario as its script.
func Prepare(sc registry.Scenario, cfg config.LanderConfig, runtime core.RuntimeConfig, logger *log.Logger) (*sim.Simulation, error) {
	sc.Tune(&cfg)
	return sim.New(cfg, runtime, logger)
}

// quiet is embedded by scenarios that need no tuning or controls.
type quiet struct{}

func (quiet) Tune(*config.LanderConfig) {}

func (quiet) Input(*sim.Simulation) core.InputFrame { return core.NewInputFrame() }

// shieldOn raises the craft's shield on the first tick.
func shieldOn(s *sim.Simulation) core.InputFrame {
	in := core.NewInputFrame()
	if s.Tick() == 0 {
		in.Set(core.ActionShield)
	}
	return in
}

// crashLanding drops the craft onto the pad far too fast.
type crashLanding struct{ quiet }

func (crashLanding) ID() string { return "crash-landing" }
func (crashLanding) Title() string { return "Craft hits the pad at 100 px/s and explodes" }
func (crashLanding) Ticks() int { return 300 }

func (crashLanding) Tune(cfg *config.LanderConfig) {
	cfg.World.Gravity = config.GravityForPreset(config.DifficultyEasy)
}

func (crashLanding) Setup(s *sim.Simulation) {
	pad := s.PlacePad(5000)
	l := s.SpawnLander(core.V(5000, pad.Bounds().Top()+s.Config().Craft.Height/2+100))
	l.Delta = core.V(0, -100*s.DeltaTime())
}

// safeLanding descends from altitude holding the sink rate under the safe
// landing speed with short engine bursts.
type safeLanding struct{ quiet }

// sinkRate is the descent speed the autopilot holds.
const sinkRate = 30

func (safeLanding) ID() string { return "safe-landing" }
func (safeLanding) Title() string { return "Autopilot descent onto the pad" }
func (safeLanding) Ticks() int { return 900 }

func (safeLanding) Tune(cfg *config.LanderConfig) {
	cfg.World.Gravity = config.GravityForPreset(config.DifficultyEasy)
}

func (safeLanding) Setup(s *sim.Simulation) {
	pad := s.PlacePad(6000)
	s.SpawnLander(core.V(6000, pad.Bounds().Top()+s.Config().Craft.Height/2+200))
}

func (safeLanding) Input(s *sim.Simulation) core.InputFrame {
	in := core.NewInputFrame()
	if l := s.Lander(); l != nil && !l.Landed && l.Vel.Y < -sinkRate {
		in.Set(core.ActionThrust)
	}
	return in
}

// shieldClash flies the shielded craft head-on into a shielded mine in
// space, where the shield pair bounces far harder than it came in.
type shieldClash struct{ quiet }

func (shieldClash) ID() string { return "shield-clash" }
func (shieldClash) Title() string { return "Shielded craft rams a shielded mine" }
func (shieldClash) Ticks() int { return 180 }

func (shieldClash) Setup(s *sim.Simulation) {
	l := s.SpawnLander(core.V(8000, 1700))
	l.Delta = core.V(2, 0)
	s.SpawnMine(core.V(8300, 1700), core.V(-2, 0))
}

func (shieldClash) Input(s *sim.Simulation) core.InputFrame { return shieldOn(s) }

// missileClimb lights a missile from rest with nothing to chase.
type missileClimb struct{ quiet }

func (missileClimb) ID() string { return "missile-climb" }
func (missileClimb) Title() string { return "Missile climbs from rest under thrust and gravity" }
func (missileClimb) Ticks() int { return 600 }

func (missileClimb) Setup(s *sim.Simulation) {
	s.SpawnMissile(core.V(5000, 300), core.Vec2{}, s.Config().Missile)
}

// hostageBounce drops the shielded craft onto a hostage's shield and keeps
// it bouncing there until the hostage is picked up.
type hostageBounce struct{ quiet }

func (hostageBounce) ID() string { return "hostage-bounce" }
func (hostageBounce) Title() string { return "Shield bounces off a grounded hostage until rescue" }
func (hostageBounce) Ticks() int { return 420 }

func (hostageBounce) Setup(s *sim.Simulation) {
	h := s.SpawnHostage(7000)
	gap := h.Shield.Field().Radius + s.Config().Shield.Factor*s.Config().Craft.Height
	s.SpawnLander(core.V(7000, h.Pos.Y+gap+60))
}

func (hostageBounce) Input(s *sim.Simulation) core.InputFrame { return shieldOn(s) }

// worldWrap flies the craft across the seam at the left edge of the world.
type worldWrap struct{ quiet }

func (worldWrap) ID() string { return "world-wrap" }
func (worldWrap) Title() string { return "Craft crosses the world seam" }
func (worldWrap) Ticks() int { return 120 }

func (worldWrap) Setup(s *sim.Simulation) {
	w := s.Wrap()
	l := s.SpawnLander(core.V(w.ViewWidth+100, 1700))
	l.Delta = core.V(-10, 0)
	s.SpawnHostage(w.WorldWidth - w.ViewWidth - 200)
}

// explosionPush detonates a big blast beside the shielded craft in space.
type explosionPush struct{ quiet }

func (explosionPush) ID() string { return "explosion-push" }
func (explosionPush) Title() string { return "Blast pushes a shielded craft away" }
func (explosionPush) Ticks() int { return 240 }

func (explosionPush) Setup(s *sim.Simulation) {
	s.SpawnLander(core.V(9000, 1700))
	mc := s.Config().SuperLauncher.Missile
	s.Detonate(core.V(8940, 1700), mc.Height, mc.Blast.Spec())
}

func (explosionPush) Input(s *sim.Simulation) core.InputFrame { return shieldOn(s) }
