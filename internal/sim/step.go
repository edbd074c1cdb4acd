package sim

import (
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
	"github.com/vovakirdan/tui-lander/internal/scene"
)

// powered lists the categories whose bodies may carry an engine or shield.
var powered = []scene.Category{scene.Lander, scene.Missiles, scene.AirEnemies, scene.GroundEnemies, scene.Hostages}

// Step advances the simulation by one fixed tick.
//
// Order matters: controls and collaborators first, then integration, then
// explosion and pulse growth, then collision resolution on the new
// positions, and last the wrap correction so that the next tick starts
// from canonical positions. Stepping continues to work after the run has
// ended so that explosions can play out.
func (s *Simulation) Step(in core.InputFrame) core.StepResult {
	s.control(in)
	s.updateLaunchers()
	s.steerMissiles()
	rescued := s.updateHostages()
	s.updateCapabilities()

	s.integrate()
	s.updateExplosions()
	s.updateEMPs()

	report := s.detector.Detect(s.scene, s.dt)
	s.collisions += report.Collisions
	s.deaths += len(report.Deaths)

	s.ctx.Tracked = s.tracked()
	s.wrap.Apply(s.scene, s.ctx.Tracked)
	s.wrap.Follow(s.ctx.View, s.ctx.Tracked, s.cfg.Camera.Pan)
	s.tick++

	switch {
	case s.lander != nil && s.lander.Dead:
		if s.outcome != core.OutcomeDead {
			s.logger.Info("craft destroyed", "tick", s.tick)
		}
		s.outcome = core.OutcomeDead
	case report.Landed && s.outcome == core.OutcomeRunning:
		s.outcome = core.OutcomeLanded
	}

	return core.StepResult{
		Tick:       s.tick,
		Collisions: report.Collisions,
		Deaths:     len(report.Deaths),
		Rescued:    rescued,
		Landed:     report.Landed,
		Shake:      report.Shake,
		Outcome:    s.outcome,
	}
}

// tracked returns the body the camera follows: the craft while it lives,
// then its explosion until that is removed.
func (s *Simulation) tracked() *physics.Body {
	l := s.lander
	if l == nil {
		return nil
	}
	if !l.Dead {
		return l
	}
	if x := l.Explosion; x != nil && s.scene.Has(scene.Explosions, x) {
		return x
	}
	return nil
}

// control applies the player's input to the craft.
func (s *Simulation) control(in core.InputFrame) {
	l := s.lander
	if l == nil || l.Dead {
		return
	}

	if in.Heading != nil && !l.Landed {
		turn := core.Radians(s.cfg.Craft.TurnRate) * s.dt
		l.Angle += core.ClampF(*in.Heading-l.Angle, -turn, turn)
	}

	if in.Has(core.ActionThrust) || in.Has(core.ActionTakeoff) {
		physics.Ignite(l, s.cfg.Landing.Lift)
	} else {
		l.Engine.Deactivate()
	}
	l.Engine.Boost(in.Has(core.ActionBoost))

	if in.Has(core.ActionShield) {
		if l.Shield.Requested {
			l.Shield.Requested = false
			l.Shield.Deactivate()
		} else if !s.raiseShield(l) {
			s.logger.Debug("shield blocked", "disabled", l.Shield.Remaining())
		}
	}
	if in.Has(core.ActionEMP) {
		s.FireEMP(l)
	}
}

// updateCapabilities drains shields, burns fuel and brings back shields
// whose forced cooldown has run out while still requested.
func (s *Simulation) updateCapabilities() {
	for _, b := range s.scene.Bodies(powered...) {
		if b.Shield != nil && b.Shield.Update(s.dt) {
			s.raiseShield(b)
		}
		if b.Engine != nil {
			b.Engine.Burn(s.dt)
		}
	}
}

// integrate moves every dynamic body under the forces acting on it and
// recentres shields on their owners.
func (s *Simulation) integrate() {
	view := s.scene.View.Rect()
	explosions := s.scene.Bodies(scene.Explosions)
	for _, b := range s.scene.Bodies(moving...) {
		s.world.Step(b, explosions, view, s.dt)
		if b.Shield != nil {
			b.Shield.Recentre()
		}
	}
}

// updateExplosions grows every explosion and removes the expired ones.
func (s *Simulation) updateExplosions() {
	for _, x := range s.scene.Bodies(scene.Explosions) {
		if physics.Grow(x, s.dt) {
			x.Dead = true
			s.scene.Remove(x)
		}
	}
}
