package sim

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
	"github.com/vovakirdan/tui-lander/internal/scene"
)

// launcher is the fire cycle of a ground launcher. The timer counts down
// to the next launch; a shielded launcher drops its shield for a window
// around each launch so the missile can get out.
type launcher struct {
	body  *physics.Body
	cfg   config.LauncherConfig
	timer float64
}

// window is how long before and after a launch the shield stays down.
func (l *launcher) window() float64 {
	return math.Max(l.cfg.Interval/5, 2)
}

func (s *Simulation) updateLaunchers() {
	live := s.launchers[:0]
	for _, l := range s.launchers {
		if l.body.Dead {
			continue
		}
		live = append(live, l)

		l.timer -= s.dt
		if sh := l.body.Shield; sh != nil {
			w := l.window()
			switch {
			case l.timer <= w && sh.Requested:
				sh.Requested = false
				sh.Deactivate()
			case l.timer > w && l.timer <= l.cfg.Interval-w && !sh.Requested:
				s.raiseShield(l.body)
			}
		}
		if l.timer <= 0 {
			l.timer += l.cfg.Interval
			if s.ctx.Alive() {
				s.fire(l)
			}
		}
	}
	s.launchers = live
}

// fire launches a missile straight up from the top of the launcher.
func (s *Simulation) fire(l *launcher) {
	mc := l.cfg.Missile
	top := l.body.Bounds().Top()
	m := s.SpawnMissile(
		core.V(l.body.Pos.X, top+mc.Height/2),
		core.V(0, mc.Launch*s.dt),
		mc,
	)
	s.logger.Debug("missile launched", "launcher", l.body.ID, "missile", m.ID)
}

// steerMissiles turns every powered missile towards the nearest image of
// the tracked craft. The world repeats every wrap span, so the craft may be
// closer across the seam than it appears.
func (s *Simulation) steerMissiles() {
	if !s.ctx.Alive() {
		return
	}
	target := s.ctx.Tracked.Pos
	span := s.wrap.Span()
	for _, m := range s.scene.Bodies(scene.Missiles) {
		if m.Engine == nil {
			continue
		}
		best := target
		for _, dx := range []float64{-span, span} {
			img := core.V(target.X+dx, target.Y)
			if img.Sub(m.Pos).Len() < best.Sub(m.Pos).Len() {
				best = img
			}
		}
		m.FacePoint(best)
	}
}
