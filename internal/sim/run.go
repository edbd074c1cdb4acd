package sim

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Script drives a run: it places the bodies and supplies the controls.
type Script interface {
	Setup(s *Simulation)
	Input(s *Simulation) core.InputFrame
}

// RunOptions controls a headless run.
type RunOptions struct {
	Ticks int
	// Pace, when positive, waits this long between ticks.
	Pace time.Duration
	// Updates delivers reloaded tuning; it is applied between ticks.
	Updates <-chan config.LanderConfig
}

// Summary is the result of a run.
type Summary struct {
	Outcome    core.Outcome
	Ticks      int
	Collisions int
	Deaths     int
	Rescued    int
	Shakes     int
	Hash       uint64
}

// Run sets the script up and steps until the craft lands or dies, the tick
// budget is spent or ctx is cancelled.
func (s *Simulation) Run(ctx context.Context, script Script, opts RunOptions) (Summary, error) {
	script.Setup(s)

	var tick <-chan time.Time
	if opts.Pace > 0 {
		t := time.NewTicker(opts.Pace)
		defer t.Stop()
		tick = t.C
	}

	for s.tick < opts.Ticks && !s.outcome.Done() {
		select {
		case <-ctx.Done():
			return s.Summary(), ctx.Err()
		case cfg, ok := <-opts.Updates:
			if ok {
				if err := s.Apply(cfg); err != nil {
					s.logger.Warn("config rejected", "err", err)
				} else {
					s.logger.Info("config reloaded", "gravity", cfg.World.Gravity)
				}
			} else {
				opts.Updates = nil
			}
			continue
		default:
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return s.Summary(), ctx.Err()
			case <-tick:
			}
		}
		s.Step(script.Input(s))
	}

	if s.outcome == core.OutcomeRunning {
		s.outcome = core.OutcomeSurvived
	}
	return s.Summary(), nil
}

// Summary reports the run so far.
func (s *Simulation) Summary() Summary {
	snap := s.Snapshot()
	return Summary{
		Outcome:    s.outcome,
		Ticks:      s.tick,
		Collisions: s.collisions,
		Deaths:     s.deaths,
		Rescued:    s.rescued,
		Shakes:     s.scene.View.Shakes(),
		Hash:       snap.Hash(),
	}
}
