// Package collision finds overlapping bodies each tick and applies the
// outcome: bounces, landings, deaths and the camera shake that follows a
// hit on the player's craft.
//
// Detection runs three passes over the primary bodies (the craft, shields,
// missiles, air enemies and explosions): terrain, landing pad and finally
// every other body in view. Resolving one pair may kill a body; dead bodies
// are skipped by every later test in the same tick.
package collision

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
	"github.com/vovakirdan/tui-lander/internal/scene"
)

// primary categories can hit anything; the rest can only be hit.
var primary = []scene.Category{scene.Lander, scene.Shields, scene.Missiles, scene.AirEnemies, scene.Explosions}

// candidates are the categories tested pairwise in the general pass.
var candidates = []scene.Category{
	scene.Lander, scene.Shields, scene.Missiles, scene.AirEnemies, scene.GroundEnemies, scene.Explosions,
}

// Options tunes the resolver.
type Options struct {
	Restitution      *physics.Restitution
	SafeLandingSpeed float64
	// StuckRetries is how many consecutive failed terrain separations a
	// shield tolerates before it is disabled for StuckCooldown seconds.
	StuckRetries  int
	StuckCooldown float64
	// NudgeBudget bounds the push-apart loop of a shield bouncing off a
	// grounded shield.
	NudgeBudget    int
	ShakeMagnitude float64
}

// DefaultOptions returns the tuned resolver settings.
func DefaultOptions() Options {
	return Options{
		Restitution:      physics.DefaultRestitution(),
		SafeLandingSpeed: 50,
		StuckRetries:     10,
		StuckCooldown:    1,
		NudgeBudget:      10,
		ShakeMagnitude:   5,
	}
}

// Report summarises one tick of detection.
type Report struct {
	// Pairs counts general-pass pairs handed to the resolver.
	Pairs int
	// Collisions counts contacts that caused a physical response.
	Collisions int
	Deaths     []*physics.Body
	Landed     bool
	Shake      bool
	// Disabled lists shields switched off because they could not be
	// separated from what they hit.
	Disabled []*physics.Body
}

type pairKey struct{ lo, hi int }

func keyOf(a, b *physics.Body) pairKey {
	if a.ID > b.ID {
		a, b = b, a
	}
	return pairKey{a.ID, b.ID}
}

// Detector runs the per-tick collision passes.
type Detector struct {
	opts       Options
	logger     *log.Logger
	considered map[pairKey]struct{}

	scene  *scene.Scene
	dt     float64
	report *Report
}

// NewDetector creates a detector. A nil logger discards output.
func NewDetector(opts Options, logger *log.Logger) *Detector {
	if opts.Restitution == nil {
		opts.Restitution = physics.DefaultRestitution()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Detector{
		opts:       opts,
		logger:     logger,
		considered: make(map[pairKey]struct{}),
	}
}

// Detect runs the terrain, pad and general passes over the scene and
// resolves everything it finds.
func (d *Detector) Detect(s *scene.Scene, dt float64) Report {
	clear(d.considered)
	var report Report
	d.scene, d.dt, d.report = s, dt, &report
	defer func() { d.scene, d.report = nil, nil }()

	lander := s.Lander()
	hit := false
	involvesLander := func(b *physics.Body) bool {
		return lander != nil && (b == lander || b.Owner == lander)
	}

	bodies := s.Bodies(primary...)
	for _, b := range bodies {
		if !b.Dead && d.terrain(b) && involvesLander(b) {
			hit = true
		}
	}
	for _, b := range bodies {
		if !b.Dead && d.pad(b) && involvesLander(b) {
			hit = true
		}
	}
	for _, b := range bodies {
		if !b.Dead && d.general(b, lander) {
			hit = true
		}
	}

	if hit {
		angle := math.Atan2(lander.Delta.Y, lander.Delta.X)
		m := d.opts.ShakeMagnitude
		s.View.Shake(core.V(m*math.Cos(angle), m*math.Sin(angle)))
		report.Shake = true
	}
	return report
}

// terrain tests one body against the ground and reports a collision.
func (d *Detector) terrain(b *physics.Body) bool {
	t := d.scene.Terrain
	if b.Bottom() > t.MaxHeight() {
		if b.Kind == physics.KindShield && b.Owner.Shield != nil {
			b.Owner.Shield.ClearStuck()
		}
		return false
	}

	switch b.Kind {
	case physics.KindShield:
		if !b.Active() || physics.ClashExempt(b.Owner) {
			return false
		}
		rects := t.Overlapping(b)
		if len(rects) == 0 {
			b.Owner.Shield.ClearStuck()
			return false
		}
		for _, r := range rects {
			d.bounce(b, r)
		}
		d.report.Collisions++
		return true
	case physics.KindExplosion:
		physics.SettleOnTerrain(b, t.Segments())
		return false
	default:
		if len(t.Overlapping(b)) == 0 {
			return false
		}
		d.kill(b, "terrain")
		d.report.Collisions++
		return true
	}
}

// pad tests one body against the landing pad and reports a collision.
// A safe landing is not a collision.
func (d *Detector) pad(b *physics.Body) bool {
	pad := d.scene.Pad()
	if pad == nil || !b.Overlaps(pad) {
		return false
	}

	switch b.Kind {
	case physics.KindLander:
		if physics.SafeToLand(b, pad, d.opts.SafeLandingSpeed) {
			physics.Land(b, pad)
			d.report.Landed = true
			d.logger.Info("landed", "id", b.ID, "speed", b.Speed())
			return false
		}
		d.kill(b, "landing pad")
	case physics.KindShield:
		if !b.Active() || physics.ClashExempt(b.Owner) {
			return false
		}
		d.bounce(b, pad.Bounds())
	case physics.KindExplosion:
		physics.SettleOnPad(b, pad.Bounds())
		return false
	default:
		d.kill(b, "landing pad")
	}
	d.report.Collisions++
	return true
}

// general tests one primary body against every candidate in view.
func (d *Detector) general(b, lander *physics.Body) bool {
	view := d.scene.View
	if !view.Sees(b) {
		return false
	}
	hit := false
	for _, o := range d.scene.Bodies(candidates...) {
		if b.Dead {
			break
		}
		if o == b || o.Dead || !view.Sees(o) || !b.Overlaps(o) {
			continue
		}
		if b.OwnShield(o) || o.OwnShield(b) {
			continue
		}
		key := keyOf(b, o)
		if _, seen := d.considered[key]; seen {
			continue
		}
		d.considered[key] = struct{}{}

		if (b.Kind == physics.KindShield && !b.Active()) || (o.Kind == physics.KindShield && !o.Active()) {
			continue
		}
		if b.Kind == physics.KindExplosion && o.Kind == physics.KindExplosion {
			continue
		}

		d.report.Pairs++
		if d.resolve(b, o) {
			d.report.Collisions++
			if lander != nil && (b == lander || b.Owner == lander || o == lander || o.Owner == lander) {
				hit = true
			}
		}
	}
	return hit
}

func (d *Detector) kill(b *physics.Body, cause string) {
	if b.Dead {
		return
	}
	d.scene.Kill(b)
	d.report.Deaths = append(d.report.Deaths, b)
	d.logger.Debug("destroyed", "kind", b.Kind, "id", b.ID, "cause", cause)
}

func (d *Detector) disable(surface *physics.Body, reason string) {
	s := surface.Owner.Shield
	s.DisableFor(d.opts.StuckCooldown)
	s.ClearStuck()
	d.report.Disabled = append(d.report.Disabled, surface)
	d.logger.Warn("shield disabled", "owner", surface.Owner.Kind, "id", surface.Owner.ID, "reason", reason,
		"cooldown", d.opts.StuckCooldown)
}
