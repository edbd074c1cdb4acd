package sim

import (
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
	"github.com/vovakirdan/tui-lander/internal/scene"
)

// padHeight is the pad's height as a fraction of its width.
const padHeight = 0.3

// SpawnLander places the player's craft centred on pos and points the
// camera at it. Only one craft may exist.
func (s *Simulation) SpawnLander(pos core.Vec2) *physics.Body {
	if s.lander != nil {
		panic("sim: lander already spawned")
	}
	c := s.cfg.Craft
	b := &physics.Body{
		Kind:            physics.KindLander,
		Pos:             pos,
		Mass:            c.Mass,
		Width:           c.Width,
		Height:          c.Height,
		Explodes:        true,
		MaxLandingAngle: core.Radians(s.cfg.Landing.MaxAngle),
		Yield:           s.cfg.Explosion.Spec(),
	}
	b.Engine = physics.NewEngine(c.Force, c.Fuel)
	physics.NewShield(b, s.cfg.Shield.Factor, c.ShieldCharge, s.cfg.Shield.Cooldown)
	s.scene.Add(scene.Lander, b)

	s.lander = b
	s.ctx.Tracked = b
	s.ctx.View.PanTo(pos, 1)
	return b
}

// PlacePad seats the landing pad on the ground centred on x.
func (s *Simulation) PlacePad(x float64) *physics.Body {
	w := s.cfg.Landing.PadWidth * s.cfg.Craft.Width
	h := w * padHeight
	b := &physics.Body{
		Kind:     physics.KindLandingPad,
		Pos:      core.V(x, s.scene.Terrain.GroundAt(x)+h/2),
		Mass:     1e9,
		Width:    w,
		Height:   h,
		OnGround: true,
	}
	return s.scene.Add(scene.LandingPad, b)
}

// SpawnMissile launches a missile of the given type from pos with an
// initial per-tick delta. Its engine is lit immediately and burns until
// the fuel runs out.
func (s *Simulation) SpawnMissile(pos, delta core.Vec2, mc config.MissileConfig) *physics.Body {
	b := &physics.Body{
		Kind:     physics.KindMissile,
		Pos:      pos,
		Delta:    delta,
		Mass:     mc.Mass,
		Width:    mc.Width,
		Height:   mc.Height,
		Explodes: true,
		Yield:    mc.Blast.Spec(),
	}
	b.Engine = physics.NewEngine(mc.Force, mc.Fuel)
	b.Engine.Activate()
	return s.scene.Add(scene.Missiles, b)
}

// SpawnMine places an unpowered shielded drone that drifts with the given
// per-tick delta. Its shield is raised at once.
func (s *Simulation) SpawnMine(pos, delta core.Vec2) *physics.Body {
	mc := s.cfg.Missile
	b := &physics.Body{
		Kind:     physics.KindMissile,
		Pos:      pos,
		Delta:    delta,
		Mass:     mc.Mass,
		Width:    mc.Width,
		Height:   mc.Height,
		Explodes: true,
		Yield:    mc.Blast.Spec(),
	}
	physics.NewShield(b, s.cfg.Shield.Factor, s.cfg.Craft.ShieldCharge, s.cfg.Shield.Cooldown)
	s.scene.Add(scene.AirEnemies, b)
	s.raiseShield(b)
	return b
}

// SpawnLauncher seats a missile launcher on the ground at x. Super
// launchers are heavier and fire the bigger missiles.
func (s *Simulation) SpawnLauncher(x float64, super bool) *physics.Body {
	lc := s.cfg.Launcher
	if super {
		lc = s.cfg.SuperLauncher
	}
	b := &physics.Body{
		Kind:     physics.KindMissileLauncher,
		Pos:      core.V(x, s.scene.Terrain.GroundAt(x)+lc.Height/2),
		Mass:     lc.Mass,
		Width:    lc.Width,
		Height:   lc.Height,
		OnGround: true,
		Explodes: true,
		Yield:    s.cfg.Explosion.Spec(),
	}
	if lc.Shielded {
		physics.NewShield(b, s.cfg.Shield.Factor, 1, s.cfg.Shield.Cooldown).Permanent = true
	}
	s.scene.Add(scene.GroundEnemies, b)
	if lc.Shielded {
		s.raiseShield(b)
	}

	s.launchers = append(s.launchers, &launcher{
		body:  b,
		cfg:   lc,
		timer: s.rng.Range(0, lc.Interval),
	})
	return b
}

// SpawnHostage seats a hostage on the ground at x. Hostages carry a
// permanent shield and never explode.
func (s *Simulation) SpawnHostage(x float64) *physics.Body {
	hc := s.cfg.Hostage
	b := &physics.Body{
		Kind:     physics.KindHostage,
		Pos:      core.V(x, s.scene.Terrain.GroundAt(x)+hc.Height/2),
		Mass:     hc.Mass,
		Width:    hc.Width,
		Height:   hc.Height,
		OnGround: true,
	}
	physics.NewShield(b, s.cfg.Shield.Factor, 1, s.cfg.Shield.Cooldown).Permanent = true
	s.scene.Add(scene.Hostages, b)
	s.raiseShield(b)

	s.hostages = append(s.hostages, &hostage{body: b})
	return b
}

// Detonate sets off an explosion at pos as if a body of the given height
// had just died there.
func (s *Simulation) Detonate(pos core.Vec2, height float64, spec physics.BlastSpec) *physics.Body {
	src := &physics.Body{Kind: physics.KindMissile, Pos: pos, Mass: 1, Height: height, Yield: spec}
	x := physics.NewExplosion(src)
	return s.scene.Add(scene.Explosions, x)
}

// raiseShield requests the body's shield and raises it unless something is
// already inside the field.
func (s *Simulation) raiseShield(b *physics.Body) bool {
	b.Shield.Requested = true
	return b.Shield.Activate(s.blocked(b))
}

// blockers are the bodies that stop a shield from being raised over them.
var blockers = []scene.Category{
	scene.Lander, scene.Shields, scene.Missiles, scene.AirEnemies, scene.GroundEnemies, scene.Hostages, scene.Explosions,
}

// blocked reports whether anything collidable is inside b's shield field.
// Owners allowed to sit in the ground ignore the terrain.
func (s *Simulation) blocked(b *physics.Body) bool {
	field := b.Shield.Surface
	for _, o := range s.scene.Bodies(blockers...) {
		if o == b || o == field || o.Dead {
			continue
		}
		if o.Kind == physics.KindShield && !o.Active() {
			continue
		}
		if field.Overlaps(o) {
			return true
		}
	}
	return !physics.ClashExempt(b) && len(s.scene.Terrain.Overlapping(field)) > 0
}
