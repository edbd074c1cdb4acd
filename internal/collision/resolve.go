package collision

import (
	"errors"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

// resolve applies the outcome of a general-pass pair and reports whether it
// counts as a physical collision. Explosions never do: they only destroy
// whatever they touch that is not protected.
func (d *Detector) resolve(a, b *physics.Body) bool {
	switch {
	case a.Kind == physics.KindExplosion || b.Kind == physics.KindExplosion:
		for _, x := range []*physics.Body{a, b} {
			if x.Kind != physics.KindExplosion && x.Kind != physics.KindShield && !x.Protected() {
				d.kill(x, "explosion")
			}
		}
		return false

	case a.Kind == physics.KindShield && b.Kind == physics.KindShield &&
		(a.Owner.OnGround || b.Owner.OnGround):
		if a.Owner.OnGround && b.Owner.OnGround {
			return false
		}
		fixed, moving := a, b
		if b.Owner.OnGround {
			fixed, moving = b, a
		}
		return d.anchor(fixed, moving)
	}

	v1, v2, err := physics.ResolveElastic(a, b, d.opts.Restitution)
	if errors.Is(err, core.ErrDegenerate) {
		return false
	}
	d.push(a, v1)
	d.push(b, v2)
	for _, x := range []*physics.Body{a, b} {
		if x.Kind != physics.KindShield && !x.Protected() {
			d.kill(x, "impact")
		}
	}
	return true
}

// push writes a post-collision velocity back as a per-tick delta. Shields
// hand it to their owner; grounded bodies do not move.
func (d *Detector) push(x *physics.Body, v core.Vec2) {
	target := x.Physical()
	if target.OnGround {
		if x.Kind == physics.KindShield {
			target.Delta = core.Vec2{}
		}
		return
	}
	target.Delta = v.Scale(d.dt)
}

// anchor bounces a moving shield off a grounded one, treating the grounded
// owner's centre as an immovable point, then pushes the mover out in
// growing steps along its new delta.
func (d *Detector) anchor(fixed, moving *physics.Body) bool {
	owner := moving.Owner
	centre := fixed.Owner.Pos
	if core.Dot(owner.Delta, centre.Sub(owner.Pos)) > 0 {
		reflected, err := core.ReflectAbout(centre, owner.Pos, owner.Delta)
		if err != nil {
			return false
		}
		owner.Delta = reflected
	}

	for i := 1; moving.Overlaps(fixed); i++ {
		if i > d.opts.NudgeBudget {
			d.disable(moving, "stuck against grounded shield")
			break
		}
		owner.Pos = owner.Pos.Add(owner.Delta.Scale(float64(i)))
		owner.Shield.Recentre()
	}
	return true
}

// bounce reflects a shield off a fixed rectangle and checks that one step
// along the new delta frees it. When it does not, the step is undone and
// the shield is marked stuck; too many stuck ticks in a row disable it.
func (d *Detector) bounce(surface *physics.Body, r core.Rect) {
	contact, changed := physics.Bounce(surface, r)
	if !changed {
		return
	}
	owner := surface.Owner
	shield := owner.Shield

	owner.Pos = owner.Pos.Add(owner.Delta)
	shield.Recentre()
	if !surface.OverlapsRect(r) {
		shield.ClearStuck()
		return
	}
	owner.Pos = owner.Pos.Sub(owner.Delta)
	shield.Recentre()

	if n := shield.MarkStuck(); n > d.opts.StuckRetries {
		d.disable(surface, "stuck on "+contact.String())
	}
}
