package physics

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Body is the kinematic record every collidable entity exposes.
//
// Pos is the centre of the body. Delta is the change in position applied on
// the last tick and is the authoritative motion state; Vel is re-derived from
// it at the start of every integration step.
type Body struct {
	ID   int
	Kind Kind

	Pos   core.Vec2
	Delta core.Vec2
	Vel   core.Vec2
	Mass  float64

	// Width and Height describe the box of rectangular bodies. Radius is set
	// for circular bodies (shields, explosions, EMPs) and takes precedence.
	Width, Height float64
	Radius        float64

	// Angle is the heading in radians, 0 pointing up, positive tilting left.
	Angle float64

	OnGround   bool
	InSpace    bool
	AboveSpace bool
	Landed     bool
	Dead       bool
	Explodes   bool

	MaxLandingAngle float64 // radians, landers only

	// Owner is set on satellite surfaces (shields) and on explosions and EMPs
	// to point at the body that produced them.
	Owner *Body

	Shield *Shield
	Engine *Engine
	Blast  *Blast

	// Yield describes the explosion this body produces when it dies.
	Yield BlastSpec
	// Explosion is the body spawned by the last call to Die, if any.
	Explosion *Body
}

// Bounds returns the axis-aligned box around the body.
func (b *Body) Bounds() core.Rect {
	if b.Radius > 0 {
		return core.RectAround(b.Pos, 2*b.Radius, 2*b.Radius)
	}
	return core.RectAround(b.Pos, b.Width, b.Height)
}

// Circle returns the circular treatment of the body.
func (b *Body) Circle() core.Circle {
	r := b.Radius
	if r == 0 {
		r = math.Max(b.Width, b.Height) / 2
	}
	return core.Circle{Center: b.Pos, Radius: r}
}

// Round reports whether the body's collidable extent is a circle.
func (b *Body) Round() bool {
	return b.Radius > 0
}

// Bottom returns the lowest y-coordinate of the body's extent.
func (b *Body) Bottom() float64 {
	return b.Bounds().Bottom()
}

// Overlaps reports whether two bodies' collidable extents intersect.
func (b *Body) Overlaps(o *Body) bool {
	switch {
	case b.Round() && o.Round():
		return b.Circle().Intersects(o.Circle())
	case b.Round():
		return b.Circle().IntersectsRect(o.Bounds())
	case o.Round():
		return o.Circle().IntersectsRect(b.Bounds())
	default:
		return b.Bounds().Intersects(o.Bounds())
	}
}

// OverlapsRect reports whether the body intersects a fixed rectangle.
func (b *Body) OverlapsRect(r core.Rect) bool {
	if b.Round() {
		return b.Circle().IntersectsRect(r)
	}
	return b.Bounds().Intersects(r)
}

// Physical returns the body whose kinematics stand in for this one: a shield
// surface defers to its owner.
func (b *Body) Physical() *Body {
	if b.Kind == KindShield {
		if b.Owner == nil {
			panic("physics: shield surface without owner")
		}
		return b.Owner
	}
	return b
}

// Active reports whether a shield surface is currently collidable.
func (b *Body) Active() bool {
	return b.Kind == KindShield && b.Owner != nil && b.Owner.Shield != nil && b.Owner.Shield.Activated
}

// Protected reports whether the body carries an activated shield.
func (b *Body) Protected() bool {
	return b.Shield != nil && b.Shield.Activated
}

// OwnShield reports whether o is the shield surface belonging to b.
func (b *Body) OwnShield(o *Body) bool {
	return b.Shield != nil && b.Shield.Surface == o
}

// Speed returns the magnitude of the derived velocity.
func (b *Body) Speed() float64 {
	return core.Modulus(b.Vel)
}

// Die marks the body dead, stops its engine and shield and, when it explodes,
// spawns an explosion from its current state. The returned explosion is nil
// for bodies that do not explode or were already dead.
func (b *Body) Die() *Body {
	if b.Dead {
		return nil
	}
	b.Dead = true
	if b.Engine != nil {
		b.Engine.Deactivate()
	}
	if b.Shield != nil {
		b.Shield.Deactivate()
		b.Shield.Surface.Dead = true
	}
	if !b.Explodes {
		return nil
	}
	b.Explosion = NewExplosion(b)
	return b.Explosion
}

// FacePoint turns the body so that its nose points at p.
func (b *Body) FacePoint(p core.Vec2) {
	d := p.Sub(b.Pos)
	if d.IsZero() {
		return
	}
	b.Angle = math.Atan2(-d.X, d.Y)
}

// ClashExempt reports whether a shield owner sits with its field partly in
// the ground by design. Such shields ignore terrain and the landing pad.
func ClashExempt(owner *Body) bool {
	switch owner.Kind {
	case KindHostage, KindMissileLauncher, KindLandingPad:
		return true
	}
	return false
}
