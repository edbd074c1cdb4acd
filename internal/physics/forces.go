package physics

import (
	"errors"
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// World carries the environment constants the force accumulator needs.
type World struct {
	Gravity  float64
	Friction float64

	// SpaceStart is the altitude above which gravity no longer applies.
	SpaceStart float64
	// SpaceEnd is the altitude above which a restoring spring pulls
	// ascending bodies back down.
	SpaceEnd           float64
	DeepSpaceStiffness float64
}

// UpdateBands refreshes the in-space flags from the body's altitude.
func (w World) UpdateBands(b *Body) {
	b.InSpace = b.Pos.Y >= w.SpaceStart
	b.AboveSpace = b.Pos.Y >= w.SpaceEnd
}

// NetForce sums gravity, deep-space restoring force, engine thrust, ground
// friction and explosion pushes acting on b. Vel must already be derived.
// Explosions only push bodies inside view.
func (w World) NetForce(b *Body, explosions []*Body, view core.Rect) core.Vec2 {
	var f core.Vec2

	if !b.InSpace && !b.OnGround && !b.Landed {
		f.Y -= b.Mass * w.Gravity
	}
	if b.AboveSpace && b.Vel.Y > 0 {
		f.Y -= b.Mass * w.DeepSpaceStiffness * (b.Pos.Y - w.SpaceEnd)
	}

	if e := b.Engine; e != nil && e.Activated {
		f.X -= e.Force * math.Sin(b.Angle)
		f.Y += e.Force * math.Cos(b.Angle)
	}

	if b.OnGround && b.Vel.X != 0 {
		friction := b.Mass * w.Gravity * w.Friction
		if b.Vel.X > 0 {
			f.X -= friction
		} else {
			f.X += friction
		}
	}

	return f.Add(BlastForce(b, explosions, view))
}

// BlastForce sums the flat push of every live explosion whose radius
// encloses b's centre. Shields, explosions and grounded bodies are never
// pushed. An explosion centred exactly on b contributes nothing.
func BlastForce(b *Body, explosions []*Body, view core.Rect) core.Vec2 {
	var f core.Vec2
	if b.Kind == KindShield || b.Kind == KindExplosion || b.OnGround {
		return f
	}
	if !b.Bounds().Intersects(view) {
		return f
	}
	for _, x := range explosions {
		if x.Dead || x.Blast == nil || x == b {
			continue
		}
		if !x.Circle().Encloses(b.Pos) {
			continue
		}
		n, err := core.UnitVector(x.Pos, b.Pos)
		if errors.Is(err, core.ErrDegenerate) {
			continue
		}
		f = f.Add(n.Scale(x.Blast.Force))
	}
	return f
}

// Integrate advances the body by one step under a constant force using
// s = u*t + a*t*t/2. Landed bodies stay put.
func Integrate(b *Body, f core.Vec2, dt float64) {
	if b.Landed {
		b.Delta = core.Vec2{}
		return
	}
	b.Delta = b.Vel.Scale(dt).Add(f.Scale(0.5 * dt * dt / b.Mass))
	b.Pos = b.Pos.Add(b.Delta)
}

// DeriveVelocity recomputes Vel from the last positional change.
func DeriveVelocity(b *Body, dt float64) {
	b.Vel = b.Delta.Scale(1 / dt)
}

// Step runs the full per-body update: derive velocity, refresh altitude
// bands, accumulate forces and integrate.
func (w World) Step(b *Body, explosions []*Body, view core.Rect, dt float64) {
	DeriveVelocity(b, dt)
	w.UpdateBands(b)
	Integrate(b, w.NetForce(b, explosions, view), dt)
}
