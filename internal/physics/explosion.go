package physics

import "github.com/vovakirdan/tui-lander/internal/core"

// BlastSpec describes the explosion a body leaves behind when it dies.
// The initial radius is always half the body's height.
type BlastSpec struct {
	Multiplier float64 // final radius as a multiple of the body's height
	Lifetime   float64 // seconds
	Force      float64 // flat push applied inside the radius
}

// DefaultBlast is the explosion of an ordinary craft.
var DefaultBlast = BlastSpec{Multiplier: 4, Lifetime: 2, Force: 20}

// Blast is the growth state of an explosion or EMP body.
type Blast struct {
	InitialRadius float64
	FinalRadius   float64
	Lifetime      float64
	Timer         float64
	Force         float64
}

// NewExplosion creates an explosion body from a dying source. It inherits
// the source's position, motion and mass and never explodes again.
func NewExplosion(src *Body) *Body {
	spec := src.Yield
	if spec.Lifetime <= 0 {
		spec = DefaultBlast
	}
	ri := src.Height / 2
	rf := src.Height * spec.Multiplier
	return &Body{
		Kind:   KindExplosion,
		Pos:    src.Pos,
		Delta:  src.Delta,
		Vel:    src.Vel,
		Mass:   src.Mass,
		Radius: ri,
		Owner:  src,
		Blast: &Blast{
			InitialRadius: ri,
			FinalRadius:   rf,
			Lifetime:      spec.Lifetime,
			Force:         spec.Force,
		},
	}
}

// Grow advances the blast timer and interpolates the radius. It returns
// true once the timer has run strictly past the lifetime, at which point
// the body should be removed.
func Grow(b *Body, dt float64) bool {
	x := b.Blast
	x.Timer += dt
	t := x.Timer / x.Lifetime
	if t > 1 {
		t = 1
	}
	b.Radius = core.Lerp(x.InitialRadius, x.FinalRadius, t)
	return x.Timer > x.Lifetime
}

// SettleOnTerrain applies the centre-point ground test to an explosion. The
// segments must be ordered left to right; the triple whose outer segments
// bracket the centre is used, falling back to the last one. Explosions never
// bounce: they stop falling over a segment and stop sliding into a taller
// neighbour.
func SettleOnTerrain(b *Body, segments []core.Rect) {
	if len(segments) < 3 {
		return
	}
	c := b.Pos
	i := 0
	for ; i+2 < len(segments); i++ {
		if segments[i].Right() <= c.X && c.X <= segments[i+2].Left() {
			break
		}
	}
	if i+2 >= len(segments) {
		i = len(segments) - 3
	}
	r1, r2, r3 := segments[i], segments[i+1], segments[i+2]

	if c.Y <= r2.Top() {
		b.Delta.Y = 0
		b.OnGround = true
	} else {
		b.OnGround = false
	}
	nx := c.X + b.Delta.X
	if (nx <= r1.Right() && r1.Top() > c.Y) || (nx >= r3.Left() && r3.Top() > c.Y) {
		b.Delta.X = 0
	}
}

// SettleOnPad applies the pad footprint test to an explosion.
func SettleOnPad(b *Body, pad core.Rect) {
	c := b.Pos
	dx := b.Delta.X
	if pad.Left() <= c.X && c.X <= pad.Right() && c.Y <= pad.Top() {
		b.Delta.Y = 0
		b.OnGround = true
	} else {
		b.OnGround = false
	}
	e := b.Bounds()
	if pad.Top() > c.Y &&
		((e.Left() <= pad.Left()-dx && pad.Left()-dx <= c.X && dx > 0) ||
			(e.Right() >= pad.Right()-dx && pad.Right()-dx >= c.X && dx < 0)) {
		b.Delta.X = 0
	}
}
