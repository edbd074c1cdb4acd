package physics

import "math"

// SafeToLand reports whether the lander may touch down on the pad: its box
// lies entirely over the pad, it is no faster than safeSpeed and its heading
// is within its landing tolerance.
func SafeToLand(l, pad *Body, safeSpeed float64) bool {
	lb, pb := l.Bounds(), pad.Bounds()
	if lb.Left() < pb.Left() || lb.Right() > pb.Right() {
		return false
	}
	if l.Vel.X*l.Vel.X+l.Vel.Y*l.Vel.Y > safeSpeed*safeSpeed {
		return false
	}
	return math.Abs(l.Angle) <= l.MaxLandingAngle
}

// Land seats the lander on the pad, stops it and restores fuel and charge.
func Land(l, pad *Body) {
	l.Landed = true
	if l.Engine != nil {
		l.Engine.Deactivate()
		l.Engine.Refuel()
	}
	if l.Shield != nil {
		l.Shield.Recharge()
	}
	l.Delta.X, l.Delta.Y = 0, 0
	l.Vel.X, l.Vel.Y = 0, 0
	l.Angle = 0
	l.Pos.Y = pad.Bounds().Top() + l.Height/2
}

// Ignite fires the body's engine. A landed body is lifted clear of the pad
// by lift so that it does not touch down again on the next tick.
func Ignite(b *Body, lift float64) bool {
	if b.Engine == nil || !b.Engine.Activate() {
		return false
	}
	if b.Landed {
		b.Landed = false
		b.Pos.Y += lift
	}
	return true
}
