package core

import (
	"errors"
	"math"
)

// ErrDegenerate is returned when a direction is requested between two
// coincident points. Callers treat it as "no force / no collision this tick".
var ErrDegenerate = errors.New("core: coincident points have no direction")

// Vec2 represents a 2D vector with x and y components.
type Vec2 struct {
	X float64
	Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies the vector by a scalar value.
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Neg returns the vector pointing the other way.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(other Vec2) float64 {
	return Dot(v, other)
}

// Len returns the magnitude of the vector.
func (v Vec2) Len() float64 {
	return Modulus(v)
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Perp returns the vector rotated a quarter turn counter-clockwise.
// For a unit normal n this is the tangent used by the collision solvers.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Modulus returns the Euclidean length of v.
func Modulus(v Vec2) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// UnitVector returns the normalised direction from one point to another.
// It fails with ErrDegenerate when the points coincide.
func UnitVector(from, to Vec2) (Vec2, error) {
	d := to.Sub(from)
	m := Modulus(d)
	if m == 0 {
		return Vec2{}, ErrDegenerate
	}
	return Vec2{X: d.X / m, Y: d.Y / m}, nil
}

// ReflectAbout performs a fixed-point reflection: the anchor is immovable,
// the component of delta along the anchor-to-pos normal is negated and the
// tangential component is kept.
func ReflectAbout(anchor, pos, delta Vec2) (Vec2, error) {
	n, err := UnitVector(anchor, pos)
	if err != nil {
		return delta, err
	}
	t := n.Perp()
	normal := Dot(delta, n)
	tangential := Dot(delta, t)
	return n.Scale(-normal).Add(t.Scale(tangential)), nil
}

// Elastic resolves a two-body circular collision with restitution e.
// Velocities are split along the line of centres (normal) and its tangent;
// tangential parts pass through and normal parts follow
//
//	v1n' = (m2/(m1+m2)) * ((m1/m2 - e)*u1n + (1+e)*u2n)
//	v2n' = (m1/(m1+m2)) * ((1+e)*u1n + (m2/m1 - e)*u2n)
func Elastic(p1, u1 Vec2, m1 float64, p2, u2 Vec2, m2 float64, e float64) (Vec2, Vec2, error) {
	n, err := UnitVector(p1, p2)
	if err != nil {
		return u1, u2, err
	}
	t := n.Perp()

	u1n, u2n := Dot(u1, n), Dot(u2, n)
	u1t, u2t := Dot(u1, t), Dot(u2, t)

	v1n := (m2 / (m1 + m2)) * ((m1/m2-e)*u1n + (1+e)*u2n)
	v2n := (m1 / (m1 + m2)) * ((1+e)*u1n + (m2/m1-e)*u2n)

	v1 := n.Scale(v1n).Add(t.Scale(u1t))
	v2 := n.Scale(v2n).Add(t.Scale(u2t))
	return v1, v2, nil
}
