// Package core provides fundamental types and utilities for the lander simulation.
// It contains no external dependencies to keep the physics pure and testable.
//
// World coordinates are y-up: Y grows towards the sky and terrain sits on y = 0.
package core

import "math"

// Rect represents an axis-aligned box used for terrain, landing pads and
// body bounds. X, Y is the bottom-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a new rectangle with the given bottom-left corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a rectangle of the given size centred on c.
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Top() || other.Y >= r.Top() {
		return false
	}
	return true
}

// Contains returns true if the point is inside this rectangle (edges inclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Top()
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Circle represents a circular collision shape.
type Circle struct {
	Center Vec2
	Radius float64
}

// Left returns the leftmost x-coordinate of the circle.
func (c Circle) Left() float64 {
	return c.Center.X - c.Radius
}

// Right returns the rightmost x-coordinate of the circle.
func (c Circle) Right() float64 {
	return c.Center.X + c.Radius
}

// Bottom returns the lowest y-coordinate of the circle.
func (c Circle) Bottom() float64 {
	return c.Center.Y - c.Radius
}

// Top returns the highest y-coordinate of the circle.
func (c Circle) Top() float64 {
	return c.Center.Y + c.Radius
}

// Bounds returns the square enclosing the circle.
func (c Circle) Bounds() Rect {
	return RectAround(c.Center, 2*c.Radius, 2*c.Radius)
}

// Intersects checks if two circles overlap. Touching circles do not collide.
func (c Circle) Intersects(other Circle) bool {
	return c.Center.Sub(other.Center).Len() < c.Radius+other.Radius
}

// IntersectsRect checks if the circle overlaps the rectangle, using the
// closest point of the rectangle to the circle's centre.
func (c Circle) IntersectsRect(r Rect) bool {
	closest := Vec2{
		X: ClampF(c.Center.X, r.Left(), r.Right()),
		Y: ClampF(c.Center.Y, r.Bottom(), r.Top()),
	}
	return closest.Sub(c.Center).Len() < c.Radius
}

// Encloses reports whether p lies inside or on the circle.
func (c Circle) Encloses(p Vec2) bool {
	return p.Sub(c.Center).Len() <= c.Radius
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates linearly between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
