package physics

import "github.com/vovakirdan/tui-lander/internal/core"

// Contact classifies how a shield circle touches a fixed rectangle.
type Contact int

const (
	ContactNone Contact = iota
	ContactSide
	ContactTop
	ContactCorner
)

// String returns the contact name.
func (c Contact) String() string {
	switch c {
	case ContactSide:
		return "side"
	case ContactTop:
		return "top"
	case ContactCorner:
		return "corner"
	default:
		return "none"
	}
}

// Classify decides which face of r the circle is touching, testing side,
// then top, then corner. For corner contacts the implicated top corner is
// returned as well.
func Classify(c core.Circle, r core.Rect) (Contact, core.Vec2) {
	leftIn := c.Left() < r.Left() && r.Left() <= c.Right()
	rightIn := c.Left() <= r.Right() && r.Right() < c.Right()

	switch {
	case c.Center.Y <= r.Top() && (leftIn || rightIn):
		return ContactSide, core.Vec2{}
	case r.Left() <= c.Center.X && c.Center.X <= r.Right() && c.Bottom() <= r.Top():
		return ContactTop, core.Vec2{}
	case (leftIn || rightIn) && c.Bottom() <= r.Top():
		if leftIn {
			return ContactCorner, core.V(r.Left(), r.Top())
		}
		return ContactCorner, core.V(r.Right(), r.Top())
	}
	return ContactNone, core.Vec2{}
}

// Bounce reflects the owner of a shield surface off rectangle r. The delta
// is only reflected while the owner is still moving into the face or corner
// so that a body already separating is not turned back in. It returns the
// contact found and whether the owner's delta changed.
func Bounce(surface *Body, r core.Rect) (Contact, bool) {
	owner := surface.Physical()
	c := surface.Circle()
	contact, corner := Classify(c, r)
	d := owner.Delta

	switch contact {
	case ContactSide:
		leftIn := c.Left() < r.Left() && r.Left() <= c.Right()
		rightIn := c.Left() <= r.Right() && r.Right() < c.Right()
		approaching := (leftIn && d.X > 0) || (rightIn && d.X < 0) || (leftIn && rightIn)
		if !approaching || d.X == 0 {
			return contact, false
		}
		owner.Delta.X = -d.X
		return contact, true
	case ContactTop:
		if d.Y >= 0 {
			return contact, false
		}
		owner.Delta.Y = -d.Y
		return contact, true
	case ContactCorner:
		if core.Dot(d, corner.Sub(c.Center)) <= 0 {
			return contact, false
		}
		reflected, err := core.ReflectAbout(corner, c.Center, d)
		if err != nil {
			return contact, false
		}
		owner.Delta = reflected
		return contact, true
	}
	return ContactNone, false
}
