package physics

import (
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func TestClassify(t *testing.T) {
	r := core.NewRect(0, 0, 100, 50)

	tests := []struct {
		name    string
		c       core.Circle
		contact Contact
		corner  core.Vec2
	}{
		{"left side", core.Circle{Center: core.V(-5, 40), Radius: 10}, ContactSide, core.Vec2{}},
		{"right side", core.Circle{Center: core.V(105, 10), Radius: 10}, ContactSide, core.Vec2{}},
		{"top", core.Circle{Center: core.V(50, 55), Radius: 10}, ContactTop, core.Vec2{}},
		{"left corner", core.Circle{Center: core.V(-5, 56), Radius: 10}, ContactCorner, core.V(0, 50)},
		{"right corner", core.Circle{Center: core.V(105, 56), Radius: 10}, ContactCorner, core.V(100, 50)},
		{"clear", core.Circle{Center: core.V(50, 70), Radius: 10}, ContactNone, core.Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			contact, corner := Classify(tc.c, r)
			if contact != tc.contact {
				t.Errorf("Classify() = %v, expected %v", contact, tc.contact)
			}
			if contact == ContactCorner && corner != tc.corner {
				t.Errorf("corner = %v, expected %v", corner, tc.corner)
			}
		})
	}
}

// shieldAt builds a lander whose shield has the given radius at pos.
func shieldAt(pos, delta core.Vec2, radius float64) *Body {
	l := &Body{Kind: KindLander, Pos: pos, Delta: delta, Mass: 20, Width: radius, Height: radius}
	NewShield(l, 1, 100, 1)
	l.Shield.Activate(false)
	return l.Shield.Surface
}

func TestBounce(t *testing.T) {
	r := core.NewRect(0, 0, 100, 50)

	tests := []struct {
		name     string
		pos      core.Vec2
		delta    core.Vec2
		contact  Contact
		changed  bool
		expected core.Vec2
	}{
		{
			name:     "side contact inverts horizontal motion",
			pos:      core.V(-5, 40),
			delta:    core.V(3, -1),
			contact:  ContactSide,
			changed:  true,
			expected: core.V(-3, -1),
		},
		{
			name:     "side contact moving away is left alone",
			pos:      core.V(-5, 40),
			delta:    core.V(-3, -1),
			contact:  ContactSide,
			expected: core.V(-3, -1),
		},
		{
			name:     "top contact inverts vertical motion",
			pos:      core.V(50, 55),
			delta:    core.V(2, -4),
			contact:  ContactTop,
			changed:  true,
			expected: core.V(2, 4),
		},
		{
			name:     "top contact rising is left alone",
			pos:      core.V(50, 55),
			delta:    core.V(2, 4),
			contact:  ContactTop,
			expected: core.V(2, 4),
		},
		{
			name:     "no contact is a no-op",
			pos:      core.V(50, 70),
			delta:    core.V(1, -1),
			contact:  ContactNone,
			expected: core.V(1, -1),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := shieldAt(tc.pos, tc.delta, 10)
			contact, changed := Bounce(s, r)
			if contact != tc.contact || changed != tc.changed {
				t.Errorf("Bounce() = %v, %v; expected %v, %v", contact, changed, tc.contact, tc.changed)
			}
			if got := s.Owner.Delta; !approxVec(got, tc.expected) {
				t.Errorf("owner delta = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBounceCornerIsFixedPointReflection(t *testing.T) {
	r := core.NewRect(0, 0, 100, 50)
	corner := core.V(0, 50)
	in := core.V(2, -3)
	s := shieldAt(core.V(-5, 56), in, 10)

	contact, changed := Bounce(s, r)
	if contact != ContactCorner || !changed {
		t.Fatalf("Bounce() = %v, %v; expected corner reflection", contact, changed)
	}

	out := s.Owner.Delta
	if !approx(out.Len(), in.Len()) {
		t.Errorf("speed changed from %v to %v", in.Len(), out.Len())
	}
	toCorner := corner.Sub(s.Pos)
	if core.Dot(out, toCorner) >= 0 {
		t.Errorf("reflected delta %v still heads into the corner", out)
	}
	n, _ := core.UnitVector(corner, s.Pos)
	if !approx(core.Dot(out, n.Perp()), core.Dot(in, n.Perp())) {
		t.Error("tangential component not preserved")
	}
}
