package core

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func approxVec(a, b Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func TestModulusAndDot(t *testing.T) {
	if got := Modulus(V(3, 4)); got != 5 {
		t.Errorf("Modulus(3,4) = %v, expected 5", got)
	}
	if got := Modulus(V(0, 0)); got != 0 {
		t.Errorf("Modulus(0,0) = %v, expected 0", got)
	}
	if got := Dot(V(1, 2), V(3, 4)); got != 11 {
		t.Errorf("Dot() = %v, expected 11", got)
	}
	if got := V(1, 0).Dot(V(0, 1)); got != 0 {
		t.Errorf("perpendicular Dot() = %v, expected 0", got)
	}
}

func TestUnitVector(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec2
		expected Vec2
	}{
		{"right", V(0, 0), V(10, 0), V(1, 0)},
		{"down", V(5, 5), V(5, -1), V(0, -1)},
		{"diagonal", V(0, 0), V(3, 4), V(0.6, 0.8)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := UnitVector(tc.from, tc.to)
			if err != nil {
				t.Fatalf("UnitVector() error = %v", err)
			}
			if !approxVec(got, tc.expected) {
				t.Errorf("UnitVector() = %v, expected %v", got, tc.expected)
			}
			if !approx(got.Len(), 1) {
				t.Errorf("unit length = %v, expected 1", got.Len())
			}
		})
	}

	if _, err := UnitVector(V(2, 2), V(2, 2)); !errors.Is(err, ErrDegenerate) {
		t.Errorf("coincident points: err = %v, expected ErrDegenerate", err)
	}
}

func TestReflectAbout(t *testing.T) {
	// Anchor directly below: a falling body bounces straight up.
	got, err := ReflectAbout(V(0, 0), V(0, 10), V(2, -5))
	if err != nil {
		t.Fatalf("ReflectAbout() error = %v", err)
	}
	if !approxVec(got, V(2, 5)) {
		t.Errorf("ReflectAbout() = %v, expected (2, 5)", got)
	}

	// Speed is preserved for any anchor.
	in := V(-3, 7)
	got, _ = ReflectAbout(V(1, 1), V(4, 5), in)
	if !approx(got.Len(), in.Len()) {
		t.Errorf("reflected speed = %v, expected %v", got.Len(), in.Len())
	}

	if _, err := ReflectAbout(V(1, 1), V(1, 1), in); !errors.Is(err, ErrDegenerate) {
		t.Errorf("coincident anchor: err = %v, expected ErrDegenerate", err)
	}
}

func TestElastic(t *testing.T) {
	t.Run("equal masses e=1 swap normal velocities", func(t *testing.T) {
		v1, v2, err := Elastic(V(0, 0), V(10, 0), 5, V(10, 0), V(-4, 0), 5, 1)
		if err != nil {
			t.Fatal(err)
		}
		if !approxVec(v1, V(-4, 0)) || !approxVec(v2, V(10, 0)) {
			t.Errorf("got v1=%v v2=%v, expected swap", v1, v2)
		}
	})

	t.Run("equal masses e=0 share the average", func(t *testing.T) {
		v1, v2, _ := Elastic(V(0, 0), V(10, 0), 5, V(10, 0), V(-4, 0), 5, 0)
		if !approxVec(v1, V(3, 0)) || !approxVec(v2, V(3, 0)) {
			t.Errorf("got v1=%v v2=%v, expected both (3,0)", v1, v2)
		}
	})

	t.Run("tangential components pass through", func(t *testing.T) {
		v1, v2, _ := Elastic(V(0, 0), V(10, 7), 20, V(10, 0), V(-4, -3), 30, 0.5)
		if !approx(v1.Y, 7) || !approx(v2.Y, -3) {
			t.Errorf("tangential parts changed: v1=%v v2=%v", v1, v2)
		}
	})

	t.Run("momentum conserved", func(t *testing.T) {
		m1, m2 := 20.0, 300.0
		u1, u2 := V(12, -8), V(-1, 2)
		v1, v2, _ := Elastic(V(0, 0), u1, m1, V(6, 8), u2, m2, 0.8)
		before := u1.Scale(m1).Add(u2.Scale(m2))
		after := v1.Scale(m1).Add(v2.Scale(m2))
		if !approxVec(before, after) {
			t.Errorf("momentum before %v after %v", before, after)
		}
	})

	t.Run("swapping arguments swaps results", func(t *testing.T) {
		a1, a2, _ := Elastic(V(0, 0), V(3, 1), 10, V(4, 3), V(-2, 5), 40, 0.3)
		b2, b1, _ := Elastic(V(4, 3), V(-2, 5), 40, V(0, 0), V(3, 1), 10, 0.3)
		if !approxVec(a1, b1) || !approxVec(a2, b2) {
			t.Errorf("asymmetric: (%v,%v) vs (%v,%v)", a1, a2, b1, b2)
		}
	})

	t.Run("coincident centres are degenerate", func(t *testing.T) {
		v1, v2, err := Elastic(V(1, 1), V(3, 0), 1, V(1, 1), V(0, 3), 1, 1)
		if !errors.Is(err, ErrDegenerate) {
			t.Errorf("err = %v, expected ErrDegenerate", err)
		}
		if v1 != V(3, 0) || v2 != V(0, 3) {
			t.Errorf("velocities changed on degenerate input")
		}
	})
}
