package scene

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

func TestWrapFold(t *testing.T) {
	span := testWrap.Span()
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"inside", 5000, 5000},
		{"left of the left seam", 700, 700 + span},
		{"right of the right seam", 19300, 19300 - span},
		{"exactly on the left seam", 800, 800},
		{"exactly on the right seam", 19200, 19200},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := testWrap.Fold(tc.x); got != tc.expected {
				t.Errorf("Fold(%v) = %v, expected %v", tc.x, got, tc.expected)
			}
		})
	}
}

func TestWrapXIsIdempotent(t *testing.T) {
	tracked := []float64{900, 1500, 5000, 10000, 18500, 19100}
	for _, tx := range tracked {
		for x := -500.0; x <= 20500; x += 37 {
			once := testWrap.X(x, 10, tx)
			twice := testWrap.X(once, 10, tx)
			if once != twice {
				t.Fatalf("tracked %v x %v: once %v twice %v", tx, x, once, twice)
			}
		}
	}
}

func TestWrapLocalBringsBodiesToTrackedSide(t *testing.T) {
	// Tracked body near the left edge sees bodies near the right edge as
	// being just to its left.
	got := testWrap.X(18500, 10, 1000)
	if got != 18500-testWrap.Span() {
		t.Errorf("X() = %v, expected %v", got, 18500-testWrap.Span())
	}
	// And the other way round.
	got = testWrap.X(1500, 10, 18900)
	if got != 1500+testWrap.Span() {
		t.Errorf("X() = %v, expected %v", got, 1500+testWrap.Span())
	}
	// Bodies far from the seam are left alone.
	if got := testWrap.X(9000, 10, 1000); got != 9000 {
		t.Errorf("X() = %v, expected 9000", got)
	}
}

func TestWrapApply(t *testing.T) {
	s := newTestScene()
	l := s.Add(Lander, shielded(physics.KindLander, 790, 500))
	far := s.Add(Missiles, &physics.Body{Kind: physics.KindMissile, Pos: core.V(1200, 400), Width: 4, Height: 12})
	pad := s.Add(LandingPad, &physics.Body{Kind: physics.KindLandingPad, Pos: core.V(10000, 53), Width: 40, Height: 12})

	testWrap.Apply(s, l)

	span := testWrap.Span()
	if l.Pos.X != 790+span {
		t.Errorf("lander at %v, expected %v", l.Pos.X, 790+span)
	}
	if far.Pos.X != 1200+span {
		t.Errorf("missile at %v, expected to follow the lander to %v", far.Pos.X, 1200+span)
	}
	if pad.Pos.X != 10000 {
		t.Errorf("pad moved to %v", pad.Pos.X)
	}
	if l.Shield.Surface.Pos != l.Pos {
		t.Error("shield not recentred after wrap")
	}

	before := []core.Vec2{l.Pos, far.Pos, pad.Pos}
	testWrap.Apply(s, l)
	after := []core.Vec2{l.Pos, far.Pos, pad.Pos}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("second Apply moved body %d from %v to %v", i, before[i], after[i])
		}
	}
}

func TestWrapFollow(t *testing.T) {
	v := NewViewport(core.V(1000, 300), 800, 600)
	tracked := &physics.Body{Pos: core.V(1000+testWrap.Span(), 300), Delta: core.V(2, 1)}

	testWrap.Follow(v, tracked, 0.04)
	if v.Center != core.V(1000+testWrap.Span()+2, 301) {
		t.Errorf("camera should snap across the seam, got %v", v.Center)
	}

	tracked.Pos = core.V(v.Center.X+100, 301)
	start := v.Center.X
	testWrap.Follow(v, tracked, 0.04)
	if math.Abs(v.Center.X-start-4) > 1e-9 {
		t.Errorf("camera panned by %v, expected 4", v.Center.X-start)
	}
}
