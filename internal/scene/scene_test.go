package scene

import (
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

var testWrap = Wrap{WorldWidth: 20000, ViewWidth: 800}

func newTestScene() *Scene {
	return New(FlatTerrain(testWrap, 400, 50), NewViewport(core.V(10000, 300), 800, 600))
}

func shielded(kind physics.Kind, x, y float64) *physics.Body {
	b := &physics.Body{Kind: kind, Pos: core.V(x, y), Mass: 20, Width: 20, Height: 20, Explodes: true}
	physics.NewShield(b, 1.5, 100, 1)
	return b
}

func TestAddAssignsIDsAndRegistersShields(t *testing.T) {
	s := newTestScene()
	l := s.Add(Lander, shielded(physics.KindLander, 100, 100))
	m := s.Add(Missiles, &physics.Body{Kind: physics.KindMissile, Mass: 30})

	if l.ID == 0 || m.ID == 0 || l.ID == m.ID {
		t.Errorf("IDs not unique: lander %d missile %d", l.ID, m.ID)
	}
	if !s.Has(Shields, l.Shield.Surface) {
		t.Error("shield surface should be registered under Shields")
	}
	if l.Shield.Surface.ID == 0 {
		t.Error("shield surface should get an ID")
	}
	if s.Lander() != l {
		t.Error("Lander() should return the craft")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", s.Len())
	}
}

func TestBodiesIsASnapshot(t *testing.T) {
	s := newTestScene()
	a := s.Add(Missiles, &physics.Body{Kind: physics.KindMissile})
	s.Add(Missiles, &physics.Body{Kind: physics.KindMissile})

	snap := s.Bodies(Missiles)
	s.Remove(a)

	if len(snap) != 2 {
		t.Errorf("snapshot changed length to %d", len(snap))
	}
	if s.Count(Missiles) != 1 {
		t.Errorf("Count() = %d, expected 1", s.Count(Missiles))
	}
}

func TestBodiesFollowsCategoryOrder(t *testing.T) {
	s := newTestScene()
	m := s.Add(Missiles, &physics.Body{Kind: physics.KindMissile})
	l := s.Add(Lander, &physics.Body{Kind: physics.KindLander})

	got := s.Bodies(Lander, Missiles)
	if len(got) != 2 || got[0] != l || got[1] != m {
		t.Errorf("Bodies() order = %v", got)
	}
}

func TestKill(t *testing.T) {
	s := newTestScene()
	l := s.Add(Lander, shielded(physics.KindLander, 100, 100))

	x := s.Kill(l)
	if x == nil {
		t.Fatal("Kill() should spawn an explosion")
	}
	if s.Lander() != nil || s.Count(Shields) != 0 {
		t.Error("killed body and its shield should be detached")
	}
	if !s.Has(Explosions, x) || x.ID == 0 {
		t.Error("explosion should be registered with an ID")
	}
	if again := s.Kill(l); again != nil {
		t.Error("killing a dead body should not spawn another explosion")
	}
}

func TestUnknownCategoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown category")
		}
	}()
	newTestScene().Add(Category("Dragons"), &physics.Body{})
}

func TestViewport(t *testing.T) {
	v := NewViewport(core.V(400, 300), 800, 600)

	tests := []struct {
		name     string
		body     *physics.Body
		expected bool
	}{
		{"centre", &physics.Body{Pos: core.V(400, 300), Width: 10, Height: 10}, true},
		{"touching the right edge", &physics.Body{Pos: core.V(805, 300), Width: 10, Height: 10}, true},
		{"beyond the right edge", &physics.Body{Pos: core.V(806, 300), Width: 10, Height: 10}, false},
		{"below the bottom", &physics.Body{Pos: core.V(400, -20), Width: 10, Height: 10}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.Sees(tc.body); got != tc.expected {
				t.Errorf("Sees() = %v, expected %v", got, tc.expected)
			}
		})
	}

	v.PanTo(core.V(500, 0), 0.5)
	if v.Center != core.V(450, 300) {
		t.Errorf("PanTo() centre = %v, expected (450, 300)", v.Center)
	}

	v.Shake(core.V(5, 0))
	v.Shake(core.V(0, 5))
	if v.Shakes() != 2 || v.LastShake() != core.V(0, 5) {
		t.Errorf("shakes %d last %v", v.Shakes(), v.LastShake())
	}
}

func TestTerrain(t *testing.T) {
	left := []core.Rect{core.NewRect(0, 0, 800, 60), core.NewRect(800, 0, 800, 120)}
	centre := []core.Rect{core.NewRect(1600, 0, 16800, 300)}
	tr := NewTerrain(left, centre, testWrap)

	if len(tr.RightEdge) != 2 || tr.RightEdge[0].X != 18400 || tr.RightEdge[1].Top() != 120 {
		t.Errorf("right edge = %+v", tr.RightEdge)
	}
	if tr.MaxHeight() != 300 {
		t.Errorf("MaxHeight() = %v, expected 300", tr.MaxHeight())
	}
	if got := tr.GroundAt(900); got != 120 {
		t.Errorf("GroundAt(900) = %v, expected 120", got)
	}
	if got := tr.GroundAt(18500); got != 60 {
		t.Errorf("GroundAt(18500) = %v, expected 60", got)
	}
	segs := tr.Segments()
	for i := 1; i < len(segs); i++ {
		if segs[i].X < segs[i-1].X {
			t.Fatalf("segments not ordered at %d", i)
		}
	}

	b := &physics.Body{Pos: core.V(800, 50), Width: 20, Height: 20}
	if got := tr.Overlapping(b); len(got) != 2 {
		t.Errorf("Overlapping() found %d segments, expected 2", len(got))
	}
}

func TestFlatTerrainCoversWorld(t *testing.T) {
	tr := FlatTerrain(testWrap, 400, 50)
	segs := tr.Segments()
	last := segs[len(segs)-1]
	if last.Right() != testWrap.WorldWidth {
		t.Errorf("terrain ends at %v, expected %v", last.Right(), testWrap.WorldWidth)
	}
	if tr.MaxHeight() != 50 {
		t.Errorf("MaxHeight() = %v", tr.MaxHeight())
	}
}
