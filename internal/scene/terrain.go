package scene

import (
	"slices"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

// Terrain is the fixed ground: rectangles standing on y = 0, ordered left to
// right. The right edge repeats the left edge one wrap span further along so
// the world looks continuous across the seam.
type Terrain struct {
	LeftEdge  []core.Rect
	Centre    []core.Rect
	RightEdge []core.Rect

	maxHeight float64
}

// NewTerrain builds terrain from its left edge and centre segments. The
// right edge is derived from the left edge.
func NewTerrain(leftEdge, centre []core.Rect, wrap Wrap) *Terrain {
	t := &Terrain{
		LeftEdge: slices.Clone(leftEdge),
		Centre:   slices.Clone(centre),
	}
	for _, r := range leftEdge {
		t.RightEdge = append(t.RightEdge, r.Translate(core.V(wrap.Span(), 0)))
	}
	for _, r := range slices.Concat(t.LeftEdge, t.Centre) {
		t.maxHeight = max(t.maxHeight, r.Top())
	}
	return t
}

// FlatTerrain covers the whole world with segments of the given width and
// height, handy for scripted setups.
func FlatTerrain(wrap Wrap, segment, height float64) *Terrain {
	var left, centre []core.Rect
	edge := 2 * wrap.ViewWidth
	for x := 0.0; x < edge; x += segment {
		left = append(left, core.NewRect(x, 0, min(segment, edge-x), height))
	}
	for x := edge; x < wrap.WorldWidth-edge; x += segment {
		centre = append(centre, core.NewRect(x, 0, min(segment, wrap.WorldWidth-edge-x), height))
	}
	return NewTerrain(left, centre, wrap)
}

// Segments returns all rectangles ordered left to right.
func (t *Terrain) Segments() []core.Rect {
	return slices.Concat(t.LeftEdge, t.Centre, t.RightEdge)
}

// MaxHeight returns the top of the tallest segment. Anything whose bottom is
// above it cannot touch the ground.
func (t *Terrain) MaxHeight() float64 {
	return t.maxHeight
}

// Overlapping returns the segments the body intersects.
func (t *Terrain) Overlapping(b *physics.Body) []core.Rect {
	var out []core.Rect
	for _, r := range t.Segments() {
		if b.OverlapsRect(r) {
			out = append(out, r)
		}
	}
	return out
}

// GroundAt returns the terrain height at x, or 0 where there is no segment.
func (t *Terrain) GroundAt(x float64) float64 {
	for _, r := range t.Segments() {
		if r.Left() <= x && x < r.Right() {
			return r.Top()
		}
	}
	return 0
}
