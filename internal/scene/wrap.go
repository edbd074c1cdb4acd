package scene

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

// wrapped lists the categories moved across the seam, tracked body first.
// Shields are recentred on their owners afterwards.
var wrapped = []Category{Lander, Missiles, AirEnemies, GroundEnemies, Explosions, Hostages, LandingPad, EMPs}

// Wrap describes the horizontal cylinder the world is folded onto. The
// first and last two viewport widths of the world show the same terrain,
// so a body can be moved by Span without any visible change.
type Wrap struct {
	WorldWidth float64
	ViewWidth  float64
}

// Span is the distance between the two images of a point.
func (w Wrap) Span() float64 {
	return w.WorldWidth - 2*w.ViewWidth
}

// Fold brings x inside [ViewWidth, WorldWidth-ViewWidth].
func (w Wrap) Fold(x float64) float64 {
	switch {
	case x < w.ViewWidth:
		return x + w.Span()
	case x > w.WorldWidth-w.ViewWidth:
		return x - w.Span()
	}
	return x
}

// Local moves a body of half-width hw onto the same side of the seam as the
// tracked x, when the tracked body is close enough to the seam to see it.
func (w Wrap) Local(x, hw, trackedX float64) float64 {
	switch {
	case trackedX < 2*w.ViewWidth && x+hw >= w.WorldWidth-2*w.ViewWidth:
		return x - w.Span()
	case trackedX >= w.WorldWidth-2*w.ViewWidth && x-hw <= 2*w.ViewWidth:
		return x + w.Span()
	}
	return x
}

// X returns the canonical position of a body relative to the tracked x.
// Applying it to its own result is a no-op.
func (w Wrap) X(x, hw, trackedX float64) float64 {
	return w.Local(w.Fold(x), hw, trackedX)
}

// Apply folds every dynamic body of the scene around the tracked body and
// recentres the shields. The tracked body is folded first so that every
// other body is placed relative to its corrected position.
func (w Wrap) Apply(s *Scene, tracked *physics.Body) {
	if tracked != nil {
		tracked.Pos.X = w.Fold(tracked.Pos.X)
	}
	for _, b := range s.Bodies(wrapped...) {
		if b == tracked {
			continue
		}
		if tracked == nil {
			b.Pos.X = w.Fold(b.Pos.X)
			continue
		}
		b.Pos.X = w.X(b.Pos.X, b.Bounds().W/2, tracked.Pos.X)
	}
	for _, b := range s.Bodies(Shields) {
		if b.Owner != nil && b.Owner.Shield != nil {
			b.Owner.Shield.Recentre()
		}
	}
}

// Follow moves the camera after the tracked body. When the body has just
// crossed the seam the camera jumps by one span so nothing visibly pops;
// otherwise it pans by fraction.
func (w Wrap) Follow(v *Viewport, tracked *physics.Body, fraction float64) {
	if tracked == nil {
		return
	}
	if math.Abs(tracked.Pos.X-v.Center.X) > w.WorldWidth-4*w.ViewWidth {
		dx := -w.Span()
		if tracked.Pos.X > v.Center.X {
			dx = w.Span()
		}
		v.SnapBy(core.V(dx+tracked.Delta.X, tracked.Delta.Y))
		return
	}
	v.PanTo(tracked.Pos, fraction)
}
