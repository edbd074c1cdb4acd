package scene

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

// Viewport is the camera window over the world.
type Viewport struct {
	Center        core.Vec2
	Width, Height float64

	shake  core.Vec2
	shakes int
}

// NewViewport creates a viewport of the given size centred on c.
func NewViewport(c core.Vec2, w, h float64) *Viewport {
	return &Viewport{Center: c, Width: w, Height: h}
}

// Rect returns the world-space rectangle the viewport covers.
func (v *Viewport) Rect() core.Rect {
	return core.RectAround(v.Center, v.Width, v.Height)
}

// Sees reports whether any part of the body is inside the viewport. Bodies
// touching the edge count as visible.
func (v *Viewport) Sees(b *physics.Body) bool {
	r, bb := v.Rect(), b.Bounds()
	return !(bb.Right() < r.Left() || bb.Left() > r.Right() || bb.Top() < r.Bottom() || bb.Bottom() > r.Top())
}

// Shake records a camera shake impulse.
func (v *Viewport) Shake(impulse core.Vec2) {
	v.shake = impulse
	v.shakes++
}

// LastShake returns the most recent shake impulse.
func (v *Viewport) LastShake() core.Vec2 {
	return v.shake
}

// Shakes returns how many shake impulses have been recorded.
func (v *Viewport) Shakes() int {
	return v.shakes
}

// PanTo moves the centre a fraction of the way towards target. The camera
// never shows anything below the ground.
func (v *Viewport) PanTo(target core.Vec2, fraction float64) {
	want := core.V(target.X, math.Max(target.Y, v.Height/2))
	v.Center = v.Center.Add(want.Sub(v.Center).Scale(fraction))
}

// SnapBy moves the camera instantly.
func (v *Viewport) SnapBy(d core.Vec2) {
	v.Center = v.Center.Add(d)
}
