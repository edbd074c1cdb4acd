package physics

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

const tol = 1e-6

func approx(a, b float64) bool {
	return math.Abs(a-b) < tol
}

func approxVec(a, b core.Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func testLander(x, y float64) *Body {
	b := &Body{
		Kind:            KindLander,
		Pos:             core.V(x, y),
		Mass:            20,
		Width:           20,
		Height:          20,
		Explodes:        true,
		MaxLandingAngle: core.Radians(20),
		Yield:           DefaultBlast,
	}
	b.Engine = NewEngine(5000, 100)
	NewShield(b, 1.5, 100, 1)
	return b
}

func wideView() core.Rect {
	return core.NewRect(-1e6, -1e6, 2e6, 2e6)
}
