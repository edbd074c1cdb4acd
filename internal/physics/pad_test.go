package physics

import (
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func TestSafeToLand(t *testing.T) {
	pad := &Body{Kind: KindLandingPad, Pos: core.V(100, 3), Width: 40, Height: 6}

	tests := []struct {
		name     string
		pos      core.Vec2
		vel      core.Vec2
		angle    float64
		expected bool
	}{
		{"slow and centred", core.V(100, 16), core.V(0, -30), 0, true},
		{"too fast", core.V(100, 16), core.V(0, -60), 0, false},
		{"combined speed too fast", core.V(100, 16), core.V(40, -40), 0, false},
		{"overhanging the left edge", core.V(85, 16), core.V(0, -10), 0, false},
		{"overhanging the right edge", core.V(115, 16), core.V(0, -10), 0, false},
		{"tilted within tolerance", core.V(100, 16), core.V(0, -10), core.Radians(15), true},
		{"tilted too far", core.V(100, 16), core.V(0, -10), core.Radians(-25), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := testLander(tc.pos.X, tc.pos.Y)
			l.Vel = tc.vel
			l.Angle = tc.angle
			if got := SafeToLand(l, pad, 50); got != tc.expected {
				t.Errorf("SafeToLand() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestLandAndIgnite(t *testing.T) {
	pad := &Body{Kind: KindLandingPad, Pos: core.V(100, 3), Width: 40, Height: 6}
	l := testLander(100, 14)
	l.Engine.Fuel = 3
	l.Shield.Charge = 7
	l.Delta = core.V(0.1, -0.5)
	l.Angle = 0.1

	Land(l, pad)

	if !l.Landed || !l.Delta.IsZero() || l.Angle != 0 {
		t.Errorf("after Land: landed %v delta %v angle %v", l.Landed, l.Delta, l.Angle)
	}
	if l.Bottom() != 6 {
		t.Errorf("lander bottom = %v, expected pad top 6", l.Bottom())
	}
	if l.Engine.Fuel != l.Engine.InitialFuel || l.Shield.Charge != l.Shield.InitialCharge {
		t.Error("Land should refuel and recharge")
	}

	if !Ignite(l, 5) {
		t.Fatal("Ignite() failed with a full tank")
	}
	if l.Landed || l.Bottom() != 11 {
		t.Errorf("after Ignite: landed %v bottom %v", l.Landed, l.Bottom())
	}

	bare := &Body{Kind: KindHostage}
	if Ignite(bare, 5) {
		t.Error("body without engine cannot ignite")
	}
}
