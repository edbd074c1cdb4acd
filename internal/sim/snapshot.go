package sim

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-lander/internal/physics"
	"github.com/vovakirdan/tui-lander/internal/scene"
)

// BodyState is the replay-relevant state of one body.
type BodyState struct {
	ID     int
	Kind   physics.Kind
	X, Y   float64
	DX, DY float64
	Radius float64
	Angle  float64
	Flags  int // bit 0 on ground, bit 1 landed, bit 2 shield up
}

// Snapshot contains the complete world state for determinism checks.
// Bodies are ordered by ID.
type Snapshot struct {
	Tick       uint64
	Outcome    string
	Collisions int
	Deaths     int
	Rescued    int
	CameraX    float64
	CameraY    float64
	Bodies     []BodyState
	RNGState   uint64
}

// Snapshot returns the current world state as a Snapshot.
func (s *Simulation) Snapshot() Snapshot {
	var bodies []BodyState
	for _, b := range s.scene.Bodies(scene.Categories()...) {
		if b.Kind == physics.KindShield {
			continue // recentred on the owner, nothing of its own
		}
		flags := 0
		if b.OnGround {
			flags |= 1
		}
		if b.Landed {
			flags |= 2
		}
		if b.Protected() {
			flags |= 4
		}
		bodies = append(bodies, BodyState{
			ID:     b.ID,
			Kind:   b.Kind,
			X:      b.Pos.X,
			Y:      b.Pos.Y,
			DX:     b.Delta.X,
			DY:     b.Delta.Y,
			Radius: b.Radius,
			Angle:  b.Angle,
			Flags:  flags,
		})
	}
	slices.SortFunc(bodies, func(a, b BodyState) int { return a.ID - b.ID })

	return Snapshot{
		Tick:       uint64(s.tick), //#nosec G115 -- tick count is always positive
		Outcome:    string(s.outcome),
		Collisions: s.collisions,
		Deaths:     s.deaths,
		Rescued:    s.rescued,
		CameraX:    s.ctx.View.Center.X,
		CameraY:    s.ctx.View.Center.Y,
		Bodies:     bodies,
		RNGState:   s.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Outcome {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Collisions) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Deaths)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rescued)    //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.CameraX)
	h = h*31 + math.Float64bits(snap.CameraY)

	for _, b := range snap.Bodies {
		h = h*31 + uint64(b.ID)   //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + math.Float64bits(b.DX)
		h = h*31 + math.Float64bits(b.DY)
		h = h*31 + math.Float64bits(b.Radius)
		h = h*31 + math.Float64bits(b.Angle)
		h = h*31 + uint64(b.Flags) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
