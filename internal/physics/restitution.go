package physics

import "github.com/vovakirdan/tui-lander/internal/core"

// DefaultCoefficient applies to any kind pair missing from the table.
const DefaultCoefficient = 0.5

type kindPair struct{ a, b Kind }

func pairOf(a, b Kind) kindPair {
	if a > b {
		a, b = b, a
	}
	return kindPair{a, b}
}

// Restitution is an unordered kind-pair lookup of restitution coefficients.
type Restitution struct {
	Default float64
	pairs   map[kindPair]float64
}

// NewRestitution creates an empty table with the given fallback coefficient.
func NewRestitution(def float64) *Restitution {
	return &Restitution{Default: def, pairs: make(map[kindPair]float64)}
}

// DefaultRestitution returns the tuned table. Shield against shield is
// deliberately above 1 so that shielded craft bounce off each other hard.
func DefaultRestitution() *Restitution {
	r := NewRestitution(DefaultCoefficient)
	r.Set(KindLander, KindMissile, 0.1)
	r.Set(KindMissileLauncher, KindLander, 0.5)
	r.Set(KindExplosion, KindMissile, 0.1)
	r.Set(KindExplosion, KindLander, 0.1)
	r.Set(KindShield, KindExplosion, 0.1)
	r.Set(KindShield, KindShield, 3.5)
	r.Set(KindShield, KindMissile, 0.1)
	r.Set(KindShield, KindLander, 0.8)
	r.Set(KindShield, KindMissileLauncher, 0.5)
	return r
}

// Set stores the coefficient for a kind pair in either order.
func (r *Restitution) Set(a, b Kind, e float64) {
	r.pairs[pairOf(a, b)] = e
}

// Lookup returns the coefficient for a kind pair in either order.
func (r *Restitution) Lookup(a, b Kind) float64 {
	if e, ok := r.pairs[pairOf(a, b)]; ok {
		return e
	}
	return r.Default
}

// Len returns the number of explicit pairs.
func (r *Restitution) Len() int {
	return len(r.pairs)
}

// ResolveElastic computes post-collision velocities for two bodies using the
// coefficient for their kinds. Shield surfaces are resolved with their
// owner's mass and velocity. Coincident centres return core.ErrDegenerate.
func ResolveElastic(a, b *Body, table *Restitution) (core.Vec2, core.Vec2, error) {
	e := table.Lookup(a.Kind, b.Kind)
	pa, pb := a.Physical(), b.Physical()
	return core.Elastic(pa.Pos, pa.Vel, pa.Mass, pb.Pos, pb.Vel, pb.Mass, e)
}
