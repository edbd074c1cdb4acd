// Package physics holds the body model and the pure per-body mechanics of the
// lander simulation: force accumulation and integration, restitution lookup,
// elastic resolution, explosion growth, shield and engine lifecycles, landing
// checks and the shield-against-rectangle bounce geometry.
//
// Nothing in this package logs or reaches into a scene; the collision and sim
// packages orchestrate it.
package physics

import (
	"fmt"
	"strings"
)

// Kind tags every body so that restitution lookup and resolver special cases
// can switch on it exhaustively.
type Kind int

const (
	KindLander Kind = iota
	KindMissile
	KindMissileLauncher
	KindHostage
	KindExplosion
	KindShield
	KindTerrain
	KindLandingPad
	KindEMP
)

var kindNames = [...]string{
	KindLander:          "Lander",
	KindMissile:         "Missile",
	KindMissileLauncher: "MissileLauncher",
	KindHostage:         "Hostage",
	KindExplosion:       "Explosion",
	KindShield:          "Shield",
	KindTerrain:         "Terrain",
	KindLandingPad:      "LandingPad",
	KindEMP:             "EMP",
}

// String returns the kind's name as used in configuration files.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// ParseKind maps a name back to a Kind, ignoring case and underscores so
// that "missile_launcher" and "MissileLauncher" are the same kind.
func ParseKind(name string) (Kind, error) {
	folded := strings.ReplaceAll(name, "_", "")
	for i, n := range kindNames {
		if strings.EqualFold(n, folded) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("physics: unknown body kind %q", name)
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}
