package sim

import (
	"github.com/vovakirdan/tui-lander/internal/physics"
	"github.com/vovakirdan/tui-lander/internal/scene"
)

// Context is what every collaborator of a tick may need to know about the
// player: the body the camera follows and the camera itself. It is handed
// down explicitly rather than kept in a package-level variable.
//
// Tracked is the craft, or its explosion while that plays out.
type Context struct {
	Tracked *physics.Body
	View    *scene.Viewport
}

// Alive reports whether the tracked body is a live craft. An explosion
// being followed after the craft died is not a target.
func (c Context) Alive() bool {
	return c.Tracked != nil && !c.Tracked.Dead && c.Tracked.Kind != physics.KindExplosion
}
