// Package scene is the body registry of a running simulation. Bodies are
// grouped by category, terrain is kept as ordered fixed rectangles and the
// viewport tracks the camera. It also owns the world-wrap correction.
package scene

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-lander/internal/physics"
)

// Category names a group of bodies.
type Category string

const (
	Lander        Category = "Lander"
	Shields       Category = "Shields"
	Missiles      Category = "Missiles"
	AirEnemies    Category = "Air Enemies"
	GroundEnemies Category = "Ground Enemies"
	Hostages      Category = "Hostages"
	Explosions    Category = "Explosions"
	LandingPad    Category = "Landing Pad"
	EMPs          Category = "EMPs"
)

// categories in registry order.
var categories = []Category{
	Lander, Shields, Missiles, AirEnemies, GroundEnemies, Hostages, Explosions, LandingPad, EMPs,
}

// Categories returns every known category in registry order.
func Categories() []Category {
	return slices.Clone(categories)
}

// Scene holds every live body of a simulation.
type Scene struct {
	Terrain *Terrain
	View    *Viewport

	lists  map[Category][]*physics.Body
	nextID int
}

// New creates an empty scene over the given terrain and viewport.
func New(terrain *Terrain, view *Viewport) *Scene {
	s := &Scene{
		Terrain: terrain,
		View:    view,
		lists:   make(map[Category][]*physics.Body, len(categories)),
	}
	for _, c := range categories {
		s.lists[c] = nil
	}
	return s
}

func (s *Scene) list(c Category) []*physics.Body {
	l, ok := s.lists[c]
	if !ok {
		panic(fmt.Sprintf("scene: unknown category %q", c))
	}
	return l
}

// Add registers a body under a category and assigns it an ID. A body with a
// shield also registers its surface under Shields.
func (s *Scene) Add(c Category, b *physics.Body) *physics.Body {
	s.list(c)
	if b.ID == 0 {
		s.nextID++
		b.ID = s.nextID
	}
	s.lists[c] = append(s.lists[c], b)
	if b.Shield != nil && c != Shields {
		surface := b.Shield.Surface
		if surface.Owner != b {
			panic("scene: shield surface not owned by its body")
		}
		b.Shield.Recentre()
		s.Add(Shields, surface)
	}
	return b
}

// Remove detaches a body, and its shield surface, from every category.
func (s *Scene) Remove(b *physics.Body) {
	for _, c := range categories {
		s.lists[c] = slices.DeleteFunc(s.lists[c], func(o *physics.Body) bool { return o == b })
	}
	if b.Shield != nil && b.Kind != physics.KindShield {
		s.Remove(b.Shield.Surface)
	}
}

// Kill makes a body die, detaches it and registers any explosion it leaves.
// Already dead bodies are ignored.
func (s *Scene) Kill(b *physics.Body) *physics.Body {
	x := b.Die()
	s.Remove(b)
	if x != nil {
		s.Add(Explosions, x)
	}
	return x
}

// Bodies returns a snapshot of the bodies in the given categories, in
// category order. Mutating the scene does not affect the returned slice.
func (s *Scene) Bodies(cats ...Category) []*physics.Body {
	var out []*physics.Body
	for _, c := range cats {
		out = append(out, s.list(c)...)
	}
	return out
}

// Count returns the number of bodies in a category.
func (s *Scene) Count(c Category) int {
	return len(s.list(c))
}

// Has reports whether b is registered under c.
func (s *Scene) Has(c Category, b *physics.Body) bool {
	return slices.Contains(s.list(c), b)
}

// Lander returns the player's craft, or nil once it has been destroyed.
func (s *Scene) Lander() *physics.Body {
	if l := s.list(Lander); len(l) > 0 {
		return l[0]
	}
	return nil
}

// Pad returns the landing pad, or nil if none was placed.
func (s *Scene) Pad() *physics.Body {
	if l := s.list(LandingPad); len(l) > 0 {
		return l[0]
	}
	return nil
}

// Len returns the total number of registered bodies.
func (s *Scene) Len() int {
	n := 0
	for _, l := range s.lists {
		n += len(l)
	}
	return n
}
