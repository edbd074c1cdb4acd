package sim

import (
	"github.com/vovakirdan/tui-lander/internal/physics"
	"github.com/vovakirdan/tui-lander/internal/scene"
)

// FireEMP releases a pulse centred on owner. It grows from the owner's
// width to a multiple of it and knocks out every raised shield it touches
// except the owner's own. An owner can only have one pulse out at a time.
func (s *Simulation) FireEMP(owner *physics.Body) *physics.Body {
	if owner.Dead {
		return nil
	}
	for _, e := range s.scene.Bodies(scene.EMPs) {
		if e.Owner == owner {
			return nil
		}
	}
	ec := s.cfg.EMP
	b := &physics.Body{
		Kind:   physics.KindEMP,
		Pos:    owner.Pos,
		Mass:   owner.Mass,
		Radius: owner.Width,
		Owner:  owner,
		Blast: &physics.Blast{
			InitialRadius: owner.Width,
			FinalRadius:   ec.Multiplier * owner.Width,
			Lifetime:      ec.Lifetime,
		},
	}
	s.scene.Add(scene.EMPs, b)
	s.logger.Debug("emp fired", "owner", owner.ID)
	return b
}

func (s *Simulation) updateEMPs() {
	for _, e := range s.scene.Bodies(scene.EMPs) {
		if !e.Owner.Dead {
			e.Pos = e.Owner.Pos
		}
		if physics.Grow(e, s.dt) {
			s.scene.Remove(e)
			continue
		}
		for _, sh := range s.scene.Bodies(scene.Shields) {
			if !sh.Active() || sh.Owner == e.Owner || !e.Overlaps(sh) {
				continue
			}
			sh.Owner.Shield.DisableFor(s.cfg.EMP.Disable)
			s.logger.Debug("shield knocked out", "owner", sh.Owner.Kind, "id", sh.Owner.ID)
		}
	}
}
