package sim

import "github.com/vovakirdan/tui-lander/internal/physics"

// hostage tracks how long the craft has hovered within rescue range.
type hostage struct {
	body *physics.Body
	near int // consecutive ticks in range
}

// updateHostages picks up every hostage the craft has stayed close to for
// long enough and returns how many were rescued this tick.
func (s *Simulation) updateHostages() int {
	hc := s.cfg.Hostage
	reach := hc.RescueDistance * s.cfg.Craft.Height
	rescued := 0

	live := s.hostages[:0]
	for _, h := range s.hostages {
		if h.body.Dead {
			continue
		}
		if s.ctx.Alive() && h.body.Pos.Sub(s.ctx.Tracked.Pos).Len() <= reach {
			h.near++
		} else {
			h.near = 0
		}
		if float64(h.near)*s.dt >= hc.RescueTime-1e-9 {
			s.scene.Remove(h.body)
			rescued++
			s.logger.Info("hostage rescued", "id", h.body.ID, "tick", s.tick)
			continue
		}
		live = append(live, h)
	}
	s.hostages = live
	s.rescued += rescued
	return rescued
}
