package physics

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Shield is the capability of a body that can raise a circular force field.
// The field itself is the Surface body, a satellite that recentres on its
// owner every tick and has no kinematics of its own.
type Shield struct {
	Surface *Body

	Activated bool
	// Requested is set while the controller keeps asking for the shield.
	// A disabled shield comes back on its own when the timer expires and
	// the request is still standing.
	Requested bool
	// Permanent shields never drain (hostages).
	Permanent bool

	Charge        float64
	InitialCharge float64
	// Cooldown is how long the shield is disabled after an attempt to raise
	// it with something already inside the field.
	Cooldown float64

	disabled float64
	stuck    int
}

// NewShield attaches a shield of radius factor*max(w, h) to owner.
func NewShield(owner *Body, factor, charge, cooldown float64) *Shield {
	surface := &Body{
		Kind:   KindShield,
		Pos:    owner.Pos,
		Mass:   owner.Mass,
		Radius: factor * math.Max(owner.Width, owner.Height),
		Owner:  owner,
	}
	s := &Shield{
		Surface:       surface,
		Charge:        charge,
		InitialCharge: charge,
		Cooldown:      cooldown,
	}
	owner.Shield = s
	return s
}

// Disabled reports whether the shield is in its forced-off cooldown.
func (s *Shield) Disabled() bool {
	return s.disabled > 0
}

// Remaining returns the seconds left on the forced-off cooldown.
func (s *Shield) Remaining() float64 {
	return s.disabled
}

// Activate tries to raise the shield. blocked reports whether something is
// already inside the field; in that case the shield is disabled for its
// cooldown instead. It returns whether the shield is now up.
func (s *Shield) Activate(blocked bool) bool {
	if s.Disabled() || s.Charge <= 0 {
		return false
	}
	if blocked {
		s.DisableFor(s.Cooldown)
		return false
	}
	s.Activated = true
	return true
}

// Deactivate drops the shield without any cooldown.
func (s *Shield) Deactivate() {
	s.Activated = false
}

// DisableFor drops the shield and keeps it down for the given seconds.
func (s *Shield) DisableFor(seconds float64) {
	s.disabled = seconds
	s.Deactivate()
}

// Recharge restores the initial charge.
func (s *Shield) Recharge() {
	s.Charge = s.InitialCharge
}

// Recentre moves the surface onto its owner.
func (s *Shield) Recentre() {
	owner := s.Surface.Owner
	s.Surface.Pos = owner.Pos
	s.Surface.Delta = owner.Delta
	s.Surface.Vel = owner.Vel
}

// Update drains charge and counts down the disable timer. It returns true
// when the timer has just expired and the shield is still requested, so the
// caller should retry Activate with a fresh overlap test.
func (s *Shield) Update(dt float64) bool {
	if s.Activated && !s.Permanent {
		s.Charge = math.Max(s.Charge-dt, 0)
		if s.Charge == 0 {
			s.Deactivate()
		}
	}
	if !s.Disabled() {
		return false
	}
	s.disabled -= dt
	if s.disabled > 0 {
		return false
	}
	s.disabled = 0
	return s.Requested
}

// MarkStuck records another tick on which the shield could not be separated
// from terrain and returns the running count.
func (s *Shield) MarkStuck() int {
	s.stuck++
	return s.stuck
}

// ClearStuck resets the stuck counter.
func (s *Shield) ClearStuck() {
	s.stuck = 0
}

// Stuck returns the number of consecutive stuck ticks.
func (s *Shield) Stuck() int {
	return s.stuck
}

// Field returns the circle of the shield surface.
func (s *Shield) Field() core.Circle {
	return s.Surface.Circle()
}
