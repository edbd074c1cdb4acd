package physics

import "math"

// boostFactor multiplies both force and burn rate while boosting.
const boostFactor = 2

// Engine is the thrust capability of a body.
type Engine struct {
	Force       float64
	Fuel        float64
	InitialFuel float64
	BurnRate    float64 // fuel units per second

	Activated bool
	Boosted   bool
}

// NewEngine creates an engine with a burn rate of one unit per second.
func NewEngine(force, fuel float64) *Engine {
	return &Engine{
		Force:       force,
		Fuel:        fuel,
		InitialFuel: fuel,
		BurnRate:    1,
	}
}

// Activate fires the engine if there is fuel left.
func (e *Engine) Activate() bool {
	if e.Fuel <= 0 {
		return false
	}
	e.Activated = true
	return true
}

// Deactivate cuts the engine.
func (e *Engine) Deactivate() {
	e.Activated = false
}

// Boost engages or releases the afterburner.
func (e *Engine) Boost(on bool) {
	switch {
	case on && !e.Boosted && e.Fuel > 0:
		e.Boosted = true
		e.Force *= boostFactor
		e.BurnRate *= boostFactor
	case !on && e.Boosted:
		e.Boosted = false
		e.Force /= boostFactor
		e.BurnRate /= boostFactor
	}
}

// Refuel fills the tank back to its initial level.
func (e *Engine) Refuel() {
	e.Fuel = e.InitialFuel
}

// Burn consumes fuel for dt seconds of activity, cutting out when empty.
func (e *Engine) Burn(dt float64) {
	if !e.Activated {
		return
	}
	e.Fuel = math.Max(e.Fuel-e.BurnRate*dt, 0)
	if e.Fuel == 0 {
		e.Deactivate()
	}
}
