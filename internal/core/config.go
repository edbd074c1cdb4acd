package core

// RuntimeConfig contains configuration passed to a simulation at initialization.
// Simulations use this for fixed-step timing and deterministic spawning.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in the command layer
	}
}

// DeltaTime returns the fixed step length in seconds.
func (c RuntimeConfig) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TickRate)
}

// Outcome describes how a run stands after a tick.
type Outcome string

const (
	OutcomeRunning  Outcome = "running"
	OutcomeLanded   Outcome = "landed"
	OutcomeDead     Outcome = "dead"
	OutcomeSurvived Outcome = "survived" // ran out of ticks with the craft intact
)

// Done reports whether the run has ended.
func (o Outcome) Done() bool {
	return o == OutcomeLanded || o == OutcomeDead
}

// StepResult is returned by Simulation.Step after each tick.
// It summarises what happened during the tick.
type StepResult struct {
	Tick       int
	Collisions int
	Deaths     int
	Rescued    int
	Landed     bool
	Shake      bool
	Outcome    Outcome
}
