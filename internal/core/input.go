package core

// Action represents a semantic control intent, abstracted from physical key presses.
// Scripted scenarios and the command layer both speak in actions.
type Action int

const (
	ActionNone    Action = iota
	ActionThrust         // fire the main engine
	ActionBoost          // afterburner, multiplies engine force while held
	ActionShield         // toggle the shield request
	ActionEMP            // trigger an EMP pulse
	ActionTakeoff        // lift off a landing pad
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionBoost:
		return "Boost"
	case ActionShield:
		return "Shield"
	case ActionEMP:
		return "EMP"
	case ActionTakeoff:
		return "Takeoff"
	default:
		return "Unknown"
	}
}

// InputFrame represents the control state during one simulation tick.
// It contains all actions that were triggered during this frame and the
// requested heading of the lander.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Heading is the requested lander angle in radians, 0 pointing up and
	// positive angles tilting left. Nil keeps the current angle.
	Heading *float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetHeading requests a lander angle for this frame.
func (f *InputFrame) SetHeading(rad float64) {
	f.Heading = &rad
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Heading = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Heading != nil {
		clone.SetHeading(*f.Heading)
	}
	return clone
}
