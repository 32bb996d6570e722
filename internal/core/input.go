package core

// Action is a semantic input intent, abstracted from physical key
// presses. The platform maps keys to actions; the driver consumes
// actions without knowing the input source.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, k - tilt up
	ActionDown           // S, Down arrow, j - tilt down
	ActionLeft           // A, Left arrow, h - tilt left
	ActionRight          // D, Right arrow, l - tilt right
	ActionRestart        // R - start a new game
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
