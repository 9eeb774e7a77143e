package core

// Action represents a semantic game action, abstracted from physical key
// presses, mouse clicks and on-screen buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, "Left" button - move paddle left
	ActionRight          // Right arrow, D, "Right" button - move paddle right
	ActionStop           // Down arrow, S - stop the paddle
	ActionPause          // Space, P, "Pause" button - pause/resume
	ActionUp             // Up arrow, W, K - menu navigation
	ActionDown           // Down arrow, J - menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - play again after a terminal state
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStop:
		return "Stop"
	case ActionPause:
		return "Pause"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns -1 for ActionLeft, +1 for ActionRight and 0 otherwise.
func (a Action) Direction() int {
	switch a {
	case ActionLeft:
		return -1
	case ActionRight:
		return 1
	}
	return 0
}

// InputEvent is a discrete press or release of an action.
// Only directional actions carry meaningful releases.
type InputEvent struct {
	Action   Action
	Released bool
}

// Press creates a press event for the action.
func Press(a Action) InputEvent {
	return InputEvent{Action: a}
}

// Release creates a release event for the action.
func Release(a Action) InputEvent {
	return InputEvent{Action: a, Released: true}
}
