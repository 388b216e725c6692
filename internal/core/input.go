package core

// Action represents a semantic game action, abstracted from physical key presses.
// The engine only understands the four movement actions; the rest drive the
// presentation layer.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionPause             // P, Escape - toggle pause
	ActionNewGame           // N - start a fresh game
	ActionConfirm           // Enter
	ActionScoreboard        // Tab
	ActionQuit              // Q, Ctrl+C
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
	case ActionPause:
		return "Pause"
	case ActionNewGame:
		return "NewGame"
	case ActionConfirm:
		return "Confirm"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four movement directions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}
