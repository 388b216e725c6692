package engine

// Status is the stored part of the game state. Game over is not a status:
// it is computed from the bear (missing, or out of lives).
type Status int

const (
	StatusPaused Status = iota
	StatusRunning
)

// String returns the status name shown by the presentation layer.
func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "PAUSED"
	case StatusRunning:
		return "RUNNING"
	default:
		return "UNKNOWN"
	}
}
