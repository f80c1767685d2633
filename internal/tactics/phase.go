// Package tactics provides the selection and move lifecycle that gates
// player commands on the tactical board.
package tactics

// Phase represents the current state of the selection lifecycle.
type Phase int

const (
	// PhaseIdle - nothing selected, waiting for a unit to be activated.
	PhaseIdle Phase = iota
	// PhaseSelected - a unit is selected and its reachable cells are shown.
	PhaseSelected
	// PhaseMoving - a committed move is settling; all input is dropped.
	PhaseMoving
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSelected:
		return "selected"
	case PhaseMoving:
		return "moving"
	default:
		return "unknown"
	}
}
