// Package viewer provides the interactive terminal front end: it generates
// or loads dungeons, runs the solvers, and renders the result.
package viewer

// SolveMode selects which pathfinder the viewer runs.
type SolveMode int

const (
	// ModeBasic runs the plain breadth-first search; doors always block.
	ModeBasic SolveMode = iota
	// ModeKeys runs the key-aware search that can open doors.
	ModeKeys
)

// String returns a human-readable mode name.
func (m SolveMode) String() string {
	switch m {
	case ModeBasic:
		return "basic"
	case ModeKeys:
		return "keys"
	default:
		return "unknown"
	}
}
