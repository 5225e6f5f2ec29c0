package search

import (
	"github.com/matzehuels/mazewalk/pkg/errors"
)

// Mode selects the frontier discipline.
type Mode int

const (
	// BreadthFirst uses a FIFO queue.
	BreadthFirst Mode = iota
	// DepthFirst uses a LIFO stack.
	DepthFirst
)

// Mode names accepted by [ParseMode].
const (
	ModeBFS = "bfs"
	ModeDFS = "dfs"
)

// Modes lists all supported modes.
var Modes = []Mode{BreadthFirst, DepthFirst}

// String returns "bfs" or "dfs".
func (m Mode) String() string {
	switch m {
	case BreadthFirst:
		return ModeBFS
	case DepthFirst:
		return ModeDFS
	}
	return "unknown"
}

// Title returns a human-readable name for the mode.
func (m Mode) Title() string {
	switch m {
	case BreadthFirst:
		return "breadth-first"
	case DepthFirst:
		return "depth-first"
	}
	return "unknown"
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m == BreadthFirst || m == DepthFirst }

// ParseMode converts "bfs" or "dfs" to a Mode.
// It fails with INVALID_MODE for anything else.
func ParseMode(s string) (Mode, error) {
	switch s {
	case ModeBFS:
		return BreadthFirst, nil
	case ModeDFS:
		return DepthFirst, nil
	}
	return 0, errors.ValidateChoice(errors.ErrCodeInvalidMode, "mode", s, ModeBFS, ModeDFS)
}
