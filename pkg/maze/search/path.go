package search

import (
	"slices"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze"
)

// BuildPath reconstructs the route from the entrance to terminal by following
// pred backwards and reversing the result. The first element is always the
// entrance (0,0) and the last is terminal.
//
// It fails with DISCONNECTED_PATH when a cell on the chain has no recorded
// predecessor, when the chain ends at a root other than the entrance, or when
// the chain loops.
func BuildPath(pred Predecessors, terminal maze.Cell) (maze.Path, error) {
	var entrance maze.Cell // always (0,0)

	path := maze.Path{terminal}
	cur := terminal
	for {
		p, ok := pred[cur]
		if !ok {
			return nil, errors.New(errors.ErrCodeDisconnectedPath,
				"no predecessor recorded for %s", cur)
		}
		if p == maze.NoCell {
			if cur != entrance {
				return nil, errors.New(errors.ErrCodeDisconnectedPath,
					"chain from %s ends at %s, not the entrance", terminal, cur)
			}
			break
		}
		if len(path) > len(pred) {
			return nil, errors.New(errors.ErrCodeDisconnectedPath,
				"predecessor chain from %s contains a cycle", terminal)
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)
	return path, nil
}
