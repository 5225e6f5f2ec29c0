package search

import (
	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze"
)

// Result is a completed traversal.
type Result struct {
	Mode         Mode
	Order        []maze.Cell  // visit order, entrance first, exit last
	Predecessors Predecessors // discovery tree
	Terminal     maze.Cell    // always the exit on success
	Path         maze.Path    // entrance to exit
}

// Visited returns the number of cells visited before the traversal stopped,
// the exit included.
func (r *Result) Visited() int { return len(r.Order) }

// Option configures [Run].
type Option func(*runConfig)

type runConfig struct {
	visit func(maze.Cell)
}

// WithVisit registers fn to be called with each cell as it is visited, in
// visit order.
func WithVisit(fn func(maze.Cell)) Option {
	return func(c *runConfig) { c.visit = fn }
}

// Run traverses g from its entrance until the exit is visited and returns the
// visit order together with the reconstructed path.
//
// It fails with INVALID_MODE for an unknown mode, NO_PATH_FOUND if the exit is
// unreachable, and DISCONNECTED_PATH if the discovery tree is inconsistent.
func Run(g *maze.Grid, mode Mode, opts ...Option) (*Result, error) {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	t, err := New(g, mode)
	if err != nil {
		return nil, err
	}
	for !t.Done() {
		c, err := t.Step()
		if err != nil {
			return nil, err
		}
		if cfg.visit != nil {
			cfg.visit(c)
		}
	}
	return t.Result()
}

// Result builds the final [Result] of a finished traversal. It fails with
// INVALID_INPUT if the traversal is still running, and with the traversal's
// own error if it ended without reaching the exit.
func (t *Traverser) Result() (*Result, error) {
	if !t.done {
		return nil, errors.New(errors.ErrCodeInvalidInput, "traversal still running with %d cells pending", t.Pending())
	}
	if t.err != nil {
		return nil, t.err
	}
	path, err := BuildPath(t.pred, t.terminal)
	if err != nil {
		return nil, err
	}
	return &Result{
		Mode:         t.mode,
		Order:        t.order,
		Predecessors: t.pred,
		Terminal:     t.terminal,
		Path:         path,
	}, nil
}

// Solve returns the entrance-to-exit path of g using breadth-first search.
func Solve(g *maze.Grid) (maze.Path, error) {
	res, err := Run(g, BreadthFirst)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}
