package search

import (
	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze"
)

// Predecessors maps each discovered cell to the cell it was first reached
// from. The entrance maps to [maze.NoCell].
type Predecessors map[maze.Cell]maze.Cell

// Traverser is an incremental BFS/DFS over a grid's passages.
//
// The zero value is not usable - use [New]. A Traverser owns its frontier and
// maps and must not be shared between goroutines; the grid is only read.
type Traverser struct {
	grid *maze.Grid
	mode Mode

	frontier []maze.Cell
	head     int // queue start for BFS; unused for DFS

	discovered map[maze.Cell]struct{}
	pred       Predecessors
	depth      map[maze.Cell]int
	order      []maze.Cell

	done     bool
	terminal maze.Cell
	err      error
}

// New prepares a traversal of g from its entrance. The frontier starts with
// the entrance alone. It fails with INVALID_MODE for an unknown mode.
func New(g *maze.Grid, mode Mode) (*Traverser, error) {
	if !mode.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidMode, "unknown search mode %d", int(mode))
	}
	start := g.Entrance()
	return &Traverser{
		grid:       g,
		mode:       mode,
		frontier:   []maze.Cell{start},
		discovered: map[maze.Cell]struct{}{start: {}},
		pred:       Predecessors{start: maze.NoCell},
		depth:      map[maze.Cell]int{start: 0},
		terminal:   maze.NoCell,
	}, nil
}

// Mode returns the traversal mode.
func (t *Traverser) Mode() Mode { return t.mode }

// Done reports whether the traversal has finished, by reaching the exit or by
// running out of cells.
func (t *Traverser) Done() bool { return t.done }

// Err returns NO_PATH_FOUND if the frontier emptied before the exit was
// visited, nil otherwise.
func (t *Traverser) Err() error { return t.err }

// Terminal returns the cell the traversal stopped at, or [maze.NoCell] if it
// has not reached the exit.
func (t *Traverser) Terminal() maze.Cell { return t.terminal }

// Order returns the cells visited so far, in visit order. The slice is shared
// with the traverser and must not be modified.
func (t *Traverser) Order() []maze.Cell { return t.order }

// Predecessors returns the predecessor map built so far. It must not be
// modified.
func (t *Traverser) Predecessors() Predecessors { return t.pred }

// Depth returns the number of passages between the entrance and c, for cells
// discovered so far.
func (t *Traverser) Depth(c maze.Cell) (int, bool) {
	d, ok := t.depth[c]
	return d, ok
}

// Pending returns the number of cells waiting in the frontier.
func (t *Traverser) Pending() int { return len(t.frontier) - t.head }

// Step removes one cell from the frontier, records it as visited and, unless
// it is the exit, schedules its undiscovered open neighbors in North, East,
// South, West order. It returns the visited cell.
//
// When the frontier is already empty Step marks the traversal done with
// NO_PATH_FOUND and returns that error. Once done, Step returns
// [maze.NoCell] and the final error without doing anything.
func (t *Traverser) Step() (maze.Cell, error) {
	if t.done {
		return maze.NoCell, t.err
	}
	if t.Pending() == 0 {
		t.done = true
		t.err = errors.New(errors.ErrCodeNoPathFound,
			"exit %s unreachable from entrance %s after visiting %d cells",
			t.grid.Exit(), t.grid.Entrance(), len(t.order))
		return maze.NoCell, t.err
	}

	cur := t.pop()
	t.order = append(t.order, cur)
	if cur == t.grid.Exit() {
		t.done = true
		t.terminal = cur
		return cur, nil
	}

	mask, err := t.grid.Mask(cur)
	if err != nil {
		t.done = true
		t.err = err
		return maze.NoCell, err
	}
	for _, d := range maze.Directions {
		if mask.Has(d) {
			continue
		}
		n := cur.Step(d)
		if !t.grid.Contains(n) {
			continue
		}
		if _, seen := t.discovered[n]; seen {
			continue
		}
		t.discovered[n] = struct{}{}
		t.pred[n] = cur
		t.depth[n] = t.depth[cur] + 1
		t.frontier = append(t.frontier, n)
	}
	return cur, nil
}

func (t *Traverser) pop() maze.Cell {
	if t.mode == BreadthFirst {
		c := t.frontier[t.head]
		t.head++
		// Reclaim the consumed prefix once it dominates the slice.
		if t.head > 64 && t.head*2 > len(t.frontier) {
			t.frontier = append(t.frontier[:0], t.frontier[t.head:]...)
			t.head = 0
		}
		return c
	}
	last := len(t.frontier) - 1
	c := t.frontier[last]
	t.frontier = t.frontier[:last]
	return c
}
