package maze

import (
	"fmt"

	"github.com/matzehuels/mazewalk/pkg/errors"
)

// Cell is a (row, column) position, 0-indexed.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoCell is the "none" sentinel used where a cell has no predecessor.
var NoCell = Cell{Row: -1, Col: -1}

// String formats the cell as "(row,col)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Step returns the cell one step away in direction d. The result may lie
// outside any grid; use [Grid.Contains] to check.
func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Offset()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Path is an ordered sequence of cells from entrance to exit, inclusive.
type Path []Cell

// Len returns the number of moves along the path (cells minus one).
// An empty path has length 0.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Grid is an R×C array of wall masks stored row-major.
//
// The zero value is not usable - use [New] or [FromMasks].
type Grid struct {
	rows  int
	cols  int
	cells []WallMask
}

// New creates a fully walled grid with the given dimensions.
// It fails with INVALID_DIMENSIONS if rows < 1 or columns < 1.
func New(rows, columns int) (*Grid, error) {
	if err := errors.ValidateDimensions(rows, columns, 0); err != nil {
		return nil, err
	}
	if rows*columns/columns != rows {
		return nil, errors.New(errors.ErrCodeInvalidDimensions, "maze of %dx%d cells is too large", rows, columns)
	}
	cells := make([]WallMask, rows*columns)
	for i := range cells {
		cells[i] = AllWalls
	}
	return &Grid{rows: rows, cols: columns, cells: cells}, nil
}

// FromMasks builds a grid from explicit per-cell masks, one slice per row.
// All rows must have the same non-zero length. The masks are copied and not
// checked for symmetry; this is how grids that did not come from the
// generator (hand-built fixtures, deliberately broken mazes) are constructed.
func FromMasks(masks [][]WallMask) (*Grid, error) {
	if len(masks) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDimensions, "rows must be at least 1, got 0")
	}
	g, err := New(len(masks), len(masks[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range masks {
		if len(row) != g.cols {
			return nil, errors.New(errors.ErrCodeInvalidDimensions, "row %d has %d columns, want %d", r, len(row), g.cols)
		}
		for c, m := range row {
			g.cells[r*g.cols+c] = m & AllWalls
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.cols }

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// Entrance returns the fixed entrance cell (0,0).
func (g *Grid) Entrance() Cell { return Cell{} }

// Exit returns the fixed exit cell (R-1, C-1).
func (g *Grid) Exit() Cell { return Cell{Row: g.rows - 1, Col: g.cols - 1} }

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

func (g *Grid) index(c Cell) (int, error) {
	if !g.Contains(c) {
		return 0, errors.New(errors.ErrCodeOutOfBounds, "cell %s outside %dx%d grid", c, g.rows, g.cols)
	}
	return c.Row*g.cols + c.Col, nil
}

// Mask returns the wall mask of c. It fails with OUT_OF_BOUNDS for cells
// outside the grid.
func (g *Grid) Mask(c Cell) (WallMask, error) {
	i, err := g.index(c)
	if err != nil {
		return 0, err
	}
	return g.cells[i], nil
}

// HasWall reports whether c has a wall on side d.
// It fails with OUT_OF_BOUNDS for cells outside the grid.
func (g *Grid) HasWall(c Cell, d Direction) (bool, error) {
	m, err := g.Mask(c)
	if err != nil {
		return false, err
	}
	return m.Has(d), nil
}

// ClearWall removes the wall on side d of c only. Clearing an already clear
// wall is a no-op. It fails with OUT_OF_BOUNDS for cells outside the grid.
func (g *Grid) ClearWall(c Cell, d Direction) error {
	i, err := g.index(c)
	if err != nil {
		return err
	}
	g.cells[i] = g.cells[i].Without(d)
	return nil
}

// Open carves a passage from c in direction d, clearing the wall on c and the
// opposite wall on the neighbor so the passage stays symmetric. Both cells
// must lie inside the grid.
func (g *Grid) Open(c Cell, d Direction) error {
	n := c.Step(d)
	if !g.Contains(n) {
		return errors.New(errors.ErrCodeOutOfBounds, "cannot open %s from %s: neighbor %s outside grid", d, c, n)
	}
	if err := g.ClearWall(c, d); err != nil {
		return err
	}
	return g.ClearWall(n, d.Opposite())
}

// Neighbors returns the in-grid cells reachable from c through open walls,
// in [Directions] order. Open boundary walls (such as the exit's East side)
// are skipped. Cells outside the grid have no neighbors.
func (g *Grid) Neighbors(c Cell) []Cell {
	m, err := g.Mask(c)
	if err != nil {
		return nil
	}
	var out []Cell
	for _, d := range Directions {
		if m.Has(d) {
			continue
		}
		if n := c.Step(d); g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Passages counts the open walls between pairs of in-grid cells.
// Each passage is counted once. A correctly carved grid has Size()-1.
func (g *Grid) Passages() int {
	count := 0
	for r := range g.rows {
		for c := range g.cols {
			m := g.cells[r*g.cols+c]
			if c+1 < g.cols && !m.East() {
				count++
			}
			if r+1 < g.rows && !m.South() {
				count++
			}
		}
	}
	return count
}

// CheckSymmetry returns an error naming the first pair of adjacent cells whose
// shared wall is open on one side only, or nil if every passage is two-way.
func (g *Grid) CheckSymmetry() error {
	for r := range g.rows {
		for c := range g.cols {
			cell := Cell{Row: r, Col: c}
			for _, d := range []Direction{East, South} {
				n := cell.Step(d)
				if !g.Contains(n) {
					continue
				}
				if g.cells[r*g.cols+c].Has(d) != g.cells[n.Row*g.cols+n.Col].Has(d.Opposite()) {
					return errors.New(errors.ErrCodeInternal, "one-way wall between %s and %s", cell, n)
				}
			}
		}
	}
	return nil
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]WallMask, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Masks returns a copy of the wall masks, one slice per row.
func (g *Grid) Masks() [][]WallMask {
	out := make([][]WallMask, g.rows)
	for r := range out {
		out[r] = make([]WallMask, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}
