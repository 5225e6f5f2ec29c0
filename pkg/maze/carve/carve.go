// Package carve turns a fully walled [maze.Grid] into a perfect maze.
//
// # Algorithm
//
// [Generate] runs a randomized depth-first "growing tree" walk from the
// entrance. At every cell it draws a fresh ordering of the four directions
// from a [Source] and, for each direction in turn, opens a passage into the
// neighbor if that neighbor is inside the grid and not yet visited, then
// continues carving from the neighbor before trying the next direction.
//
// The exit cell is special: when first reached it is marked visited and
// connected, but carving does not continue from it. Other branches may still
// reach its remaining neighbors later. This skews the distribution of
// solution lengths and is kept on purpose so mazes match the established
// generator cell for cell.
//
// After carving, the exit's East wall is cleared unconditionally so the maze
// always has an opening on the boundary there.
//
// # Stack Depth
//
// A maze can degenerate into a single corridor of rows*columns cells.
// Generate therefore keeps an explicit stack of frames (cell, shuffled
// directions, next index) instead of recursing, so depth is bounded only by
// memory.
package carve

import (
	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze"
)

// frame is a pending "resume carving from cell" record. It mirrors one level
// of the recursive formulation: dirs is drawn when the frame is pushed and
// next is the index of the direction to try when the frame is resumed.
type frame struct {
	cell maze.Cell
	dirs [4]maze.Direction
	next int
}

// Stats summarizes a carving run.
type Stats struct {
	Passages     int // passages opened between cells
	MaxDepth     int // deepest frame stack reached
	Permutations int // direction orderings drawn from the source
}

// Generate carves a spanning tree into g, which must be fully walled.
// Afterwards g has exactly Size()-1 passages and one simple path between any
// two cells, and the exit's East wall is open.
//
// It fails with INVALID_INPUT if g already has passages, since carving over
// an existing maze would create loops.
func Generate(g *maze.Grid, src Source) (Stats, error) {
	if src == nil {
		return Stats{}, errors.New(errors.ErrCodeInvalidInput, "carve: nil source")
	}
	if g.Passages() != 0 {
		return Stats{}, errors.New(errors.ErrCodeInvalidInput, "carve: grid already has %d passages", g.Passages())
	}

	var stats Stats
	exit := g.Exit()
	visited := make(map[maze.Cell]struct{}, g.Size())
	visited[g.Entrance()] = struct{}{}

	push := func(stack []frame, c maze.Cell) []frame {
		stats.Permutations++
		stack = append(stack, frame{cell: c, dirs: src.Permutation()})
		stats.MaxDepth = max(stats.MaxDepth, len(stack))
		return stack
	}

	stack := push(nil, g.Entrance())
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		from := top.cell
		to := from.Step(d)
		if !g.Contains(to) {
			continue
		}
		if _, seen := visited[to]; seen {
			continue
		}
		visited[to] = struct{}{}
		if err := g.Open(from, d); err != nil {
			return stats, err
		}
		stats.Passages++

		if to != exit {
			// top is invalidated once the stack grows.
			stack = push(stack, to)
		}
	}

	if err := g.ClearWall(exit, maze.East); err != nil {
		return stats, err
	}
	return stats, nil
}

// NewMaze allocates a rows x columns grid and carves it with src.
func NewMaze(rows, columns int, src Source) (*maze.Grid, Stats, error) {
	g, err := maze.New(rows, columns)
	if err != nil {
		return nil, Stats{}, err
	}
	stats, err := Generate(g, src)
	if err != nil {
		return nil, stats, err
	}
	return g, stats, nil
}
