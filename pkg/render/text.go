package render

import (
	"strings"

	"github.com/matzehuels/mazewalk/pkg/maze"
)

var cellBodies = map[Mark]string{
	MarkNone:  "   ",
	MarkVisit: " . ",
	MarkPath:  " * ",
}

// Text draws g as ASCII art, one "+---+" box per cell:
//
//	+---+---+
//	        |
//	+   +   +
//	|   |
//	+---+---+
//
// Visited cells contain "." and path cells "*".
func Text(g *maze.Grid, opts ...Option) string {
	o := newOptions(opts)
	marks := o.marks()
	style := o.markStyle
	if style == nil {
		style = func(_ Mark, s string) string { return s }
	}

	var b strings.Builder
	for r := range g.Rows() {
		// Top border of the row.
		for c := range g.Columns() {
			b.WriteByte('+')
			if wall(g, maze.Cell{Row: r, Col: c}, maze.North) {
				b.WriteString("---")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString("+\n")

		// Cell bodies with West walls, plus the East wall of the last column.
		for c := range g.Columns() {
			cell := maze.Cell{Row: r, Col: c}
			if cell != g.Entrance() && wall(g, cell, maze.West) {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			mark := marks[cell]
			b.WriteString(style(mark, cellBodies[mark]))
		}
		if wall(g, maze.Cell{Row: r, Col: g.Columns() - 1}, maze.East) {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	last := g.Rows() - 1
	for c := range g.Columns() {
		b.WriteByte('+')
		if wall(g, maze.Cell{Row: last, Col: c}, maze.South) {
			b.WriteString("---")
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString("+\n")
	return b.String()
}

// wall reports whether c has a wall on side d. Cells are always in range for
// the renderers, so lookup errors read as a standing wall.
func wall(g *maze.Grid, c maze.Cell, d maze.Direction) bool {
	has, err := g.HasWall(c, d)
	return err != nil || has
}
