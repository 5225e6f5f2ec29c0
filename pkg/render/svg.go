package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/mazewalk/pkg/maze"
)

// Palette and geometry of the SVG output.
const (
	ColorBackground = "black"
	ColorWall       = "white"
	ColorVisit      = "red"
	ColorPath       = "lime"

	svgOrigin    = 10.0
	wallFraction = 0.95
)

// Geometry describes where cells land on the SVG canvas.
type Geometry struct {
	Origin float64 // offset of the maze from the top-left corner
	Wall   float64 // side length of one cell
	Width  float64 // canvas width
	Height float64 // canvas height
}

// Layout computes the SVG geometry of g for a canvas of size pixels.
func Layout(g *maze.Grid, size float64) Geometry {
	side := max(g.Rows(), g.Columns())
	w := wallFraction * size / float64(side)
	return Geometry{
		Origin: svgOrigin,
		Wall:   w,
		Width:  2*svgOrigin + w*float64(g.Columns()),
		Height: 2*svgOrigin + w*float64(g.Rows()),
	}
}

// Center returns the canvas coordinates of the middle of c.
func (geo Geometry) Center(c maze.Cell) (x, y float64) {
	return geo.Origin + (float64(c.Col)+0.5)*geo.Wall, geo.Origin + (float64(c.Row)+0.5)*geo.Wall
}

// SVG draws g as an SVG document. Visits are drawn as dots of radius wall/5,
// the path as a line through the cell centers.
func SVG(g *maze.Grid, opts ...Option) []byte {
	o := newOptions(opts)
	geo := Layout(g, o.size)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		geo.Width, geo.Height, geo.Width, geo.Height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", ColorBackground)

	renderWalls(&buf, g, geo)
	if len(o.visits) > 0 {
		renderVisits(&buf, o.visits, geo)
	}
	if len(o.path) > 0 {
		renderPath(&buf, o.path, geo)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderWalls(buf *bytes.Buffer, g *maze.Grid, geo Geometry) {
	stroke := max(geo.Wall/10, 1)
	fmt.Fprintf(buf, `  <g id="walls" stroke="%s" stroke-width="%.2f" stroke-linecap="square">`+"\n", ColorWall, stroke)

	line := func(x1, y1, x2, y2 float64) {
		fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", x1, y1, x2, y2)
	}
	lastRow, lastCol := g.Rows()-1, g.Columns()-1
	for r := range g.Rows() {
		for c := range g.Columns() {
			cell := maze.Cell{Row: r, Col: c}
			x := geo.Origin + float64(c)*geo.Wall
			y := geo.Origin + float64(r)*geo.Wall
			if wall(g, cell, maze.North) {
				line(x, y, x+geo.Wall, y)
			}
			if cell != g.Entrance() && wall(g, cell, maze.West) {
				line(x, y, x, y+geo.Wall)
			}
			if c == lastCol && wall(g, cell, maze.East) {
				line(x+geo.Wall, y, x+geo.Wall, y+geo.Wall)
			}
			if r == lastRow && wall(g, cell, maze.South) {
				line(x, y+geo.Wall, x+geo.Wall, y+geo.Wall)
			}
		}
	}
	buf.WriteString("  </g>\n")
}

func renderVisits(buf *bytes.Buffer, visits []maze.Cell, geo Geometry) {
	fmt.Fprintf(buf, `  <g id="visits" fill="%s">`+"\n", ColorVisit)
	for i, c := range visits {
		x, y := geo.Center(c)
		fmt.Fprintf(buf, `    <circle cx="%.2f" cy="%.2f" r="%.2f" data-step="%d"/>`+"\n", x, y, geo.Wall/5, i)
	}
	buf.WriteString("  </g>\n")
}

func renderPath(buf *bytes.Buffer, path maze.Path, geo Geometry) {
	fmt.Fprintf(buf, `  <polyline id="path" fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round" stroke-linejoin="round" points="`,
		ColorPath, geo.Wall/5)
	for i, c := range path {
		if i > 0 {
			buf.WriteByte(' ')
		}
		x, y := geo.Center(c)
		fmt.Fprintf(buf, "%.2f,%.2f", x, y)
	}
	buf.WriteString(`"/>` + "\n")
}
