package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Path is highlighted when non-empty.
	Path maze.Path

	// Positioned pins each node to its grid position so the diagram keeps
	// the maze's shape. Only layout engines that honor "pos" (neato, fdp)
	// respect it.
	Positioned bool
}

// ToDOT converts the passages of g to Graphviz DOT source.
// The resulting string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(g *maze.Grid, opts Options) string {
	onPath := make(map[maze.Cell]int, len(opts.Path))
	for i, c := range opts.Path {
		onPath[c] = i
	}
	pathEdge := func(a, b maze.Cell) bool {
		i, ok := onPath[a]
		j, ok2 := onPath[b]
		return ok && ok2 && (i-j == 1 || j-i == 1)
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10, width=0.4, fixedsize=true];\n")
	buf.WriteString("  edge [penwidth=1.5];\n")
	buf.WriteString("  ranksep=0.3;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	for r := range g.Rows() {
		for c := range g.Columns() {
			cell := maze.Cell{Row: r, Col: c}
			attrs := []string{fmt.Sprintf("label=%q", fmt.Sprintf("%d,%d", r, c))}
			if cell == g.Entrance() || cell == g.Exit() {
				attrs = append(attrs, "shape=doublecircle")
			}
			if _, ok := onPath[cell]; ok {
				attrs = append(attrs, "fillcolor="+render.ColorPath)
			}
			if opts.Positioned {
				attrs = append(attrs, fmt.Sprintf("pos=\"%d,%d!\"", c, -r))
			}
			fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(cell), strings.Join(attrs, ", "))
		}
	}

	buf.WriteString("\n")
	for r := range g.Rows() {
		for c := range g.Columns() {
			cell := maze.Cell{Row: r, Col: c}
			for _, d := range []maze.Direction{maze.East, maze.South} {
				n := cell.Step(d)
				if !g.Contains(n) {
					continue
				}
				if has, err := g.HasWall(cell, d); err != nil || has {
					continue
				}
				if pathEdge(cell, n) {
					fmt.Fprintf(&buf, "  %q -- %q [color=%s, penwidth=4];\n", nodeID(cell), nodeID(n), render.ColorPath)
				} else {
					fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(cell), nodeID(n))
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(c maze.Cell) string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based svg header with a
// pixel-sized one whose viewBox starts at the origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
