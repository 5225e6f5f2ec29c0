// Package render draws mazes and their traversals.
//
// # Overview
//
// Renderers are read-only consumers of a [maze.Grid]: they never modify walls.
// Each one accepts the same functional options, so a single option list can be
// shared across formats:
//
//	opts := []render.Option{
//	    render.WithVisits(result.Order),
//	    render.WithPath(result.Path),
//	}
//	txt := render.Text(g, opts...)
//	svg := render.SVG(g, opts...)
//	data, err := render.JSON(g, opts...)
//
// # Drawing Conventions
//
// The entrance (0,0) is drawn with its West side open and the exit is drawn
// with its East side open, so both openings are visible on the outer border.
// Path marks take precedence over visit marks.
//
// The SVG output follows a fixed palette: black background, white walls, red
// visit dots and a lime solution line. Wall length is 95% of the canvas size
// divided by the longer side of the maze.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert SVG documents with the external rsvg-convert
// tool (from librsvg):
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the passage tree as a Graphviz graph.
//
// [nodelink]: github.com/matzehuels/mazewalk/pkg/render/nodelink
package render
