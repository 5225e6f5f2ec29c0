// Package nodelink renders a maze's passage graph as a node-link diagram.
//
// # Overview
//
// A carved maze is a spanning tree over its cells. This package draws that
// tree with Graphviz: one node per cell, one edge per open passage. The
// entrance and exit are drawn as double circles and the solution path, if
// given, is highlighted.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Path: path})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # DOT Format
//
// The generated graph is undirected and laid out top to bottom from the
// entrance. Node IDs are "r,c" and labels show the coordinates.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
