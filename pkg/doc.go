// Package pkg provides the core libraries for Mazewalk maze generation and solving.
//
// # Overview
//
// Mazewalk carves rectangular perfect mazes with a randomized depth-first
// generator, then walks them from the entrance (0,0) to the exit with
// breadth-first or depth-first search. The pkg directory is organized into:
//
//  1. [maze] - Grid data model (cells, wall masks, directions, paths)
//  2. [maze/carve] - Randomized DFS generator and seedable randomness
//  3. [maze/search] - Step-wise BFS/DFS traversal and path reconstruction
//  4. [render] - Text, SVG, JSON, DOT, PNG and PDF output
//  5. [pipeline] - Orchestration (generate → search → render)
//  6. [cache], [observability], [errors], [buildinfo] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through Mazewalk:
//
//	rows, columns, seed
//	         ↓
//	    [maze/carve] package (spanning tree over the grid)
//	         ↓
//	    [maze/search] package (visit order + predecessors)
//	         ↓
//	    [render] package (walls, visit marks, solution path)
//	         ↓
//	    TXT/SVG/JSON/DOT/PNG/PDF output
//
// # Quick Start
//
// Carve a maze and solve it directly:
//
//	import (
//	    "github.com/matzehuels/mazewalk/pkg/maze/carve"
//	    "github.com/matzehuels/mazewalk/pkg/maze/search"
//	    "github.com/matzehuels/mazewalk/pkg/render"
//	)
//
//	g, _, _ := carve.NewMaze(20, 30, carve.NewSeeded(42))
//	res, _ := search.Run(g, search.BreadthFirst)
//	fmt.Print(render.Text(g, render.WithPath(res.Path)))
//
// Or let the pipeline do all three stages:
//
//	runner := pipeline.NewRunner(logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Rows:    20,
//	    Columns: 30,
//	    Mode:    "dfs",
//	    Formats: []string{"svg", "json"},
//	})
//
// # Determinism
//
// A (rows, columns, seed) triple always yields the same maze, so every
// [pipeline.Result] reports its seed. Searches are deterministic for a given
// grid: neighbor order is fixed at North, East, South, West.
//
// # Concurrency
//
// Grids are read-only once carved. [pipeline.Runner.Compare] runs BFS and DFS
// concurrently, each on its own clone, and the [cache] implementations are
// safe for use from HTTP handlers.
package pkg
