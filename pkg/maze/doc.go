// Package maze provides the data model for rectangular perfect mazes.
//
// # Overview
//
// A [Grid] is an R×C array of per-cell [WallMask] values. Each mask holds one
// bit per compass [Direction]; a set bit means a wall is present and there is
// no passage in that direction. A fresh grid from [New] has every wall set.
//
// Viewed as a graph, cells are vertices and an edge joins two adjacent cells
// iff the wall between them is absent. After carving (see the [carve]
// subpackage) this graph is a spanning tree: connected, acyclic, with exactly
// R*C-1 passages and one simple path between any two cells.
//
// # Entrance and Exit
//
// The entrance is always (0,0) and the exit is always (R-1, C-1). The exit's
// East wall is left open by the generator so drawings show an opening there.
//
// # Symmetry
//
// A passage is never one-directional: if (r,c) has its East bit clear then
// (r,c+1) has its West bit clear, and likewise for North/South. [Grid.ClearWall]
// touches a single cell, so callers that carve passages clear both sides (as
// [Grid.Open] does). [Grid.CheckSymmetry] verifies the invariant.
//
// # Concurrency
//
// Grid instances are not safe for concurrent mutation. Once carving is done a
// grid is treated as read-only, and concurrent readers are fine. Use
// [Grid.Clone] to give an independent search its own copy.
//
// [carve]: github.com/matzehuels/mazewalk/pkg/maze/carve
package maze
