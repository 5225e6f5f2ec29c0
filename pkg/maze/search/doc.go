// Package search finds the path from a maze's entrance to its exit.
//
// # Traversal
//
// A [Traverser] walks the passage graph of a [maze.Grid] from the entrance,
// using a FIFO queue for [BreadthFirst] and a LIFO stack for [DepthFirst].
// Each cell is scheduled at most once: it is marked discovered and its
// predecessor recorded when it is first added to the frontier. The walk stops
// the moment the exit is removed from the frontier, even if other cells are
// still pending.
//
// [Traverser.Step] advances one visit at a time so callers can stream the
// visitation order (for animation, say) without the core ever sleeping or
// blocking. [Run] drives a traverser to completion, optionally calling a
// visit callback, and reconstructs the path.
//
// # Paths
//
// [BuildPath] follows the predecessor chain back from a terminal cell to the
// entrance and reverses it. On a carved maze the passage graph is a tree, so
// the path is the unique entrance→exit route and is the same for both modes.
// The modes differ only in visitation order: BFS visits cells in
// non-decreasing distance from the entrance, DFS may wander down unrelated
// branches first.
//
// # Errors
//
// A grid that did not come from the generator may not connect entrance and
// exit. Traversal then fails with NO_PATH_FOUND; a predecessor chain that does
// not lead back to the entrance fails with DISCONNECTED_PATH.
package search
