// SPDX-License-Identifier: MIT

// Package gridgraph treats a rectangular 2D grid of integer cells as a
// weighted, undirected graph.
//
// What:
//
//   - GridGraph wraps a [][]int grid. Cells with value >= LandThreshold are
//     land, the rest is water.
//   - ToCoreGraph builds a *core.Graph over land cells only, joining
//     neighbors (Conn4 or Conn8) with unit-weight edges. Vertex IDs are "x,y"
//     (VertexID / ParseVertexID).
//   - Islands partitions the land into connected components with the
//     components engine.
//   - Route finds a shortest land route with A*, using ManhattanHeuristic
//     under Conn4 and ChebyshevHeuristic under Conn8.
//   - ExpandIsland finds the fewest water cells to convert so that two
//     islands touch, by running Dijkstra over the full grid.
//
// Complexity:
//
//   - ToCoreGraph, Islands: O(W×H×d), d = 4 or 8.
//   - Route, ExpandIsland:  O(W×H×d × log(W×H×d)).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadVertexID: an ID is not of the form "x,y" or lies outside the grid.
//   - ErrComponentIndex: requested island index out of range.
package gridgraph
