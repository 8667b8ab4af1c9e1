// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search on core.Graph with an explicit
// stack, so traversal depth is bounded by heap memory rather than goroutine
// stack size.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root, or the full forest via WithFullTraversal
//   - Order (pre-order discovery) and Finish (post-order) sequences
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - FindCycle / HasCycle: undirected cycle detection (self-loops count as cycles)
//
// Neighbors are expanded in ascending ID order, so the traversal reproduces
// exactly what a recursive DFS over core.Graph.NeighborIDs would produce.
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V) for the stack frames and result maps.
//
// Options:
//
//   - WithOnVisit(fn)           pre-order hook; error aborts traversal.
//   - WithOnExit(fn)            post-order hook; error aborts traversal.
//   - WithMaxDepth(limit)       stop expanding beyond the given depth (>= 0).
//   - WithFilterNeighbor(fn)    filters neighbor IDs; return false to skip.
//   - WithFullTraversal()       restart from every unvisited vertex in storage order.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
