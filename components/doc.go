// SPDX-License-Identifier: MIT

// Package components partitions the vertices of a core.Graph into connected
// components using one of three interchangeable strategies:
//
//   - BFS:       breadth-first tree from each unvisited vertex (bfs.BFS)
//   - DFS:       depth-first tree from each unvisited vertex (dfs.DFS, explicit stack)
//   - UnionFind: one union per edge over a disjointset.DisjointSet
//
// All strategies return the same partition as unordered sets. Components are
// listed in order of their first vertex in storage order; the members of a BFS
// or DFS component appear in traversal order, UnionFind members in storage order.
// Use Equivalent to compare partitions independently of ordering.
//
// Edge cases:
//
//   - empty graph → empty, non-nil slice
//   - isolated vertices → one singleton component each
//   - nil graph → ErrNilGraph
//
// Complexity: O(V + E) for BFS and DFS (plus neighbor sorting), and
// O((V + E)·α(V)) for UnionFind.
package components
