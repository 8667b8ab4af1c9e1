// SPDX-License-Identifier: MIT

// Package wgraph is an in-memory toolkit for weighted, undirected graphs:
// one graph store and the classic algorithms that read it.
//
// What is inside:
//
//	core/         graph store: vertices, symmetric weighted edges, queries
//	disjointset/  union-find with path compression and union by size
//	pqueue/       min priority queue used with lazy invalidation
//	bfs/, dfs/    single-source traversals (order, depth, parents)
//	components/   connected components: BFS, DFS and union-find strategies
//	prim_kruskal/ minimum spanning trees and forests
//	dijkstra/     single-source Dijkstra with distance and predecessor maps
//	matrix/       dense matrices and the Floyd-Warshall closure
//	shortestpath/ point-to-point paths: Dijkstra, Bellman-Ford, Floyd-Warshall, A*
//	builder/      deterministic graph generators for tests and benchmarks
//	gridgraph/    2D grids as graphs: islands, A* routes, island bridging
//	cmd/wgraph/   command-line front end over all of the above
//
// Quick example, the graph used throughout the package docs:
//
//	A─B(4), B─C(3), B─D(2), D─A(1), A─C(2)
//
// is one connected component, its minimum spanning tree weighs 6
// (D─A, B─D, A─C), and the shortest A→B route is A→D→B with weight 3.
//
// Every algorithm allocates its own working state per call, so independent
// calls never share mutable data. The graph itself is not meant to be
// mutated while an algorithm is reading it.
package wgraph
