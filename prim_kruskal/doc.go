// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning trees and forests of an
// undirected, weighted *core.Graph with Kruskal's and Prim's algorithms.
//
// What & Why
//
//	A minimum spanning forest picks, for every connected component, a
//	subset of edges that connects the component without cycles and has the
//	least total weight. A disconnected graph yields a forest, never an error.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//     Sort all edges ascending by weight, ties by canonical (From, To); scan
//     them with a disjointset.DisjointSet over all vertices and accept an edge
//     iff its endpoints lie in different sets. Stops once |V|−1 edges are
//     accepted. Covers every component.
//     Time O(E log E), memory O(V + E).
//
//   - Prim(g, root) ([]core.Edge, float64, error)
//     Grow one tree from root (first vertex in storage order when root is "")
//     using a lazy-deletion pqueue.Queue of (connection cost, vertex): stale
//     entries for already-included vertices are discarded on pop. Covers only
//     root's component.
//     Time O(E log E), memory O(E): the queue holds at most one entry per
//     successful relaxation.
//
//   - PrimForest(g): Prim from every not-yet-covered vertex in storage order.
//
//   - Compute(g, opts...): dispatch through MSTOptions (WithMethod, WithRoot).
//
// Both strategies agree on total weight per component; the edge sets may
// differ only where ties exist. Self-loops never enter a spanning forest.
//
// Edge cases
//
//   - empty graph → empty edge list, weight 0, nil error
//   - single vertex → empty edge list, weight 0
//   - nil graph → ErrNilGraph
//   - Prim root absent → core.ErrVertexNotFound
//
// Returned edges use canonical endpoint order (From <= To).
package prim_kruskal
