// SPDX-License-Identifier: MIT

// Package dijkstra implements single-source Dijkstra shortest paths on a
// weighted, undirected *core.Graph.
//
// Overview:
//
//   - Dijkstra(g, Source("A"), opts...) returns dist (vertex → distance) and,
//     with WithReturnPath, prev (vertex → predecessor on a shortest path).
//   - Unreachable vertices keep distance +Inf (math.Inf(1)) and no prev entry.
//   - The queue is a pqueue.Queue with lazy deletion: every successful
//     relaxation pushes a fresh entry and stale pops are discarded, so the
//     queue holds at most one entry per relaxation (bounded by E + 1).
//
// Precondition:
//
//	Edge weights must be non-negative. This is not checked by default: on a
//	graph with negative weights the result is well-formed but may be wrong.
//	WithValidateWeights opts into an O(E) pre-scan that returns
//	ErrNegativeWeight instead.
//
// Options:
//
//   - Source(id):               start vertex (required).
//   - WithReturnPath():         also return the predecessor map.
//   - WithTarget(id):           stop as soon as id is settled. Distances of
//     vertices not yet settled at that point are upper bounds only.
//   - WithMaxDistance(x):       do not settle vertices farther than x (x >= 0).
//   - WithInfEdgeThreshold(t):  treat edges with weight >= t as impassable (t > 0).
//   - WithValidateWeights():    reject negative weights up front.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
//
// PathTo rebuilds the vertex sequence for one destination from prev.
package dijkstra
