// SPDX-License-Identifier: MIT

// Package shortestpath answers single-pair shortest-path queries on a
// weighted, undirected *core.Graph with four interchangeable strategies.
//
// Every strategy shares one contract and returns (Path, error):
//
//   - source or destination absent    → ErrVertexNotFound (core.ErrVertexNotFound)
//   - source == destination           → Path{[source], 0}
//   - destination unreachable         → Path{[], +Inf}, nil error
//   - negative cycle (Bellman-Ford and
//     Floyd-Warshall only)            → Path{nil, -Inf}, ErrNegativeCycle
//
// Strategies:
//
//   - Dijkstra: delegates to the dijkstra package with early exit at the
//     destination. Non-negative weights are a caller precondition.
//   - BellmanFord: relaxes every edge in both directions for up to V-1 passes,
//     stopping early on a quiet pass. One extra pass detects a negative cycle
//     reachable from the source, which is reported whether or not the
//     destination is affected. On an undirected graph any negative edge forms
//     such a cycle (u→v→u).
//   - FloydWarshall: builds an AllPairs table (dense distance matrix plus
//     next-hop table from the matrix package) once and answers any number of
//     Path / Distance queries from it. It costs O(V³) time and O(V²) memory and
//     is meant for small graphs; no vertex bound is enforced.
//   - AStar: Dijkstra ordered by g + h(v, dest). A nil heuristic is
//     ZeroHeuristic and makes AStar return exactly what Dijkstra returns.
//     Admissibility of h is not checked; an overestimating h may yield a
//     longer path without an error.
//
// Compute dispatches to a strategy by name (WithMethod) and forwards the
// heuristic (WithHeuristic) to AStar.
//
// Each call allocates its own working state, so concurrent queries on a graph
// that is not being mutated are safe.
package shortestpath
