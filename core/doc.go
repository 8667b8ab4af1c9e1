// SPDX-License-Identifier: MIT

// Package core provides the weighted, undirected Graph store that every
// algorithm package in wgraph reads from.
//
// The Graph G = (V,E) keeps:
//
//   - Vertices as non-empty string IDs, remembered in insertion ("storage") order.
//   - Undirected edges with a finite float64 weight, stored symmetrically in a
//     nested map: adjacency[u][v] == adjacency[v][u] == weight.
//   - At most one edge per unordered vertex pair. Adding an existing edge
//     overwrites its weight in both directions instead of creating a parallel edge.
//   - Isolated vertices: a vertex with no edges still exists.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                // O(1), idempotent
//	HasVertex(id string) bool                 // O(1)
//	RemoveVertex(id string) error             // O(deg(v) + V)
//
//	// Edge lifecycle
//	AddEdge(u, v string, w float64) error     // O(1), insert-or-update
//	RemoveEdge(u, v string) (bool, error)     // O(1)
//	HasEdge(u, v string) bool                 // O(1)
//	Weight(u, v string) (float64, error)      // O(1)
//
//	// Query
//	Vertices() []string                       // O(V), storage order
//	Edges() []Edge                            // O(E log E), canonical, sorted
//	Neighbors(id string) ([]Neighbor, error)  // O(d log d), sorted by neighbor ID
//	NeighborIDs(id string) ([]string, error)  // O(d log d)
//	VertexCount(), EdgeCount(), IsEmpty(), Degree(id)
//
//	// Maintenance
//	Clear()                                   // O(1)
//	Clone() *Graph                            // O(V + E)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing edge between two existing vertices
//	ErrBadWeight      – NaN or infinite weight
//
// Concurrency: each method holds an internal sync.RWMutex, so a single call
// always observes a consistent graph. Algorithms, however, issue many calls
// while they run; mutating a graph during a traversal is unsupported and
// callers must serialize writers externally (or traverse a Clone).
package core
