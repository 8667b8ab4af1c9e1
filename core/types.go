// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates that both vertices exist but are not adjacent.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be a finite number")
)

// Edge is an undirected weighted connection reported by Graph.Edges.
// From and To are in canonical order (From <= To).
type Edge struct {
	From   string
	To     string
	Weight float64
}

// NewEdge returns the edge {u,v} with endpoints in canonical order.
func NewEdge(u, v string, w float64) Edge {
	if v < u {
		u, v = v, u
	}

	return Edge{From: u, To: v, Weight: w}
}

// Neighbor is one entry of a vertex's adjacency: the adjacent vertex and
// the weight of the connecting edge.
type Neighbor struct {
	ID     string
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the internal maps for roughly n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the weighted, undirected graph store.
//
// adjacency[u][v] holds the weight of edge {u,v}; the mirror entry
// adjacency[v][u] is always present with the same weight. order keeps
// vertex IDs in insertion order and index maps an ID to its position there.
type Graph struct {
	mu sync.RWMutex

	capacity int

	order     []string
	index     map[string]int
	adjacency map[string]map[string]float64
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.reset()

	return g
}

// reset drops all vertices and edges. Caller holds g.mu (or owns g exclusively).
func (g *Graph) reset() {
	g.order = make([]string, 0, g.capacity)
	g.index = make(map[string]int, g.capacity)
	g.adjacency = make(map[string]map[string]float64, g.capacity)
	g.edgeCount = 0
}
