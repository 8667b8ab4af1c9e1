// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() reports each undirected edge once with From <= To,
//     sorted by (From, To).

package core

import (
	"math"
	"sort"
)

// AddEdge inserts the undirected edge {u,v} with weight w, or overwrites the
// weight of an existing edge in both directions. Missing endpoints are created.
// A self-loop (u == v) is stored once.
//
// Returns ErrEmptyVertexID if either ID is empty and ErrBadWeight if w is NaN
// or infinite; otherwise it always succeeds.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, w float64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrBadWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)
	if _, exists := g.adjacency[u][v]; !exists {
		g.edgeCount++
	}
	g.adjacency[u][v] = w
	g.adjacency[v][u] = w

	return nil
}

// RemoveEdge deletes the edge {u,v} in both directions.
// Returns ErrVertexNotFound if either endpoint is absent. Otherwise the bool
// reports whether an edge was actually removed.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	nu, okU := g.adjacency[u]
	nv, okV := g.adjacency[v]
	if !okU || !okV {
		return false, ErrVertexNotFound
	}
	if _, exists := nu[v]; !exists {
		return false, nil
	}
	delete(nu, v)
	delete(nv, u)
	g.edgeCount--

	return true, nil
}

// HasEdge reports whether the edge {u,v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Weight returns the weight of edge {u,v}.
// Returns ErrVertexNotFound if either endpoint is absent and ErrEdgeNotFound
// if both exist but are not adjacent. It never reports a fabricated zero.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nu, okU := g.adjacency[u]
	_, okV := g.adjacency[v]
	if !okU || !okV {
		return 0, ErrVertexNotFound
	}
	w, ok := nu[v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Edges returns every undirected edge exactly once, endpoints in canonical
// order (From <= To), sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v, w := range nbrs {
			if u <= v {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// HasNegativeWeight reports whether any edge carries a weight below zero.
// Complexity: O(E).
func (g *Graph) HasNegativeWeight() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, nbrs := range g.adjacency {
		for _, w := range nbrs {
			if w < 0 {
				return true
			}
		}
	}

	return false
}
