// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/RemoveVertex/Vertices,
//       counts and degree.
// Determinism:
//   - Vertices() returns IDs in insertion order; removal keeps the relative
//     order of the remaining vertices.

package core

// AddVertex inserts a vertex with the given ID.
// Adding a vertex that already exists is a no-op and returns nil.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex inserts id if missing. Caller holds the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[string]float64)
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// RemoveVertex deletes the vertex and strips every incident edge from its
// neighbors' adjacency.
// Returns ErrEmptyVertexID for "" and ErrVertexNotFound if the vertex is absent.
// Complexity: O(deg(v) + V); the storage-order slice is compacted.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return ErrVertexNotFound
	}
	for nbr := range nbrs {
		if nbr != id {
			delete(g.adjacency[nbr], id)
		}
		g.edgeCount--
	}
	delete(g.adjacency, id)

	// Compact storage order and re-index the tail.
	pos := g.index[id]
	delete(g.index, id)
	copy(g.order[pos:], g.order[pos+1:])
	g.order = g.order[:len(g.order)-1]
	for i := pos; i < len(g.order); i++ {
		g.index[g.order[i]] = i
	}

	return nil
}

// Vertices returns all vertex IDs in storage (insertion) order.
// The returned slice is a copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices (the size of the graph).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// IsEmpty reports whether the graph has no vertices.
func (g *Graph) IsEmpty() bool {
	return g.VertexCount() == 0
}

// Degree returns the number of distinct neighbors of id; a self-loop counts once.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}
