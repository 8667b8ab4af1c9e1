// SPDX-License-Identifier: MIT

package core

// Clear removes every vertex and edge. Options given to NewGraph are kept.
// Complexity: O(1) (old storage is left to the GC).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
}

// Clone returns a deep copy with identical vertices, storage order and edges.
// A clone is a cheap way to hand an algorithm a snapshot while the original
// keeps being mutated.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{capacity: g.capacity}
	clone.order = make([]string, len(g.order))
	copy(clone.order, g.order)
	clone.index = make(map[string]int, len(g.index))
	for id, pos := range g.index {
		clone.index[id] = pos
	}
	clone.adjacency = make(map[string]map[string]float64, len(g.adjacency))
	for u, nbrs := range g.adjacency {
		inner := make(map[string]float64, len(nbrs))
		for v, w := range nbrs {
			inner[v] = w
		}
		clone.adjacency[u] = inner
	}
	clone.edgeCount = g.edgeCount

	return clone
}
