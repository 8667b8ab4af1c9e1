// SPDX-License-Identifier: MIT

package core

import "sort"

// Neighbors returns the adjacency of vertex id as (neighbor, weight) pairs,
// sorted by neighbor ID for reproducible traversals.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(d log d), d = deg(id).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]Neighbor, 0, len(nbrs))
	for v, w := range nbrs {
		out = append(out, Neighbor{ID: v, Weight: w})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the sorted IDs of all vertices adjacent to id.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(nbrs))
	for i, n := range nbrs {
		ids[i] = n.ID
	}

	return ids, nil
}
