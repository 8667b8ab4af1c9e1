// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links and visit order from one start vertex.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//     Edge weights are ignored: BFS measures edges, not cost.
//   - Returns a BFSResult containing:
//   - Order: visit sequence (exactly the start vertex's reachable set)
//   - Depth: vertex → distance in edges from start
//   - Parent: vertex → predecessor in the BFS tree
//   - Hooks: OnEnqueue, OnDequeue and OnVisit (OnVisit may abort with an error).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth caps the depth.
//
// Determinism
//
//	core.Neighbors returns neighbors sorted by ID and BFS enqueues them in
//	that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d); neighbor lists are sorted per visit.
//   - Memory: O(V) for the FIFO queue, Depth, Parent and visited set.
//
// Usage
//
//	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // ErrNeighbors or a wrapped OnVisit error
//	}
//	path, _ := res.PathTo("D")
//
// The components package runs BFS once per unvisited vertex to build the
// breadth-first connected-components strategy.
package bfs
