// SPDX-License-Identifier: MIT

package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order).
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits expansion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before descending.
	FilterNeighbor func(id string) bool

	// FullTraversal runs DFS from every unvisited vertex, covering the whole forest.
	FullTraversal bool
}

// DefaultOptions returns DFSOptions with no hooks, no depth limit,
// no filtering and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{MaxDepth: -1}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit; 0 visits only the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips a neighbor when fn returns false; skips are
// counted in DFSResult.SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal makes DFS restart from each unvisited vertex in storage
// order. The startID argument is then ignored.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in discovery (pre-order) sequence.
	Order []string

	// Finish records vertices in the sequence they finished (post-order).
	Finish []string

	// Depth maps each vertex ID to its tree depth from its root.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was discovered from.
	// Roots do not appear.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool

	// Roots lists the start vertex of each DFS tree, in traversal order.
	Roots []string

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
