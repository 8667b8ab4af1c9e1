// SPDX-License-Identifier: MIT

package components

import "errors"

var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("components: graph is nil")

	// ErrUnknownMethod is returned by Compute for an unsupported Method.
	ErrUnknownMethod = errors.New("components: unknown method")
)

// Method selects the strategy used by Compute.
type Method int

const (
	// MethodBFS uses breadth-first traversal.
	MethodBFS Method = iota
	// MethodDFS uses depth-first traversal.
	MethodDFS
	// MethodUnionFind uses disjoint-set union over the edge list.
	MethodUnionFind
)

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case MethodBFS:
		return "bfs"
	case MethodDFS:
		return "dfs"
	case MethodUnionFind:
		return "unionfind"
	default:
		return "unknown"
	}
}

// Options configures Compute.
type Options struct {
	Method Method
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options using MethodBFS.
func DefaultOptions() Options {
	return Options{Method: MethodBFS}
}

// WithMethod selects the strategy.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}
