// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("prim_kruskal: graph is nil")

	// ErrUnknownMethod is returned by Compute for an unsupported method name.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// MethodPrim selects Prim's algorithm (grow from a root using a min-queue).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
//
//	Method: MethodPrim or MethodKruskal.
//	Root:   start vertex for Prim. With Root == "" Prim runs as PrimForest,
//	        so both methods cover the whole graph. Ignored by Kruskal.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal with no root.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// Compute runs the MST algorithm selected by opts.
//
//	MethodKruskal:            Kruskal(g)
//	MethodPrim, Root == "":   PrimForest(g)
//	MethodPrim, Root != "":   Prim(g, Root)
//	otherwise:                ErrUnknownMethod
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		if o.Root == "" {
			return PrimForest(g)
		}
		return Prim(g, o.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []core.Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
