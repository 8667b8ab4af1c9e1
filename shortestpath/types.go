// SPDX-License-Identifier: MIT

package shortestpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
)

var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrVertexNotFound is core.ErrVertexNotFound, returned for an absent
	// source or destination.
	ErrVertexNotFound = core.ErrVertexNotFound

	// ErrNegativeCycle is returned when a negative cycle makes distances undefined.
	ErrNegativeCycle = errors.New("shortestpath: negative cycle detected")

	// ErrUnknownMethod is returned by Compute for an unsupported method name.
	ErrUnknownMethod = errors.New("shortestpath: unknown method")
)

// Path is the answer to a single-pair query: the vertex sequence from source
// to destination and its total weight.
type Path struct {
	Vertices []string
	Weight   float64
}

// Reachable reports whether p connects its endpoints.
func (p Path) Reachable() bool {
	return len(p.Vertices) > 0 && !math.IsInf(p.Weight, 0)
}

func trivialPath(s string) Path {
	return Path{Vertices: []string{s}, Weight: 0}
}

func unreachablePath() Path {
	return Path{Vertices: []string{}, Weight: math.Inf(1)}
}

func negativeCyclePath() Path {
	return Path{Vertices: nil, Weight: math.Inf(-1)}
}

// Heuristic estimates the remaining cost from v to dest for AStar.
type Heuristic func(v, dest string) float64

// ZeroHeuristic always returns 0, which turns AStar into Dijkstra.
func ZeroHeuristic(string, string) float64 { return 0 }

// Method names accepted by WithMethod.
const (
	MethodDijkstra      = "dijkstra"
	MethodBellmanFord   = "bellman-ford"
	MethodFloydWarshall = "floyd-warshall"
	MethodAStar         = "astar"
)

// Methods lists every supported method name.
func Methods() []string {
	return []string{MethodDijkstra, MethodBellmanFord, MethodFloydWarshall, MethodAStar}
}

// Options configures Compute.
type Options struct {
	// Method selects the strategy. Default MethodDijkstra.
	Method string
	// Heuristic is passed to AStar; ignored by the other methods.
	Heuristic Heuristic
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options for Dijkstra with no heuristic.
func DefaultOptions() Options {
	return Options{Method: MethodDijkstra}
}

// WithMethod sets the strategy by name.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithHeuristic sets the AStar heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// Compute answers s → d with the strategy selected by opts.
func Compute(g *core.Graph, s, d string, opts ...Option) (Path, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodDijkstra:
		return Dijkstra(g, s, d)
	case MethodBellmanFord:
		return BellmanFord(g, s, d)
	case MethodFloydWarshall:
		return FloydWarshallPath(g, s, d)
	case MethodAStar:
		return AStar(g, s, d, o.Heuristic)
	default:
		return Path{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// checkEndpoints validates the graph and both endpoints in that order.
func checkEndpoints(g *core.Graph, s, d string) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(s) {
		return fmt.Errorf("shortestpath: source %q: %w", s, ErrVertexNotFound)
	}
	if !g.HasVertex(d) {
		return fmt.Errorf("shortestpath: destination %q: %w", d, ErrVertexNotFound)
	}

	return nil
}
