// SPDX-License-Identifier: MIT

package shortestpath

import (
	"math"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
)

// BellmanFord returns the shortest s → d path on a graph that may carry
// negative weights.
//
// If a negative cycle is reachable from s, it returns Path{nil, -Inf} and
// ErrNegativeCycle even when d itself is unaffected.
func BellmanFord(g *core.Graph, s, d string) (Path, error) {
	if err := checkEndpoints(g, s, d); err != nil {
		return Path{}, err
	}
	if s == d {
		return trivialPath(s), nil
	}

	r := newBellmanFordRunner(g, s)
	r.run()
	if r.hasNegativeCycle() {
		return negativeCyclePath(), ErrNegativeCycle
	}
	if math.IsInf(r.dist[d], 1) {
		return unreachablePath(), nil
	}

	return Path{Vertices: dijkstra.PathTo(r.prev, s, d), Weight: r.dist[d]}, nil
}

// bellmanFordRunner holds the per-call state.
type bellmanFordRunner struct {
	edges  []core.Edge
	passes int
	dist   map[string]float64
	prev   map[string]string
}

func newBellmanFordRunner(g *core.Graph, s string) *bellmanFordRunner {
	vertices := g.Vertices()
	r := &bellmanFordRunner{
		edges:  g.Edges(),
		passes: len(vertices) - 1,
		dist:   make(map[string]float64, len(vertices)),
		prev:   make(map[string]string, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[s] = 0

	return r
}

// run performs up to V-1 relaxation passes, stopping after a quiet one.
func (r *bellmanFordRunner) run() {
	for i := 0; i < r.passes; i++ {
		if !r.pass(true) {
			return
		}
	}
}

// hasNegativeCycle reports whether one more pass could still relax an edge.
func (r *bellmanFordRunner) hasNegativeCycle() bool {
	return r.pass(false)
}

// pass relaxes every edge in both directions. With apply == false it only
// checks whether some edge would relax.
func (r *bellmanFordRunner) pass(apply bool) bool {
	changed := false
	for _, e := range r.edges {
		if r.relax(e.From, e.To, e.Weight, apply) {
			changed = true
			if !apply {
				return true
			}
		}
		if r.relax(e.To, e.From, e.Weight, apply) {
			changed = true
			if !apply {
				return true
			}
		}
	}

	return changed
}

func (r *bellmanFordRunner) relax(u, v string, w float64, apply bool) bool {
	du := r.dist[u]
	if math.IsInf(du, 1) {
		return false
	}
	nd := du + w
	if nd >= r.dist[v] {
		return false
	}
	if apply {
		r.dist[v] = nd
		r.prev[v] = u
	}

	return true
}
