// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/pqueue"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: vertex ID → distance; +Inf for unreachable vertices.
//   - prev: vertex ID → predecessor when WithReturnPath is set, nil otherwise.
//     The source and unreachable vertices have no entry.
//   - err:  validation failure (checked in this order): ErrEmptySource,
//     ErrNilGraph, option errors, ErrVertexNotFound (source, then target),
//     ErrNegativeWeight (only with WithValidateWeights).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("dijkstra: source %q: %w", cfg.Source, ErrVertexNotFound)
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, nil, fmt.Errorf("dijkstra: target %q: %w", cfg.Target, ErrVertexNotFound)
	}
	if cfg.ValidateWeights && g.HasNegativeWeight() {
		return nil, nil, ErrNegativeWeight
	}

	// 3) Run
	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	settled map[string]bool
	pq      *pqueue.Queue[string]
}

// newRunner sets every distance to +Inf, the source to 0, and queues the source.
func newRunner(g *core.Graph, cfg Options) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string),
		settled: make(map[string]bool, len(vertices)),
		pq:      pqueue.New[string](len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[cfg.Source] = 0
	r.pq.Push(cfg.Source, 0)

	return r
}

// process settles vertices in order of distance until the queue drains,
// the target is settled, or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		u, d, _ := r.pq.Pop()
		if r.settled[u] || d > r.dist[u] {
			// stale
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.settled[u] = true
		if u == r.options.Target {
			break
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every unsettled neighbor of u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, nb := range neighbors {
		v, w := nb.ID, nb.Weight
		if r.settled[v] || w >= r.options.InfEdgeThreshold {
			continue
		}
		nd := r.dist[u] + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.pq.Push(v, nd)
	}

	return nil
}

// PathTo rebuilds source → … → target from a predecessor map returned with
// WithReturnPath. It returns [source] when target == source and nil when
// target was not reached.
func PathTo(prev map[string]string, source, target string) []string {
	if target == source {
		return []string{source}
	}
	if _, ok := prev[target]; !ok {
		return nil
	}

	var rev []string
	for cur := target; ; {
		rev = append(rev, cur)
		if cur == source {
			break
		}
		p, ok := prev[cur]
		if !ok || len(rev) > len(prev)+1 {
			return nil
		}
		cur = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
