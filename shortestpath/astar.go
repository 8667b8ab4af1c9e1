// SPDX-License-Identifier: MIT

package shortestpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/pqueue"
)

// AStar returns an s → d path searching in order of g(v) + h(v, d).
// A nil h is ZeroHeuristic. Weights must be non-negative and h should be
// admissible; neither is checked.
func AStar(g *core.Graph, s, d string, h Heuristic) (Path, error) {
	if err := checkEndpoints(g, s, d); err != nil {
		return Path{}, err
	}
	if s == d {
		return trivialPath(s), nil
	}
	if h == nil {
		h = ZeroHeuristic
	}

	r := &astarRunner{
		g:      g,
		dest:   d,
		h:      h,
		gScore: map[string]float64{s: 0},
		prev:   make(map[string]string),
		closed: make(map[string]bool),
		open:   pqueue.New[string](g.VertexCount()),
	}
	r.open.Push(s, h(s, d))
	if err := r.search(); err != nil {
		return Path{}, err
	}

	cost, ok := r.gScore[d]
	if !ok || !r.closed[d] {
		return unreachablePath(), nil
	}

	return Path{Vertices: dijkstra.PathTo(r.prev, s, d), Weight: cost}, nil
}

// astarRunner holds the per-call state. A vertex missing from gScore has
// cost +Inf.
type astarRunner struct {
	g      *core.Graph
	dest   string
	h      Heuristic
	gScore map[string]float64
	prev   map[string]string
	closed map[string]bool
	open   *pqueue.Queue[string]
}

func (r *astarRunner) search() error {
	for r.open.Len() > 0 {
		u, f, _ := r.open.Pop()
		if r.closed[u] || f > r.gScore[u]+r.h(u, r.dest) {
			// stale
			continue
		}
		r.closed[u] = true
		if u == r.dest {
			return nil
		}

		nbrs, err := r.g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("shortestpath: neighbors of %q: %w", u, err)
		}
		for _, nb := range nbrs {
			if r.closed[nb.ID] {
				continue
			}
			ng := r.gScore[u] + nb.Weight
			if old, seen := r.gScore[nb.ID]; seen && ng >= old {
				continue
			}
			r.gScore[nb.ID] = ng
			r.prev[nb.ID] = u
			r.open.Push(nb.ID, ng+r.h(nb.ID, r.dest))
		}
	}

	return nil
}

// EuclideanHeuristic builds a straight-line heuristic from vertex
// coordinates. Vertices without coordinates estimate 0.
func EuclideanHeuristic(coords map[string][2]float64) Heuristic {
	return func(v, dest string) float64 {
		a, ok1 := coords[v]
		b, ok2 := coords[dest]
		if !ok1 || !ok2 {
			return 0
		}

		return math.Hypot(a[0]-b[0], a[1]-b[1])
	}
}
