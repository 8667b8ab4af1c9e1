// SPDX-License-Identifier: MIT

package shortestpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/matrix"
)

// AllPairs is a completed Floyd–Warshall table over a snapshot of a graph.
// Later mutations of the graph are not reflected.
type AllPairs struct {
	vertices []string
	index    map[string]int
	dist     *matrix.Dense
	next     []int
	negCycle bool
}

// FloydWarshall computes all-pairs shortest distances and next hops for g.
// Vertex indices follow g.Vertices(). An empty graph yields an empty table.
func FloydWarshall(g *core.Graph) (*AllPairs, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	vertices := g.Vertices()
	n := len(vertices)
	index := make(map[string]int, n)
	for i, v := range vertices {
		index[v] = i
	}

	dist, err := matrix.NewDistanceMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("shortestpath: distance matrix: %w", err)
	}
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		cur, _ := dist.At(i, j)
		if e.Weight >= cur {
			// only a negative self-loop can beat the 0 diagonal
			continue
		}
		_ = dist.Set(i, j, e.Weight)
		_ = dist.Set(j, i, e.Weight)
	}

	next, err := matrix.FloydWarshallNext(dist)
	if err != nil {
		return nil, fmt.Errorf("shortestpath: floyd-warshall: %w", err)
	}

	return &AllPairs{
		vertices: vertices,
		index:    index,
		dist:     dist,
		next:     next,
		negCycle: matrix.HasNegativeDiagonal(dist),
	}, nil
}

// FloydWarshallPath builds the full table and answers a single s → d query.
func FloydWarshallPath(g *core.Graph, s, d string) (Path, error) {
	if err := checkEndpoints(g, s, d); err != nil {
		return Path{}, err
	}
	ap, err := FloydWarshall(g)
	if err != nil {
		return Path{}, err
	}

	return ap.Path(s, d)
}

// Vertices returns the vertex order used for matrix indices.
func (ap *AllPairs) Vertices() []string {
	out := make([]string, len(ap.vertices))
	copy(out, ap.vertices)

	return out
}

// HasNegativeCycle reports whether the graph contains a negative cycle.
func (ap *AllPairs) HasNegativeCycle() bool { return ap.negCycle }

// Distance returns the closed s → d distance: +Inf if unreachable.
// With a negative cycle present the values are not meaningful; check
// HasNegativeCycle first.
func (ap *AllPairs) Distance(s, d string) (float64, error) {
	i, j, err := ap.lookup(s, d)
	if err != nil {
		return 0, err
	}
	v, err := ap.dist.At(i, j)
	if err != nil {
		return 0, err
	}

	return v, nil
}

// Path reconstructs s → d from the next-hop table.
func (ap *AllPairs) Path(s, d string) (Path, error) {
	i, j, err := ap.lookup(s, d)
	if err != nil {
		return Path{}, err
	}
	if s == d {
		return trivialPath(s), nil
	}
	if ap.negCycle {
		return negativeCyclePath(), ErrNegativeCycle
	}

	w, _ := ap.dist.At(i, j)
	if math.IsInf(w, 1) {
		return unreachablePath(), nil
	}
	idx := matrix.PathIndices(ap.next, len(ap.vertices), i, j)
	vertices := make([]string, len(idx))
	for k, x := range idx {
		vertices[k] = ap.vertices[x]
	}

	return Path{Vertices: vertices, Weight: w}, nil
}

func (ap *AllPairs) lookup(s, d string) (int, int, error) {
	i, ok := ap.index[s]
	if !ok {
		return 0, 0, fmt.Errorf("shortestpath: source %q: %w", s, ErrVertexNotFound)
	}
	j, ok := ap.index[d]
	if !ok {
		return 0, 0, fmt.Errorf("shortestpath: destination %q: %w", d, ErrVertexNotFound)
	}

	return i, j, nil
}
