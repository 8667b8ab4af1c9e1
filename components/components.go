// SPDX-License-Identifier: MIT

package components

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
	"github.com/katalvlaran/wgraph/disjointset"
)

// Compute runs the strategy selected by opts (MethodBFS by default).
func Compute(g *core.Graph, opts ...Option) ([][]string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodBFS:
		return BFS(g)
	case MethodDFS:
		return DFS(g)
	case MethodUnionFind:
		return UnionFind(g)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(o.Method))
	}
}

// BFS returns the components found by a breadth-first traversal started
// from each not-yet-visited vertex in storage order.
func BFS(g *core.Graph) ([][]string, error) {
	return traverse(g, func(start string) ([]string, error) {
		res, err := bfs.BFS(g, start)
		if err != nil {
			return nil, err
		}

		return res.Order, nil
	})
}

// DFS returns the components found by a depth-first traversal started
// from each not-yet-visited vertex in storage order.
func DFS(g *core.Graph) ([][]string, error) {
	return traverse(g, func(start string) ([]string, error) {
		res, err := dfs.DFS(g, start)
		if err != nil {
			return nil, err
		}

		return res.Order, nil
	})
}

// traverse drives one reach call per unvisited vertex and collects the
// reached sets as components.
func traverse(g *core.Graph, reach func(start string) ([]string, error)) ([][]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	verts := g.Vertices()
	visited := sets.New[string]()
	out := make([][]string, 0)
	for _, v := range verts {
		if visited.Has(v) {
			continue
		}
		comp, err := reach(v)
		if err != nil {
			return nil, fmt.Errorf("components: traversal from %q: %w", v, err)
		}
		visited.Insert(comp...)
		out = append(out, comp)
	}

	return out, nil
}

// UnionFind starts with one singleton set per vertex, unions the endpoints
// of every edge, then groups vertices by representative.
func UnionFind(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	verts := g.Vertices()
	ds := disjointset.New(verts...)
	for _, e := range g.Edges() {
		if _, err := ds.Union(e.From, e.To); err != nil {
			return nil, fmt.Errorf("components: union %s-%s: %w", e.From, e.To, err)
		}
	}

	return ds.Groups(verts), nil
}

// Count returns the number of connected components of g.
func Count(g *core.Graph) (int, error) {
	comps, err := UnionFind(g)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}

// Equivalent reports whether a and b describe the same partition, ignoring
// the order of components and the order of vertices inside each component.
func Equivalent(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}

	// index of the component of each vertex in a
	owner := make(map[string]int)
	parts := make([]sets.Set[string], len(a))
	for i, comp := range a {
		parts[i] = sets.New(comp...)
		if parts[i].Len() != len(comp) {
			return false
		}
		for _, v := range comp {
			if _, dup := owner[v]; dup {
				return false
			}
			owner[v] = i
		}
	}

	matched := sets.New[int]()
	for _, comp := range b {
		if len(comp) == 0 {
			return false
		}
		i, ok := owner[comp[0]]
		if !ok || matched.Has(i) || len(comp) != parts[i].Len() || !parts[i].Equal(sets.New(comp...)) {
			return false
		}
		matched.Insert(i)
	}

	return true
}
