// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/pqueue"
)

// frontier is a queued candidate: reach vertex via the edge from parent.
type frontier struct {
	vertex string
	parent string
}

// primRunner holds per-call state shared by Prim and PrimForest.
type primRunner struct {
	g        *core.Graph
	included map[string]bool
	best     map[string]float64
	pq       *pqueue.Queue[frontier]
}

func newPrimRunner(g *core.Graph) *primRunner {
	n := g.VertexCount()

	return &primRunner{
		g:        g,
		included: make(map[string]bool, n),
		best:     make(map[string]float64, n),
		pq:       pqueue.New[frontier](n),
	}
}

// Prim grows a minimum spanning tree of root's component.
// root == "" selects the first vertex in storage order; an empty graph
// then yields an empty tree. A root absent from g returns core.ErrVertexNotFound.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root string) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if root == "" {
		vertices := g.Vertices()
		if len(vertices) == 0 {
			return []core.Edge{}, 0, nil
		}
		root = vertices[0]
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("prim_kruskal: root %q: %w", root, core.ErrVertexNotFound)
	}

	r := newPrimRunner(g)
	mst, total, err := r.grow(root, nil)
	if err != nil {
		return nil, 0, err
	}

	return mst, total, nil
}

// PrimForest runs Prim from every vertex not yet covered, in storage order,
// and returns the union of the trees: a minimum spanning forest.
func PrimForest(g *core.Graph) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	vertices := g.Vertices()
	r := newPrimRunner(g)
	forest := make([]core.Edge, 0, max(len(vertices)-1, 0))
	var total float64
	for _, v := range vertices {
		if r.included[v] {
			continue
		}
		var (
			w   float64
			err error
		)
		if forest, w, err = r.grow(v, forest); err != nil {
			return nil, 0, err
		}
		total += w
	}

	return forest, total, nil
}

// grow runs one Prim tree from root, appending tree edges to out.
func (r *primRunner) grow(root string, out []core.Edge) ([]core.Edge, float64, error) {
	if out == nil {
		out = make([]core.Edge, 0)
	}
	var total float64

	r.best[root] = 0
	r.pq.Push(frontier{vertex: root}, 0)
	for r.pq.Len() > 0 {
		item, cost, _ := r.pq.Pop()
		v := item.vertex
		if r.included[v] {
			// stale
			continue
		}
		r.included[v] = true
		if item.parent != "" {
			out = append(out, core.NewEdge(item.parent, v, cost))
			total += cost
		}

		nbrs, err := r.g.Neighbors(v)
		if err != nil {
			return nil, 0, fmt.Errorf("prim_kruskal: Prim: %w", err)
		}
		for _, nb := range nbrs {
			if r.included[nb.ID] {
				continue
			}
			if b, seen := r.best[nb.ID]; seen && nb.Weight >= b {
				continue
			}
			r.best[nb.ID] = nb.Weight
			r.pq.Push(frontier{vertex: nb.ID, parent: v}, nb.Weight)
		}
	}

	return out, total, nil
}
