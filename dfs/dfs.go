// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// frame is one explicit-stack entry: a vertex and the cursor into its neighbors.
type frame struct {
	id    string
	depth int
	nbrs  []string
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on graph g. With WithFullTraversal it
// covers every component; otherwise it starts only from startID.
// On a hook error the partial result is returned together with the error.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify startID
	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	vertices := g.Vertices()
	res := &DFSResult{
		Order:   make([]string, 0, len(vertices)),
		Finish:  make([]string, 0, len(vertices)),
		Depth:   make(map[string]int, len(vertices)),
		Parent:  make(map[string]string, len(vertices)),
		Visited: make(map[string]bool, len(vertices)),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if !dopts.FullTraversal {
		return res, w.traverse(startID)
	}
	for _, v := range vertices {
		if res.Visited[v] {
			continue
		}
		if err := w.traverse(v); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse runs one DFS tree rooted at root.
func (w *dfsWalker) traverse(root string) error {
	w.res.Roots = append(w.res.Roots, root)
	if err := w.discover(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.nbrs) {
			nid := top.nbrs[top.next]
			top.next++
			if w.res.Visited[nid] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.res.SkippedNeighbors++
				continue
			}
			w.res.Parent[nid] = top.id
			if err := w.discover(nid, top.depth+1); err != nil {
				return err
			}
			continue
		}

		// all neighbors done: post-order
		id := top.id
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
			}
		}
		w.res.Finish = append(w.res.Finish, id)
	}

	return nil
}

// discover marks id visited, runs the pre-order hook and pushes its frame.
func (w *dfsWalker) discover(id string, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	var nbrs []string
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		var err error
		if nbrs, err = w.graph.NeighborIDs(id); err != nil {
			return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
		}
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, nbrs: nbrs})

	return nil
}
