// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// FindCycle returns one simple cycle of the undirected graph g, or nil if g
// is a forest. A self-loop is reported as the one-vertex cycle [v].
// The cycle is listed from its first-discovered vertex along tree edges,
// with the closing edge running from the last element back to the first.
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	verts := g.Vertices()
	parent := make(map[string]string, len(verts))
	depth := make(map[string]int, len(verts))

	for _, root := range verts {
		if _, seen := depth[root]; seen {
			continue
		}
		depth[root] = 0
		stack := []frame{}
		nbrs, err := g.NeighborIDs(root)
		if err != nil {
			return nil, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		stack = append(stack, frame{id: root, nbrs: nbrs})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.nbrs) {
				stack = stack[:len(stack)-1]
				continue
			}
			nid := top.nbrs[top.next]
			top.next++

			switch {
			case nid == top.id:
				return []string{nid}, nil
			case nid == parent[top.id] && top.id != root:
				// the tree edge we arrived by
				continue
			}
			if d, seen := depth[nid]; seen {
				if d < top.depth {
					return unwind(parent, top.id, nid), nil
				}
				// descendant already finished: the same back edge, seen from above
				continue
			}

			parent[nid] = top.id
			depth[nid] = top.depth + 1
			next, err := g.NeighborIDs(nid)
			if err != nil {
				return nil, fmt.Errorf("dfs: FindCycle: %w", err)
			}
			stack = append(stack, frame{id: nid, depth: top.depth + 1, nbrs: next})
		}
	}

	return nil, nil
}

// HasCycle reports whether the undirected graph g contains any cycle.
func HasCycle(g *core.Graph) (bool, error) {
	cycle, err := FindCycle(g)

	return cycle != nil, err
}

// unwind walks parent links from tail up to the ancestor head and returns
// the path head → … → tail.
func unwind(parent map[string]string, tail, head string) []string {
	var rev []string
	for cur := tail; cur != head; cur = parent[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, head)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
