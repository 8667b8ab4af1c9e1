// SPDX-License-Identifier: MIT

package disjointset

import (
	"errors"
	"fmt"
)

// ErrUnknownElement indicates that an element was never added to the set.
var ErrUnknownElement = errors.New("disjointset: unknown element")

// DisjointSet partitions string elements into disjoint sets.
//
// parent[x] points towards the representative of x's set; a root points at
// itself. size is meaningful for roots only.
type DisjointSet struct {
	parent map[string]string
	size   map[string]int
	count  int
}

// New creates a DisjointSet where every id starts in its own singleton set.
// Duplicate ids are ignored.
func New(ids ...string) *DisjointSet {
	ds := &DisjointSet{
		parent: make(map[string]string, len(ids)),
		size:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		ds.Add(id)
	}

	return ds
}

// Add inserts x as a singleton set. It reports false if x was already present.
func (ds *DisjointSet) Add(x string) bool {
	if _, ok := ds.parent[x]; ok {
		return false
	}
	ds.parent[x] = x
	ds.size[x] = 1
	ds.count++

	return true
}

// Find returns the representative of x's set. Every node visited on the way
// up is re-pointed directly at the root.
func (ds *DisjointSet) Find(x string) (string, error) {
	if _, ok := ds.parent[x]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownElement, x)
	}

	return ds.find(x), nil
}

// find is Find for a known element. Two passes, no recursion:
// locate the root, then compress the path.
func (ds *DisjointSet) find(x string) string {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for x != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of x and y. It reports false when they were already
// in the same set. The smaller tree is attached under the larger one; on a
// size tie y's root goes under x's root.
func (ds *DisjointSet) Union(x, y string) (bool, error) {
	rx, err := ds.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := ds.Find(y)
	if err != nil {
		return false, err
	}
	if rx == ry {
		return false, nil
	}
	if ds.size[rx] < ds.size[ry] {
		rx, ry = ry, rx
	}
	ds.parent[ry] = rx
	ds.size[rx] += ds.size[ry]
	delete(ds.size, ry)
	ds.count--

	return true, nil
}

// Connected reports whether x and y share a representative.
func (ds *DisjointSet) Connected(x, y string) (bool, error) {
	rx, err := ds.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := ds.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// SetSize returns the number of elements in x's set.
func (ds *DisjointSet) SetSize(x string) (int, error) {
	r, err := ds.Find(x)
	if err != nil {
		return 0, err
	}

	return ds.size[r], nil
}

// Count returns the number of disjoint sets.
func (ds *DisjointSet) Count() int { return ds.count }

// Len returns the number of elements.
func (ds *DisjointSet) Len() int { return len(ds.parent) }

// Groups returns the sets as slices of members. Elements are visited in the
// given order: groups appear in order of their first member, and members keep
// that order too. Elements of order unknown to the set are skipped, and
// elements missing from order are not reported.
func (ds *DisjointSet) Groups(order []string) [][]string {
	slot := make(map[string]int, ds.count)
	groups := make([][]string, 0, ds.count)
	for _, x := range order {
		if _, ok := ds.parent[x]; !ok {
			continue
		}
		r := ds.find(x)
		i, seen := slot[r]
		if !seen {
			i = len(groups)
			slot[r] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], x)
	}

	return groups
}
