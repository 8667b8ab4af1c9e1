// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/wgraph/shortestpath"
)

// ManhattanHeuristic estimates |dx| + |dy| between two "x,y" IDs. It is
// admissible for unit-weight Conn4 grids. Unparseable IDs estimate 0.
func ManhattanHeuristic(v, dest string) float64 {
	dx, dy, ok := delta(v, dest)
	if !ok {
		return 0
	}

	return float64(dx + dy)
}

// ChebyshevHeuristic estimates max(|dx|, |dy|) between two "x,y" IDs. It is
// admissible for unit-weight Conn8 grids. Unparseable IDs estimate 0.
func ChebyshevHeuristic(v, dest string) float64 {
	dx, dy, ok := delta(v, dest)
	if !ok {
		return 0
	}

	return float64(max(dx, dy))
}

func delta(v, dest string) (dx, dy int, ok bool) {
	x1, y1, err := ParseVertexID(v)
	if err != nil {
		return 0, 0, false
	}
	x2, y2, err := ParseVertexID(dest)
	if err != nil {
		return 0, 0, false
	}

	return abs(x1 - x2), abs(y1 - y2), true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// Heuristic returns the admissible heuristic for gg's connectivity.
func (gg *GridGraph) Heuristic() shortestpath.Heuristic {
	if gg.Conn == Conn8 {
		return ChebyshevHeuristic
	}

	return ManhattanHeuristic
}

// Route finds a shortest land route between two cells with A*. Both IDs must
// name cells of the grid (ErrBadVertexID otherwise); a water endpoint yields
// shortestpath.ErrVertexNotFound. Unreachable cells give the usual
// Path{[], +Inf} with a nil error.
func (gg *GridGraph) Route(from, to string) (shortestpath.Path, error) {
	if _, _, err := gg.cellOf(from); err != nil {
		return shortestpath.Path{}, err
	}
	if _, _, err := gg.cellOf(to); err != nil {
		return shortestpath.Path{}, err
	}

	return shortestpath.AStar(gg.ToCoreGraph(), from, to, gg.Heuristic())
}
