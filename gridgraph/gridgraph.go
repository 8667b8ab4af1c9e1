// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/wgraph/core"
)

// unitWeight is the cost of one step between adjacent land cells.
const unitWeight = 1.0

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is inside the grid and at or above LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// VertexID formats the vertex identifier "x,y" for cell (x,y).
func VertexID(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// ParseVertexID is the inverse of VertexID.
func ParseVertexID(id string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(id, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}
	if x, err = strconv.Atoi(xs); err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrBadVertexID, id, err)
	}
	if y, err = strconv.Atoi(ys); err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrBadVertexID, id, err)
	}

	return x, y, nil
}

// cellOf parses id and checks it names a cell of gg.
func (gg *GridGraph) cellOf(id string) (x, y int, err error) {
	x, y, err = ParseVertexID(id)
	if err != nil {
		return 0, 0, err
	}
	if !gg.InBounds(x, y) {
		return 0, 0, fmt.Errorf("%w: %q outside %dx%d", ErrBadVertexID, id, gg.Width, gg.Height)
	}

	return x, y, nil
}

// ToCoreGraph converts the land cells into a weighted, undirected *core.Graph.
// Vertices are added in row-major order with ID VertexID(x,y); unit-weight
// edges join land cells that are neighbors under gg.Conn. Water cells are
// left out.
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithCapacity(gg.Width * gg.Height))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.IsLand(x, y) {
				_ = g.AddVertex(VertexID(x, y))
			}
		}
	}
	gg.eachNeighborPair(func(x, y, nx, ny int) {
		if gg.IsLand(x, y) && gg.IsLand(nx, ny) {
			_ = g.AddEdge(VertexID(x, y), VertexID(nx, ny), unitWeight)
		}
	})

	return g
}

// terrainGraph builds a graph over every cell where entering a water cell
// costs 1: each edge carries half the water cost of each endpoint, so a
// land-to-land path weighs exactly the number of water cells it crosses.
func (gg *GridGraph) terrainGraph() *core.Graph {
	g := core.NewGraph(core.WithCapacity(gg.Width*gg.Height + 2))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			_ = g.AddVertex(VertexID(x, y))
		}
	}
	gg.eachNeighborPair(func(x, y, nx, ny int) {
		_ = g.AddEdge(VertexID(x, y), VertexID(nx, ny), (gg.waterCost(x, y)+gg.waterCost(nx, ny))/2)
	})

	return g
}

func (gg *GridGraph) waterCost(x, y int) float64 {
	if gg.IsLand(x, y) {
		return 0
	}

	return 1
}

// eachNeighborPair calls fn once for every in-bounds neighboring pair.
func (gg *GridGraph) eachNeighborPair(fn func(x, y, nx, ny int)) {
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) || gg.index(nx, ny) < gg.index(x, y) {
					continue
				}
				fn(x, y, nx, ny)
			}
		}
	}
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}
