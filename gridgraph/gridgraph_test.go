// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/wgraph/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy verifies later edits of the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 0}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	grid[0][1] = 1
	if gg.IsLand(1, 0) {
		t.Error("IsLand(1,0)=true after mutating the input; want false")
	}
}

// TestInBoundsAndIsLand checks InBounds and IsLand on a 3×2 grid.
func TestInBoundsAndIsLand(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 5},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{LandThreshold: 2})
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
	if gg.IsLand(1, 0) {
		t.Error("IsLand(1,0)=true below threshold 2")
	}
	if !gg.IsLand(2, 1) {
		t.Error("IsLand(2,1)=false at value 5")
	}
	if gg.IsLand(5, 5) {
		t.Error("IsLand out of bounds must be false")
	}
}

//----------------------------------------------------------------------------//
// Vertex IDs
//----------------------------------------------------------------------------//

func TestVertexID_RoundTrip(t *testing.T) {
	for _, xy := range [][2]int{{0, 0}, {12, 3}, {-1, 7}} {
		id := gridgraph.VertexID(xy[0], xy[1])
		x, y, err := gridgraph.ParseVertexID(id)
		if err != nil || x != xy[0] || y != xy[1] {
			t.Errorf("ParseVertexID(%q) = %d,%d,%v; want %d,%d,nil", id, x, y, err, xy[0], xy[1])
		}
	}
	for _, bad := range []string{"", "3", "a,1", "1,b", "1;2"} {
		if _, _, err := gridgraph.ParseVertexID(bad); !errors.Is(err, gridgraph.ErrBadVertexID) {
			t.Errorf("ParseVertexID(%q) error = %v; want ErrBadVertexID", bad, err)
		}
	}
}

//----------------------------------------------------------------------------//
// ToCoreGraph Tests
//----------------------------------------------------------------------------//

// TestToCoreGraph_Conn4 verifies that only orthogonal land edges exist under Conn4.
func TestToCoreGraph_Conn4(t *testing.T) {
	grid := [][]int{{1, 0}, {1, 1}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	cg := gg.ToCoreGraph()

	if cg.VertexCount() != 3 {
		t.Errorf("VertexCount = %d; want 3 (water excluded)", cg.VertexCount())
	}
	if cg.HasVertex("1,0") {
		t.Error("water cell 1,0 must not be a vertex")
	}
	for _, e := range []struct{ u, v string }{{"0,0", "0,1"}, {"0,1", "1,1"}} {
		if !cg.HasEdge(e.u, e.v) {
			t.Errorf("Edge %s-%s missing under Conn4", e.u, e.v)
		}
		if w, _ := cg.Weight(e.u, e.v); w != 1 {
			t.Errorf("Weight(%s,%s) = %v; want 1", e.u, e.v, w)
		}
	}
	if cg.HasEdge("0,0", "1,1") {
		t.Error("Unexpected diagonal edge 0,0-1,1 under Conn4")
	}
	if cg.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d; want 2", cg.EdgeCount())
	}
}

// TestToCoreGraph_Conn8 verifies diagonal connectivity under Conn8.
func TestToCoreGraph_Conn8(t *testing.T) {
	grid := [][]int{{1, 1}, {1, 1}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{LandThreshold: 1, Conn: gridgraph.Conn8})
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	cg := gg.ToCoreGraph()

	if !cg.HasEdge("0,0", "1,1") || !cg.HasEdge("1,0", "0,1") {
		t.Error("Expected both diagonals under Conn8")
	}
	if cg.EdgeCount() != 6 {
		t.Errorf("EdgeCount = %d; want 6", cg.EdgeCount())
	}
}
