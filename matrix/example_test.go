// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/matrix"
)

// ExampleFloydWarshallNext closes a 3-vertex triangle and walks the next-hop table.
func ExampleFloydWarshallNext() {
	d, _ := matrix.NewDistanceMatrix(3)
	for _, e := range [][3]float64{{0, 1, 1}, {1, 2, 2}, {0, 2, 4}} {
		_ = d.Set(int(e[0]), int(e[1]), e[2])
		_ = d.Set(int(e[1]), int(e[0]), e[2])
	}

	next, err := matrix.FloydWarshallNext(d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	dist, _ := d.At(0, 2)
	fmt.Println(dist, matrix.PathIndices(next, 3, 0, 2))
	fmt.Print(d)
	// Output:
	// 3 [0 1 2]
	// [0, 1, 3]
	// [1, 0, 2]
	// [3, 2, 0]
}
