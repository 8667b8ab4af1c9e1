// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// NoHop marks an entry of a next-hop table with no path.
const NoHop = -1

// FloydWarshall computes the all-pairs shortest-path closure of a square
// distance matrix in place. +Inf means "no edge"; the diagonal should hold
// 0 (or a negative self-loop weight).
//
// Loop order is k→i→j and an entry is only replaced on strict improvement,
// so the result is deterministic.
func FloydWarshall(d *Dense) error {
	if err := checkSquare(d); err != nil {
		return err
	}
	relax(d, nil)

	return nil
}

// FloydWarshallNext runs the same closure as FloydWarshall and also returns
// a row-major n×n next-hop table: next[i*n+j] is the vertex that follows i on
// a shortest i→j path, i itself on the diagonal, NoHop when j is unreachable.
func FloydWarshallNext(d *Dense) ([]int, error) {
	if err := checkSquare(d); err != nil {
		return nil, err
	}

	n := d.r
	next := make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				next[i*n+j] = i
			case math.IsInf(d.data[i*n+j], 1):
				next[i*n+j] = NoHop
			default:
				next[i*n+j] = j
			}
		}
	}
	relax(d, next)

	return next, nil
}

// relax is the shared k→i→j kernel. next may be nil.
func relax(d *Dense, next []int) {
	n := d.r
	data := d.data
	for k := 0; k < n; k++ {
		rowK := data[k*n : (k+1)*n]
		for i := 0; i < n; i++ {
			dik := data[i*n+k]
			if math.IsInf(dik, 1) {
				continue
			}
			rowI := data[i*n : (i+1)*n]
			for j := 0; j < n; j++ {
				dkj := rowK[j]
				if math.IsInf(dkj, 1) {
					continue
				}
				if alt := dik + dkj; alt < rowI[j] {
					rowI[j] = alt
					if next != nil {
						next[i*n+j] = next[i*n+k]
					}
				}
			}
		}
	}
}

// HasNegativeDiagonal reports whether any diagonal entry is negative, which
// after a closure means some vertex lies on or reaches a negative cycle.
func HasNegativeDiagonal(d *Dense) bool {
	n := d.r
	if d.c < n {
		n = d.c
	}
	for i := 0; i < n; i++ {
		if d.data[i*d.c+i] < 0 {
			return true
		}
	}

	return false
}

// PathIndices walks a next-hop table of size n×n from i to j and returns the
// visited indices, both endpoints included. It returns nil when j is
// unreachable or the walk exceeds n steps (a negative cycle on the way).
func PathIndices(next []int, n, i, j int) []int {
	if i < 0 || j < 0 || i >= n || j >= n || len(next) != n*n {
		return nil
	}
	if next[i*n+j] == NoHop {
		return nil
	}

	path := []int{i}
	for cur := i; cur != j; {
		cur = next[cur*n+j]
		if cur == NoHop || len(path) > n {
			return nil
		}
		path = append(path, cur)
	}

	return path
}

func checkSquare(d *Dense) error {
	if d == nil {
		return fmt.Errorf("FloydWarshall: %w", ErrNilMatrix)
	}
	if d.r != d.c {
		return fmt.Errorf("FloydWarshall: %dx%d: %w", d.r, d.c, ErrNonSquare)
	}

	return nil
}
