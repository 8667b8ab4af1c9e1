// SPDX-License-Identifier: MIT

// Package matrix provides a dense row-major float64 matrix and the
// Floyd–Warshall all-pairs closure that operates on it.
//
// Dense stores r*c values in a single flat slice (offset = i*cols + j).
// At and Set return errors instead of panicking on bad indices. +Inf is a
// legal value and means "no edge" in a distance matrix.
//
// FloydWarshall relaxes a square distance matrix in place with the classic
// k→i→j loop order. FloydWarshallNext does the same while maintaining a
// next-hop table so callers can reconstruct the vertex sequence of every
// shortest path. A negative value on the diagonal after the closure means
// the vertex lies on (or reaches) a negative cycle.
//
// Complexity:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c).
//   - FloydWarshall / FloydWarshallNext: O(n³) time, O(1) / O(n²) extra space.
package matrix
