// SPDX-License-Identifier: MIT

// Package disjointset implements a union-find (disjoint-set) structure over
// string elements, with full path compression and union by size.
//
// A DisjointSet is ephemeral working state: Kruskal's MST and the union-find
// connected-components strategy each build a fresh one per call from the
// current vertex set. It is not safe for concurrent use.
//
// Complexity: Find and Union run in amortized O(α(n)) (inverse Ackermann).
//
// Tie rule: when both roots carry the same size, the root of the second
// argument is attached under the root of the first. The rule is fixed so
// results are deterministic for a given sequence of operations.
package disjointset
