// SPDX-License-Identifier: MIT

// Package pqueue provides a min-ordered priority queue keyed by a float64
// priority, built on container/heap.
//
// The queue deliberately has no decrease-key operation. Dijkstra, Prim and A*
// use it with lazy deletion: every relaxation pushes a fresh entry, and an
// entry that is stale by the time it is popped is simply discarded by the
// caller. The queue therefore holds at most one entry per successful
// relaxation (plus the seed), which is bounded by the number of relaxations,
// not by the number of vertices. Pushed reports that count.
//
// Entries with equal priority pop in insertion order (FIFO), which keeps
// every algorithm built on top deterministic.
package pqueue

import "container/heap"

// entry is one queued item. seq breaks priority ties by insertion order.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// entryHeap implements heap.Interface as a min-heap on (priority, seq).
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x interface{}) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop reference for the GC
	*h = old[:n-1]

	return e
}

// Queue is a min priority queue. The zero value is ready to use.
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	h      entryHeap[T]
	seq    uint64
	pushed int
}

// New returns an empty Queue with room for capacity entries.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{h: make(entryHeap[T], 0, capacity)}
}

// Push adds item with the given priority.
// Complexity: O(log n).
func (q *Queue[T]) Push(item T, priority float64) {
	heap.Push(&q.h, entry[T]{item: item, priority: priority, seq: q.seq})
	q.seq++
	q.pushed++
}

// Pop removes and returns the entry with the smallest priority.
// ok is false when the queue is empty.
// Complexity: O(log n).
func (q *Queue[T]) Pop() (item T, priority float64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.item, e.priority, true
}

// Peek returns the smallest entry without removing it.
func (q *Queue[T]) Peek() (item T, priority float64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}

	return q.h[0].item, q.h[0].priority, true
}

// Len returns the number of entries currently queued, stale ones included.
func (q *Queue[T]) Len() int { return len(q.h) }

// Pushed returns the total number of Push calls over the queue's lifetime.
func (q *Queue[T]) Pushed() int { return q.pushed }
