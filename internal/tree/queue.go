// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

// QueueSize holds every leaf of a full tree plus the slot a circular
// buffer gives up to tell empty from full.
const QueueSize = Symbols + 1

// Queue is a bounded priority queue of nodes in ascending weight order.
// Nodes of equal weight leave in the order they arrived, which keeps tree
// construction deterministic.
//
// head and tail both index empty-or-next slots: tail holds the lightest
// node, head is where the next insertion starts.
type Queue struct {
	head, tail int
	q          []*Node
}

// NewQueue returns a queue holding up to size-1 nodes.
func NewQueue(size int) *Queue {
	return &Queue{q: make([]*Node, size)}
}

func (q *Queue) succ(x int) int { return (x + 1) % len(q.q) }
func (q *Queue) pred(x int) int { return (x + len(q.q) - 1) % len(q.q) }

// Empty reports whether q holds no nodes.
func (q *Queue) Empty() bool { return q.head == q.tail }

// Full reports whether another Enqueue would overflow q.
func (q *Queue) Full() bool { return q.succ(q.head) == q.tail }

// Len returns the number of queued nodes.
func (q *Queue) Len() int {
	return (q.head - q.tail + len(q.q)) % len(q.q)
}

// Enqueue inserts n with one pass of insertion sort starting at head.
// Heavier nodes shift toward head; equal ones stay ahead of n.
// It reports false when the queue is full.
func (q *Queue) Enqueue(n *Node) bool {
	if q.Full() {
		return false
	}
	slot := q.head
	for slot != q.tail && q.q[q.pred(slot)].Weight > n.Weight {
		q.q[slot] = q.q[q.pred(slot)]
		slot = q.pred(slot)
	}
	q.q[slot] = n
	q.head = q.succ(q.head)
	return true
}

// Dequeue removes the lightest node. It reports false when the queue is
// empty.
func (q *Queue) Dequeue() (*Node, bool) {
	if q.Empty() {
		return nil, false
	}
	n := q.q[q.tail]
	q.q[q.tail] = nil
	q.tail = q.succ(q.tail)
	return n, true
}
