// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import "fmt"

// Build creates the Huffman tree for hist and returns its root together
// with the number of leaves. With full set every byte value gets a leaf,
// seen or not.
//
// A tree needs two leaves to produce 0/1 codes, so an empty histogram gets
// stand-ins 0x00 and 0xFF with weight 1, and a histogram with a single
// symbol gets one of them. hist itself is left untouched.
func Build(hist *[Symbols]uint64, full bool) (root *Node, leaves int, err error) {
	h := *hist
	unique := 0
	for _, c := range h {
		if c > 0 {
			unique++
		}
	}
	switch unique {
	case 0:
		h[0x00]++
		h[0xFF]++
	case 1:
		if h[0x00] == 0 {
			h[0x00]++
		} else {
			h[0xFF]++
		}
	}

	q := NewQueue(QueueSize)
	for i := 0; i < Symbols; i++ {
		if full || h[i] > 0 {
			if !q.Enqueue(NewLeaf(byte(i), h[i])) {
				return nil, 0, fmt.Errorf("%w: queue full at symbol %#02x", ErrCapacity, i)
			}
			leaves++
		}
	}

	for {
		l, _ := q.Dequeue()
		r, ok := q.Dequeue()
		if !ok {
			return l, leaves, nil
		}
		// Two dequeues always leave room for one node.
		q.Enqueue(Join(l, r))
	}
}

// Size returns the serialized size of a tree with the given number of
// leaves: two bytes per leaf and one per internal node.
func Size(leaves int) int {
	if leaves <= 0 {
		return 0
	}
	return 3*leaves - 1
}
