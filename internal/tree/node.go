// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package tree builds Huffman trees from byte histograms, derives code
// tables from them and converts them to and from their post-order byte
// serialization.
package tree

import "errors"

// Symbols is the size of the byte alphabet.
const Symbols = 256

// Errors returned by Build, Load and BuildTable.
var (
	ErrMalformed = errors.New("huffman: malformed tree")
	ErrCapacity  = errors.New("huffman: capacity exceeded")
)

// Node is a Huffman tree node. A node without children is a leaf and
// carries Symbol; an internal node always has both children and its Weight
// is the sum of theirs.
type Node struct {
	Symbol byte
	Weight uint64
	Left   *Node
	Right  *Node
}

// NewLeaf returns a leaf for symbol seen weight times.
func NewLeaf(symbol byte, weight uint64) *Node {
	return &Node{Symbol: symbol, Weight: weight}
}

// Join makes an internal node owning l and r.
func Join(l, r *Node) *Node {
	return &Node{Weight: l.Weight + r.Weight, Left: l, Right: r}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Leaves counts the leaves below n, n included.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.Left.Leaves() + n.Right.Leaves()
}
