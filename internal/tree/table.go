// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"fmt"

	"github.com/fastgo/huff/internal/bitstream"
)

// Table maps every symbol to its code. Symbols without a leaf have an empty
// code.
type Table [Symbols]bitstream.Code

// BuildTable walks root once and records the path to every leaf, 0 for a
// left branch and 1 for a right one. The root must be internal.
func BuildTable(root *Node) (*Table, error) {
	if root == nil || root.IsLeaf() {
		return nil, fmt.Errorf("%w: root is not an internal node", ErrMalformed)
	}
	t := &Table{}
	var path bitstream.Code
	if err := t.walk(root, &path); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) walk(n *Node, path *bitstream.Code) error {
	if n.IsLeaf() {
		t[n.Symbol] = *path
		return nil
	}
	for bit, child := range [2]*Node{n.Left, n.Right} {
		if !path.Push(uint8(bit)) {
			return fmt.Errorf("%w: code longer than %d bits", ErrCapacity, bitstream.MaxCodeLen)
		}
		if err := t.walk(child, path); err != nil {
			return err
		}
		path.Pop()
	}
	return nil
}
