// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"fmt"
	"io"
)

// Tags of the serialized form. A leaf is LeafTag followed by its symbol;
// an internal node is a single InternalTag after both of its subtrees.
const (
	LeafTag     = 'L'
	InternalTag = 'I'
)

// Dump writes root in post-order.
func Dump(w io.ByteWriter, root *Node) error {
	if root == nil {
		return nil
	}
	if root.IsLeaf() {
		if err := w.WriteByte(LeafTag); err != nil {
			return err
		}
		return w.WriteByte(root.Symbol)
	}
	if err := Dump(w, root.Left); err != nil {
		return err
	}
	if err := Dump(w, root.Right); err != nil {
		return err
	}
	return w.WriteByte(InternalTag)
}

// AppendDump appends the serialized form of root to dst.
func AppendDump(dst []byte, root *Node) []byte {
	if root == nil {
		return dst
	}
	if root.IsLeaf() {
		return append(dst, LeafTag, root.Symbol)
	}
	dst = AppendDump(dst, root.Left)
	dst = AppendDump(dst, root.Right)
	return append(dst, InternalTag)
}

// Load rebuilds a tree from its serialized form. Any byte other than
// LeafTag in tag position is an internal node. Loaded leaves have weight 1;
// weights are not part of the format.
func Load(saved []byte) (*Node, error) {
	s := newStack()
	for i := 0; i < len(saved); i++ {
		if saved[i] == LeafTag {
			i++
			if i == len(saved) {
				return nil, fmt.Errorf("%w: leaf tag without symbol at offset %d", ErrMalformed, i-1)
			}
			s.push(NewLeaf(saved[i], 1))
			continue
		}
		r, ok := s.pop()
		if !ok {
			return nil, fmt.Errorf("%w: missing right child at offset %d", ErrMalformed, i)
		}
		l, ok := s.pop()
		if !ok {
			return nil, fmt.Errorf("%w: missing left child at offset %d", ErrMalformed, i)
		}
		s.push(Join(l, r))
	}
	if s.len() != 1 {
		return nil, fmt.Errorf("%w: %d subtrees left after %d bytes", ErrMalformed, s.len(), len(saved))
	}
	root, _ := s.pop()
	return root, nil
}
