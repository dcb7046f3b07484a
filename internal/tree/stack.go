// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

// stack is the scratch LIFO used while loading a serialized tree.
type stack struct {
	entries []*Node
}

func newStack() *stack {
	return &stack{entries: make([]*Node, 0, Symbols)}
}

func (s *stack) push(n *Node) {
	s.entries = append(s.entries, n)
}

func (s *stack) pop() (*Node, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	top := len(s.entries) - 1
	n := s.entries[top]
	s.entries[top] = nil
	s.entries = s.entries[:top]
	return n, true
}

func (s *stack) len() int { return len(s.entries) }
