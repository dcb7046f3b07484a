// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"fmt"
	"io"
	"strings"
)

// Fprint draws the tree sideways, left subtree on top, four spaces per
// level. Printable symbols are quoted, others shown in hex; internal nodes
// are drawn as '$'.
func Fprint(w io.Writer, root *Node) error {
	return fprint(w, root, 0)
}

func fprint(w io.Writer, n *Node, depth int) error {
	if n == nil {
		return nil
	}
	if err := fprint(w, n.Left, depth+1); err != nil {
		return err
	}
	indent := strings.Repeat(" ", 4*depth)
	var err error
	switch {
	case !n.IsLeaf():
		_, err = fmt.Fprintf(w, "%s$ (%d)\n", indent, n.Weight)
	case n.Symbol > ' ' && n.Symbol < 0x7F:
		_, err = fmt.Fprintf(w, "%s'%c' (%d)\n", indent, n.Symbol, n.Weight)
	default:
		_, err = fmt.Fprintf(w, "%s0x%02X (%d)\n", indent, n.Symbol, n.Weight)
	}
	if err != nil {
		return err
	}
	return fprint(w, n.Right, depth+1)
}
