// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"
	"io"

	"github.com/fastgo/huff/internal/bitstream"
	"github.com/fastgo/huff/internal/tree"
)

// Reader decompresses a huff stream. It yields exactly Header().FileSize
// bytes and then io.EOF.
type Reader struct {
	hdr    Header
	root   *tree.Node
	node   *tree.Node
	bits   *bitstream.Reader
	remain uint64
	err    error
}

// NewReader reads the header and the tree from r. The payload is consumed
// lazily by Read.
func NewReader(r io.Reader) (*Reader, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	saved := make([]byte, hdr.TreeSize)
	if _, err = io.ReadFull(r, saved); err != nil {
		return nil, truncated(err, "tree")
	}

	var root *tree.Node
	switch {
	case hdr.TreeSize != 0:
		if root, err = tree.Load(saved); err != nil {
			return nil, err
		}
		if root.IsLeaf() {
			return nil, fmt.Errorf("%w: single leaf", ErrMalformedTree)
		}
	case hdr.FileSize != 0:
		return nil, fmt.Errorf("%w: no tree for %d bytes", ErrMalformedTree, hdr.FileSize)
	}

	return &Reader{
		hdr:    hdr,
		root:   root,
		node:   root,
		bits:   bitstream.NewReader(r),
		remain: hdr.FileSize,
	}, nil
}

// Header returns the stream header read by NewReader.
func (r *Reader) Header() Header { return r.hdr }

// Read walks the tree one bit at a time, left on 0 and right on 1, and
// emits a symbol on every leaf.
func (r *Reader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.remain == 0 {
		r.err = io.EOF
		return 0, r.err
	}
	for n < len(p) && r.remain > 0 {
		bit, err := r.bits.NextBit()
		if err != nil {
			if err == io.EOF {
				err = fmt.Errorf("%w: payload ends %d bytes early", ErrTruncatedInput, r.remain)
			}
			r.err = err
			return n, err
		}
		if bit == 0 {
			r.node = r.node.Left
		} else {
			r.node = r.node.Right
		}
		if r.node.IsLeaf() {
			p[n] = r.node.Symbol
			n++
			r.remain--
			r.node = r.root
		}
	}
	return n, nil
}

// PrintTree draws the loaded tree. Loaded leaves have no real weights.
func (r *Reader) PrintTree(w io.Writer) error {
	return tree.Fprint(w, r.root)
}

// Decode decompresses src into dst and returns the stream header.
func Decode(dst io.Writer, src io.Reader) (Header, error) {
	r, err := NewReader(src)
	if err != nil {
		return Header{}, err
	}
	_, err = io.Copy(dst, r)
	return r.hdr, err
}
