// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fastgo/huff/internal/bitstream"
	"github.com/fastgo/huff/internal/tree"
)

// Encode compresses src into dst. src is read from its start twice, first
// to build the tree and then to emit codes, so it must not change in
// between.
func Encode(dst io.Writer, src io.ReadSeeker, opts *Options) (st Stats, err error) {
	if opts == nil {
		opts = &Options{}
	}

	var hist Histogram
	if _, err = src.Seek(0, io.SeekStart); err != nil {
		return st, err
	}
	if err = hist.Count(src); err != nil {
		return st, err
	}

	root, leaves, err := tree.Build(&hist.Counts, opts.FullTree)
	if err != nil {
		return st, err
	}
	table, err := tree.BuildTable(root)
	if err != nil {
		return st, err
	}
	st = Stats{
		FileSize: hist.Total,
		Leaves:   leaves,
		TreeSize: tree.Size(leaves),
		root:     root,
	}

	hdr := Header{
		Magic:       Magic,
		Permissions: opts.Permissions,
		TreeSize:    uint16(st.TreeSize),
		FileSize:    hist.Total,
	}
	bw := bufio.NewWriter(dst)
	if _, err = hdr.WriteTo(bw); err != nil {
		return st, err
	}
	if err = tree.Dump(bw, root); err != nil {
		return st, err
	}
	if err = bw.Flush(); err != nil {
		return st, err
	}

	if _, err = src.Seek(0, io.SeekStart); err != nil {
		return st, err
	}
	st.PayloadBits, err = encodeFile(dst, src, table, hist.Total)
	return st, err
}

// encodeFile emits the code of every byte of src and checks that src still
// holds want bytes.
func encodeFile(dst io.Writer, src io.Reader, table *tree.Table, want uint64) (uint64, error) {
	w := bitstream.NewWriter(dst)
	buf := make([]byte, bitstream.BlockSize)
	var seen uint64
	for {
		n, rerr := bitstream.ReadSome(src, buf)
		for _, b := range buf[:n] {
			c := &table[b]
			if c.Empty() {
				return w.Bits(), fmt.Errorf("%w: byte %#02x has no code", ErrInputChanged, b)
			}
			if err := w.Append(c); err != nil {
				return w.Bits(), err
			}
		}
		seen += uint64(n)
		if seen > want {
			return w.Bits(), fmt.Errorf("%w: more than %d bytes", ErrInputChanged, want)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return w.Bits(), rerr
		}
	}
	if seen != want {
		return w.Bits(), fmt.Errorf("%w: %d bytes, expected %d", ErrInputChanged, seen, want)
	}
	return w.Bits(), w.Finish()
}

// PrintTree draws the tree Encode built; see Reader.PrintTree.
func (s Stats) PrintTree(w io.Writer) error {
	return tree.Fprint(w, s.root)
}
