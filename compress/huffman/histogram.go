// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"io"

	"github.com/fastgo/huff/internal/bitstream"
	"github.com/fastgo/huff/internal/tree"
)

// Histogram holds the byte frequencies of one pass over an input.
type Histogram struct {
	Counts [tree.Symbols]uint64
	Unique int    // distinct byte values seen
	Total  uint64 // bytes seen
}

// Count adds every byte of r to h.
func (h *Histogram) Count(r io.Reader) error {
	buf := make([]byte, bitstream.BlockSize)
	for {
		n, err := bitstream.ReadSome(r, buf)
		for _, b := range buf[:n] {
			if h.Counts[b] == 0 {
				h.Unique++
			}
			h.Counts[b]++
		}
		h.Total += uint64(n)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
