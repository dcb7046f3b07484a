// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitstream

import "io"

// BlockSize is the size of the byte buffers used by Writer and Reader.
const BlockSize = 4 * 1024

// Writer appends codes to a block buffer and writes every full block to the
// underlying writer. Errors are sticky: after a failed write every call
// returns the same error.
type Writer struct {
	w      io.Writer
	output []byte
	idx    int
	bits   uint64
	bitLen uint
	total  uint64
	err    error
}

// NewWriter returns a Writer that flushes BlockSize bytes at a time to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:      w,
		output: make([]byte, BlockSize),
	}
}

// Reset discards buffered bits and the bit count and switches to under.
func (w *Writer) Reset(under io.Writer) {
	w.w = under
	w.idx = 0
	w.bits = 0
	w.bitLen = 0
	w.total = 0
	w.err = nil
}

// Append packs the bits of c in push order.
func (w *Writer) Append(c *Code) error {
	if w.err != nil {
		return w.err
	}
	w.total += uint64(c.n)
	full := c.n / 8
	for i := uint32(0); i < full; i++ {
		w.writeBits(c.bits[i], 8)
	}
	if rest := c.n % 8; rest != 0 {
		w.writeBits(c.bits[full]&(1<<rest-1), uint(rest))
	}
	return w.err
}

// writeBits adds the low count bits of v, count <= 8.
func (w *Writer) writeBits(v byte, count uint) {
	w.bits |= uint64(v) << w.bitLen
	w.bitLen += count
	if w.bitLen < 8 {
		return
	}
	w.output[w.idx] = byte(w.bits)
	w.idx++
	w.bits >>= 8
	w.bitLen -= 8
	if w.idx == len(w.output) {
		w.flush()
	}
}

func (w *Writer) flush() {
	if w.err != nil || w.idx == 0 {
		return
	}
	_, w.err = w.w.Write(w.output[:w.idx])
	w.idx = 0
}

// Bits returns the number of code bits appended since creation or Reset.
func (w *Writer) Bits() uint64 {
	return w.total
}

// Finish writes the buffered bits, rounding the last partial byte up with
// zero bits. A Writer that never received a bit writes nothing.
func (w *Writer) Finish() error {
	if w.err != nil {
		return w.err
	}
	if w.bitLen > 0 {
		w.output[w.idx] = byte(w.bits)
		w.idx++
		w.bits = 0
		w.bitLen = 0
	}
	w.flush()
	return w.err
}
