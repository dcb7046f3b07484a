// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitstream

import "io"

// maxConsecutiveEmptyReads bounds retries against readers that keep
// returning 0, nil.
const maxConsecutiveEmptyReads = 100

// Reader hands out the bits of an underlying reader one at a time,
// least-significant bit of each byte first.
type Reader struct {
	r      io.Reader
	buf    []byte
	length int
	bitNo  int
	err    error
}

// NewReader returns a Reader with a BlockSize buffer over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:   r,
		buf: make([]byte, BlockSize),
	}
}

// Reset discards buffered bits and switches to under.
func (r *Reader) Reset(under io.Reader) {
	r.r = under
	r.length = 0
	r.bitNo = 0
	r.err = nil
}

// NextBit returns the next bit. Once the source is exhausted it returns
// io.EOF; any other read error is returned as is.
func (r *Reader) NextBit() (uint8, error) {
	if r.bitNo == 8*r.length {
		if err := r.fill(); err != nil {
			return 0, err
		}
	}
	bit := (r.buf[r.bitNo/8] >> (r.bitNo % 8)) & 1
	r.bitNo++
	return bit, nil
}

// fill refills the buffer with whatever the source has, accepting short
// reads. An error returned alongside data is kept for the next fill.
func (r *Reader) fill() error {
	if r.err != nil {
		return r.err
	}
	n, err := ReadSome(r.r, r.buf)
	if n > 0 {
		r.length = n
		r.bitNo = 0
		r.err = err
		return nil
	}
	r.err = err
	return err
}

// ReadSome reads into buf, retrying reads that return neither data nor an
// error. A source that stays empty yields io.ErrNoProgress.
func ReadSome(r io.Reader, buf []byte) (int, error) {
	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := r.Read(buf)
		if n > 0 || err != nil {
			return n, err
		}
	}
	return 0, io.ErrNoProgress
}
