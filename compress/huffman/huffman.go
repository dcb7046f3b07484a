// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a static Huffman file codec.
//
// A compressed stream is a 16-byte Header, the post-order serialization of
// the Huffman tree, and the bit-packed codes of every input byte. Encoding
// reads its input twice: once to count byte frequencies and once to emit
// codes. Decoding is a single forward pass that stops after the number of
// bytes recorded in the header.
package huffman

import (
	"errors"

	"github.com/fastgo/huff/internal/tree"
)

// Magic identifies a huff stream.
const Magic uint32 = 0xDEADDEAD

var (
	// ErrMalformedTree reports serialized tree bytes that do not describe a
	// full binary tree with at least two leaves.
	ErrMalformedTree = tree.ErrMalformed
	// ErrCapacityExceeded reports a broken internal bound, such as a code
	// longer than the code buffer.
	ErrCapacityExceeded = tree.ErrCapacity
	// ErrHeaderMismatch reports a stream that does not start with Magic.
	ErrHeaderMismatch = errors.New("huffman: bad magic number")
	// ErrTruncatedInput reports a stream that ends inside the header, the
	// tree or the payload.
	ErrTruncatedInput = errors.New("huffman: truncated input")
	// ErrInputChanged reports an input whose second pass differs from the first.
	ErrInputChanged = errors.New("huffman: input changed between passes")
)

// Options configures Encode. A nil *Options means the zero value.
type Options struct {
	// FullTree gives every byte value a leaf, seen or not.
	FullTree bool
	// Permissions is stored in the header for the decoder to restore.
	Permissions uint16
}

// Stats describes a finished encoding.
type Stats struct {
	FileSize    uint64 // input bytes
	Leaves      int
	TreeSize    int    // serialized tree bytes
	PayloadBits uint64 // code bits, before padding to whole bytes

	root *tree.Node
}
