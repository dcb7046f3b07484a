// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"errors"
	"fmt"
	"io"
	"unsafe"

	"github.com/fastgo/huff/internal/endian"
)

// HeaderSize is the encoded size of a Header.
const HeaderSize = 16

// Header starts every stream. On disk all fields are little-endian; the
// in-memory layout matches the on-disk one, so a header is converted by
// swapping its fields on big-endian hosts and copying the bytes.
type Header struct {
	Magic       uint32
	Permissions uint16
	TreeSize    uint16 // serialized tree bytes that follow the header
	FileSize    uint64 // original byte count
}

// Fails to compile unless Header occupies exactly HeaderSize bytes.
var _ = [1]struct{}{}[unsafe.Sizeof(Header{})-HeaderSize]

// canonical converts between host and little-endian field order.
func (h Header) canonical() Header {
	return Header{
		Magic:       endian.Canonical32(h.Magic),
		Permissions: endian.Canonical16(h.Permissions),
		TreeSize:    endian.Canonical16(h.TreeSize),
		FileSize:    endian.Canonical64(h.FileSize),
	}
}

// MarshalBinary returns the little-endian wire form of h.
func (h Header) MarshalBinary() ([]byte, error) {
	c := h.canonical()
	raw := *(*[HeaderSize]byte)(unsafe.Pointer(&c))
	return raw[:], nil
}

// UnmarshalBinary decodes the first HeaderSize bytes of b. It does not
// check the magic number.
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncatedInput, HeaderSize, len(b))
	}
	var c Header
	copy((*[HeaderSize]byte)(unsafe.Pointer(&c))[:], b)
	*h = c.canonical()
	return nil
}

// WriteTo writes the HeaderSize wire bytes of h to w.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	b, _ := h.MarshalBinary()
	n, err := w.Write(b)
	return int64(n), err
}

// ReadHeader reads a header from r and checks its magic number.
func ReadHeader(r io.Reader) (h Header, err error) {
	var b [HeaderSize]byte
	if _, err = io.ReadFull(r, b[:]); err != nil {
		return h, truncated(err, "header")
	}
	h.UnmarshalBinary(b[:])
	if h.Magic != Magic {
		return h, fmt.Errorf("%w: %#08x", ErrHeaderMismatch, h.Magic)
	}
	return h, nil
}

// truncated classifies a premature end of input as ErrTruncatedInput and
// passes any other read error through.
func truncated(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s", ErrTruncatedInput, what)
	}
	return err
}
