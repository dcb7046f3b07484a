// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package bitstream packs Huffman codes into bytes and unpacks them again.
// Bits are stored least-significant-bit first within every byte, both
// inside a Code and in the packed stream.
package bitstream

import "strings"

// MaxCodeLen is the longest code a Code can hold. A tree over 256 symbols
// is at most 255 levels deep, so every real code fits.
const MaxCodeLen = 256

// Code is a root-to-leaf path: bit 0 for a left branch, 1 for a right one.
// The zero value is an empty code. Code is a value type; copies are
// independent.
type Code struct {
	bits [MaxCodeLen / 8]byte
	n    uint32
}

// Push appends bit (0 or nonzero for 1). It reports false when the code is
// already MaxCodeLen long.
func (c *Code) Push(bit uint8) bool {
	if c.n == MaxCodeLen {
		return false
	}
	if bit == 0 {
		c.bits[c.n/8] &^= 1 << (c.n % 8)
	} else {
		c.bits[c.n/8] |= 1 << (c.n % 8)
	}
	c.n++
	return true
}

// Pop removes the last bit and returns it. It reports false on an empty code.
func (c *Code) Pop() (uint8, bool) {
	if c.n == 0 {
		return 0, false
	}
	c.n--
	return (c.bits[c.n/8] >> (c.n % 8)) & 1, true
}

// Bit returns the i-th pushed bit.
func (c *Code) Bit(i int) uint8 {
	return (c.bits[i/8] >> (i % 8)) & 1
}

// Len returns the number of bits in c.
func (c *Code) Len() int { return int(c.n) }

// Empty reports whether c holds no bits.
func (c *Code) Empty() bool { return c.n == 0 }

// Full reports whether c holds MaxCodeLen bits.
func (c *Code) Full() bool { return c.n == MaxCodeLen }

// String renders the code as '0' and '1' characters in push order.
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(int(c.n))
	for i := 0; i < int(c.n); i++ {
		sb.WriteByte('0' + c.Bit(i))
	}
	return sb.String()
}
