// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package endian detects the byte order of the running host and converts
// multi-byte fields between host order and the canonical little-endian
// order used by the huff file format.
package endian

import "math/bits"

// Order identifies how a host lays out multi-byte integers in memory.
type Order uint8

// Byte orders.
const (
	Little Order = iota
	Big
)

// Host is the byte order of the running machine.
// The value is determined at package initialization time.
var (
	Host = hostOrder()
)

// String returns "little-endian" or "big-endian".
func (o Order) String() string {
	if o == Big {
		return "big-endian"
	}
	return "little-endian"
}

// Swap16 reverses the byte order of x.
func Swap16(x uint16) uint16 { return bits.ReverseBytes16(x) }

// Swap32 reverses the byte order of x.
func Swap32(x uint32) uint32 { return bits.ReverseBytes32(x) }

// Swap64 reverses the byte order of x.
func Swap64(x uint64) uint64 { return bits.ReverseBytes64(x) }

// Canonical16 converts x from host order to little-endian or back.
// The conversion is its own inverse and a no-op on little-endian hosts.
func Canonical16(x uint16) uint16 {
	if Host == Big {
		return Swap16(x)
	}
	return x
}

// Canonical32 is Canonical16 for 32-bit fields.
func Canonical32(x uint32) uint32 {
	if Host == Big {
		return Swap32(x)
	}
	return x
}

// Canonical64 is Canonical16 for 64-bit fields.
func Canonical64(x uint64) uint64 {
	if Host == Big {
		return Swap64(x)
	}
	return x
}
