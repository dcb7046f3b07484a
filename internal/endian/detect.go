// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package endian

import "unsafe"

// hostOrder stores a known 16-bit pattern and inspects which byte lands
// first in memory.
func hostOrder() Order {
	marker := uint16(0xFF00)
	b := (*[2]byte)(unsafe.Pointer(&marker))
	if b[0] == 0xFF {
		return Big
	}
	return Little
}
