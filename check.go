// Package huff provides a static Huffman file codec for Go applications.
// The codec lives in compress/huffman; this package reports properties of
// the running host that affect it.
package huff

import "github.com/fastgo/huff/internal/endian"

// NativeOrder reports whether the host stores integers in the canonical
// little-endian order of the huff header. It returns false on big-endian
// hosts, where every header field is byte-swapped on read and write.
func NativeOrder() bool {
	return endian.Host == endian.Little
}
