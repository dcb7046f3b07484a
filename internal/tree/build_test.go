// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"bytes"
	"testing"
)

func histOf(data []byte) *[Symbols]uint64 {
	var h [Symbols]uint64
	for _, b := range data {
		h[b]++
	}
	return &h
}

func TestBuildExample(t *testing.T) {
	root, leaves, err := Build(histOf([]byte("AAAABBBCCD")), false)
	if err != nil {
		t.Fatal(err)
	}
	if leaves != 4 || Size(leaves) != 11 {
		t.Fatalf("expected 4 leaves / 11 bytes got %d / %d", leaves, Size(leaves))
	}
	if root.Weight != 10 {
		t.Fatalf("root weight %d", root.Weight)
	}
	// D and C merge first, then B joins them, then A.
	if got := AppendDump(nil, root); string(got) != "LALBLDLCIII" {
		t.Fatalf("unexpected shape %q", got)
	}
}

func TestBuildEmpty(t *testing.T) {
	var h [Symbols]uint64
	root, leaves, err := Build(&h, false)
	if err != nil {
		t.Fatal(err)
	}
	if leaves != 2 {
		t.Fatalf("expected 2 leaves got %d", leaves)
	}
	if root.IsLeaf() || root.Left.Symbol != 0x00 || root.Right.Symbol != 0xFF {
		t.Fatal("expected stand-ins 0x00 and 0xFF")
	}
	if h != ([Symbols]uint64{}) {
		t.Fatal("histogram modified")
	}
}

func TestBuildSingleSymbol(t *testing.T) {
	for _, tc := range []struct {
		sym, standIn byte
	}{{'a', 0x00}, {0x00, 0xFF}, {0xFF, 0x00}} {
		root, leaves, err := Build(histOf(bytes.Repeat([]byte{tc.sym}, 9)), false)
		if err != nil {
			t.Fatal(err)
		}
		if leaves != 2 {
			t.Fatalf("%#x: expected 2 leaves got %d", tc.sym, leaves)
		}
		var real, stand *Node
		for _, n := range []*Node{root.Left, root.Right} {
			if n.Symbol == tc.sym {
				real = n
			} else {
				stand = n
			}
		}
		if real == nil || stand == nil || stand.Symbol != tc.standIn {
			t.Fatalf("%#x: unexpected leaves %#x %#x", tc.sym, root.Left.Symbol, root.Right.Symbol)
		}
		if real.Weight != 9 || stand.Weight != 1 {
			t.Fatalf("%#x: unexpected weights %d %d", tc.sym, real.Weight, stand.Weight)
		}
	}
}

func TestBuildFullTree(t *testing.T) {
	root, leaves, err := Build(histOf([]byte("hello")), true)
	if err != nil {
		t.Fatal(err)
	}
	if leaves != Symbols || root.Leaves() != Symbols {
		t.Fatalf("expected %d leaves got %d", Symbols, leaves)
	}
	if Size(leaves) != 767 || len(AppendDump(nil, root)) != 767 {
		t.Fatal("full tree must serialize to 767 bytes")
	}
}

func TestBuildDeterministic(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, again and again")
	a, _, _ := Build(histOf(data), false)
	b, _, _ := Build(histOf(data), false)
	if !bytes.Equal(AppendDump(nil, a), AppendDump(nil, b)) {
		t.Fatal("same histogram produced different trees")
	}
}

func TestSizeLaw(t *testing.T) {
	if Size(0) != 0 {
		t.Fatal("Size(0) must be 0")
	}
	for n := 1; n <= Symbols; n++ {
		var h [Symbols]uint64
		for i := 0; i < n; i++ {
			h[(i*37)%Symbols] = uint64(i%5 + 1)
		}
		root, leaves, err := Build(&h, false)
		if err != nil {
			t.Fatal(err)
		}
		want := n
		if n == 1 {
			want = 2
		}
		if leaves != want {
			t.Fatalf("expected %d leaves got %d", want, leaves)
		}
		if got := len(AppendDump(nil, root)); got != Size(leaves) {
			t.Fatalf("%d leaves: serialized %d bytes, Size says %d", leaves, got, Size(leaves))
		}
	}
}
