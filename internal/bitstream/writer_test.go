// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitstream

import (
	"bytes"
	"errors"
	"io"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/icza/bitio"
)

func codeOf(s string) *Code {
	c := &Code{}
	for i := 0; i < len(s); i++ {
		c.Push(s[i] - '0')
	}
	return c
}

func TestWriterPacksLSBFirst(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	w := NewWriter(buf)
	// 1,0,1 then 1,1,1,1,0 then 0,1 -> 0b01111101, 0b00000010
	for _, s := range []string{"101", "11110", "01"} {
		if err := w.Append(codeOf(s)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x7D, 0x02}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("expected %x got %x", want, buf.Bytes())
	}
	if w.Bits() != 10 {
		t.Fatalf("expected 10 bits got %d", w.Bits())
	}
}

func TestWriterEmptyFinish(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	w := NewWriter(buf)
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output got %d bytes", buf.Len())
	}
}

func TestWriterLongCode(t *testing.T) {
	var c Code
	for i := 0; i < MaxCodeLen; i++ {
		c.Push(uint8(i % 3 & 1))
	}
	buf := bytes.NewBuffer(nil)
	w := NewWriter(buf)
	w.Append(codeOf("1"))
	w.Append(&c)
	w.Finish()
	got := readAll(t, buf.Bytes(), 1+MaxCodeLen)
	if got[0] != 1 {
		t.Fatal("first bit lost")
	}
	for i := 0; i < MaxCodeLen; i++ {
		if got[i+1] != c.Bit(i) {
			t.Fatalf("bit %d differs", i)
		}
	}
}

// oracleBits decodes data with an independent MSB-first bit reader by
// reversing every byte first.
func oracleBits(t *testing.T, data []byte, n int) []uint8 {
	rev := make([]byte, len(data))
	for i, b := range data {
		rev[i] = bits.Reverse8(b)
	}
	br := bitio.NewReader(bytes.NewReader(rev))
	out := make([]uint8, 0, n)
	for i := 0; i < n; i++ {
		b, err := br.ReadBool()
		if err != nil {
			t.Fatal(i, err)
		}
		if b {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out
}

func TestWriterAcrossBlocks(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	var want []uint8
	buf := bytes.NewBuffer(nil)
	w := NewWriter(buf)
	for len(want) < 3*BlockSize*8+13 {
		var c Code
		n := 1 + rnd.Intn(40)
		for i := 0; i < n; i++ {
			b := uint8(rnd.Intn(2))
			c.Push(b)
			want = append(want, b)
		}
		if err := w.Append(&c); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != (len(want)+7)/8 {
		t.Fatalf("expected %d bytes got %d", (len(want)+7)/8, buf.Len())
	}
	if w.Bits() != uint64(len(want)) {
		t.Fatalf("expected %d bits got %d", len(want), w.Bits())
	}
	got := oracleBits(t, buf.Bytes(), len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bit %d: expected %d got %d", i, want[i], got[i])
		}
	}
}

type failWriter struct{ n int }

func (f *failWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errors.New("disk full")
}

func TestWriterStickyError(t *testing.T) {
	fw := &failWriter{}
	w := NewWriter(fw)
	var c Code
	for i := 0; i < 64; i++ {
		c.Push(1)
	}
	var err error
	for i := 0; i < BlockSize && err == nil; i++ {
		err = w.Append(&c)
	}
	if err == nil {
		t.Fatal("expected write error")
	}
	if w.Append(&c) != err || w.Finish() != err {
		t.Fatal("error is not sticky")
	}
	if fw.n != 1 {
		t.Fatalf("expected one write attempt got %d", fw.n)
	}
}

func TestWriterReset(t *testing.T) {
	a := bytes.NewBuffer(nil)
	w := NewWriter(a)
	w.Append(codeOf("111"))
	b := bytes.NewBuffer(nil)
	w.Reset(b)
	w.Append(codeOf("01"))
	w.Finish()
	if a.Len() != 0 || !bytes.Equal(b.Bytes(), []byte{0x02}) || w.Bits() != 2 {
		t.Fatalf("reset kept state: a=%x b=%x bits=%d", a.Bytes(), b.Bytes(), w.Bits())
	}
}

func readAll(t *testing.T, data []byte, n int) []uint8 {
	r := NewReader(bytes.NewReader(data))
	out := make([]uint8, n)
	for i := range out {
		b, err := r.NextBit()
		if err != nil {
			t.Fatal(i, err)
		}
		out[i] = b
	}
	return out
}

var _ io.Writer = (*failWriter)(nil)
