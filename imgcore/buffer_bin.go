// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgcore

import (
	"unsafe"

	"github.com/emer/ndimage/imgtype"
)

// binBuffer stores the Bin sample type bit-packed, 8 samples per byte,
// generalizing etensor/bits.go's bitslice-backed Bits tensor (the
// bitslice package itself is external to this module, so the packing is
// reimplemented directly against a []byte here).
type binBuffer struct {
	bits   []byte
	offset int // bit offset of sample 0 within bits (non-zero after Slice)
	length int // number of samples this view covers
}

func newBinBuffer(n int) *binBuffer {
	return &binBuffer{bits: make([]byte, (n+7)/8), length: n}
}

func (b *binBuffer) SampleType() imgtype.SampleType { return imgtype.Bin }
func (b *binBuffer) Len() int                       { return b.length }

func (b *binBuffer) bitIndex(i int) (byteIdx, bit int) {
	total := b.offset + i
	return total / 8, total % 8
}

func (b *binBuffer) Get(i int) bool {
	byteIdx, bit := b.bitIndex(i)
	return b.bits[byteIdx]&(1<<uint(bit)) != 0
}

func (b *binBuffer) Set(i int, v bool) {
	byteIdx, bit := b.bitIndex(i)
	if v {
		b.bits[byteIdx] |= 1 << uint(bit)
	} else {
		b.bits[byteIdx] &^= 1 << uint(bit)
	}
}

func (b *binBuffer) Float64At(i int) float64 {
	if b.Get(i) {
		return 1
	}
	return 0
}
func (b *binBuffer) SetFloat64At(i int, v float64) { b.Set(i, v != 0) }
func (b *binBuffer) Complex128At(i int) complex128 { return complex(b.Float64At(i), 0) }
func (b *binBuffer) SetComplex128At(i int, v complex128) { b.SetFloat64At(i, real(v)) }

func (b *binBuffer) Slice(start, length int) Buffer {
	return &binBuffer{bits: b.bits, offset: b.offset + start, length: length}
}

func (b *binBuffer) Resize(n int) {
	need := (b.offset + n + 7) / 8
	if need <= cap(b.bits) {
		b.bits = b.bits[:need]
	} else {
		nb := make([]byte, need)
		copy(nb, b.bits)
		b.bits = nb
	}
	b.length = n
}

func (b *binBuffer) AddrRange() (start, end uintptr) {
	if len(b.bits) == 0 {
		return 0, 0
	}
	start = uintptr(unsafe.Pointer(&b.bits[0]))
	return start, start + uintptr(len(b.bits))
}
