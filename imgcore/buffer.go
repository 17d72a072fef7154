// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgcore

import (
	"unsafe"

	"github.com/emer/ndimage/imgtype"
)

// Buffer is the typed sample storage an Image borrows or owns. One Buffer
// implementation exists per imgtype.SampleType family (numeric, complex,
// bit-packed), generalizing etensor's one-concrete-type-per-kind idiom
// (etensor/float64.go, int.go, complex.go, bits.go) via Go generics instead
// of one hand-duplicated struct per kind -- the monomorphic dispatch
// spec.md §9 asks for still happens, at instantiation time rather than via
// a manual switch per operation.
type Buffer interface {
	// SampleType reports the element kind this buffer stores.
	SampleType() imgtype.SampleType

	// Len returns the number of samples available starting at this
	// buffer's own offset zero (a Slice of a larger buffer reports only
	// its own length).
	Len() int

	// Float64At reads sample i (0-based from this buffer's own offset) as
	// a float64, converting if the underlying type is not float64.
	Float64At(i int) float64
	// SetFloat64At writes a float64 into sample i, converting (with
	// rounding/clamping for integer kinds) to the underlying type.
	SetFloat64At(i int, v float64)

	// Complex128At / SetComplex128At are the complex-valued equivalents;
	// real-valued buffers return/accept a zero imaginary part.
	Complex128At(i int) complex128
	SetComplex128At(i int, v complex128)

	// Slice returns a Buffer viewing samples [start, start+length) of this
	// buffer, sharing the same underlying storage (no allocation).
	Slice(start, length int) Buffer

	// Resize grows or shrinks the underlying storage to hold exactly n
	// samples, in place when the existing capacity suffices.
	Resize(n int)

	// AddrRange reports the [start, end) byte address range of the backing
	// array, for the overlap detection Image.OverlapsBuffer performs.
	AddrRange() (start, end uintptr)
}

// NewBuffer allocates a zeroed Buffer of the given sample type and length.
func NewBuffer(t imgtype.SampleType, n int) Buffer {
	switch t {
	case Bin:
		return newBinBuffer(n)
	case imgtype.UInt8:
		return &numBuffer[uint8]{vals: make([]uint8, n), typ: imgtype.UInt8}
	case imgtype.SInt8:
		return &numBuffer[int8]{vals: make([]int8, n), typ: imgtype.SInt8}
	case imgtype.UInt16:
		return &numBuffer[uint16]{vals: make([]uint16, n), typ: imgtype.UInt16}
	case imgtype.SInt16:
		return &numBuffer[int16]{vals: make([]int16, n), typ: imgtype.SInt16}
	case imgtype.UInt32:
		return &numBuffer[uint32]{vals: make([]uint32, n), typ: imgtype.UInt32}
	case imgtype.SInt32:
		return &numBuffer[int32]{vals: make([]int32, n), typ: imgtype.SInt32}
	case imgtype.SFloat32:
		return &numBuffer[float32]{vals: make([]float32, n), typ: imgtype.SFloat32}
	case imgtype.SFloat64:
		return &numBuffer[float64]{vals: make([]float64, n), typ: imgtype.SFloat64}
	case imgtype.SComplex64:
		return &cplxBuffer[complex64]{vals: make([]complex64, n), typ: imgtype.SComplex64}
	case imgtype.SComplex128:
		return &cplxBuffer[complex128]{vals: make([]complex128, n), typ: imgtype.SComplex128}
	}
	return &numBuffer[float64]{vals: make([]float64, n), typ: imgtype.SFloat64}
}

// Bin is re-exported here for buffer construction convenience; the
// authoritative definition lives in imgtype.
const Bin = imgtype.Bin

type numericKind interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~float32 | ~float64
}

// numBuffer stores one real numeric sample type as a flat Go slice,
// generalizing etensor/float64.go and etensor/int.go.
type numBuffer[T numericKind] struct {
	vals []T
	typ  imgtype.SampleType
}

func (b *numBuffer[T]) SampleType() imgtype.SampleType { return b.typ }
func (b *numBuffer[T]) Len() int                       { return len(b.vals) }

func (b *numBuffer[T]) Float64At(i int) float64 { return float64(b.vals[i]) }
func (b *numBuffer[T]) SetFloat64At(i int, v float64) {
	b.vals[i] = T(b.typ.FromF64(v))
}
func (b *numBuffer[T]) Complex128At(i int) complex128 { return complex(float64(b.vals[i]), 0) }
func (b *numBuffer[T]) SetComplex128At(i int, v complex128) {
	b.vals[i] = T(b.typ.FromF64(real(v)))
}
func (b *numBuffer[T]) Slice(start, length int) Buffer {
	return &numBuffer[T]{vals: b.vals[start : start+length], typ: b.typ}
}
func (b *numBuffer[T]) Resize(n int) {
	if n <= cap(b.vals) {
		b.vals = b.vals[:n]
		return
	}
	nv := make([]T, n)
	copy(nv, b.vals)
	b.vals = nv
}

// Values returns the underlying typed slice for direct numeric code
// (accumulators, composite gonum interop) that wants to avoid the
// per-sample interface call.
func (b *numBuffer[T]) Values() []T { return b.vals }

func (b *numBuffer[T]) AddrRange() (start, end uintptr) {
	if len(b.vals) == 0 {
		return 0, 0
	}
	var zero T
	sz := unsafe.Sizeof(zero)
	start = uintptr(unsafe.Pointer(&b.vals[0]))
	return start, start + sz*uintptr(len(b.vals))
}

type complexKind interface{ ~complex64 | ~complex128 }

// cplxBuffer stores a complex sample type, generalizing etensor/complex.go.
type cplxBuffer[T complexKind] struct {
	vals []T
	typ  imgtype.SampleType
}

func (b *cplxBuffer[T]) SampleType() imgtype.SampleType { return b.typ }
func (b *cplxBuffer[T]) Len() int                       { return len(b.vals) }
func (b *cplxBuffer[T]) Float64At(i int) float64        { return real(complex128(b.vals[i])) }
func (b *cplxBuffer[T]) SetFloat64At(i int, v float64) {
	b.vals[i] = T(complex(v, 0))
}
func (b *cplxBuffer[T]) Complex128At(i int) complex128 { return complex128(b.vals[i]) }
func (b *cplxBuffer[T]) SetComplex128At(i int, v complex128) {
	b.vals[i] = T(v)
}
func (b *cplxBuffer[T]) Slice(start, length int) Buffer {
	return &cplxBuffer[T]{vals: b.vals[start : start+length], typ: b.typ}
}
func (b *cplxBuffer[T]) Resize(n int) {
	if n <= cap(b.vals) {
		b.vals = b.vals[:n]
		return
	}
	nv := make([]T, n)
	copy(nv, b.vals)
	b.vals = nv
}

func (b *cplxBuffer[T]) AddrRange() (start, end uintptr) {
	if len(b.vals) == 0 {
		return 0, 0
	}
	var zero T
	sz := unsafe.Sizeof(zero)
	start = uintptr(unsafe.Pointer(&b.vals[0]))
	return start, start + sz*uintptr(len(b.vals))
}
