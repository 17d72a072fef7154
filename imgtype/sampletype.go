// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imgtype defines the enumerated sample (element) kinds an
// imgcore.Image can hold, plus the arithmetic-widening and unit types that
// travel alongside pixel data. This is the "template dispatch over element
// type" of spec.md §9: rather than one Go type per sample kind, a runtime
// enum plus a match dispatches into monomorphic code paths.
package imgtype

import (
	"github.com/apache/arrow/go/arrow"
)

//go:generate core generate

// SampleType is the element type of one tensor sample within a pixel.
// Its numeric values are this package's own; ArrowType maps each one to
// the corresponding arrow type id so that externally-owned arrow tooling
// can interoperate with a forged Image's buffer.
type SampleType int32 //enums:enum

const (
	// Bin is a single bit, packed 8 per byte -- the library's binary/mask type.
	Bin SampleType = iota
	UInt8
	SInt8
	UInt16
	SInt16
	UInt32
	SInt32
	SFloat32
	SFloat64
	SComplex64
	SComplex128
)

// IsInteger reports whether t is one of the fixed-width integer kinds
// (Bin counts as integer for widening purposes).
func (t SampleType) IsInteger() bool {
	switch t {
	case Bin, UInt8, SInt8, UInt16, SInt16, UInt32, SInt32:
		return true
	}
	return false
}

// IsUnsigned reports whether t is an unsigned integer kind.
func (t SampleType) IsUnsigned() bool {
	switch t {
	case Bin, UInt8, UInt16, UInt32:
		return true
	}
	return false
}

// IsFloat reports whether t is a real floating-point kind.
func (t SampleType) IsFloat() bool {
	return t == SFloat32 || t == SFloat64
}

// IsComplex reports whether t is a complex kind.
func (t SampleType) IsComplex() bool {
	return t == SComplex64 || t == SComplex128
}

// IsReal reports whether t is a non-complex numeric kind -- used by
// frameworks whose line filter declares a real-only contract (spec.md §4.4).
func (t SampleType) IsReal() bool {
	return !t.IsComplex()
}

// SizeOf returns the size in bytes of one sample of this type, rounding Bin
// up to a full byte since individual bits are not independently addressable
// in a flat byte buffer -- bit-packing is handled by the Bin buffer
// implementation (imgcore), not by this size.
func (t SampleType) SizeOf() int {
	switch t {
	case Bin, UInt8, SInt8:
		return 1
	case UInt16, SInt16:
		return 2
	case UInt32, SInt32, SFloat32:
		return 4
	case SFloat64, SComplex64:
		return 8
	case SComplex128:
		return 16
	}
	return 0
}

// ArrowType returns the arrow.Type id this SampleType corresponds to, for
// interop with arrow-based external tooling. Bin maps to arrow.BOOL;
// complex types have no arrow equivalent and return arrow.NULL.
func (t SampleType) ArrowType() arrow.Type {
	switch t {
	case UInt8:
		return arrow.UINT8
	case SInt8:
		return arrow.INT8
	case UInt16:
		return arrow.UINT16
	case SInt16:
		return arrow.INT16
	case UInt32:
		return arrow.UINT32
	case SInt32:
		return arrow.INT32
	case SFloat32:
		return arrow.FLOAT32
	case SFloat64:
		return arrow.FLOAT64
	case Bin:
		return arrow.BOOL
	}
	return arrow.NULL
}

// WidenForArithmetic returns the sample type that should be used to hold the
// result of an arithmetic operation on two samples of types a and b: widen
// to the larger of the two, promoting integer+float to float and
// real+complex to complex, matching the source library's arithmetic-result
// rules (spec.md §3.1).
func WidenForArithmetic(a, b SampleType) SampleType {
	if a.IsComplex() || b.IsComplex() {
		if a.SizeOf() > 8 || b.SizeOf() > 8 {
			return SComplex128
		}
		return SComplex64
	}
	if a.IsFloat() || b.IsFloat() {
		if a == SFloat64 || b == SFloat64 {
			return SFloat64
		}
		return SFloat32
	}
	// both integer: widen to the larger size, preferring signed on a tie
	// between equal-width signed/unsigned (avoids silent overflow).
	sa, sb := a.SizeOf(), b.SizeOf()
	wide := a
	if sb > sa {
		wide = b
	} else if sb == sa && !b.IsUnsigned() {
		wide = b
	}
	// a 32-bit integer result is returned as SInt32, whatever the
	// signedness of the operands.
	if wide.SizeOf() >= 4 && wide != SFloat32 && wide != SFloat64 {
		return SInt32
	}
	return wide
}
