// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleTypeClassification(t *testing.T) {
	assert.True(t, Bin.IsInteger())
	assert.True(t, UInt8.IsUnsigned())
	assert.False(t, SInt8.IsUnsigned())
	assert.True(t, SFloat32.IsFloat())
	assert.False(t, SFloat32.IsInteger())
	assert.True(t, SComplex64.IsComplex())
	assert.False(t, SComplex64.IsReal())
	assert.True(t, SFloat64.IsReal())
}

func TestSampleTypeSizeOf(t *testing.T) {
	cases := []struct {
		t    SampleType
		size int
	}{
		{Bin, 1}, {UInt8, 1}, {SInt8, 1},
		{UInt16, 2}, {SInt16, 2},
		{UInt32, 4}, {SInt32, 4}, {SFloat32, 4},
		{SFloat64, 8}, {SComplex64, 8},
		{SComplex128, 16},
	}
	for _, c := range cases {
		assert.Equal(t, c.size, c.t.SizeOf(), c.t.String())
	}
}

func TestWidenForArithmeticComplexDominates(t *testing.T) {
	assert.Equal(t, SComplex128, WidenForArithmetic(SComplex128, SFloat32))
	assert.Equal(t, SComplex64, WidenForArithmetic(SComplex64, SInt32))
}

func TestWidenForArithmeticFloatDominatesInteger(t *testing.T) {
	assert.Equal(t, SFloat64, WidenForArithmetic(SFloat64, SInt32))
	assert.Equal(t, SFloat32, WidenForArithmetic(SFloat32, SInt8))
}

func TestWidenForArithmeticIntegerPromotesToSInt32(t *testing.T) {
	assert.Equal(t, SInt32, WidenForArithmetic(UInt32, SInt32))
	assert.Equal(t, SInt32, WidenForArithmetic(UInt32, UInt32))
}

func TestWidenForArithmeticNarrowIntegersStaySmall(t *testing.T) {
	assert.Equal(t, SInt8, WidenForArithmetic(UInt8, SInt8))
}
