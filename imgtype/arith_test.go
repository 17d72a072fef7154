// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgtype

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeOfIntegerTypes(t *testing.T) {
	lo, hi := UInt8.Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 255.0, hi)

	lo, hi = SInt8.Range()
	assert.Equal(t, -128.0, lo)
	assert.Equal(t, 127.0, hi)
}

func TestRangeOfFloatIsUnbounded(t *testing.T) {
	lo, hi := SFloat64.Range()
	assert.True(t, math.IsInf(lo, -1))
	assert.True(t, math.IsInf(hi, 1))
}

func TestClampSaturatesIntegerRange(t *testing.T) {
	assert.Equal(t, 255.0, UInt8.Clamp(1000))
	assert.Equal(t, 0.0, UInt8.Clamp(-5))
	assert.Equal(t, 42.0, UInt8.Clamp(42))
}

func TestClampPassesThroughNaNAndFloat(t *testing.T) {
	assert.True(t, math.IsNaN(UInt8.Clamp(math.NaN())))
	assert.Equal(t, 1e9, SFloat64.Clamp(1e9))
}

func TestFromF64RoundsAndClampsIntegers(t *testing.T) {
	assert.Equal(t, 3.0, UInt8.FromF64(2.6))
	assert.Equal(t, 255.0, UInt8.FromF64(999))
}

func TestFromF64LeavesFloat64Unchanged(t *testing.T) {
	assert.Equal(t, 1.23456789, SFloat64.FromF64(1.23456789))
}

func TestWidenFloat32IsNaN(t *testing.T) {
	assert.True(t, WidenFloat32IsNaN(float32(math.NaN())))
	assert.False(t, WidenFloat32IsNaN(1.5))
}
