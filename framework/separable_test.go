// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emer/ndimage/boundary"
	"github.com/emer/ndimage/imgcore"
	"github.com/emer/ndimage/imgtype"
)

func TestSeparableAppliesFilterAlongEachProcessedDimension(t *testing.T) {
	in := forgedImage([]int{2, 3}, func(c []int) float64 { return float64(c[0]*3 + c[1]) })
	out := forgedImage([]int{2, 3}, func(c []int) float64 { return 0 })

	err := Separable(in, out, doubleFilter{}, SeparableOptions{
		Process:    []bool{true, true},
		Conditions: []boundary.Condition{boundary.AlreadyExpanded, boundary.AlreadyExpanded},
		OutType:    imgtype.SFloat64,
		DontResize: true,
	})
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		c := in.Coord(i)
		// doubling applied twice (once per processed dimension) == 4x.
		assert.Equal(t, 4*in.At(c, 0), out.At(c, 0))
	}
}

func TestSeparableSkipsUnprocessedDimensions(t *testing.T) {
	in := forgedImage([]int{2, 3}, func(c []int) float64 { return float64(c[0]*3 + c[1]) })
	out := forgedImage([]int{2, 3}, func(c []int) float64 { return 0 })

	err := Separable(in, out, doubleFilter{}, SeparableOptions{
		Process:    []bool{false, true},
		Conditions: []boundary.Condition{boundary.AlreadyExpanded, boundary.AlreadyExpanded},
		DontResize: true,
	})
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		c := in.Coord(i)
		assert.Equal(t, 2*in.At(c, 0), out.At(c, 0))
	}
}

func TestSeparableNoDimensionsProcessedCopiesInput(t *testing.T) {
	in := forgedImage([]int{2, 3}, func(c []int) float64 { return float64(c[0]*3 + c[1]) })
	out := forgedImage([]int{2, 3}, func(c []int) float64 { return 0 })

	err := Separable(in, out, doubleFilter{}, SeparableOptions{
		Process: []bool{false, false},
	})
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		c := in.Coord(i)
		assert.Equal(t, in.At(c, 0), out.At(c, 0))
	}
}

func TestSeparablePreservesComplexImaginaryPart(t *testing.T) {
	in := imgcore.NewRaw([]int{2, 2}, imgtype.SComplex128)
	require.NoError(t, in.Reforge([]int{2, 2}, 1, imgtype.SComplex128))
	in.Buffer().SetComplex128At(0, complex(1, 1))
	in.Buffer().SetComplex128At(1, complex(2, -1))
	in.Buffer().SetComplex128At(2, complex(3, 2))
	in.Buffer().SetComplex128At(3, complex(4, -2))
	out := imgcore.NewRaw([]int{2, 2}, imgtype.SComplex128)
	require.NoError(t, out.Reforge([]int{2, 2}, 1, imgtype.SComplex128))

	err := Separable(in, out, complexDoubleFilter{}, SeparableOptions{
		Process:    []bool{true, true},
		Conditions: []boundary.Condition{boundary.AlreadyExpanded, boundary.AlreadyExpanded},
		OutType:    imgtype.SComplex128,
		DontResize: true,
	})
	require.NoError(t, err)
	// doubling applied twice (once per processed dimension) == 4x.
	assert.Equal(t, complex(4, 4), out.Buffer().Complex128At(0))
	assert.Equal(t, complex(8, -4), out.Buffer().Complex128At(1))
	assert.Equal(t, complex(12, 8), out.Buffer().Complex128At(2))
	assert.Equal(t, complex(16, -8), out.Buffer().Complex128At(3))
}

func TestSeparableRejectsDontResizeSizeMismatch(t *testing.T) {
	in := forgedImage([]int{2, 3}, func(c []int) float64 { return 0 })
	out := forgedImage([]int{4, 3}, func(c []int) float64 { return 0 })

	err := Separable(in, out, doubleFilter{}, SeparableOptions{
		Process:    []bool{false, true},
		DontResize: true,
	})
	assert.Error(t, err)
}
