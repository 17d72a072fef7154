// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emer/ndimage/imgtype"
)

func TestRawImageIsNotForged(t *testing.T) {
	img := NewRaw([]int{2, 2}, imgtype.SFloat64)
	assert.False(t, img.IsForged())
}

func TestReforgeAllocatesAndAllowsAtSetAt(t *testing.T) {
	img := NewRaw([]int{2, 3}, imgtype.SFloat64)
	require.NoError(t, img.Reforge([]int{2, 3}, 1, imgtype.SFloat64))
	require.True(t, img.IsForged())

	img.SetAt([]int{1, 2}, 0, 7.5)
	assert.Equal(t, 7.5, img.At([]int{1, 2}, 0))
}

func TestReforgeReusesBufferWhenSoleOwnerAndBigEnough(t *testing.T) {
	img := NewRaw([]int{4}, imgtype.SFloat64)
	require.NoError(t, img.Reforge([]int{4}, 1, imgtype.SFloat64))
	buf1 := img.Buffer()
	require.NoError(t, img.Reforge([]int{2}, 1, imgtype.SFloat64))
	assert.Same(t, buf1, img.Buffer())
}

func TestCopyFromRequiresMatchingSizes(t *testing.T) {
	a := NewRaw([]int{2, 2}, imgtype.SFloat64)
	require.NoError(t, a.Reforge([]int{2, 2}, 1, imgtype.SFloat64))
	b := NewRaw([]int{3, 3}, imgtype.SFloat64)
	require.NoError(t, b.Reforge([]int{3, 3}, 1, imgtype.SFloat64))
	assert.Error(t, a.CopyFrom(b))
}

func TestCopyFromConvertsBetweenTypes(t *testing.T) {
	a := NewRaw([]int{2}, imgtype.SInt32)
	require.NoError(t, a.Reforge([]int{2}, 1, imgtype.SInt32))
	a.SetAt([]int{0}, 0, 3)
	a.SetAt([]int{1}, 0, 4)

	b := NewRaw([]int{2}, imgtype.SFloat64)
	require.NoError(t, b.Reforge([]int{2}, 1, imgtype.SFloat64))
	require.NoError(t, b.CopyFrom(a))
	assert.Equal(t, 3.0, b.At([]int{0}, 0))
	assert.Equal(t, 4.0, b.At([]int{1}, 0))
}

func TestConvertProducesIndependentImage(t *testing.T) {
	a := NewRaw([]int{2}, imgtype.SFloat64)
	require.NoError(t, a.Reforge([]int{2}, 1, imgtype.SFloat64))
	a.SetAt([]int{0}, 0, 1.9)

	b, err := a.Convert(imgtype.SInt32)
	require.NoError(t, err)
	assert.Equal(t, 2.0, b.At([]int{0}, 0)) // rounded

	a.SetAt([]int{0}, 0, 99)
	assert.Equal(t, 2.0, b.At([]int{0}, 0)) // unaffected by later writes to a
}

func TestStripDropsBufferWithoutAffectingOtherViews(t *testing.T) {
	a := NewRaw([]int{2}, imgtype.SFloat64)
	require.NoError(t, a.Reforge([]int{2}, 1, imgtype.SFloat64))
	a.SetAt([]int{0}, 0, 5)
	view, err := a.Crop([]int{0}, []int{2})
	require.NoError(t, err)

	a.Strip()
	assert.False(t, a.IsForged())
	assert.True(t, view.IsForged())
	assert.Equal(t, 5.0, view.At([]int{0}, 0))
}
