// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pixeltable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emer/ndimage/imgcore"
	"github.com/emer/ndimage/imgtype"
)

func TestPrepareRebasesOffsetsOntoImageStrides(t *testing.T) {
	tab, err := New(Rectangle, []int{1, 3}, 1)
	require.NoError(t, err)

	img := imgcore.NewRaw([]int{4, 4}, imgtype.SFloat64)
	require.NoError(t, img.Reforge([]int{4, 4}, 1, imgtype.SFloat64))

	off, err := tab.Prepare(img, 1)
	require.NoError(t, err)
	assert.Equal(t, img.Strides[1], off.RunDimOffset)
	assert.Equal(t, []int{-1, 0, 1}, off.Offsets)
}

func TestPrepareRejectsTooFewImageDimensions(t *testing.T) {
	tab, err := New(Rectangle, []int{3, 3, 3}, 1)
	require.NoError(t, err)
	img := imgcore.NewRaw([]int{4, 4}, imgtype.SFloat64)
	require.NoError(t, img.Reforge([]int{4, 4}, 1, imgtype.SFloat64))
	_, err = tab.Prepare(img, 1)
	assert.Error(t, err)
}
