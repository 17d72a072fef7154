// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emer/ndimage/imgcore"
	"github.com/emer/ndimage/imgtype"
)

func grid2x3() *imgcore.Image {
	img := imgcore.NewRaw([]int{2, 3}, imgtype.SFloat64)
	if err := img.Reforge([]int{2, 3}, 1, imgtype.SFloat64); err != nil {
		panic(err)
	}
	v := 0.0
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			img.SetAt([]int{r, c}, 0, v)
			v++
		}
	}
	return img
}

func TestLineWalksOneRow(t *testing.T) {
	img := grid2x3()
	l, err := NewLine(img, 1, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())

	var got []float64
	for !l.Done() {
		got = append(got, l.At(0))
		l.Next()
	}
	assert.Equal(t, []float64{3, 4, 5}, got)
}

func TestLineResetRewinds(t *testing.T) {
	img := grid2x3()
	l, err := NewLine(img, 0, []int{0, 2})
	require.NoError(t, err)
	l.Next()
	l.Next()
	assert.True(t, l.Done())
	l.Reset()
	assert.False(t, l.Done())
	assert.Equal(t, 0, l.Pos())
}

func TestLineRejectsMismatchedCoordLength(t *testing.T) {
	img := grid2x3()
	_, err := NewLine(img, 0, []int{0})
	assert.Error(t, err)
}
