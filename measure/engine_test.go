// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/emer/ndimage/catalog"
	"github.com/emer/ndimage/imgcore"
	"github.com/emer/ndimage/imgtype"
)

func newForged(sizes []int, t imgtype.SampleType) *imgcore.Image {
	img := imgcore.NewRaw(sizes, t)
	if err := img.Reforge(sizes, 1, t); err != nil {
		panic(err)
	}
	return img
}

// twoSquares builds a 6x6 label image with two identical 2x2 objects: id 1
// at rows/cols [0,1], id 2 at rows/cols [3,4] -- a pure translation of
// object 1 -- plus a grey co-image holding 10 everywhere inside object 1
// and 20 everywhere inside object 2.
func twoSquares() (label, grey *imgcore.Image) {
	label = newForged([]int{6, 6}, imgtype.UInt32)
	grey = newForged([]int{6, 6}, imgtype.SFloat64)
	squares := []struct {
		id         uint64
		r0, c0     int
		greyValue  float64
	}{
		{1, 0, 0, 10},
		{2, 3, 3, 20},
	}
	for _, sq := range squares {
		for dr := 0; dr < 2; dr++ {
			for dc := 0; dc < 2; dc++ {
				c := []int{sq.r0 + dr, sq.c0 + dc}
				label.SetAt(c, 0, float64(sq.id))
				grey.SetAt(c, 0, sq.greyValue)
			}
		}
	}
	return label, grey
}

func TestMeasureSizeAndMean(t *testing.T) {
	label, grey := twoSquares()
	tab, err := Measure(label, grey, []string{"Size", "Mean"}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, tab.NumObjects())
	for _, tc := range []struct {
		id   uint64
		mean float64
	}{{1, 10}, {2, 20}} {
		row, ok := tab.RowOf(tc.id)
		require.True(t, ok)
		size, err := tab.At("Size", row, 0)
		require.NoError(t, err)
		assert.Equal(t, 4.0, size)
		mean, err := tab.At("Mean", row, 0)
		require.NoError(t, err)
		assert.Equal(t, tc.mean, mean)
	}
}

func TestMeasureCenterIsTranslationInvariant(t *testing.T) {
	label, grey := twoSquares()
	tab, err := Measure(label, grey, []string{"Center"}, Options{})
	require.NoError(t, err)

	row1, _ := tab.RowOf(1)
	row2, _ := tab.RowOf(2)
	for v := 0; v < tab.NumColumns(); v++ {
		c1, err := tab.At("Center", row1, v)
		require.NoError(t, err)
		c2, err := tab.At("Center", row2, v)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, c2-c1, 1e-9)
	}
}

func TestMeasureGeometricFeaturesAreTranslationInvariant(t *testing.T) {
	label, grey := twoSquares()
	tab, err := Measure(label, grey, []string{"Perimeter", "BendingEnergy", "Convexity"}, Options{})
	require.NoError(t, err)

	row1, _ := tab.RowOf(1)
	row2, _ := tab.RowOf(2)
	for _, name := range []string{"Perimeter", "BendingEnergy", "Convexity"} {
		v1, err := tab.At(name, row1, 0)
		require.NoError(t, err)
		v2, err := tab.At(name, row2, 0)
		require.NoError(t, err)
		assert.InDelta(t, v1, v2, 1e-9, "feature %s should match between identically-shaped objects", name)
	}
}

func TestMeasureRestrictsToRequestedObjectIDs(t *testing.T) {
	label, grey := twoSquares()
	tab, err := Measure(label, grey, []string{"Size"}, Options{ObjectIDs: []uint64{1}})
	require.NoError(t, err)
	assert.Equal(t, 1, tab.NumObjects())
	_, ok := tab.RowOf(2)
	assert.False(t, ok)
}

func TestMeasureRejectsMismatchedGreySizes(t *testing.T) {
	label := newForged([]int{6, 6}, imgtype.UInt32)
	grey := newForged([]int{5, 5}, imgtype.SFloat64)
	_, err := Measure(label, grey, []string{"Size"}, Options{})
	assert.Error(t, err)
}

func TestMeasureRejectsSignedLabel(t *testing.T) {
	label := newForged([]int{4, 4}, imgtype.SInt32)
	_, err := Measure(label, nil, []string{"Size"}, Options{})
	assert.Error(t, err)
}
