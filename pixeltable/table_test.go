// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pixeltable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRectangleIncludesEverySample(t *testing.T) {
	tab, err := New(Rectangle, []int{3, 3}, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, tab.Count())
	assert.Equal(t, []int{1, 1}, tab.Boundary())
}

func TestNewRejectsEvenSize(t *testing.T) {
	_, err := New(Rectangle, []int{4, 3}, 1)
	assert.Error(t, err)
}

func TestNewDiamondExcludesCorners(t *testing.T) {
	tab, err := New(Diamond, []int{3, 3}, 1)
	require.NoError(t, err)
	// L1 ball of radius 1 within a 3x3 box: center + 4 axis neighbors.
	assert.Equal(t, 5, tab.Count())
}

func TestNewEllipsoidOfRadiusOneMatchesDiamondOnUnitBox(t *testing.T) {
	tab, err := New(Ellipsoid, []int{3, 3}, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, tab.Count())
}

func TestUniformWeightsSumToOne(t *testing.T) {
	tab, err := New(Rectangle, []int{1, 3}, 1)
	require.NoError(t, err)
	tab.UniformWeights()
	sum := 0.0
	for _, w := range tab.Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestSetWeightsRejectsWrongLength(t *testing.T) {
	tab, err := New(Rectangle, []int{1, 3}, 1)
	require.NoError(t, err)
	assert.Error(t, tab.SetWeights([]float64{1, 2}))
	assert.NoError(t, tab.SetWeights([]float64{1, 2, 3}))
}
