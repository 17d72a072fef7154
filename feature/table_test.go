// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableForgeAndSetAt(t *testing.T) {
	tab := NewTable()
	require.NoError(t, tab.AddObject(1))
	require.NoError(t, tab.AddObject(2))
	require.NoError(t, tab.AddFeature("Size", []ValueInfo{{Name: "Size"}}))
	require.NoError(t, tab.AddFeature("Center", []ValueInfo{{Name: "X"}, {Name: "Y"}}))
	require.NoError(t, tab.Forge())

	assert.Equal(t, 2, tab.NumObjects())
	assert.Equal(t, 2, tab.NumFeatures())
	assert.Equal(t, 3, tab.NumColumns())

	row, ok := tab.RowOf(2)
	require.True(t, ok)
	require.NoError(t, tab.Set("Size", row, 0, 7))
	require.NoError(t, tab.Set("Center", row, 0, 1.5))
	require.NoError(t, tab.Set("Center", row, 1, 2.5))

	v, err := tab.At("Size", row, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	full := tab.Row(row)
	assert.Equal(t, []float64{7, 1.5, 2.5}, full)
}

func TestTableRejectsDuplicateObjectOrFeature(t *testing.T) {
	tab := NewTable()
	require.NoError(t, tab.AddObject(1))
	assert.Error(t, tab.AddObject(1))

	require.NoError(t, tab.AddFeature("Size", []ValueInfo{{Name: "Size"}}))
	assert.Error(t, tab.AddFeature("Size", []ValueInfo{{Name: "Size"}}))
}

func TestTableRequiresForgeBeforeSet(t *testing.T) {
	tab := NewTable()
	require.NoError(t, tab.AddObject(1))
	require.NoError(t, tab.AddFeature("Size", []ValueInfo{{Name: "Size"}}))
	assert.Error(t, tab.Set("Size", 0, 0, 1))
}

func TestUnionCombinesDisjointFeatureSets(t *testing.T) {
	a := NewTable()
	require.NoError(t, a.AddObject(1))
	require.NoError(t, a.AddObject(2))
	require.NoError(t, a.AddFeature("Size", []ValueInfo{{Name: "Size"}}))
	require.NoError(t, a.Forge())
	r, _ := a.RowOf(1)
	require.NoError(t, a.Set("Size", r, 0, 3))

	b := NewTable()
	require.NoError(t, b.AddObject(1))
	require.NoError(t, b.AddObject(2))
	require.NoError(t, b.AddFeature("Mass", []ValueInfo{{Name: "Mass"}}))
	require.NoError(t, b.Forge())
	r2, _ := b.RowOf(1)
	require.NoError(t, b.Set("Mass", r2, 0, 42))

	u, err := Union(a, b)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Size", "Mass"}, u.FeatureNames())
	row, ok := u.RowOf(1)
	require.True(t, ok)
	size, err := u.At("Size", row, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, size)
	mass, err := u.At("Mass", row, 0)
	require.NoError(t, err)
	assert.Equal(t, 42.0, mass)
}

// TestUnionFillsNaNForDisjointObjectsAndMergesOverlappingFeature reproduces
// spec.md §8's worked scenario: disjoint object-id ranges {10..19}/{15..24}
// sharing feature "F1", expecting a 15-row/3-feature union with NaN fills
// for every (object,feature) cell absent from its source table.
func TestUnionFillsNaNForDisjointObjectsAndMergesOverlappingFeature(t *testing.T) {
	a := NewTable()
	for id := uint64(10); id < 20; id++ {
		require.NoError(t, a.AddObject(id))
	}
	require.NoError(t, a.AddFeature("F1", []ValueInfo{{Name: "F1"}}))
	require.NoError(t, a.AddFeature("F2", []ValueInfo{{Name: "F2"}}))
	require.NoError(t, a.Forge())
	for id := uint64(10); id < 20; id++ {
		row, _ := a.RowOf(id)
		require.NoError(t, a.Set("F1", row, 0, float64(id)))
		require.NoError(t, a.Set("F2", row, 0, float64(id)*10))
	}

	b := NewTable()
	for id := uint64(15); id < 25; id++ {
		require.NoError(t, b.AddObject(id))
	}
	require.NoError(t, b.AddFeature("F1", []ValueInfo{{Name: "F1"}}))
	require.NoError(t, b.AddFeature("F3", []ValueInfo{{Name: "F3"}}))
	require.NoError(t, b.Forge())
	for id := uint64(15); id < 25; id++ {
		row, _ := b.RowOf(id)
		require.NoError(t, b.Set("F1", row, 0, float64(id)+1000))
		require.NoError(t, b.Set("F3", row, 0, float64(id)*100))
	}

	u, err := Union(a, b)
	require.NoError(t, err)
	assert.Equal(t, 15, u.NumObjects())
	assert.ElementsMatch(t, []string{"F1", "F2", "F3"}, u.FeatureNames())

	for id := uint64(10); id < 25; id++ {
		row, ok := u.RowOf(id)
		require.True(t, ok)

		f1, err := u.At("F1", row, 0)
		require.NoError(t, err)
		if id < 20 {
			assert.Equal(t, float64(id), f1) // a's value wins where a covers the row
		} else {
			assert.Equal(t, float64(id)+1000, f1)
		}

		f2, err := u.At("F2", row, 0)
		require.NoError(t, err)
		if id < 20 {
			assert.Equal(t, float64(id)*10, f2)
		} else {
			assert.True(t, math.IsNaN(f2))
		}

		f3, err := u.At("F3", row, 0)
		require.NoError(t, err)
		if id >= 15 {
			assert.Equal(t, float64(id)*100, f3)
		} else {
			assert.True(t, math.IsNaN(f3))
		}
	}
}

func TestUnionRejectsMismatchedValueCountForSameFeatureName(t *testing.T) {
	a := NewTable()
	require.NoError(t, a.AddObject(1))
	require.NoError(t, a.AddFeature("Center", []ValueInfo{{Name: "X"}, {Name: "Y"}}))
	require.NoError(t, a.Forge())

	b := NewTable()
	require.NoError(t, b.AddObject(1))
	require.NoError(t, b.AddFeature("Center", []ValueInfo{{Name: "X"}}))
	require.NoError(t, b.Forge())

	_, err := Union(a, b)
	assert.Error(t, err)
}
