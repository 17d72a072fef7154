// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emer/ndimage/feature"
	"github.com/emer/ndimage/imgcore"
	"github.com/emer/ndimage/imgtype"
	"github.com/emer/ndimage/measuregeom"
)

func TestSizeFeatureScanLine(t *testing.T) {
	f := newSizeFeature(2)
	require.NoError(t, f.Initialize(2))
	idIndex := map[uint64]int{1: 0, 2: 1}
	f.ScanLine([]float64{1, 1, 0, 2}, nil, []int{0}, 0, idIndex)
	f.ScanLine([]float64{1, 0, 2, 2}, nil, []int{1}, 0, idIndex)

	out := make([]float64, 1)
	f.Finish(0, out)
	assert.Equal(t, 3.0, out[0])
	f.Finish(1, out)
	assert.Equal(t, 3.0, out[0])
}

func TestCenterFeatureCentroid(t *testing.T) {
	f := newCenterFeature(2)
	require.NoError(t, f.Initialize(1))
	idIndex := map[uint64]int{1: 0}
	// Object 1 occupies (row=0,col=0..1) and (row=1,col=0..1): centroid (0.5,0.5).
	f.ScanLine([]float64{1, 1}, nil, []int{0}, 1, idIndex)
	f.ScanLine([]float64{1, 1}, nil, []int{1}, 1, idIndex)

	out := make([]float64, 2)
	f.Finish(0, out)
	assert.InDelta(t, 0.5, out[0], 1e-9)
	assert.InDelta(t, 0.5, out[1], 1e-9)
}

func TestCartesianBoxFeature(t *testing.T) {
	f := newBoxFeature(2)
	require.NoError(t, f.Initialize(1))
	idIndex := map[uint64]int{1: 0}
	f.ScanLine([]float64{0, 1, 1, 0}, nil, []int{0}, 1, idIndex)
	f.ScanLine([]float64{0, 0, 1, 0}, nil, []int{2}, 1, idIndex)

	out := make([]float64, 4)
	f.Finish(0, out)
	// dim0 (position) range [0,2], dim1 (scan x) range [1,2].
	assert.Equal(t, []float64{0, 2, 1, 2}, out)
}

func TestPerimeterAndFeretFeatures(t *testing.T) {
	cc := &measuregeom.ChainCode{StartX: 0, StartY: 0, Codes: []measuregeom.Direction{0, 2, 4, 6}}

	pf := newPerimeterFeature()
	out := make([]float64, 1)
	pf.Measure(cc, out)
	assert.Equal(t, 4.0, out[0])

	ff := newFeretFeature()
	out2 := make([]float64, 2)
	ff.Measure(cc, out2)
	assert.InDelta(t, math.Sqrt2, out2[0], 1e-9)
}

func TestConvexAreaAndPerimeterFeatures(t *testing.T) {
	hull := measuregeom.ConvexHullOf([]measuregeom.Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}})

	af := newConvexAreaFeature()
	out := make([]float64, 1)
	af.Measure(hull, out)
	assert.InDelta(t, 4.0, out[0], 1e-9)

	pf := newConvexPerimeterFeature()
	out2 := make([]float64, 1)
	pf.Measure(hull, out2)
	assert.InDelta(t, 8.0, out2[0], 1e-9)
}

func TestConvexityComposite(t *testing.T) {
	c := newConvexityFeature()
	deps := map[string][]float64{"Size": {3}, "ConvexArea": {4}}
	out := make([]float64, 1)
	c.Compose(deps, out)
	assert.InDelta(t, 0.75, out[0], 1e-9)
}

func TestGravityFeature(t *testing.T) {
	label := imgcore.NewRaw([]int{1, 3}, imgtype.UInt32)
	require.NoError(t, label.Reforge([]int{1, 3}, 1, imgtype.UInt32))
	grey := imgcore.NewRaw([]int{1, 3}, imgtype.SFloat64)
	require.NoError(t, grey.Reforge([]int{1, 3}, 1, imgtype.SFloat64))
	for x := 0; x < 3; x++ {
		label.SetAt([]int{0, x}, 0, 1)
	}
	// Weighted entirely toward x=2: centroid should sit there.
	grey.SetAt([]int{0, 0}, 0, 0)
	grey.SetAt([]int{0, 1}, 0, 0)
	grey.SetAt([]int{0, 2}, 0, 1)

	gf := newGravityFeature(2)
	images := &feature.ObjectImages{Label: label, Grey: grey}
	writer := &collectWriter{values: make(map[int][]float64)}
	require.NoError(t, gf.Measure(images, map[uint64]int{1: 0}, writer))
	assert.InDelta(t, 2.0, writer.values[0][1], 1e-9)
}

// collectWriter is a minimal feature.ColumnWriter for direct unit tests.
type collectWriter struct{ values map[int][]float64 }

func (w *collectWriter) Set(objectIndex, valueOffset int, v float64) {
	for len(w.values[objectIndex]) <= valueOffset {
		w.values[objectIndex] = append(w.values[objectIndex], 0)
	}
	w.values[objectIndex][valueOffset] = v
}
