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
	"github.com/emer/ndimage/pixeltable"
)

// sumFilter writes, for every sample along the line, the sum of its
// neighborhood window -- exercising the one-call-per-line contract by
// advancing its own read position via p.InCenter/p.RunDimOffset instead of
// relying on the framework to call Filter once per pixel.
type sumFilter struct{}

func (sumFilter) SetThreadCount(n int) error { return nil }
func (sumFilter) Filter(p *Params) error {
	for x := 0; x < p.Length; x++ {
		center := p.InCenter + x*p.RunDimOffset
		sum := 0.0
		for _, o := range p.Offsets {
			sum += p.In[0][center+o]
		}
		p.Out[0][x] = sum
	}
	return nil
}

func TestFullSumsThreeSampleNeighborhoodWithZeroBorder(t *testing.T) {
	tab, err := pixeltable.New(pixeltable.Rectangle, []int{1, 3}, 1)
	require.NoError(t, err)

	in := forgedImage([]int{1, 4}, func(c []int) float64 { return float64(c[1] + 1) }) // [1,2,3,4]
	out := forgedImage([]int{1, 4}, func(c []int) float64 { return 0 })

	err = Full(in, out, tab, sumFilter{}, FullOptions{
		Conditions: []boundary.Condition{boundary.AlreadyExpanded, boundary.Zero},
	})
	require.NoError(t, err)

	got := []float64{out.At([]int{0, 0}, 0), out.At([]int{0, 1}, 0), out.At([]int{0, 2}, 0), out.At([]int{0, 3}, 0)}
	// zero-padded border: [0,1,2,3,4,0] -> sums of 3-wide windows centered on each sample.
	assert.Equal(t, []float64{3, 6, 9, 7}, got)
}

func TestFullRejectsMismatchedTableDimensionality(t *testing.T) {
	tab, err := pixeltable.New(pixeltable.Rectangle, []int{3}, 0)
	require.NoError(t, err)
	in := imgcore.NewRaw([]int{4, 4}, imgtype.SFloat64)
	require.NoError(t, in.Reforge([]int{4, 4}, 1, imgtype.SFloat64))
	out := imgcore.NewRaw([]int{4, 4}, imgtype.SFloat64)
	require.NoError(t, out.Reforge([]int{4, 4}, 1, imgtype.SFloat64))
	err = Full(in, out, tab, sumFilter{}, FullOptions{})
	assert.Error(t, err)
}
