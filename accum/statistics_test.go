// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatisticsMeanAndVarianceOfSimpleSeries(t *testing.T) {
	var s Statistics
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Push(v)
	}
	assert.InDelta(t, 5.0, s.Mean(), 1e-9)
	assert.InDelta(t, 4.571428571, s.Variance(), 1e-6)
	assert.InDelta(t, 2.138089935, s.StdDev(), 1e-6)
}

func TestStatisticsCombineMatchesSinglePass(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	var single Statistics
	for _, v := range data {
		single.Push(v)
	}

	var a, b Statistics
	for _, v := range data[:4] {
		a.Push(v)
	}
	for _, v := range data[4:] {
		b.Push(v)
	}
	combined := a.Combine(b)

	assert.InDelta(t, single.Mean(), combined.Mean(), 1e-9)
	assert.InDelta(t, single.Variance(), combined.Variance(), 1e-9)
	assert.InDelta(t, single.Skewness(), combined.Skewness(), 1e-9)
	assert.InDelta(t, single.Kurtosis(), combined.Kurtosis(), 1e-6)
}

func TestStatisticsZeroAndOneSampleEdgeCases(t *testing.T) {
	var s Statistics
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 0.0, s.Skewness())
	assert.Equal(t, 0.0, s.Kurtosis())

	s.Push(42)
	assert.Equal(t, 42.0, s.Mean())
	assert.Equal(t, 0.0, s.Variance())
}
