// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMomentFirstOrderIsCentroid(t *testing.T) {
	m := NewMoment(2)
	m.Push([]float64{0, 0}, 1)
	m.Push([]float64{2, 4}, 1)
	assert.Equal(t, 2.0, m.Count())
	assert.Equal(t, []float64{1, 2}, m.FirstOrder())
}

func TestMomentSecondOrderOfTwoSymmetricPoints(t *testing.T) {
	m := NewMoment(1)
	m.Push([]float64{-1}, 1)
	m.Push([]float64{1}, 1)
	sym, err := m.SecondOrder()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sym.At(0, 0), 1e-12)
}

func TestMomentSecondOrderErrorsWithNoMass(t *testing.T) {
	m := NewMoment(2)
	_, err := m.SecondOrder()
	assert.Error(t, err)
}

func TestMomentCombineMatchesSinglePass(t *testing.T) {
	a := NewMoment(1)
	a.Push([]float64{1}, 1)
	b := NewMoment(1)
	b.Push([]float64{3}, 1)

	combined := a.Combine(*b)
	single := NewMoment(1)
	single.Push([]float64{1}, 1)
	single.Push([]float64{3}, 1)

	assert.Equal(t, single.FirstOrder(), combined.FirstOrder())
	assert.Equal(t, single.Count(), combined.Count())
}
