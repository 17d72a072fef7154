// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageIteratorVisitsEveryOtherCoordOnce(t *testing.T) {
	img := grid2x3()
	it, err := NewImage(img, 1) // dim 1 is the line dimension; dim 0 varies
	require.NoError(t, err)

	var rows []int
	for !it.Done() {
		rows = append(rows, it.Coord()[0])
		it.Next()
	}
	assert.Equal(t, []int{0, 1}, rows)
	assert.Equal(t, 2, it.Total())
	assert.Equal(t, 2, it.Count())
}

func TestImageIteratorLineMatchesPosition(t *testing.T) {
	img := grid2x3()
	it, err := NewImage(img, 1)
	require.NoError(t, err)
	it.Next() // advance to row 1
	l, err := it.Line()
	require.NoError(t, err)
	assert.Equal(t, 3.0, l.At(0))
	l.Next()
	assert.Equal(t, 4.0, l.At(0))
}

func TestImageIteratorRejectsNoLineDimension(t *testing.T) {
	img := grid2x3()
	it, err := NewImage(img, -1)
	require.NoError(t, err)
	_, err = it.Line()
	assert.Error(t, err)
}

func TestImageIteratorResetRewinds(t *testing.T) {
	img := grid2x3()
	it, err := NewImage(img, 1)
	require.NoError(t, err)
	it.Next()
	it.Next()
	assert.True(t, it.Done())
	it.Reset()
	assert.False(t, it.Done())
	assert.Equal(t, 0, it.Count())
}
