// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMaxTracksExtremesAndIndices(t *testing.T) {
	var m MinMax
	m.Reset()
	m.Push(3, 0)
	m.Push(-1, 1)
	m.Push(5, 2)
	assert.Equal(t, -1.0, m.Min)
	assert.Equal(t, 1, m.MinIdx)
	assert.Equal(t, 5.0, m.Max)
	assert.Equal(t, 2, m.MaxIdx)
	assert.Equal(t, int64(3), m.N)
}

func TestMinMaxCombineMergesTwoShards(t *testing.T) {
	var a, b MinMax
	a.Reset()
	b.Reset()
	a.Push(2, 0)
	a.Push(9, 1)
	b.Push(-4, 0)
	b.Push(1, 1)

	c := a.Combine(b)
	assert.Equal(t, -4.0, c.Min)
	assert.Equal(t, 9.0, c.Max)
	assert.Equal(t, int64(4), c.N)
}

func TestMinMaxCombineWithEmptyReturnsOther(t *testing.T) {
	var empty, a MinMax
	empty.Reset()
	a.Reset()
	a.Push(1, 0)
	assert.Equal(t, a, empty.Combine(a))
	assert.Equal(t, a, a.Combine(empty))
}
