// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measuregeom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionSteps(t *testing.T) {
	cases := []struct {
		d      Direction
		dx, dy int
		odd    bool
	}{
		{0, 1, 0, false},  // E
		{1, 1, 1, true},   // NE
		{2, 0, 1, false},  // N
		{3, -1, 1, true},  // NW
		{4, -1, 0, false}, // W
		{5, -1, -1, true}, // SW
		{6, 0, -1, false}, // S
		{7, 1, -1, true},  // SE
	}
	for _, c := range cases {
		assert.Equal(t, c.dx, c.d.Dx())
		assert.Equal(t, c.dy, c.d.Dy())
		assert.Equal(t, c.odd, c.d.IsOdd())
	}
}

// squareChainCode returns the 4-connected chain code tracing a unit
// square's boundary: E, N, W, S back to start.
func squareChainCode() *ChainCode {
	return &ChainCode{StartX: 0, StartY: 0, Codes: []Direction{0, 2, 4, 6}}
}

func TestChainCodePerimeter(t *testing.T) {
	cc := squareChainCode()
	assert.Equal(t, 4.0, cc.Perimeter())
}

func TestChainCodePolygon(t *testing.T) {
	cc := squareChainCode()
	poly := cc.Polygon()
	assert.Len(t, poly.Vertices, 5)
	assert.Equal(t, Point{0, 0}, poly.Vertices[0])
	assert.Equal(t, Point{0, 0}, poly.Vertices[4])
	assert.InDelta(t, 1.0, math.Abs(poly.Area()), 1e-9)
}

func TestPolygonAreaAndPerimeter(t *testing.T) {
	// Counterclockwise unit square.
	poly := &Polygon{Vertices: []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
	assert.InDelta(t, 1.0, poly.Area(), 1e-9)
	assert.InDelta(t, 4.0, poly.Perimeter(), 1e-9)
	c := poly.Centroid()
	assert.InDelta(t, 0.5, c.X, 1e-9)
	assert.InDelta(t, 0.5, c.Y, 1e-9)
}

func TestPolygonMaxFeret(t *testing.T) {
	poly := &Polygon{Vertices: []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
	maxDiam, minDiam := poly.MaxFeret()
	assert.InDelta(t, math.Sqrt2, maxDiam, 1e-9)
	assert.InDelta(t, 1.0, minDiam, 1e-2)
}

func TestConvexHullOfSquareWithInteriorPoint(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}
	hull := ConvexHullOf(pts)
	assert.Len(t, hull.Vertices, 4)
	assert.InDelta(t, 1.0, hull.Area(), 1e-9)
	assert.InDelta(t, 4.0, hull.Perimeter(), 1e-9)
}

func TestConvexHullOfFewerThanThreePoints(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}}
	hull := ConvexHullOf(pts)
	assert.Len(t, hull.Vertices, 2)
}

func TestBendingEnergyOfSquareIsPositive(t *testing.T) {
	cc := squareChainCode()
	assert.Greater(t, cc.BendingEnergy(), 0.0)
}
