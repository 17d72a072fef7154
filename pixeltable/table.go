// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pixeltable implements the compact runs-plus-weights representation
// of a shaped n-D neighborhood described in spec.md §3.2/§4.3: a set of
// axis-aligned runs along one chosen run dimension, optionally weighted,
// constructed from a shape descriptor or a mask image and rebased onto an
// image's strides by Prepare.
package pixeltable

import (
	"math"

	"github.com/emer/ndimage/errs"
	"github.com/emer/ndimage/imgcore"
)

// Shape selects the neighborhood geometry used to decompose a size array
// into runs.
type Shape int32 //enums:enum

const (
	// Rectangle includes every coordinate within the given half-sizes.
	Rectangle Shape = iota
	// Ellipsoid includes coordinates within the axis-aligned ellipsoid
	// inscribed in the rectangle of the given sizes.
	Ellipsoid
	// Diamond includes coordinates within the L1 ball (taxicab diamond)
	// inscribed in the rectangle of the given sizes.
	Diamond
)

//go:generate core generate

// Run is one axis-aligned span of included samples: length contiguous
// coordinates starting at Start along RunDim, with every other coordinate
// held fixed at Coord.
type Run struct {
	// Coord holds the fixed coordinate for every dimension except RunDim;
	// Coord[RunDim] is unused (Start is authoritative there).
	Coord  []int
	Start  int
	Length int
}

// Table is a shaped n-D neighborhood decomposed into runs along RunDim,
// optionally carrying one weight per contained sample (grounded on
// etensor/prjn2d.go's shape-decomposition idiom, generalized from
// collapsing an n-D shape to 2D into extracting per-run-dimension runs from
// an n-D shape descriptor).
type Table struct {
	NumDims int
	Sizes   []int // full extent along each dimension, must be odd (centered)
	RunDim  int
	Runs    []Run
	Weights []float64 // parallel to the flattened sample order of Runs, or nil
}

// New builds a Table from a shape descriptor and per-dimension sizes (each
// must be odd so the neighborhood is centered on the origin pixel), using
// runDim as the run dimension.
func New(shape Shape, sizes []int, runDim int) (*Table, error) {
	const op = "pixeltable.New"
	nd := len(sizes)
	if runDim < 0 || runDim >= nd {
		return nil, errs.New(errs.IllegalDimension, "%s: run dimension %d out of range for %d dims", op, runDim, nd).Push(op)
	}
	half := make([]int, nd)
	for i, s := range sizes {
		if s <= 0 || s%2 == 0 {
			return nil, errs.New(errs.InvalidParameter, "%s: size %d at dim %d must be positive and odd", op, s, i).Push(op)
		}
		half[i] = s / 2
	}
	t := &Table{NumDims: nd, Sizes: append([]int(nil), sizes...), RunDim: runDim}
	t.extractRuns(shape, half)
	return t, nil
}

func pointIncluded(shape Shape, coord []int, half []int) bool {
	switch shape {
	case Rectangle:
		return true
	case Ellipsoid:
		sum := 0.0
		for i, c := range coord {
			if half[i] == 0 {
				continue
			}
			r := float64(c) / float64(half[i])
			sum += r * r
		}
		return sum <= 1.0+1e-12
	case Diamond:
		sum := 0.0
		for i, c := range coord {
			if half[i] == 0 {
				continue
			}
			sum += math.Abs(float64(c)) / float64(half[i])
		}
		return sum <= 1.0+1e-12
	}
	return false
}

// extractRuns walks every "other" coordinate (all dimensions but RunDim)
// and, for each, scans along RunDim recording maximal included spans as
// Runs -- the n-D generalization of etensor/prjn2d.go's per-line collapse.
func (t *Table) extractRuns(shape Shape, half []int) {
	nd := t.NumDims
	coord := make([]int, nd)
	lo := make([]int, nd)
	hi := make([]int, nd)
	for i := 0; i < nd; i++ {
		lo[i] = -half[i]
		hi[i] = half[i]
	}
	runLen := t.Sizes[t.RunDim]
	var walk func(dim int)
	walk = func(dim int) {
		if dim == nd {
			t.scanLine(shape, coord, half, runLen)
			return
		}
		if dim == t.RunDim {
			walk(dim + 1)
			return
		}
		for coord[dim] = lo[dim]; coord[dim] <= hi[dim]; coord[dim]++ {
			walk(dim + 1)
		}
	}
	walk(0)
}

func (t *Table) scanLine(shape Shape, coord []int, half []int, runLen int) {
	rd := t.RunDim
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		row := append([]int(nil), coord...)
		t.Runs = append(t.Runs, Run{Coord: row, Start: start, Length: end - start})
		start = -1
	}
	for p := -half[rd]; p <= half[rd]; p++ {
		coord[rd] = p
		if pointIncluded(shape, coord, half) {
			if start < 0 {
				start = p
			}
		} else {
			flush(p)
		}
	}
	flush(half[rd] + 1)
}

// FromMask builds a Table whose included samples are the true ("bin")
// samples of mask, scanning runs along runDim. mask must be a scalar bin
// image.
func FromMask(mask *imgcore.Image, runDim int) (*Table, error) {
	const op = "pixeltable.FromMask"
	if mask.TensorElements() != 1 {
		return nil, errs.New(errs.NotScalar, "%s: mask must be scalar", op).Push(op)
	}
	nd := mask.NumDims()
	if runDim < 0 || runDim >= nd {
		return nil, errs.New(errs.IllegalDimension, "%s: run dimension %d out of range for %d dims", op, runDim, nd).Push(op)
	}
	sizes := make([]int, nd)
	for i, s := range mask.Sizes {
		sizes[i] = s
		if s%2 == 0 {
			return nil, errs.New(errs.InvalidParameter, "%s: mask size %d at dim %d must be odd (centered)", op, s, i).Push(op)
		}
	}
	t := &Table{NumDims: nd, Sizes: sizes, RunDim: runDim}
	half := make([]int, nd)
	for i := range sizes {
		half[i] = sizes[i] / 2
	}
	lo := make([]int, nd)
	hi := make([]int, nd)
	for i := range sizes {
		lo[i] = 0
		hi[i] = sizes[i] - 1
	}
	coord := make([]int, nd)
	var walk func(dim int)
	walk = func(dim int) {
		if dim == nd {
			scanMaskLine(mask, t, coord, half, runDim)
			return
		}
		if dim == runDim {
			walk(dim + 1)
			return
		}
		for coord[dim] = lo[dim]; coord[dim] <= hi[dim]; coord[dim]++ {
			walk(dim + 1)
		}
	}
	walk(0)
	return t, nil
}

func scanMaskLine(mask *imgcore.Image, t *Table, coord []int, half []int, runDim int) {
	nd := t.NumDims
	start := -1
	centered := make([]int, nd)
	flush := func(endRaw int) {
		if start < 0 {
			return
		}
		row := append([]int(nil), centered...)
		t.Runs = append(t.Runs, Run{Coord: row, Start: start - half[runDim], Length: endRaw - start})
		start = -1
	}
	for i := range coord {
		centered[i] = coord[i] - half[i]
	}
	for p := 0; p <= t.Sizes[runDim]-1; p++ {
		coord[runDim] = p
		set := mask.At(coord, 0) != 0
		if set {
			if start < 0 {
				start = p
			}
		} else {
			flush(p)
		}
	}
	flush(t.Sizes[runDim])
}

// SetWeights attaches one weight per sample in flattened run order (the
// same order Prepare will use for offsets); len(weights) must equal the
// table's total sample count.
func (t *Table) SetWeights(weights []float64) error {
	const op = "pixeltable.SetWeights"
	if len(weights) != t.Count() {
		return errs.New(errs.ArrayParameterWrongLength, "%s: %d weights for %d samples", op, len(weights), t.Count()).Push(op)
	}
	t.Weights = append([]float64(nil), weights...)
	return nil
}

// UniformWeights attaches equal weights summing to 1 across every sample.
func (t *Table) UniformWeights() {
	n := t.Count()
	w := make([]float64, n)
	if n > 0 {
		v := 1.0 / float64(n)
		for i := range w {
			w[i] = v
		}
	}
	t.Weights = w
}

// Count returns the total number of samples across all runs.
func (t *Table) Count() int {
	n := 0
	for _, r := range t.Runs {
		n += r.Length
	}
	return n
}

// Boundary returns the per-dimension border width this table requires when
// applied via the full framework: half the table's size along each
// dimension.
func (t *Table) Boundary() []int {
	b := make([]int, t.NumDims)
	for i, s := range t.Sizes {
		b[i] = s / 2
	}
	return b
}
