// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

import (
	"github.com/emer/ndimage/errs"
	"github.com/emer/ndimage/imgcore"
)

// Image walks every "other" coordinate of an image -- all dimensions
// except, optionally, one designated processing dimension -- yielding a
// Line along that dimension (or, if ProcessDim is -1, a plain coordinate
// for per-pixel / per-tensor-sample access).
type Image struct {
	img        *imgcore.Image
	processDim int
	coord      []int
	sizes      []int
	done       bool
	total      int
	count      int
}

// NewImage returns an image iterator over img's "other" coordinates,
// excluding processDim (pass -1 to iterate every dimension as "other",
// e.g. for per-pixel access with no distinguished line direction).
func NewImage(img *imgcore.Image, processDim int) (*Image, error) {
	const op = "iter.NewImage"
	nd := img.NumDims()
	if processDim >= nd {
		return nil, imgcore.ErrIllegalDimension(op, processDim, nd)
	}
	it := &Image{img: img, processDim: processDim, coord: make([]int, nd), sizes: append([]int(nil), img.Sizes...)}
	it.total = 1
	for i, s := range it.sizes {
		if i == processDim {
			continue
		}
		it.total *= s
	}
	if it.total == 0 {
		it.done = true
	}
	return it, nil
}

// Done reports whether every "other" coordinate has been visited.
func (it *Image) Done() bool { return it.done }

// Coord returns the current coordinate vector (processDim's entry is 0 and
// not meaningful).
func (it *Image) Coord() []int { return it.coord }

// Count returns the number of positions visited so far.
func (it *Image) Count() int { return it.count }

// Total returns the total number of "other" positions this iterator will
// visit.
func (it *Image) Total() int { return it.total }

// Next advances to the next "other" coordinate, carrying like an odometer
// across every dimension but processDim.
func (it *Image) Next() {
	if it.done {
		return
	}
	it.count++
	nd := len(it.coord)
	for d := nd - 1; d >= 0; d-- {
		if d == it.processDim {
			continue
		}
		it.coord[d]++
		if it.coord[d] < it.sizes[d] {
			return
		}
		it.coord[d] = 0
	}
	it.done = true
}

// Line returns a Line iterator for the current position along processDim.
// Invalid if this iterator was constructed with processDim == -1.
func (it *Image) Line() (*Line, error) {
	const op = "iter.Image.Line"
	if it.processDim < 0 {
		return nil, errs.New(errs.InvalidParameter, "%s: iterator has no process dimension", op).Push(op)
	}
	return NewLine(it.img, it.processDim, it.coord)
}

// Reset rewinds the iterator to the first position.
func (it *Image) Reset() {
	for i := range it.coord {
		it.coord[i] = 0
	}
	it.done = it.total == 0
	it.count = 0
}
