// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imgcore is the n-dimensional strided image container: Shape (sizes
// and strides), Image (shape + tensor structure + typed buffer), and the
// view operations (crop, permute, flip, tensor<->spatial conversion) that
// never allocate. Grounded on etensor/shape.go and etensor/etensor.go,
// generalized from "one Go type per element kind" to one Image type that
// dispatches through a Buffer interface (imgtype.SampleType driven).
package imgcore

import (
	"fmt"
	"sort"

	"github.com/emer/ndimage/errs"
)

// Shape holds the spatial sizes and strides of an n-D image, in samples.
// Strides may be negative (reversed axis), zero (broadcast/singleton
// expansion) or duplicated across dimensions -- all three are legal and
// frameworks must handle them (spec.md §3.1).
type Shape struct {
	Sizes   []int
	Strides []int
}

// NewShape builds a Shape with row-major strides inferred from sizes if
// strides is nil, mirroring etensor.NewShape.
func NewShape(sizes []int, strides []int) Shape {
	sh := Shape{Sizes: append([]int(nil), sizes...)}
	if len(strides) == len(sizes) {
		sh.Strides = append([]int(nil), strides...)
	} else {
		sh.Strides = RowMajorStrides(sizes)
	}
	return sh
}

// NumDims returns the number of spatial dimensions.
func (sh Shape) NumDims() int { return len(sh.Sizes) }

// Len returns the product of all dimension sizes. A 0-D image (Sizes ==
// []int{}, matching spec.md's "n >= 0" dimensionality) has Len 1, the
// empty product: it holds a single pixel.
func (sh Shape) Len() int {
	if len(sh.Sizes) == 0 {
		return 1
	}
	n := 1
	for _, s := range sh.Sizes {
		n *= s
	}
	return n
}

// Offset returns the flat sample offset of spatial coordinate c.
func (sh Shape) Offset(c []int) int {
	o := 0
	for i, v := range c {
		o += v * sh.Strides[i]
	}
	return o
}

// Coord returns the n-D coordinate of the offset-th pixel in row-major
// order over Sizes. It depends only on Sizes, not on Strides, so it
// enumerates the pixels of any image or view.
func (sh Shape) Coord(offset int) []int {
	nd := len(sh.Sizes)
	c := make([]int, nd)
	rem := offset
	for i := nd - 1; i >= 0; i-- {
		s := sh.Sizes[i]
		if s == 0 {
			continue
		}
		c[i] = rem % s
		rem /= s
	}
	return c
}

// IndexInBounds reports whether c is a valid coordinate for this shape.
func (sh Shape) IndexInBounds(c []int) bool {
	if len(c) != len(sh.Sizes) {
		return false
	}
	for i, v := range c {
		if v < 0 || v >= sh.Sizes[i] {
			return false
		}
	}
	return true
}

// HasNormalStrides reports whether strides form a permutation-free
// row-major layout with no duplicated or negative strides -- the fast-path
// condition of spec.md §3.1.
func (sh Shape) HasNormalStrides() bool {
	want := RowMajorStrides(sh.Sizes)
	for i := range want {
		if sh.Strides[i] != want[i] {
			return false
		}
	}
	return true
}

// RowMajorStrides returns the strides of a dense row-major (C order) array
// of the given sizes, grounded on etensor/shape.go's RowMajorStrides.
func RowMajorStrides(sizes []int) []int {
	n := len(sizes)
	strides := make([]int, n)
	rem := 1
	for i := n - 1; i >= 0; i-- {
		strides[i] = rem
		rem *= sizes[i]
	}
	return strides
}

// Clone returns a deep copy of sh.
func (sh Shape) Clone() Shape {
	return Shape{Sizes: append([]int(nil), sh.Sizes...), Strides: append([]int(nil), sh.Strides...)}
}

func (sh Shape) String() string {
	return fmt.Sprintf("sizes=%v strides=%v", sh.Sizes, sh.Strides)
}

// StandardizeStrides returns the permutation that would make strides
// non-decreasing in absolute value with non-negative sign, the origin
// offset adjustment required (for dimensions that need flipping), and which
// dimensions were singleton/duplicated (stride==0), per spec.md §4.1.
// It is a pure query: it does not mutate sh.
type Standardized struct {
	Permutation []int // new dim i comes from old dim Permutation[i]
	OriginDelta int    // sample offset to add to the image's origin
	Singleton   []bool // per *new* dimension, true if the original stride was 0
}

func (sh Shape) StandardizeStrides() Standardized {
	nd := len(sh.Sizes)
	order := make([]int, nd)
	for i := range order {
		order[i] = i
	}
	abs := make([]int, nd)
	for i, s := range sh.Strides {
		if s < 0 {
			abs[i] = -s
		} else {
			abs[i] = s
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return abs[order[a]] < abs[order[b]]
	})
	st := Standardized{Permutation: order, Singleton: make([]bool, nd)}
	for newI, oldI := range order {
		if sh.Strides[oldI] < 0 {
			// flipping this axis requires moving the origin to the far end.
			st.OriginDelta += sh.Strides[oldI] * (sh.Sizes[oldI] - 1)
		}
		st.Singleton[newI] = sh.Strides[oldI] == 0
	}
	return st
}

// Apply returns the shape resulting from applying a Standardized result to
// sh (the permuted sizes, and all strides made non-negative).
func (sh Shape) Apply(st Standardized) Shape {
	nd := len(sh.Sizes)
	out := Shape{Sizes: make([]int, nd), Strides: make([]int, nd)}
	for newI, oldI := range st.Permutation {
		out.Sizes[newI] = sh.Sizes[oldI]
		s := sh.Strides[oldI]
		if s < 0 {
			s = -s
		}
		out.Strides[newI] = s
	}
	return out
}

// ErrIllegalDimension returns a dimensionality error for use in callers
// across imgcore; centralized so message wording stays consistent.
func ErrIllegalDimension(op string, dim, nd int) error {
	return errs.New(errs.IllegalDimension, "%s: dimension %d out of range for %d-D image", op, dim, nd).Push(op)
}
