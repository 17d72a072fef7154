// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iter implements the single-image and joint multi-image iterators
// of spec.md §4.2: a line iterator walking one 1-D line along a processing
// dimension, an image iterator walking the "other" coordinates, and a joint
// iterator coordinating N images with storage-order optimization.
package iter

import (
	"github.com/emer/ndimage/errs"
	"github.com/emer/ndimage/imgcore"
)

// Line walks the samples of one 1-D line within an image along one
// processing dimension, grounded on etable/idxview.go's IndexView
// traversal idiom (sequential position + Len/forward-increment) adapted to
// strided coordinate walking instead of row indirection.
type Line struct {
	img     *imgcore.Image
	dim     int
	base    int // flat offset of position 0 along dim, other coords fixed
	stride  int
	length  int
	pos     int
	tensorN int
}

// NewLine returns a line iterator through img along dim, with the other
// coordinates fixed at other (other[dim] is ignored).
func NewLine(img *imgcore.Image, dim int, other []int) (*Line, error) {
	const op = "iter.NewLine"
	nd := img.NumDims()
	if dim < 0 || dim >= nd {
		return nil, imgcore.ErrIllegalDimension(op, dim, nd)
	}
	if len(other) != nd {
		return nil, errs.New(errs.ArrayParameterWrongLength, "%s: coord length %d != %d dims", op, len(other), nd).Push(op)
	}
	base := img.Origin
	for i, c := range other {
		if i == dim {
			continue
		}
		base += c * img.Strides[i]
	}
	return &Line{
		img: img, dim: dim, base: base, stride: img.Strides[dim],
		length: img.Sizes[dim], tensorN: img.TensorElements(),
	}, nil
}

// Len returns the number of samples along the line.
func (l *Line) Len() int { return l.length }

// Pos returns the current position (0-based index along dim).
func (l *Line) Pos() int { return l.pos }

// Done reports whether the iterator has walked past the end of the line.
func (l *Line) Done() bool { return l.pos >= l.length }

// Next advances the iterator by one sample.
func (l *Line) Next() { l.pos++ }

// Offset returns the flat sample offset of the current position's tensor
// element k.
func (l *Line) Offset(k int) int {
	return l.base + l.pos*l.stride + k*l.img.TensorStride
}

// OffsetAt returns the flat sample offset of position p's tensor element k,
// without moving the iterator.
func (l *Line) OffsetAt(p, k int) int {
	return l.base + p*l.stride + k*l.img.TensorStride
}

// At returns the current position's tensor element k as a float64 (the
// real part, for a complex-valued image).
func (l *Line) At(k int) float64 {
	return l.img.Buffer().Float64At(l.Offset(k))
}

// SetAt writes v to the current position's tensor element k.
func (l *Line) SetAt(k int, v float64) {
	l.img.Buffer().SetFloat64At(l.Offset(k), v)
}

// AtComplex returns the current position's tensor element k as a
// complex128, preserving the imaginary part of a complex-valued image
// (real-valued images return it with a zero imaginary part).
func (l *Line) AtComplex(k int) complex128 {
	return l.img.Buffer().Complex128At(l.Offset(k))
}

// SetAtComplex writes v to the current position's tensor element k,
// preserving the imaginary part when the underlying image is complex.
func (l *Line) SetAtComplex(k int, v complex128) {
	l.img.Buffer().SetComplex128At(l.Offset(k), v)
}

// TensorElements returns the number of tensor samples per pixel.
func (l *Line) TensorElements() int { return l.tensorN }

// Reset rewinds the iterator to position 0.
func (l *Line) Reset() { l.pos = 0 }
