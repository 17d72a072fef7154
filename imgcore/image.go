// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgcore

import (
	"github.com/emer/ndimage/errs"
	"github.com/emer/ndimage/imgtype"
	"github.com/emer/ndimage/ndlog"
)

// Image is the n-D strided image container of spec.md §3.1: a Shape
// (spatial sizes/strides in samples), a tensor structure (shape, size,
// stride), a sample type, an origin offset into a shared Buffer, and
// optional pixel size / color space metadata.
//
// A zero-value Image is "raw": it has no Buffer and (per the invariant)
// may still carry Sizes for planning purposes. Reforge allocates a Buffer
// to make it "forged". Views (At, Crop, Permute, Flip, ...) share the same
// Buffer -- there is no cyclic back-reference from the buffer to its views
// (spec.md §9): Buffer is a plain handle, Image holds a reference to it,
// never the other way around.
type Image struct {
	Shape

	TensorShape  TensorShape
	TensorRows   int
	TensorCols   int
	TensorStride int // stride, in samples, between tensor elements of one pixel

	Type imgtype.SampleType

	buf    Buffer
	Origin int // sample offset into buf of spatial coordinate (0,...,0), tensor element 0
	owned  bool

	PixelSizes []imgtype.PixelSize
	ColorSpace string
}

// NewRaw returns a raw (unallocated) Image with the given sizes and a
// scalar tensor shape of the given sample type.
func NewRaw(sizes []int, t imgtype.SampleType) *Image {
	img := &Image{Type: t, TensorShape: Scalar, TensorRows: 1, TensorCols: 1, TensorStride: 1}
	img.Sizes = append([]int(nil), sizes...)
	img.Strides = RowMajorStrides(sizes)
	return img
}

// IsForged reports whether img owns or borrows an allocated Buffer large
// enough to address its whole domain.
func (img *Image) IsForged() bool { return img.buf != nil }

// Buffer returns the image's underlying typed sample storage, or nil if
// the image is raw.
func (img *Image) Buffer() Buffer { return img.buf }

// TensorElements returns t, the number of tensor samples per pixel.
func (img *Image) TensorElements() int {
	n, err := TensorElements(img.TensorShape, img.TensorRows, img.TensorCols)
	if err != nil {
		return img.TensorRows * img.TensorCols
	}
	return n
}

// requireForged returns a NotForged error tagged with op if img has no
// buffer.
func (img *Image) requireForged(op string) error {
	if !img.IsForged() {
		return errs.New(errs.NotForged, "%s: image is not forged", op).Push(op)
	}
	return nil
}

// Reforge allocates a buffer to match the requested sizes/tensor
// elements/type, reusing the existing buffer in place when this image is
// the sole owner of a buffer that is already big enough and of the
// requested type (spec.md §4.1: "reforge is a no-op when the existing
// buffer already satisfies the request and is the sole owner"). Reforge
// never converts existing data to a new type; Convert does that.
func (img *Image) Reforge(sizes []int, tensorElements int, t imgtype.SampleType) error {
	total := tensorElements
	if len(sizes) == 0 {
		total *= 1
	} else {
		n := 1
		for _, s := range sizes {
			n *= s
		}
		total *= n
	}
	if img.owned && img.buf != nil && img.Type == t && img.buf.Len() >= total {
		ndlog.Log.Debug().Str("op", "Reforge").Msg("reusing existing buffer")
	} else {
		img.buf = NewBuffer(t, total)
		img.owned = true
	}
	img.Type = t
	img.Sizes = append([]int(nil), sizes...)
	img.Strides = RowMajorStrides(sizes)
	img.TensorStride = img.Shape.Len()
	if img.TensorRows == 0 && img.TensorCols == 0 {
		img.TensorRows, img.TensorCols = 1, tensorElements
		img.TensorShape = Scalar
		if tensorElements > 1 {
			img.TensorShape = RowVector
		}
	}
	img.Origin = 0
	return nil
}

// Strip releases this image's reference to its buffer, turning it raw
// again. It does not affect other views sharing the same buffer (no
// lifecycle coupling between views, per spec.md §9).
func (img *Image) Strip() {
	img.buf = nil
	img.owned = false
	img.Origin = 0
}

// CopyFrom copies every sample from src into img, which must already be
// forged with matching Sizes and TensorElements; sample values are
// converted through float64/complex128 as needed when types differ.
func (img *Image) CopyFrom(src *Image) error {
	const op = "Image.CopyFrom"
	if err := img.requireForged(op); err != nil {
		return err
	}
	if err := src.requireForged(op); err != nil {
		return err
	}
	if !EqualInts(img.Sizes, src.Sizes) {
		return errs.New(errs.SizesDontMatch, "%s: sizes %v != %v", op, img.Sizes, src.Sizes).Push(op)
	}
	te := img.TensorElements()
	if te != src.TensorElements() {
		return errs.New(errs.SizesDontMatch, "%s: tensor elements %d != %d", op, te, src.TensorElements()).Push(op)
	}
	n := img.Shape.Len()
	useComplex := img.Type.IsComplex() || src.Type.IsComplex()
	for i := 0; i < n; i++ {
		c := img.Coord(i)
		for k := 0; k < te; k++ {
			so := src.Origin + src.Shape.Offset(c) + k*src.TensorStride
			do := img.Origin + img.Shape.Offset(c) + k*img.TensorStride
			if useComplex {
				img.buf.SetComplex128At(do, src.buf.Complex128At(so))
			} else {
				img.buf.SetFloat64At(do, src.buf.Float64At(so))
			}
		}
	}
	return nil
}

// Convert returns a newly forged Image holding img's data converted to
// sample type t.
func (img *Image) Convert(t imgtype.SampleType) (*Image, error) {
	const op = "Image.Convert"
	if err := img.requireForged(op); err != nil {
		return nil, err
	}
	out := NewRaw(img.Sizes, t)
	out.TensorShape, out.TensorRows, out.TensorCols = img.TensorShape, img.TensorRows, img.TensorCols
	out.PixelSizes = img.PixelSizes
	out.ColorSpace = img.ColorSpace
	if err := out.Reforge(img.Sizes, img.TensorElements(), t); err != nil {
		return nil, err
	}
	if err := out.CopyFrom(img); err != nil {
		return nil, err
	}
	return out, nil
}

// At reads tensor sample k of pixel c as a float64.
func (img *Image) At(c []int, k int) float64 {
	o := img.Origin + img.Shape.Offset(c) + k*img.TensorStride
	return img.buf.Float64At(o)
}

// SetAt writes tensor sample k of pixel c from a float64.
func (img *Image) SetAt(c []int, k int, v float64) {
	o := img.Origin + img.Shape.Offset(c) + k*img.TensorStride
	img.buf.SetFloat64At(o, v)
}

// ComplexAt / SetComplexAt are the complex-valued equivalents of At/SetAt.
func (img *Image) ComplexAt(c []int, k int) complex128 {
	o := img.Origin + img.Shape.Offset(c) + k*img.TensorStride
	return img.buf.Complex128At(o)
}
func (img *Image) SetComplexAt(c []int, k int, v complex128) {
	o := img.Origin + img.Shape.Offset(c) + k*img.TensorStride
	img.buf.SetComplex128At(o, v)
}

// EqualInts reports whether two int slices hold the same values, grounded
// on etensor/shape.go's EqualInts helper.
func EqualInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// OverlapsBuffer reports whether img and other could alias the same
// samples -- a conservative pointer-range check on the underlying slices
// backing their buffers, used by frameworks to decide whether an in-place
// pass is hazardous (spec.md §4.1).
func (img *Image) OverlapsBuffer(other *Image) bool {
	if img.buf == nil || other.buf == nil {
		return false
	}
	ra, oka := bufferAddr(img.buf)
	rb, okb := bufferAddr(other.buf)
	if !oka || !okb {
		return img.buf == other.buf
	}
	return ra.overlaps(rb)
}
