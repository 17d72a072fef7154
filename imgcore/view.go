// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgcore

import (
	"github.com/emer/ndimage/errs"
	"github.com/emer/ndimage/imgtype"
)

// shallowCopy returns a new Image value sharing img's buffer -- the
// building block every view operation below uses. Never allocates.
func (img *Image) shallowCopy() *Image {
	out := *img
	out.Sizes = append([]int(nil), img.Sizes...)
	out.Strides = append([]int(nil), img.Strides...)
	if img.PixelSizes != nil {
		out.PixelSizes = append([]imgtype.PixelSize(nil), img.PixelSizes...)
	}
	return &out
}

// CloneShapeOnly returns a new Image value sharing img's buffer, with its
// own copies of Sizes/Strides/PixelSizes -- the same building block
// shallowCopy provides, exported for packages (such as iter) that construct
// derived views img itself has no dedicated operation for.
func (img *Image) CloneShapeOnly() *Image { return img.shallowCopy() }

// Range is a half-open [Start, Stop) selection along one dimension, with an
// optional Step (default 1).
type Range struct {
	Start, Stop, Step int
}

// View returns a cropped/strided view of img selecting, for each dimension,
// the given Range; a zero-value Range (Stop==0 and Step==0) selects the
// whole dimension unchanged. Never allocates -- shares img's buffer.
func (img *Image) View(ranges []Range) (*Image, error) {
	const op = "Image.View"
	if err := img.requireForged(op); err != nil {
		return nil, err
	}
	if len(ranges) != img.NumDims() {
		return nil, errs.New(errs.ArrayParameterWrongLength, "%s: %d ranges for %d-D image", op, len(ranges), img.NumDims()).Push(op)
	}
	out := img.shallowCopy()
	for i, r := range ranges {
		step := r.Step
		if step == 0 {
			step = 1
		}
		stop := r.Stop
		if stop == 0 && r.Start == 0 && step == 1 {
			continue // whole-dimension default
		}
		if r.Start < 0 || stop > img.Sizes[i] || r.Start > stop {
			return nil, errs.New(errs.IndexOutOfRange, "%s: range %v out of bounds for dim %d size %d", op, r, i, img.Sizes[i]).Push(op)
		}
		n := (stop - r.Start + step - 1) / step
		out.Origin += r.Start * img.Strides[i]
		out.Sizes[i] = n
		out.Strides[i] = img.Strides[i] * step
	}
	return out, nil
}

// Crop is a convenience wrapper over View taking just [start,stop) per
// dimension (step 1).
func (img *Image) Crop(starts, stops []int) (*Image, error) {
	ranges := make([]Range, len(starts))
	for i := range starts {
		ranges[i] = Range{Start: starts[i], Stop: stops[i], Step: 1}
	}
	return img.View(ranges)
}

// Permute returns a view with spatial dimensions reordered according to
// order (new dim i == old dim order[i]). Never allocates.
func (img *Image) Permute(order []int) (*Image, error) {
	const op = "Image.Permute"
	if len(order) != img.NumDims() {
		return nil, errs.New(errs.ArrayParameterWrongLength, "%s: order length %d != %d dims", op, len(order), img.NumDims()).Push(op)
	}
	seen := make([]bool, len(order))
	out := img.shallowCopy()
	for newI, oldI := range order {
		if oldI < 0 || oldI >= img.NumDims() || seen[oldI] {
			return nil, errs.New(errs.InvalidParameter, "%s: invalid permutation %v", op, order).Push(op)
		}
		seen[oldI] = true
		out.Sizes[newI] = img.Sizes[oldI]
		out.Strides[newI] = img.Strides[oldI]
	}
	return out, nil
}

// Flip returns a view with the given dimension reversed (negates its
// stride and moves the origin to the far end). Never allocates.
func (img *Image) Flip(axis int) (*Image, error) {
	const op = "Image.Flip"
	if axis < 0 || axis >= img.NumDims() {
		return nil, ErrIllegalDimension(op, axis, img.NumDims())
	}
	out := img.shallowCopy()
	s := img.Sizes[axis]
	out.Origin += (s - 1) * img.Strides[axis]
	out.Strides[axis] = -img.Strides[axis]
	return out, nil
}

// TensorToSpatial returns a view that converts the tensor dimension into a
// new spatial dimension inserted at position dim, turning the pixel's t
// tensor samples into t additional "pixels" along that axis. The tensor
// shape becomes Scalar (t==1) in the result.
func (img *Image) TensorToSpatial(dim int) (*Image, error) {
	const op = "Image.TensorToSpatial"
	nd := img.NumDims()
	if dim < 0 || dim > nd {
		return nil, ErrIllegalDimension(op, dim, nd+1)
	}
	t := img.TensorElements()
	out := img.shallowCopy()
	sizes := make([]int, 0, nd+1)
	strides := make([]int, 0, nd+1)
	sizes = append(sizes, img.Sizes[:dim]...)
	strides = append(strides, img.Strides[:dim]...)
	sizes = append(sizes, t)
	strides = append(strides, img.TensorStride)
	sizes = append(sizes, img.Sizes[dim:]...)
	strides = append(strides, img.Strides[dim:]...)
	out.Sizes, out.Strides = sizes, strides
	out.TensorShape, out.TensorRows, out.TensorCols, out.TensorStride = Scalar, 1, 1, 1
	return out, nil
}

// SpatialToTensor is the inverse of TensorToSpatial: it removes spatial
// dimension dim and folds it into the tensor structure as rows x cols
// (rows*cols must equal the removed dimension's size).
func (img *Image) SpatialToTensor(dim, rows, cols int) (*Image, error) {
	const op = "Image.SpatialToTensor"
	nd := img.NumDims()
	if dim < 0 || dim >= nd {
		return nil, ErrIllegalDimension(op, dim, nd)
	}
	if rows*cols != img.Sizes[dim] {
		return nil, errs.New(errs.SizesDontMatch, "%s: rows*cols %d != dim size %d", op, rows*cols, img.Sizes[dim]).Push(op)
	}
	out := img.shallowCopy()
	out.Sizes = append(append([]int(nil), img.Sizes[:dim]...), img.Sizes[dim+1:]...)
	out.Strides = append(append([]int(nil), img.Strides[:dim]...), img.Strides[dim+1:]...)
	out.TensorStride = img.Strides[dim]
	out.TensorRows, out.TensorCols = rows, cols
	out.TensorShape = Matrix
	if rows == 1 {
		out.TensorShape = RowVector
	} else if cols == 1 {
		out.TensorShape = ColumnVector
	}
	return out, nil
}

// ExpandTensor materializes a packed symmetric/triangular tensor shape to
// full Matrix form, returning a freshly forged Image (this allocates,
// unlike the other view operations, since packed storage has fewer samples
// than the expanded form).
func (img *Image) ExpandTensor() (*Image, error) {
	const op = "Image.ExpandTensor"
	if err := img.requireForged(op); err != nil {
		return nil, err
	}
	if img.TensorShape == Scalar || img.TensorShape == ColumnVector ||
		img.TensorShape == RowVector || img.TensorShape == Matrix {
		return img, nil
	}
	rows, cols := img.TensorRows, img.TensorCols
	out := NewRaw(img.Sizes, img.Type)
	if err := out.Reforge(img.Sizes, rows*cols, img.Type); err != nil {
		return nil, err
	}
	out.TensorShape, out.TensorRows, out.TensorCols = Matrix, rows, cols
	out.PixelSizes, out.ColorSpace = img.PixelSizes, img.ColorSpace

	n := img.Shape.Len()
	for i := 0; i < n; i++ {
		c := img.Coord(i)
		for r := 0; r < rows; r++ {
			for cc := 0; cc < cols; cc++ {
				k, ok := packedIndex(img.TensorShape, rows, r, cc)
				var v float64
				if ok {
					v = img.At(c, k)
				} else if img.TensorShape == SymmetricPacked {
					k2, _ := packedIndex(img.TensorShape, rows, cc, r)
					v = img.At(c, k2)
				}
				out.SetAt(c, r*cols+cc, v)
			}
		}
	}
	return out, nil
}

// Standardize returns a view of img with strides sorted ascending by
// magnitude and all signs non-negative (spec.md §4.1's
// standardize_strides), along with the Standardized report describing the
// permutation and which dimensions were singleton-expanded. The returned
// view iterates the same samples as img, just via different coordinates
// (spec.md §8 idempotence / sample-identity property).
func (img *Image) Standardize() (*Image, Standardized, error) {
	const op = "Image.Standardize"
	st := img.Shape.StandardizeStrides()
	out := img.shallowCopy()
	out.Shape = img.Shape.Apply(st)
	out.Origin = img.Origin + st.OriginDelta
	return out, st, nil
}

// packedIndex returns the packed-storage tensor index for logical (row,col)
// of a SymmetricPacked/UpperTriangular/LowerTriangular tensor of the given
// side, and whether that (row,col) is actually stored (vs. implied by
// symmetry/zero-fill).
func packedIndex(shape TensorShape, side, row, col int) (int, bool) {
	switch shape {
	case SymmetricPacked, UpperTriangular:
		if row > col {
			return 0, false
		}
		// row-major packing of the upper triangle, consistent with
		// TensorElements' m(m+1)/2 count.
		return row*side - row*(row-1)/2 + (col - row), true
	case LowerTriangular:
		if row < col {
			return 0, false
		}
		return row*(row+1)/2 + col, true
	}
	return row*side + col, true
}
