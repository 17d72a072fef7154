// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgcore

import (
	"github.com/emer/ndimage/errs"
)

//go:generate core generate

// TensorShape is the logical arrangement of the tensor samples within one
// pixel (spec.md §3.1 / GLOSSARY).
type TensorShape int32 //enums:enum

const (
	Scalar TensorShape = iota
	ColumnVector
	RowVector
	Matrix
	Diagonal
	SymmetricPacked
	UpperTriangular
	LowerTriangular
)

// TensorElements returns the number of tensor samples t implied by a shape
// of the given rows x cols, per spec.md §3.1's consistency invariant
// (e.g. symmetric-packed of side m implies t = m(m+1)/2).
func TensorElements(shape TensorShape, rows, cols int) (int, error) {
	switch shape {
	case Scalar:
		return 1, nil
	case ColumnVector:
		return rows, nil
	case RowVector:
		return cols, nil
	case Matrix:
		return rows * cols, nil
	case Diagonal:
		if rows != cols {
			return 0, errs.New(errs.InvalidParameter, "Diagonal tensor shape requires square rows==cols, got %d,%d", rows, cols)
		}
		return rows, nil
	case SymmetricPacked, UpperTriangular, LowerTriangular:
		if rows != cols {
			return 0, errs.New(errs.InvalidParameter, "packed triangular/symmetric tensor shape requires square rows==cols, got %d,%d", rows, cols)
		}
		return rows * (rows + 1) / 2, nil
	}
	return 0, errs.New(errs.InvalidParameter, "unknown tensor shape %v", shape)
}

// ExpandedTensorElements returns the element count of the fully-expanded
// (Matrix) form of shape, used by ExpandTensor.
func ExpandedTensorElements(rows, cols int) int { return rows * cols }
