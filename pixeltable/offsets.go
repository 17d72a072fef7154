// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pixeltable

import (
	"github.com/emer/ndimage/errs"
	"github.com/emer/ndimage/imgcore"
)

// Offsets is a Table rebased onto one image's strides: a flat array of
// sample offsets (in samples, relative to the neighborhood's center pixel)
// and, if the table carries weights, the parallel weight array -- per
// spec.md §4.3's `prepare(image)`.
type Offsets struct {
	Offsets []int
	Weights []float64
	// RunDimOffset is the stride of the table's run dimension in image,
	// used by the full framework to step the offset array as it advances
	// along the processing dimension without recomputing it per line.
	RunDimOffset int
}

// Prepare rebases t onto image's strides, producing one flat offset per
// sample in the neighborhood. image must have at least t.NumDims
// dimensions; the table's run dimension is mapped to image's processing
// dimension processDim (t.RunDim's role), and the table's other dimensions
// are mapped onto image's dimensions in order, skipping processDim.
func (t *Table) Prepare(image *imgcore.Image, processDim int) (*Offsets, error) {
	const op = "pixeltable.Prepare"
	nd := image.NumDims()
	if t.NumDims > nd {
		return nil, errs.New(errs.SizesDontMatch, "%s: table has %d dims, image has %d", op, t.NumDims, nd).Push(op)
	}
	if processDim < 0 || processDim >= nd {
		return nil, errs.New(errs.IllegalDimension, "%s: process dimension %d out of range for %d dims", op, processDim, nd).Push(op)
	}
	dimMap := make([]int, t.NumDims)
	imgDim := 0
	for td := 0; td < t.NumDims; td++ {
		if td == t.RunDim {
			dimMap[td] = processDim
			continue
		}
		for imgDim == processDim {
			imgDim++
		}
		if imgDim >= nd {
			return nil, errs.New(errs.SizesDontMatch, "%s: not enough non-process dimensions in image for table", op).Push(op)
		}
		dimMap[td] = imgDim
		imgDim++
	}

	off := &Offsets{RunDimOffset: image.Strides[processDim]}
	for _, r := range t.Runs {
		base := 0
		for td := 0; td < t.NumDims; td++ {
			if td == t.RunDim {
				continue
			}
			base += r.Coord[td] * image.Strides[dimMap[td]]
		}
		stride := image.Strides[processDim]
		for i := 0; i < r.Length; i++ {
			off.Offsets = append(off.Offsets, base+(r.Start+i)*stride)
		}
	}
	if t.Weights != nil {
		off.Weights = append([]float64(nil), t.Weights...)
	}
	return off, nil
}
