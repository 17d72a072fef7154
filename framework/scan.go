// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framework

import (
	"github.com/emer/ndimage/errs"
	"github.com/emer/ndimage/imgcore"
	"github.com/emer/ndimage/imgtype"
	"github.com/emer/ndimage/iter"
)

// ScanOptions configures one Scan invocation (spec.md §4.4).
type ScanOptions struct {
	// InBufferTypes/OutTypes, if non-nil, force every gathered input/output
	// line sample through that type's FromF64 rounding and saturation before
	// the filter sees it (or before it is written back), the same
	// buffer-type-override DIPlib's scan framework offers; a nil slice means
	// "use the image's native type" (pass values through unconverted). A
	// non-nil slice must have one entry per input/output.
	InBufferTypes []imgtype.SampleType
	OutTypes      []imgtype.SampleType
	RealOnly      bool // filter declares a real-only contract
}

// Scan applies filter elementwise across ins (broadcast-compatible shapes,
// singleton dimensions expand) producing outs (forged to the broadcast
// shape), per spec.md §4.4. outs must already be allocated by the caller at
// the correct broadcast shape (the scan framework does not itself decide
// object lifetime); pass freshly Reforge'd images.
func Scan(ins, outs []*imgcore.Image, filter LineFilter, opts ScanOptions) error {
	const op = "framework.Scan"
	if len(ins) == 0 {
		return errs.New(errs.ArrayParameterEmpty, "%s: no inputs", op).Push(op)
	}
	if opts.RealOnly {
		for _, im := range ins {
			if im.Type.IsComplex() {
				return errs.New(errs.WrongDataType, "%s: filter is real-only, input is complex", op).Push(op)
			}
		}
	}
	if opts.InBufferTypes != nil && len(opts.InBufferTypes) != len(ins) {
		return errs.New(errs.ArrayParameterWrongLength, "%s: InBufferTypes.len %d != %d inputs", op, len(opts.InBufferTypes), len(ins)).Push(op)
	}
	if opts.OutTypes != nil && len(opts.OutTypes) != len(outs) {
		return errs.New(errs.ArrayParameterWrongLength, "%s: OutTypes.len %d != %d outputs", op, len(opts.OutTypes), len(outs)).Push(op)
	}
	nd := ins[0].NumDims()
	broadcastSizes := make([]int, nd)
	for _, im := range ins {
		if im.NumDims() != nd {
			return errs.New(errs.SizesDontMatch, "%s: dimensionality mismatch", op).Push(op)
		}
		for d := 0; d < nd; d++ {
			if im.Sizes[d] > broadcastSizes[d] {
				broadcastSizes[d] = im.Sizes[d]
			}
		}
	}
	for _, im := range ins {
		for d := 0; d < nd; d++ {
			if im.Sizes[d] != broadcastSizes[d] && im.Sizes[d] != 1 {
				return errs.New(errs.SizesDontMatch, "%s: dim %d size %d not broadcastable to %d", op, d, im.Sizes[d], broadcastSizes[d]).Push(op)
			}
		}
	}
	for _, om := range outs {
		if !imgcore.EqualInts(om.Sizes, broadcastSizes) {
			return errs.New(errs.SizesDontMatch, "%s: output size %v != broadcast size %v", op, om.Sizes, broadcastSizes).Push(op)
		}
	}

	processDim := preferredDim(ins[0])
	broadcastViews := make([]*imgcore.Image, len(ins))
	for i, im := range ins {
		bv, err := broadcastView(im, broadcastSizes)
		if err != nil {
			return err
		}
		broadcastViews[i] = bv
	}

	threads := threadCount()
	if err := filter.SetThreadCount(threads); err != nil {
		return errs.Wrap(errs.NotImplemented, err, "%s: SetThreadCount", op).Push(op)
	}

	otherIt, err := iter.NewImage(broadcastViews[0], processDim)
	if err != nil {
		return err
	}
	length := broadcastSizes[processDim]
	ops := operationsPerLine(filter, length)

	return runTiled(otherIt.Total(), ops, threads, func(t tile, threadIdx int) error {
		if canceled(filter) {
			return nil
		}
		it, err := iter.NewImage(broadcastViews[0], processDim)
		if err != nil {
			return err
		}
		it.Reset()
		for i := 0; i < t.start; i++ {
			it.Next()
		}
		inBufs := make([][]float64, len(ins))
		outBufs := make([][]float64, len(outs))
		inComplex := make([][]complex128, len(ins))
		outComplex := make([][]complex128, len(outs))
		for pos := t.start; pos < t.stop; pos++ {
			coord := append([]int(nil), it.Coord()...)
			for i, bv := range broadcastViews {
				line, err := iter.NewLine(bv, processDim, coord)
				if err != nil {
					return err
				}
				buf := make([]float64, length)
				var cbuf []complex128
				if ins[i].Type.IsComplex() {
					cbuf = make([]complex128, length)
				}
				for x := 0; x < length; x++ {
					v := line.At(0)
					if opts.InBufferTypes != nil {
						v = opts.InBufferTypes[i].FromF64(v)
					}
					buf[x] = v
					if cbuf != nil {
						cbuf[x] = line.AtComplex(0)
					}
					line.Next()
				}
				inBufs[i] = buf
				inComplex[i] = cbuf
			}
			for o, om := range outs {
				outBufs[o] = make([]float64, length)
				if om.Type.IsComplex() {
					outComplex[o] = make([]complex128, length)
				} else {
					outComplex[o] = nil
				}
			}
			if err := filter.Filter(&Params{In: inBufs, Out: outBufs, InComplex: inComplex, OutComplex: outComplex, Length: length, Dim: processDim, Position: coord, Thread: threadIdx}); err != nil {
				return errs.Wrap(errs.NotImplemented, err, "%s: filter", op).Push(op)
			}
			for o, om := range outs {
				line, err := iter.NewLine(om, processDim, coord)
				if err != nil {
					return err
				}
				if om.Type.IsComplex() && outComplex[o] != nil {
					for x := 0; x < length; x++ {
						line.SetAtComplex(0, outComplex[o][x])
						line.Next()
					}
					continue
				}
				for x := 0; x < length; x++ {
					v := outBufs[o][x]
					if opts.OutTypes != nil {
						v = opts.OutTypes[o].FromF64(v)
					}
					line.SetAt(0, v)
					line.Next()
				}
			}
			it.Next()
		}
		return nil
	})
}

// preferredDim chooses the processing dimension as the one with minimum
// stride magnitude in the anchor image, for contiguous access,
// per spec.md §4.4; ties prefer larger size.
func preferredDim(anchor *imgcore.Image) int {
	best := 0
	for d := 1; d < anchor.NumDims(); d++ {
		sb, sd := absInt(anchor.Strides[best]), absInt(anchor.Strides[d])
		if sd < sb || (sd == sb && anchor.Sizes[d] > anchor.Sizes[best]) {
			best = d
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// broadcastView returns a view of im expanded (via zero-stride duplication)
// to sizes, where im's singleton dimensions are broadcast.
func broadcastView(im *imgcore.Image, sizes []int) (*imgcore.Image, error) {
	out := im.CloneShapeOnly()
	newSizes := make([]int, len(sizes))
	newStrides := make([]int, len(sizes))
	copy(newSizes, sizes)
	for d := range sizes {
		if im.Sizes[d] == sizes[d] {
			newStrides[d] = im.Strides[d]
		} else {
			newStrides[d] = 0
		}
	}
	out.Sizes, out.Strides = newSizes, newStrides
	return out, nil
}
