// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framework

import (
	"sort"

	"github.com/emer/ndimage/boundary"
	"github.com/emer/ndimage/errs"
	"github.com/emer/ndimage/imgcore"
	"github.com/emer/ndimage/imgtype"
	"github.com/emer/ndimage/iter"
)

// SeparableOptions configures one Separable invocation (spec.md §4.5).
type SeparableOptions struct {
	Process    []bool // per-dimension: apply the filter along this dimension
	Border     []int
	Conditions []boundary.Condition
	OutType    imgtype.SampleType
	DontResize bool // don't-resize-output: out sizes for unprocessed dims must match in
}

// Separable applies a 1-D LineFilter successively along each dimension
// where Process[d] is true, per spec.md §4.5. out must be forged to the
// final size the caller expects (since the filter may change size per
// pass, the caller is expected to have sized out for the last pass's
// dimension; intermediate passes allocate their own scratch images).
func Separable(in, out *imgcore.Image, filter LineFilter, opts SeparableOptions) error {
	const op = "framework.Separable"
	nd := in.NumDims()
	if len(opts.Process) != nd {
		return errs.New(errs.ArrayParameterWrongLength, "%s: process.len %d != %d dims", op, len(opts.Process), nd).Push(op)
	}
	if opts.DontResize {
		for d := 0; d < nd; d++ {
			if !opts.Process[d] && in.Sizes[d] != out.Sizes[d] {
				return errs.New(errs.SizesDontMatch, "%s: dim %d unprocessed but sizes differ (%d vs %d)", op, d, in.Sizes[d], out.Sizes[d]).Push(op)
			}
		}
	}

	var dims []int
	for d, p := range opts.Process {
		if p && in.Sizes[d] > 1 {
			dims = append(dims, d)
		}
	}
	if len(dims) == 0 {
		return out.CopyFrom(in)
	}
	sort.SliceStable(dims, func(a, b int) bool {
		ra := float64(out.Sizes[dims[a]]) / float64(in.Sizes[dims[a]])
		rb := float64(out.Sizes[dims[b]]) / float64(in.Sizes[dims[b]])
		return ra < rb
	})

	threads := threadCount()
	if err := filter.SetThreadCount(threads); err != nil {
		return errs.Wrap(errs.NotImplemented, err, "%s: SetThreadCount", op).Push(op)
	}

	current := in
	for pass, d := range dims {
		outSize := out.Sizes[d]
		passOut := out
		if pass != len(dims)-1 {
			sizes := append([]int(nil), current.Sizes...)
			sizes[d] = outSize
			passOut = imgcore.NewRaw(sizes, opts.OutType)
			if err := passOut.Reforge(sizes, current.TensorElements(), opts.OutType); err != nil {
				return err
			}
		}
		border := 0
		cond := boundary.AlreadyExpanded
		if opts.Border != nil {
			border = opts.Border[d]
		}
		if opts.Conditions != nil {
			cond = opts.Conditions[d]
		}
		if err := separablePass(current, passOut, d, border, cond, filter, opts, threads); err != nil {
			return err
		}
		current = passOut
	}
	return nil
}

// separablePass runs one dimension's pass: for every "other" coordinate,
// build a padded input line (when border > 0), call filter once, and write
// the result into out's line.
func separablePass(in, out *imgcore.Image, dim, border int, cond boundary.Condition, filter LineFilter, opts SeparableOptions, threads int) error {
	const op = "framework.separablePass"
	otherIt, err := iter.NewImage(in, dim)
	if err != nil {
		return err
	}
	outLen := out.Sizes[dim]
	ops := operationsPerLine(filter, in.Sizes[dim])

	borders := make([]int, in.NumDims())
	conds := make([]boundary.Condition, in.NumDims())
	for i := range conds {
		conds[i] = boundary.AlreadyExpanded
	}
	borders[dim] = border
	conds[dim] = cond

	extended := in
	if border > 0 {
		extended, err = boundary.ExtendImage(in, borders, conds)
		if err != nil {
			return err
		}
	}

	return runTiled(otherIt.Total(), ops, threads, func(t tile, threadIdx int) error {
		if canceled(filter) {
			return nil
		}
		it, err := iter.NewImage(in, dim)
		if err != nil {
			return err
		}
		it.Reset()
		for i := 0; i < t.start; i++ {
			it.Next()
		}
		for pos := t.start; pos < t.stop; pos++ {
			coord := append([]int(nil), it.Coord()...)
			extCoord := append([]int(nil), coord...)
			inLine, err := iter.NewLine(extended, dim, extCoord)
			if err != nil {
				return err
			}
			inBuf := make([]float64, inLine.Len())
			var inComplex []complex128
			if in.Type.IsComplex() {
				inComplex = make([]complex128, inLine.Len())
			}
			for x := 0; x < inLine.Len(); x++ {
				inBuf[x] = inLine.At(0)
				if inComplex != nil {
					inComplex[x] = inLine.AtComplex(0)
				}
				inLine.Next()
			}
			outBuf := make([]float64, outLen)
			var outComplex []complex128
			if out.Type.IsComplex() {
				outComplex = make([]complex128, outLen)
			}
			p := &Params{In: [][]float64{inBuf}, Out: [][]float64{outBuf}, Length: outLen, Dim: dim, Position: coord, Thread: threadIdx}
			if inComplex != nil {
				p.InComplex = [][]complex128{inComplex}
			}
			if outComplex != nil {
				p.OutComplex = [][]complex128{outComplex}
			}
			if err := filter.Filter(p); err != nil {
				return errs.Wrap(errs.NotImplemented, err, "%s: filter", op).Push(op)
			}
			outLine, err := iter.NewLine(out, dim, coord)
			if err != nil {
				return err
			}
			if outComplex != nil {
				for x := 0; x < outLen; x++ {
					outLine.SetAtComplex(0, outComplex[x])
					outLine.Next()
				}
			} else {
				for x := 0; x < outLen; x++ {
					outLine.SetAt(0, outBuf[x])
					outLine.Next()
				}
			}
			it.Next()
		}
		return nil
	})
}
