// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framework

import (
	"github.com/emer/ndimage/boundary"
	"github.com/emer/ndimage/errs"
	"github.com/emer/ndimage/imgcore"
	"github.com/emer/ndimage/imgtype"
	"github.com/emer/ndimage/iter"
	"github.com/emer/ndimage/pixeltable"
)

// FullOptions configures one Full invocation (spec.md §4.6).
type FullOptions struct {
	OutType      imgtype.SampleType
	TensorElems  int
	Conditions   []boundary.Condition
	ExpandTensor bool
}

// Full applies a neighborhood LineFilter driven by table across in,
// writing into out (already forged to in's sizes), extending in once by
// table's required border before iterating, per spec.md §4.6.
func Full(in, out *imgcore.Image, table *pixeltable.Table, filter LineFilter, opts FullOptions) error {
	const op = "framework.Full"
	nd := in.NumDims()
	if table.NumDims != nd {
		return errs.New(errs.SizesDontMatch, "%s: table has %d dims, image has %d", op, table.NumDims, nd).Push(op)
	}
	conds := opts.Conditions
	if conds == nil {
		conds = make([]boundary.Condition, nd)
	}
	borders := table.Boundary()
	extended, err := boundary.ExtendImage(in, borders, conds)
	if err != nil {
		return err
	}
	processDim := table.RunDim

	threads := threadCount()
	if err := filter.SetThreadCount(threads); err != nil {
		return errs.Wrap(errs.NotImplemented, err, "%s: SetThreadCount", op).Push(op)
	}

	off, err := table.Prepare(extended, processDim)
	if err != nil {
		return err
	}
	minOff, maxOff := 0, 0
	for _, o := range off.Offsets {
		if o < minOff {
			minOff = o
		}
		if o > maxOff {
			maxOff = o
		}
	}
	inCenter := -minOff

	otherIt, err := iter.NewImage(in, processDim)
	if err != nil {
		return err
	}
	length := in.Sizes[processDim]
	ops := operationsPerLine(filter, length) * int64(table.Count())

	return runTiled(otherIt.Total(), ops, threads, func(t tile, threadIdx int) error {
		if canceled(filter) {
			return nil
		}
		it, err := iter.NewImage(in, processDim)
		if err != nil {
			return err
		}
		it.Reset()
		for i := 0; i < t.start; i++ {
			it.Next()
		}
		buf := extended.Buffer()
		for pos := t.start; pos < t.stop; pos++ {
			coord := append([]int(nil), it.Coord()...)
			extCoord := append([]int(nil), coord...)
			for i := range extCoord {
				extCoord[i] += borders[i]
			}
			inLine, err := iter.NewLine(extended, processDim, extCoord)
			if err != nil {
				return err
			}
			// Gather the whole line's neighborhood window once, then invoke
			// the filter a single time per spec.md §4.6: it advances the
			// window center per output sample using RunDimOffset, rather
			// than the framework calling it once per pixel.
			centerBase := inLine.Offset(0)
			windowStart := centerBase + minOff
			winLen := (length-1)*off.RunDimOffset + maxOff - minOff + 1
			window := make([]float64, winLen)
			for i := 0; i < winLen; i++ {
				window[i] = buf.Float64At(windowStart + i)
			}
			outBuf := make([]float64, length)
			p := &Params{
				In:           [][]float64{window},
				Out:          [][]float64{outBuf},
				Length:       length,
				Dim:          processDim,
				Position:     coord,
				Thread:       threadIdx,
				Offsets:      off.Offsets,
				Weights:      off.Weights,
				RunDimOffset: off.RunDimOffset,
				InCenter:     inCenter,
			}
			if err := filter.Filter(p); err != nil {
				return errs.Wrap(errs.NotImplemented, err, "%s: filter", op).Push(op)
			}
			outLine, err := iter.NewLine(out, processDim, coord)
			if err != nil {
				return err
			}
			for x := 0; x < length; x++ {
				outLine.SetAt(0, outBuf[x])
				outLine.Next()
			}
			it.Next()
		}
		return nil
	})
}
