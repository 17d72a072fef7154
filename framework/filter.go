// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package framework implements the three line-filter dispatch frameworks of
// spec.md §4.4-§4.6 (scan, separable, full) plus the shared worker pool of
// §5: they drive a client-supplied LineFilter across an image's lines with
// buffering, type conversion, and boundary extension, but never look inside
// the filter's logic.
package framework

// Params is passed to every LineFilter invocation: per-image input/output
// line buffers, the line length, the dimension being processed, the current
// "other" coordinate, and the calling worker's thread index. A plane backed
// by a complex-valued image (SComplex64/SComplex128) is carried in both In/
// Out (real part only, for filters that don't care) and InComplex/
// OutComplex (full value); a filter that needs to preserve the imaginary
// part should check InComplex/OutComplex rather than In/Out.
type Params struct {
	In          [][]float64
	Out         [][]float64
	InComplex   [][]complex128
	OutComplex  [][]complex128
	Length      int
	Dim         int
	Position    []int
	Thread      int

	// Offsets/Weights/RunDimOffset/InCenter are populated only by the full
	// framework (spec.md §4.6): In[0] holds one line's full neighborhood
	// window rather than just the line's own samples. For output sample x in
	// [0,Length), the filter reads its neighborhood from
	// In[plane][InCenter+x*RunDimOffset+Offsets[i]], scaling by Weights[i]
	// when Weights is non-nil; RunDimOffset is the window-index stride
	// between consecutive output samples along the line.
	Offsets      []int
	Weights      []float64
	RunDimOffset int
	InCenter     int
}

// LineFilter is the client-supplied operation every framework invokes many
// times along one dimension at a time (spec.md §9's "virtual line-filter
// class" re-expressed as a Go interface: two mandatory methods, two
// optional ones probed via type assertion).
type LineFilter interface {
	// SetThreadCount tells the filter how many threads will call Filter
	// concurrently; the filter should pre-allocate any per-thread state
	// indexed by Params.Thread in [0,n).
	SetThreadCount(n int) error
	// Filter processes one line.
	Filter(p *Params) error
}

// OperationsPerLiner is an optional LineFilter extension reporting the
// approximate cost of one line invocation, used to decide whether the
// small-work threshold disables parallelism (spec.md §5).
type OperationsPerLiner interface {
	OperationsPerLine(lineLength int) int64
}

// Canceler is an optional LineFilter extension exposing a cooperative
// cancellation probe, checked by the framework at the start of each line
// batch (spec.md §5).
type Canceler interface {
	Canceled() bool
}

func operationsPerLine(f LineFilter, length int) int64 {
	if opl, ok := f.(OperationsPerLiner); ok {
		return opl.OperationsPerLine(length)
	}
	return int64(length)
}

func canceled(f LineFilter) bool {
	if c, ok := f.(Canceler); ok {
		return c.Canceled()
	}
	return false
}
