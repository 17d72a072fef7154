// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package accum implements the online, numerically-stable accumulators of
// spec.md §3.5/§4.8: small value types supporting Push (and, for Variance,
// Pop) and associative combination so sharding across threads yields
// identical results.
package accum

import "math"

// MinMax tracks the minimum and maximum of a pushed sample sequence,
// grounded on minmax/avgmax.go's UpdateVal/UpdateFrom/CopyFrom value-type
// idiom (there extended here from "average + max" to a plain min/max pair
// with associative combination).
type MinMax struct {
	Min, Max float64
	MinIdx   int
	MaxIdx   int
	N        int64
}

// Reset returns the accumulator to its zero state.
func (m *MinMax) Reset() {
	*m = MinMax{Min: math.Inf(1), Max: math.Inf(-1), MinIdx: -1, MaxIdx: -1}
}

// Push folds one sample (at the given index, for MinIdx/MaxIdx bookkeeping)
// into the accumulator.
func (m *MinMax) Push(val float64, idx int) {
	if m.N == 0 {
		m.Min, m.Max = math.Inf(1), math.Inf(-1)
	}
	m.N++
	if val < m.Min {
		m.Min, m.MinIdx = val, idx
	}
	if val > m.Max {
		m.Max, m.MaxIdx = val, idx
	}
}

// Combine returns the associative combination of m and o (⊕ of spec.md
// §3.5), leaving both unmodified.
func (m MinMax) Combine(o MinMax) MinMax {
	if m.N == 0 {
		return o
	}
	if o.N == 0 {
		return m
	}
	out := m
	out.N += o.N
	if o.Min < out.Min {
		out.Min, out.MinIdx = o.Min, o.MinIdx
	}
	if o.Max > out.Max {
		out.Max, out.MaxIdx = o.Max, o.MaxIdx
	}
	return out
}
