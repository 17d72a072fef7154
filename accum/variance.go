// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accum

// Variance is an online mean/variance accumulator using Welford's stable
// update, with a parallel-combine rule (Chan et al.) so sharding a sample
// sequence across threads and combining yields the same result as a single
// pass, per spec.md §3.5/§4.8. Naming follows agg/agg.go's Var/Std/Sem
// convention (sample vs. population variance distinguished at read time);
// the online single-pass and parallel-combine formulas themselves are
// standard numerical recipes with no library implementation in the
// retrieved pack (gonum/stat computes only batch, non-combinable
// estimators), so this is built directly against the textbook update —
// justified stdlib-only component.
type Variance struct {
	N    int64
	Mean float64
	M2   float64 // sum of squared deviations from the running mean
}

// Reset returns the accumulator to its zero state.
func (v *Variance) Reset() { *v = Variance{} }

// Push folds one sample into the accumulator.
func (v *Variance) Push(x float64) {
	v.N++
	delta := x - v.Mean
	v.Mean += delta / float64(v.N)
	delta2 := x - v.Mean
	v.M2 += delta * delta2
}

// Pop removes one previously-pushed sample from the accumulator (the
// inverse update), undefined if x was never pushed.
func (v *Variance) Pop(x float64) {
	if v.N <= 1 {
		*v = Variance{}
		return
	}
	n := float64(v.N)
	oldMean := (n*v.Mean - x) / (n - 1)
	v.M2 -= (x - oldMean) * (x - v.Mean)
	v.Mean = oldMean
	v.N--
}

// Combine returns the associative combination of v and o.
func (v Variance) Combine(o Variance) Variance {
	if v.N == 0 {
		return o
	}
	if o.N == 0 {
		return v
	}
	n := float64(v.N + o.N)
	delta := o.Mean - v.Mean
	out := Variance{N: v.N + o.N}
	out.Mean = v.Mean + delta*float64(o.N)/n
	out.M2 = v.M2 + o.M2 + delta*delta*float64(v.N)*float64(o.N)/n
	return out
}

// Sample returns the unbiased sample variance (divides by N-1); returns 0
// rather than NaN when N < 2 (spec.md §4.8: "degrade gracefully").
func (v Variance) Sample() float64 {
	if v.N < 2 {
		return 0
	}
	return v.M2 / float64(v.N-1)
}

// Population returns the population variance (divides by N).
func (v Variance) Population() float64 {
	if v.N < 1 {
		return 0
	}
	return v.M2 / float64(v.N)
}
