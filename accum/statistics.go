// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accum

import "math"

// Statistics accumulates count and the first four central moments (mean,
// and the running M2/M3/M4 sums of squared/cubed/quartic deviations), using
// Terriberry's single-pass update and parallel-combine formula so skewness
// and kurtosis computed from a sharded pass match a single-pass computation
// within the tolerance of spec.md §8, per spec.md §4.8.
type Statistics struct {
	N  int64
	M1 float64 // running mean
	M2 float64
	M3 float64
	M4 float64
}

// Reset returns the accumulator to its zero state.
func (s *Statistics) Reset() { *s = Statistics{} }

// Push folds one sample into the accumulator (Terriberry 2007's update).
func (s *Statistics) Push(x float64) {
	n1 := float64(s.N)
	s.N++
	n := float64(s.N)
	delta := x - s.M1
	deltaN := delta / n
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * n1
	s.M1 += deltaN
	s.M4 += term1*deltaN2*(n*n-3*n+3) + 6*deltaN2*s.M2 - 4*deltaN*s.M3
	s.M3 += term1*deltaN*(n-2) - 3*deltaN*s.M2
	s.M2 += term1
}

// Combine returns the associative combination of s and o (Terriberry's
// parallel-combine rule), the n-dimensional analogue used by variance.go's
// pairwise Chan et al. update generalized to the 3rd/4th moment.
func (s Statistics) Combine(o Statistics) Statistics {
	if s.N == 0 {
		return o
	}
	if o.N == 0 {
		return s
	}
	na, nb := float64(s.N), float64(o.N)
	n := na + nb
	delta := o.M1 - s.M1
	delta2 := delta * delta
	delta3 := delta2 * delta
	delta4 := delta2 * delta2

	out := Statistics{N: s.N + o.N}
	out.M1 = (na*s.M1 + nb*o.M1) / n
	out.M2 = s.M2 + o.M2 + delta2*na*nb/n
	out.M3 = s.M3 + o.M3 + delta3*na*nb*(na-nb)/(n*n) +
		3*delta*(na*o.M2-nb*s.M2)/n
	out.M4 = s.M4 + o.M4 + delta4*na*nb*(na*na-na*nb+nb*nb)/(n*n*n) +
		6*delta2*(na*na*o.M2+nb*nb*s.M2)/(n*n) +
		4*delta*(na*o.M3-nb*s.M3)/n
	return out
}

// Mean returns the running mean.
func (s Statistics) Mean() float64 { return s.M1 }

// Variance returns the unbiased sample variance, 0 if N < 2.
func (s Statistics) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	return s.M2 / float64(s.N-1)
}

// StdDev returns the sample standard deviation, 0 if N < 2.
func (s Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Skewness returns the (population) skewness, 0 if N < 2 or the variance is
// zero.
func (s Statistics) Skewness() float64 {
	if s.N < 2 || s.M2 == 0 {
		return 0
	}
	n := float64(s.N)
	return math.Sqrt(n) * s.M3 / math.Pow(s.M2, 1.5)
}

// Kurtosis returns the excess kurtosis, 0 if N < 2 or the variance is zero.
func (s Statistics) Kurtosis() float64 {
	if s.N < 2 || s.M2 == 0 {
		return 0
	}
	n := float64(s.N)
	return n*s.M4/(s.M2*s.M2) - 3
}
