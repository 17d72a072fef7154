// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accum

import "math/cmplx"

// Directional accumulates circular (directional) statistics by summing
// unit complex exponentials of pushed angles, per spec.md §4.8: a sample
// that is itself an angle (radians) contributes cmplx.Exp(i*theta) to a
// running sum, avoiding the wraparound discontinuity a plain mean would
// have at the +/-pi boundary.
type Directional struct {
	N   int64
	Sum complex128
}

// Reset returns the accumulator to its zero state.
func (d *Directional) Reset() { *d = Directional{} }

// Push folds one angle (radians) into the accumulator, optionally weighted.
func (d *Directional) Push(theta, weight float64) {
	d.N++
	d.Sum += complex(weight, 0) * cmplx.Exp(complex(0, theta))
}

// Combine returns the associative combination of d and o.
func (d Directional) Combine(o Directional) Directional {
	return Directional{N: d.N + o.N, Sum: d.Sum + o.Sum}
}

// Mean returns the circular mean angle (radians), 0 if nothing has been
// pushed.
func (d Directional) Mean() float64 {
	if d.Sum == 0 {
		return 0
	}
	return cmplx.Phase(d.Sum)
}

// Resultant returns the mean resultant length (the magnitude of the
// weighted sum divided by the number of pushes), a measure of angular
// concentration; with every weight 1 it lies in [0,1] (1 == all samples
// identical, 0 == uniformly spread); 0 if nothing has been pushed.
func (d Directional) Resultant() float64 {
	if d.N == 0 {
		return 0
	}
	return cmplx.Abs(d.Sum) / float64(d.N)
}
