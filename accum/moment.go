// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accum

import (
	"gonum.org/v1/gonum/mat"

	"github.com/emer/ndimage/errs"
)

// Moment accumulates the zeroth (sum of weights), first (centroid, length
// n), and second (central second-moment tensor, n(n+1)/2 packed) weighted
// geometric moments of a set of n-D points, per spec.md §4.8. Grounded on
// the gonum/mat covariance-matrix assembly pattern in pca/pca.go (which
// builds a *mat.SymDense from accumulated sums before calling
// mat.EigenSym), reused here for the online per-object moment tensor
// instead of a whole-table batch covariance.
type Moment struct {
	Dims int

	m0  float64   // sum of weights
	m1  []float64 // sum of weight*coord, length Dims
	m2  []float64 // sum of weight*coord[i]*coord[j], upper-triangular packed
}

// NewMoment returns a zeroed Moment accumulator for n-dimensional points.
func NewMoment(n int) *Moment {
	return &Moment{Dims: n, m1: make([]float64, n), m2: make([]float64, n*(n+1)/2)}
}

func packedIdx(n, i, j int) int {
	if i > j {
		i, j = j, i
	}
	return i*n - i*(i-1)/2 + (j - i)
}

// Push folds one weighted n-D point into the accumulator.
func (m *Moment) Push(coord []float64, weight float64) {
	m.m0 += weight
	for i, c := range coord {
		m.m1[i] += weight * c
		for j := i; j < m.Dims; j++ {
			m.m2[packedIdx(m.Dims, i, j)] += weight * c * coord[j]
		}
	}
}

// Combine returns the associative combination of m and o.
func (m Moment) Combine(o Moment) Moment {
	out := Moment{Dims: m.Dims, m0: m.m0 + o.m0, m1: make([]float64, m.Dims), m2: make([]float64, len(m.m2))}
	for i := range out.m1 {
		out.m1[i] = m.m1[i] + o.m1[i]
	}
	for i := range out.m2 {
		out.m2[i] = m.m2[i] + o.m2[i]
	}
	return out
}

// Count returns the zeroth moment (sum of weights).
func (m Moment) Count() float64 { return m.m0 }

// FirstOrder returns the centroid (first-order moment divided by the
// zeroth moment); zero vector if no mass has been pushed.
func (m Moment) FirstOrder() []float64 {
	out := make([]float64, m.Dims)
	if m.m0 == 0 {
		return out
	}
	for i, s := range m.m1 {
		out[i] = s / m.m0
	}
	return out
}

// SecondOrder returns the central second-moment tensor (covariance about
// the centroid, divided by the zeroth moment) as a dense symmetric gonum
// matrix.
func (m Moment) SecondOrder() (*mat.SymDense, error) {
	const op = "accum.Moment.SecondOrder"
	if m.m0 == 0 {
		return nil, errs.New(errs.ParameterOutOfRange, "%s: no mass accumulated", op).Push(op)
	}
	centroid := m.FirstOrder()
	sym := mat.NewSymDense(m.Dims, nil)
	for i := 0; i < m.Dims; i++ {
		for j := i; j < m.Dims; j++ {
			raw := m.m2[packedIdx(m.Dims, i, j)] / m.m0
			central := raw - centroid[i]*centroid[j]
			sym.SetSym(i, j, central)
		}
	}
	return sym, nil
}
