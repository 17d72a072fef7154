// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accum

// Covariance is an online paired-sample covariance accumulator (Welford's
// update extended to two variables), with the same parallel-combine
// guarantee as Variance, per spec.md §4.8.
type Covariance struct {
	N        int64
	MeanX    float64
	MeanY    float64
	CoMoment float64 // running sum of (x-meanX)*(y-meanY)
}

// Reset returns the accumulator to its zero state.
func (c *Covariance) Reset() { *c = Covariance{} }

// Push folds one (x,y) pair into the accumulator.
func (c *Covariance) Push(x, y float64) {
	c.N++
	dx := x - c.MeanX
	c.MeanX += dx / float64(c.N)
	c.MeanY += (y - c.MeanY) / float64(c.N)
	c.CoMoment += dx * (y - c.MeanY)
}

// Combine returns the associative combination of c and o.
func (c Covariance) Combine(o Covariance) Covariance {
	if c.N == 0 {
		return o
	}
	if o.N == 0 {
		return c
	}
	n := float64(c.N + o.N)
	dx := o.MeanX - c.MeanX
	dy := o.MeanY - c.MeanY
	out := Covariance{N: c.N + o.N}
	out.MeanX = c.MeanX + dx*float64(o.N)/n
	out.MeanY = c.MeanY + dy*float64(o.N)/n
	out.CoMoment = c.CoMoment + o.CoMoment + dx*dy*float64(c.N)*float64(o.N)/n
	return out
}

// Sample returns the unbiased sample covariance.
func (c Covariance) Sample() float64 {
	if c.N < 2 {
		return 0
	}
	return c.CoMoment / float64(c.N-1)
}

// Population returns the population covariance.
func (c Covariance) Population() float64 {
	if c.N < 1 {
		return 0
	}
	return c.CoMoment / float64(c.N)
}
