// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boundary

import (
	"github.com/emer/ndimage/errs"
	"github.com/emer/ndimage/imgcore"
)

// ExtendImage produces an image whose size along dimension d is
// Sizes[d]+2*borders[d], with the interior copied from in and each
// dimension's border filled line-by-line according to conditions[d],
// per spec.md §4.7. Dimensions are processed in order 0..n-1; by the time
// dimension d's border is filled, dimensions < d are already fully extended
// (so the corners are filled consistently from already-extended data) and
// dimensions > d are still interior-only.
func ExtendImage(in *imgcore.Image, borders []int, conditions []Condition) (*imgcore.Image, error) {
	const op = "boundary.ExtendImage"
	nd := in.NumDims()
	if len(borders) != nd || len(conditions) != nd {
		return nil, errs.New(errs.ArrayParameterWrongLength, "%s: borders/conditions must have length %d", op, nd).Push(op)
	}
	outSizes := make([]int, nd)
	for i, s := range in.Sizes {
		outSizes[i] = s + 2*borders[i]
	}
	out := imgcore.NewRaw(outSizes, in.Type)
	out.TensorShape, out.TensorRows, out.TensorCols = in.TensorShape, in.TensorRows, in.TensorCols
	out.PixelSizes, out.ColorSpace = in.PixelSizes, in.ColorSpace
	if err := out.Reforge(outSizes, in.TensorElements(), in.Type); err != nil {
		return nil, err
	}

	interiorStarts := borders
	interiorStops := make([]int, nd)
	for i := range interiorStops {
		interiorStops[i] = borders[i] + in.Sizes[i]
	}
	interior, err := out.Crop(interiorStarts, interiorStops)
	if err != nil {
		return nil, err
	}
	if err := interior.CopyFrom(in); err != nil {
		return nil, err
	}
	if allAlreadyExpanded(conditions) {
		return out, nil
	}

	te := out.TensorElements()
	for d := 0; d < nd; d++ {
		if conditions[d] == AlreadyExpanded {
			continue
		}
		lo := make([]int, nd)
		hi := make([]int, nd)
		for i := 0; i < nd; i++ {
			switch {
			case i < d:
				hi[i] = outSizes[i]
			case i > d:
				lo[i] = borders[i]
				hi[i] = borders[i] + in.Sizes[i]
			}
		}
		extendAlongDim(out, d, borders[d], in.Sizes[d], conditions[d], lo, hi, te)
	}
	return out, nil
}

func allAlreadyExpanded(conds []Condition) bool {
	for _, c := range conds {
		if c != AlreadyExpanded {
			return false
		}
	}
	return true
}

// extendAlongDim fills the border of dimension d for every "other"
// coordinate in the box [lo,hi) (excluding dimension d itself, which is not
// iterated here; fillLine addresses the positions along d directly).
func extendAlongDim(img *imgcore.Image, d, border, interiorLen int, cond Condition, lo, hi []int, te int) {
	nd := img.NumDims()
	coord := make([]int, nd)
	copy(coord, lo)
	var walk func(dim int)
	walk = func(dim int) {
		if dim == nd {
			fillLine(img, d, border, interiorLen, cond, coord, te)
			return
		}
		if dim == d {
			walk(dim + 1)
			return
		}
		for coord[dim] = lo[dim]; coord[dim] < hi[dim]; coord[dim]++ {
			walk(dim + 1)
		}
	}
	walk(0)
}

// fillLine fills the low and high border samples of the line through
// coord along dimension d, for every tensor sample, using the interior
// samples [border, border+interiorLen) already present at that position.
func fillLine(img *imgcore.Image, d, border, interiorLen int, cond Condition, coord []int, te int) {
	get := func(pos, k int) float64 {
		c := append([]int(nil), coord...)
		c[d] = pos
		return img.At(c, k)
	}
	set := func(pos, k int, v float64) {
		c := append([]int(nil), coord...)
		c[d] = pos
		img.SetAt(c, k, v)
	}
	for k := 0; k < te; k++ {
		for b := 0; b < border; b++ {
			lowPos := border - 1 - b    // virtual index -1-b maps to output coord border-1-b
			highPos := border + interiorLen + b
			set(lowPos, k, lowSample(cond, get, border, interiorLen, k, b))
			set(highPos, k, highSample(cond, get, border, interiorLen, k, b))
		}
	}
}

// lowSample computes the value of the b-th sample below the interior
// (b==0 is the sample immediately before the interior, out[-1]).
func lowSample(cond Condition, get func(pos, k int) float64, border, interiorLen, k, b int) float64 {
	in := func(i int) float64 { return get(border+i, k) }
	switch cond {
	case SymmetricMirror:
		return in(b) // out[-1]=in[0], out[-2]=in[1]
	case AsymmetricMirror:
		return 2*in(0) - in(b+1)
	case Periodic:
		return in(((interiorLen - 1 - b) % interiorLen + interiorLen) % interiorLen)
	case AsymmetricPeriodic:
		return 2*in(0) - in(((interiorLen-1-b)%interiorLen+interiorLen)%interiorLen)
	case Zero:
		return 0
	case SaturateMin:
		return in(0)
	case SaturateMax:
		return in(interiorLen - 1)
	case Poly0:
		return in(0)
	case Poly1:
		return polyExtrap(in, interiorLen, -(b + 1), 1)
	case Poly2:
		return polyExtrap(in, interiorLen, -(b + 1), 2)
	case Poly3:
		return polyExtrap(in, interiorLen, -(b + 1), 3)
	}
	return 0
}

// highSample computes the value of the b-th sample above the interior
// (b==0 is out[S], the first sample past the end).
func highSample(cond Condition, get func(pos, k int) float64, border, interiorLen, k, b int) float64 {
	in := func(i int) float64 { return get(border+i, k) }
	last := interiorLen - 1
	switch cond {
	case SymmetricMirror:
		return in(last - b)
	case AsymmetricMirror:
		return 2*in(last) - in(last-b-1)
	case Periodic:
		return in(b % interiorLen)
	case AsymmetricPeriodic:
		return 2*in(last) - in(b%interiorLen)
	case Zero:
		return 0
	case SaturateMin:
		return in(0)
	case SaturateMax:
		return in(last)
	case Poly0:
		return in(last)
	case Poly1:
		return polyExtrap(in, interiorLen, last+b+1, 1)
	case Poly2:
		return polyExtrap(in, interiorLen, last+b+1, 2)
	case Poly3:
		return polyExtrap(in, interiorLen, last+b+1, 3)
	}
	return 0
}

// polyExtrap extrapolates a degree-order polynomial fit through the
// `order+1` interior samples nearest the edge being extended towards
// virtual position pos (pos < 0 for the low edge, pos >= interiorLen for
// the high edge), using Newton's forward/backward finite-difference
// formula so no matrix solve is needed.
func polyExtrap(in func(int) float64, interiorLen, pos, order int) float64 {
	if order >= interiorLen {
		order = interiorLen - 1
	}
	if order <= 0 {
		if pos < 0 {
			return in(0)
		}
		return in(interiorLen - 1)
	}
	var base int
	var x float64
	if pos < 0 {
		base = 0
		x = float64(pos)
	} else {
		base = interiorLen - 1 - order
		x = float64(pos - base)
	}
	// Newton's divided differences on equally spaced points 0..order.
	samples := make([]float64, order+1)
	for i := range samples {
		samples[i] = in(base + i)
	}
	coeffs := make([]float64, order+1)
	copy(coeffs, samples)
	for lvl := 1; lvl <= order; lvl++ {
		for i := order; i >= lvl; i-- {
			coeffs[i] = coeffs[i] - coeffs[i-1]
		}
	}
	result := coeffs[0]
	term := 1.0
	for i := 1; i <= order; i++ {
		term *= (x - float64(i-1)) / float64(i)
		result += coeffs[i] * term
	}
	return result
}

// Masked returns a view of extended's interior region only, the inverse of
// ExtendImage's padding, per spec.md §4.7.
func Masked(extended *imgcore.Image, borders []int) (*imgcore.Image, error) {
	nd := extended.NumDims()
	starts := make([]int, nd)
	stops := make([]int, nd)
	for i := 0; i < nd; i++ {
		starts[i] = borders[i]
		stops[i] = extended.Sizes[i] - borders[i]
	}
	return extended.Crop(starts, stops)
}
