// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/emer/ndimage/accum"
	"github.com/emer/ndimage/feature"
)

func init() {
	feature.Register("Gravity", func(nDims int) feature.Base { return newGravityFeature(nDims) })
	feature.Register("Mu", func(nDims int) feature.Base { return newMuFeature("Mu", nDims, false) })
	feature.Register("GreyMu", func(nDims int) feature.Base { return newMuFeature("GreyMu", nDims, true) })
	feature.Register("Inertia", func(nDims int) feature.Base { return newInertiaFeature("Inertia", nDims, false) })
	feature.Register("GreyInertia", func(nDims int) feature.Base { return newInertiaFeature("GreyInertia", nDims, true) })
	feature.Register("MajorAxes", func(nDims int) feature.Base { return newAxesFeature("MajorAxes", nDims, false) })
	feature.Register("GreyMajorAxes", func(nDims int) feature.Base { return newAxesFeature("GreyMajorAxes", nDims, true) })
	feature.Register("DimensionsEllipsoid", func(nDims int) feature.Base { return newEllipsoidFeature(nDims) })
}

// computeMoments walks every pixel of images.Label once, folding its
// coordinate into the accum.Moment accumulator of the object it belongs
// to, weighted by the grey value when weighted is true and by 1
// otherwise. Rows absent from idIndex (not requested) are skipped.
func computeMoments(images *feature.ObjectImages, idIndex map[uint64]int, weighted bool) map[int]*accum.Moment {
	nDims := images.Label.NumDims()
	moments := make(map[int]*accum.Moment, len(idIndex))
	n := images.Label.Shape.Len()
	coord := make([]float64, nDims)
	for i := 0; i < n; i++ {
		c := images.Label.Coord(i)
		lbl := uint64(images.Label.At(c, 0))
		if lbl == 0 {
			continue
		}
		row, ok := idIndex[lbl]
		if !ok {
			continue
		}
		m, ok := moments[row]
		if !ok {
			m = accum.NewMoment(nDims)
			moments[row] = m
		}
		weight := 1.0
		if weighted {
			weight = images.Grey.At(c, 0)
		}
		for d, v := range c {
			coord[d] = float64(v)
		}
		m.Push(coord, weight)
	}
	return moments
}

// computeTensors reduces computeMoments' accumulators to their central
// second-moment tensor, dropping any object with no accumulated mass.
func computeTensors(images *feature.ObjectImages, idIndex map[uint64]int, weighted bool) map[int]*mat.SymDense {
	moments := computeMoments(images, idIndex, weighted)
	out := make(map[int]*mat.SymDense, len(moments))
	for row, m := range moments {
		sym, err := m.SecondOrder()
		if err != nil {
			continue
		}
		out[row] = sym
	}
	return out
}

// eigenDecompose factorizes sym and returns its eigenvalues and
// eigenvectors sorted from largest to smallest eigenvalue, so index 0 is
// always the major axis. Grounded on pca/pca.go's gonum/mat.EigenSym
// usage (Factorize + VectorsTo + Values), reused here per-object instead
// of over a whole data table.
func eigenDecompose(sym *mat.SymDense) (values []float64, vectors *mat.Dense, ok bool) {
	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, nil, false
	}
	n, _ := sym.Dims()
	vals := make([]float64, n)
	eig.Values(vals)
	vecs := eig.VectorsTo(nil)

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return vals[idx[i]] > vals[idx[j]] })

	sortedVals := make([]float64, n)
	sortedVecs := mat.NewDense(n, n, nil)
	for newCol, oldCol := range idx {
		sortedVals[newCol] = vals[oldCol]
		for r := 0; r < n; r++ {
			sortedVecs.Set(r, newCol, vecs.At(r, oldCol))
		}
	}
	return sortedVals, sortedVecs, true
}

// gravityFeature is the grey-weighted centroid: accum.Moment.FirstOrder()
// of a weighted pass, one column per spatial dimension.
type gravityFeature struct {
	feature.Info
	dims int
}

func newGravityFeature(nDims int) *gravityFeature {
	values := make([]feature.ValueInfo, nDims)
	for d := range values {
		values[d] = feature.ValueInfo{Name: dimName(d), UnitPower: 1}
	}
	return &gravityFeature{
		Info: feature.Info{FeatureName: "Gravity", Desc: "grey-weighted centroid", NeedsGrey: true, ValueInfoList: values},
		dims: nDims,
	}
}

func (f *gravityFeature) Measure(images *feature.ObjectImages, idIndex map[uint64]int, writer feature.ColumnWriter) error {
	moments := computeMoments(images, idIndex, true)
	for row, m := range moments {
		centroid := m.FirstOrder()
		for d, v := range centroid {
			writer.Set(row, d, v)
		}
	}
	return nil
}

// muFeature exposes the raw upper-triangular components of the
// (optionally grey-weighted) second-moment tensor, un-decomposed.
type muFeature struct {
	feature.Info
	dims     int
	weighted bool
}

func newMuFeature(name string, nDims int, weighted bool) *muFeature {
	values := make([]feature.ValueInfo, 0, nDims*(nDims+1)/2)
	for i := 0; i < nDims; i++ {
		for j := i; j < nDims; j++ {
			values = append(values, feature.ValueInfo{Name: "Mu_" + dimName(i) + dimName(j), UnitPower: 2})
		}
	}
	return &muFeature{
		Info:     feature.Info{FeatureName: name, Desc: "central second-moment tensor components", NeedsGrey: weighted, ValueInfoList: values},
		dims:     nDims,
		weighted: weighted,
	}
}

func (f *muFeature) Measure(images *feature.ObjectImages, idIndex map[uint64]int, writer feature.ColumnWriter) error {
	tensors := computeTensors(images, idIndex, f.weighted)
	for row, sym := range tensors {
		col := 0
		for i := 0; i < f.dims; i++ {
			for j := i; j < f.dims; j++ {
				writer.Set(row, col, sym.At(i, j))
				col++
			}
		}
	}
	return nil
}

// inertiaFeature reports the principal moments (eigenvalues of the
// second-moment tensor), largest first.
type inertiaFeature struct {
	feature.Info
	dims     int
	weighted bool
}

func newInertiaFeature(name string, nDims int, weighted bool) *inertiaFeature {
	values := make([]feature.ValueInfo, nDims)
	for i := range values {
		values[i] = feature.ValueInfo{Name: "Inertia" + dimName(i), UnitPower: 2}
	}
	return &inertiaFeature{
		Info:     feature.Info{FeatureName: name, Desc: "principal moments of inertia", NeedsGrey: weighted, ValueInfoList: values},
		dims:     nDims,
		weighted: weighted,
	}
}

func (f *inertiaFeature) Measure(images *feature.ObjectImages, idIndex map[uint64]int, writer feature.ColumnWriter) error {
	tensors := computeTensors(images, idIndex, f.weighted)
	for row, sym := range tensors {
		vals, _, ok := eigenDecompose(sym)
		if !ok {
			continue
		}
		for i, v := range vals {
			writer.Set(row, i, v)
		}
	}
	return nil
}

// axesFeature reports the principal axes (eigenvectors of the
// second-moment tensor) flattened row-major, axis 0 first.
type axesFeature struct {
	feature.Info
	dims     int
	weighted bool
}

func newAxesFeature(name string, nDims int, weighted bool) *axesFeature {
	values := make([]feature.ValueInfo, 0, nDims*nDims)
	for axis := 0; axis < nDims; axis++ {
		for d := 0; d < nDims; d++ {
			values = append(values, feature.ValueInfo{Name: "Axis" + dimName(axis) + "_" + dimName(d)})
		}
	}
	return &axesFeature{
		Info:     feature.Info{FeatureName: name, Desc: "principal axis directions", NeedsGrey: weighted, ValueInfoList: values},
		dims:     nDims,
		weighted: weighted,
	}
}

func (f *axesFeature) Measure(images *feature.ObjectImages, idIndex map[uint64]int, writer feature.ColumnWriter) error {
	tensors := computeTensors(images, idIndex, f.weighted)
	for row, sym := range tensors {
		_, vecs, ok := eigenDecompose(sym)
		if !ok {
			continue
		}
		col := 0
		for axis := 0; axis < f.dims; axis++ {
			for d := 0; d < f.dims; d++ {
				writer.Set(row, col, vecs.At(d, axis))
				col++
			}
		}
	}
	return nil
}

// ellipsoidFeature reports the diameters of the ellipsoid with the same
// normalized second moments as the object, derived from the unweighted
// tensor's eigenvalues (a uniform-density ellipsoid of semi-axis a has
// central second moment a^2/4 along that axis).
type ellipsoidFeature struct {
	feature.Info
	dims int
}

func newEllipsoidFeature(nDims int) *ellipsoidFeature {
	values := make([]feature.ValueInfo, nDims)
	for i := range values {
		values[i] = feature.ValueInfo{Name: "Dim" + dimName(i), UnitPower: 1}
	}
	return &ellipsoidFeature{
		Info: feature.Info{FeatureName: "DimensionsEllipsoid", Desc: "diameters of the equivalent ellipsoid", ValueInfoList: values},
		dims: nDims,
	}
}

func (f *ellipsoidFeature) Measure(images *feature.ObjectImages, idIndex map[uint64]int, writer feature.ColumnWriter) error {
	tensors := computeTensors(images, idIndex, false)
	for row, sym := range tensors {
		vals, _, ok := eigenDecompose(sym)
		if !ok {
			continue
		}
		for i, lambda := range vals {
			if lambda < 0 {
				lambda = 0
			}
			writer.Set(row, i, 2*math.Sqrt(4*lambda))
		}
	}
	return nil
}
