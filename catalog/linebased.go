// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog supplements spec.md §4.10/§4.11 with the concrete
// feature set SPEC_FULL.md §5 lists (drawn from
// original_source/src/measurement/feature_*.h, which the distilled spec.md
// does not enumerate): Size, grey extrema, grey statistics, centroid,
// bounding box, moment-tensor shape descriptors, and the chain-code/
// polygon/convex-hull perimeter-and-shape family. Every feature here
// registers itself with package feature's registry from an init func, the
// way a client's own feature plugin would.
package catalog

import (
	"strconv"
	"sync"

	"github.com/emer/ndimage/accum"
	"github.com/emer/ndimage/feature"
)

func init() {
	feature.Register("Size", func(nDims int) feature.Base { return newSizeFeature(nDims) })
	feature.Register("Minimum", func(nDims int) feature.Base { return newExtremumFeature("Minimum", false, false) })
	feature.Register("Maximum", func(nDims int) feature.Base { return newExtremumFeature("Maximum", true, false) })
	feature.Register("MinVal", func(nDims int) feature.Base { return newExtremumFeature("MinVal", false, true) })
	feature.Register("MaxVal", func(nDims int) feature.Base { return newExtremumFeature("MaxVal", true, true) })
	feature.Register("Mean", func(nDims int) feature.Base { return newStatsFeature("Mean", statMean) })
	feature.Register("StdDev", func(nDims int) feature.Base { return newStatsFeature("StdDev", statStdDev) })
	feature.Register("Skewness", func(nDims int) feature.Base { return newStatsFeature("Skewness", statSkewness) })
	feature.Register("Statistics", func(nDims int) feature.Base { return newFullStatsFeature() })
	feature.Register("Center", func(nDims int) feature.Base { return newCenterFeature(nDims) })
	feature.Register("Mass", func(nDims int) feature.Base { return newMassFeature() })
	feature.Register("CartesianBox", func(nDims int) feature.Base { return newBoxFeature(nDims) })
}

// --- Size -----------------------------------------------------------------

type sizeFeature struct {
	feature.Info
	counts []int64
	mu     sync.Mutex
}

func newSizeFeature(nDims int) *sizeFeature {
	return &sizeFeature{Info: feature.Info{
		FeatureName:   "Size",
		Desc:          "number of pixels belonging to the object",
		ValueInfoList: []feature.ValueInfo{{Name: "Size", UnitPower: int8(nDims)}},
	}}
}

func (f *sizeFeature) Initialize(nObjects int) error {
	f.counts = make([]int64, nObjects)
	return nil
}

func (f *sizeFeature) ScanLine(labelLine, greyLine []float64, position []int, dimension int, idIndex map[uint64]int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range labelLine {
		id := uint64(v)
		if id == 0 {
			continue
		}
		if row, ok := idIndex[id]; ok {
			f.counts[row]++
		}
	}
}

func (f *sizeFeature) Finish(objectIndex int, outValues []float64) {
	outValues[0] = float64(f.counts[objectIndex])
}

func (f *sizeFeature) Cleanup() { f.counts = nil }

// --- Minimum/Maximum/MinVal/MaxVal -----------------------------------------

// extremumFeature finds the location (Minimum/Maximum, coordinate index)
// or the value (MinVal/MaxVal) of the grey-value extremum within each
// object.
type extremumFeature struct {
	feature.Info
	findMax bool
	wantVal bool
	accs    []accum.MinMax
	mu      sync.Mutex
}

func newExtremumFeature(name string, findMax, wantVal bool) *extremumFeature {
	var power int8
	if !wantVal {
		power = 1 // Minimum/Maximum report a coordinate index, MinVal/MaxVal a grey value
	}
	values := []feature.ValueInfo{{Name: name, UnitPower: power}}
	return &extremumFeature{
		Info: feature.Info{
			FeatureName:   name,
			Desc:          "grey-value extremum of the object",
			NeedsGrey:     true,
			ValueInfoList: values,
		},
		findMax: findMax,
		wantVal: wantVal,
	}
}

func (f *extremumFeature) Initialize(nObjects int) error {
	f.accs = make([]accum.MinMax, nObjects)
	for i := range f.accs {
		f.accs[i].Reset()
	}
	return nil
}

func (f *extremumFeature) ScanLine(labelLine, greyLine []float64, position []int, dimension int, idIndex map[uint64]int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for x, v := range labelLine {
		id := uint64(v)
		if id == 0 {
			continue
		}
		row, ok := idIndex[id]
		if !ok {
			continue
		}
		f.accs[row].Push(greyLine[x], x)
	}
}

func (f *extremumFeature) Finish(objectIndex int, outValues []float64) {
	a := f.accs[objectIndex]
	if f.wantVal {
		if f.findMax {
			outValues[0] = a.Max
		} else {
			outValues[0] = a.Min
		}
		return
	}
	if f.findMax {
		outValues[0] = float64(a.MaxIdx)
	} else {
		outValues[0] = float64(a.MinIdx)
	}
}

func (f *extremumFeature) Cleanup() { f.accs = nil }

// --- Mean/StdDev/Skewness (single-value statistics) ------------------------

type statSelector int

const (
	statMean statSelector = iota
	statStdDev
	statSkewness
)

type statsFeature struct {
	feature.Info
	which statSelector
	accs  []accum.Statistics
	mu    sync.Mutex
}

func newStatsFeature(name string, which statSelector) *statsFeature {
	return &statsFeature{
		Info: feature.Info{
			FeatureName:   name,
			Desc:          "grey-value " + name + " over the object",
			NeedsGrey:     true,
			ValueInfoList: []feature.ValueInfo{{Name: name}},
		},
		which: which,
	}
}

func (f *statsFeature) Initialize(nObjects int) error {
	f.accs = make([]accum.Statistics, nObjects)
	return nil
}

func (f *statsFeature) ScanLine(labelLine, greyLine []float64, position []int, dimension int, idIndex map[uint64]int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for x, v := range labelLine {
		id := uint64(v)
		if id == 0 {
			continue
		}
		row, ok := idIndex[id]
		if !ok {
			continue
		}
		f.accs[row].Push(greyLine[x])
	}
}

func (f *statsFeature) Finish(objectIndex int, outValues []float64) {
	s := f.accs[objectIndex]
	switch f.which {
	case statMean:
		outValues[0] = s.Mean()
	case statStdDev:
		outValues[0] = s.StdDev()
	case statSkewness:
		outValues[0] = s.Skewness()
	}
}

func (f *statsFeature) Cleanup() { f.accs = nil }

// fullStatsFeature is the "Statistics" feature: mean, std-dev, skewness and
// kurtosis in one column group, computed from one shared accumulator pass
// rather than four independent ones.
type fullStatsFeature struct {
	feature.Info
	accs []accum.Statistics
	mu   sync.Mutex
}

func newFullStatsFeature() *fullStatsFeature {
	return &fullStatsFeature{Info: feature.Info{
		FeatureName: "Statistics",
		Desc:        "grey-value mean, standard deviation, skewness and kurtosis",
		NeedsGrey:   true,
		ValueInfoList: []feature.ValueInfo{
			{Name: "Mean"}, {Name: "StdDev"}, {Name: "Skewness"}, {Name: "ExcessKurtosis"},
		},
	}}
}

func (f *fullStatsFeature) Initialize(nObjects int) error {
	f.accs = make([]accum.Statistics, nObjects)
	return nil
}

func (f *fullStatsFeature) ScanLine(labelLine, greyLine []float64, position []int, dimension int, idIndex map[uint64]int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for x, v := range labelLine {
		id := uint64(v)
		if id == 0 {
			continue
		}
		row, ok := idIndex[id]
		if !ok {
			continue
		}
		f.accs[row].Push(greyLine[x])
	}
}

func (f *fullStatsFeature) Finish(objectIndex int, outValues []float64) {
	s := f.accs[objectIndex]
	outValues[0] = s.Mean()
	outValues[1] = s.StdDev()
	outValues[2] = s.Skewness()
	outValues[3] = s.Kurtosis()
}

func (f *fullStatsFeature) Cleanup() { f.accs = nil }

// --- Center (unweighted centroid) ------------------------------------------

type centerFeature struct {
	feature.Info
	accs []*accum.Moment
	dims int
	mu   sync.Mutex
}

func newCenterFeature(nDims int) *centerFeature {
	values := make([]feature.ValueInfo, nDims)
	for d := 0; d < nDims; d++ {
		values[d] = feature.ValueInfo{Name: dimName(d), UnitPower: 1}
	}
	return &centerFeature{
		dims: nDims,
		Info: feature.Info{
			FeatureName:   "Center",
			Desc:          "unweighted centroid of the object's pixels",
			ValueInfoList: values,
		},
	}
}

func (f *centerFeature) Initialize(nObjects int) error {
	f.accs = make([]*accum.Moment, nObjects)
	for i := range f.accs {
		f.accs[i] = accum.NewMoment(f.dims)
	}
	return nil
}

func (f *centerFeature) ScanLine(labelLine, greyLine []float64, position []int, dimension int, idIndex map[uint64]int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	coord := make([]float64, f.dims)
	for x, v := range labelLine {
		id := uint64(v)
		if id == 0 {
			continue
		}
		row, ok := idIndex[id]
		if !ok {
			continue
		}
		for d := 0; d < f.dims; d++ {
			if d == dimension {
				coord[d] = float64(x)
			} else {
				coord[d] = float64(position[d])
			}
		}
		f.accs[row].Push(coord, 1)
	}
}

func (f *centerFeature) Finish(objectIndex int, outValues []float64) {
	copy(outValues, f.accs[objectIndex].FirstOrder())
}

func (f *centerFeature) Cleanup() { f.accs = nil }

func dimName(d int) string {
	names := []string{"X", "Y", "Z", "W"}
	if d < len(names) {
		return names[d]
	}
	return "Dim" + strconv.Itoa(d)
}

// --- Mass (grey-weighted sum) ----------------------------------------------

type massFeature struct {
	feature.Info
	sums []float64
	mu   sync.Mutex
}

func newMassFeature() *massFeature {
	return &massFeature{Info: feature.Info{
		FeatureName:   "Mass",
		Desc:          "sum of grey values over the object",
		NeedsGrey:     true,
		ValueInfoList: []feature.ValueInfo{{Name: "Mass"}},
	}}
}

func (f *massFeature) Initialize(nObjects int) error {
	f.sums = make([]float64, nObjects)
	return nil
}

func (f *massFeature) ScanLine(labelLine, greyLine []float64, position []int, dimension int, idIndex map[uint64]int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for x, v := range labelLine {
		id := uint64(v)
		if id == 0 {
			continue
		}
		row, ok := idIndex[id]
		if !ok {
			continue
		}
		f.sums[row] += greyLine[x]
	}
}

func (f *massFeature) Finish(objectIndex int, outValues []float64) { outValues[0] = f.sums[objectIndex] }
func (f *massFeature) Cleanup()                                    { f.sums = nil }

// --- CartesianBox (bounding box) --------------------------------------------

type boxFeature struct {
	feature.Info
	lo, hi [][]int64
	dims   int
	mu     sync.Mutex
}

func newBoxFeature(nDims int) *boxFeature {
	values := make([]feature.ValueInfo, 2*nDims)
	for d := 0; d < nDims; d++ {
		values[2*d] = feature.ValueInfo{Name: dimName(d) + "Min", UnitPower: 1}
		values[2*d+1] = feature.ValueInfo{Name: dimName(d) + "Max", UnitPower: 1}
	}
	return &boxFeature{
		dims: nDims,
		Info: feature.Info{
			FeatureName:   "CartesianBox",
			Desc:          "axis-aligned bounding box of the object",
			ValueInfoList: values,
		},
	}
}

func (f *boxFeature) Initialize(nObjects int) error {
	f.lo = make([][]int64, nObjects)
	f.hi = make([][]int64, nObjects)
	return nil
}

func (f *boxFeature) ScanLine(labelLine, greyLine []float64, position []int, dimension int, idIndex map[uint64]int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	coord := make([]int64, f.dims)
	for x, v := range labelLine {
		id := uint64(v)
		if id == 0 {
			continue
		}
		row, ok := idIndex[id]
		if !ok {
			continue
		}
		for d := 0; d < f.dims; d++ {
			if d == dimension {
				coord[d] = int64(x)
			} else {
				coord[d] = int64(position[d])
			}
		}
		if f.lo[row] == nil {
			f.lo[row] = append([]int64(nil), coord...)
			f.hi[row] = append([]int64(nil), coord...)
			continue
		}
		for d := 0; d < f.dims; d++ {
			if coord[d] < f.lo[row][d] {
				f.lo[row][d] = coord[d]
			}
			if coord[d] > f.hi[row][d] {
				f.hi[row][d] = coord[d]
			}
		}
	}
}

func (f *boxFeature) Finish(objectIndex int, outValues []float64) {
	lo, hi := f.lo[objectIndex], f.hi[objectIndex]
	for d := 0; d < f.dims; d++ {
		if lo == nil {
			outValues[2*d], outValues[2*d+1] = 0, 0
			continue
		}
		outValues[2*d] = float64(lo[d])
		outValues[2*d+1] = float64(hi[d])
	}
}

func (f *boxFeature) Cleanup() { f.lo, f.hi = nil, nil }
