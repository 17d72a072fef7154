// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"math"

	"github.com/emer/ndimage/feature"
	"github.com/emer/ndimage/measuregeom"
)

func init() {
	feature.Register("Perimeter", func(nDims int) feature.Base { return newPerimeterFeature() })
	feature.Register("Feret", func(nDims int) feature.Base { return newFeretFeature() })
	feature.Register("AspectRatioFeret", func(nDims int) feature.Base { return newAspectRatioFeretFeature() })
	feature.Register("BendingEnergy", func(nDims int) feature.Base { return newBendingEnergyFeature() })
	feature.Register("Radius", func(nDims int) feature.Base { return newRadiusFeature() })
}

type perimeterFeature struct{ feature.Info }

func newPerimeterFeature() *perimeterFeature {
	return &perimeterFeature{feature.Info{
		FeatureName: "Perimeter", Desc: "boundary length, diagonal steps weighted by sqrt(2)",
		ValueInfoList: []feature.ValueInfo{{Name: "Perimeter", UnitPower: 1}},
	}}
}

func (f *perimeterFeature) Measure(cc *measuregeom.ChainCode, outValues []float64) {
	outValues[0] = cc.Perimeter()
}

type feretFeature struct{ feature.Info }

func newFeretFeature() *feretFeature {
	return &feretFeature{feature.Info{
		FeatureName: "Feret", Desc: "maximum and minimum Feret diameter",
		ValueInfoList: []feature.ValueInfo{{Name: "FeretMax", UnitPower: 1}, {Name: "FeretMin", UnitPower: 1}},
	}}
}

func (f *feretFeature) Measure(cc *measuregeom.ChainCode, outValues []float64) {
	maxDiam, minDiam := cc.Polygon().MaxFeret()
	outValues[0] = maxDiam
	outValues[1] = minDiam
}

type aspectRatioFeretFeature struct{ feature.Info }

func newAspectRatioFeretFeature() *aspectRatioFeretFeature {
	return &aspectRatioFeretFeature{feature.Info{
		FeatureName: "AspectRatioFeret", Desc: "ratio of maximum to minimum Feret diameter",
		ValueInfoList: []feature.ValueInfo{{Name: "AspectRatioFeret"}},
	}}
}

func (f *aspectRatioFeretFeature) Measure(cc *measuregeom.ChainCode, outValues []float64) {
	maxDiam, minDiam := cc.Polygon().MaxFeret()
	if minDiam == 0 {
		outValues[0] = 0
		return
	}
	outValues[0] = maxDiam / minDiam
}

type bendingEnergyFeature struct{ feature.Info }

func newBendingEnergyFeature() *bendingEnergyFeature {
	return &bendingEnergyFeature{feature.Info{
		FeatureName: "BendingEnergy", Desc: "sum of squared curvature along the boundary",
		ValueInfoList: []feature.ValueInfo{{Name: "BendingEnergy"}},
	}}
}

func (f *bendingEnergyFeature) Measure(cc *measuregeom.ChainCode, outValues []float64) {
	outValues[0] = cc.BendingEnergy()
}

// radiusFeature reports the mean, maximum, and minimum distance from the
// boundary's centroid to its vertices.
type radiusFeature struct{ feature.Info }

func newRadiusFeature() *radiusFeature {
	return &radiusFeature{feature.Info{
		FeatureName: "Radius", Desc: "mean/max/min distance from centroid to boundary",
		ValueInfoList: []feature.ValueInfo{{Name: "RadiusMean", UnitPower: 1}, {Name: "RadiusMax", UnitPower: 1}, {Name: "RadiusMin", UnitPower: 1}},
	}}
}

func (f *radiusFeature) Measure(cc *measuregeom.ChainCode, outValues []float64) {
	poly := cc.Polygon()
	n := len(poly.Vertices)
	if n == 0 {
		return
	}
	c := poly.Centroid()
	var sum, max, min float64
	min = math.Inf(1)
	for _, v := range poly.Vertices {
		d := math.Hypot(v.X-c.X, v.Y-c.Y)
		sum += d
		if d > max {
			max = d
		}
		if d < min {
			min = d
		}
	}
	outValues[0] = sum / float64(n)
	outValues[1] = max
	outValues[2] = min
}
