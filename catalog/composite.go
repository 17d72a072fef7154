// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"math"

	"github.com/emer/ndimage/feature"
)

func init() {
	feature.Register("Convexity", func(nDims int) feature.Base { return newConvexityFeature() })
	feature.Register("P2A", func(nDims int) feature.Base { return newP2AFeature() })
	feature.Register("EllipseVariance", func(nDims int) feature.Base { return newEllipseVarianceFeature() })
}

// convexityFeature is the ratio of an object's area (its pixel Size) to
// the area of its convex hull: 1 for a convex object, smaller for shapes
// with concavities.
type convexityFeature struct{ feature.Info }

func newConvexityFeature() *convexityFeature {
	return &convexityFeature{feature.Info{
		FeatureName: "Convexity", Desc: "ratio of object area to convex hull area",
		ValueInfoList: []feature.ValueInfo{{Name: "Convexity"}},
	}}
}

func (f *convexityFeature) Dependencies() []string { return []string{"Size", "ConvexArea"} }

func (f *convexityFeature) Compose(deps map[string][]float64, outValues []float64) {
	convexArea := deps["ConvexArea"][0]
	if convexArea == 0 {
		outValues[0] = 0
		return
	}
	outValues[0] = deps["Size"][0] / convexArea
}

// p2aFeature is the perimeter-squared-to-area ratio, a circularity
// descriptor: 4*pi for a perfect circle, larger for elongated or
// irregular shapes.
type p2aFeature struct{ feature.Info }

func newP2AFeature() *p2aFeature {
	return &p2aFeature{feature.Info{
		FeatureName: "P2A", Desc: "perimeter-squared-to-area ratio",
		ValueInfoList: []feature.ValueInfo{{Name: "P2A"}},
	}}
}

func (f *p2aFeature) Dependencies() []string { return []string{"Perimeter", "Size"} }

func (f *p2aFeature) Compose(deps map[string][]float64, outValues []float64) {
	area := deps["Size"][0]
	if area == 0 {
		outValues[0] = 0
		return
	}
	p := deps["Perimeter"][0]
	outValues[0] = (p * p) / area
}

// ellipseVarianceFeature compares the object's mean boundary radius
// against the radius of the ellipse with its same normalized second
// moments (DimensionsEllipsoid), reporting the normalized squared
// difference: 0 for an object that is exactly that ellipse, larger for
// shapes that depart from it.
type ellipseVarianceFeature struct{ feature.Info }

func newEllipseVarianceFeature() *ellipseVarianceFeature {
	return &ellipseVarianceFeature{feature.Info{
		FeatureName: "EllipseVariance", Desc: "deviation of the boundary from its equivalent ellipse",
		ValueInfoList: []feature.ValueInfo{{Name: "EllipseVariance"}},
	}}
}

func (f *ellipseVarianceFeature) Dependencies() []string { return []string{"Radius", "DimensionsEllipsoid"} }

func (f *ellipseVarianceFeature) Compose(deps map[string][]float64, outValues []float64) {
	dims := deps["DimensionsEllipsoid"]
	if len(dims) < 2 {
		outValues[0] = 0
		return
	}
	semiA, semiB := dims[0]/2, dims[1]/2
	ellipseRadius := semiA * semiB
	if ellipseRadius <= 0 {
		outValues[0] = 0
		return
	}
	ellipseRadius = math.Sqrt(ellipseRadius)
	radiusMean := deps["Radius"][0]
	diff := radiusMean - ellipseRadius
	outValues[0] = (diff * diff) / (ellipseRadius * ellipseRadius)
}
