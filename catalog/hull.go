// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"github.com/emer/ndimage/feature"
	"github.com/emer/ndimage/measuregeom"
)

func init() {
	feature.Register("ConvexArea", func(nDims int) feature.Base { return newConvexAreaFeature() })
	feature.Register("ConvexPerimeter", func(nDims int) feature.Base { return newConvexPerimeterFeature() })
}

type convexAreaFeature struct{ feature.Info }

func newConvexAreaFeature() *convexAreaFeature {
	return &convexAreaFeature{feature.Info{
		FeatureName: "ConvexArea", Desc: "area enclosed by the convex hull of the boundary",
		ValueInfoList: []feature.ValueInfo{{Name: "ConvexArea", UnitPower: 2}},
	}}
}

func (f *convexAreaFeature) Measure(h *measuregeom.ConvexHull, outValues []float64) {
	outValues[0] = h.Area()
}

type convexPerimeterFeature struct{ feature.Info }

func newConvexPerimeterFeature() *convexPerimeterFeature {
	return &convexPerimeterFeature{feature.Info{
		FeatureName: "ConvexPerimeter", Desc: "perimeter of the convex hull of the boundary",
		ValueInfoList: []feature.ValueInfo{{Name: "ConvexPerimeter", UnitPower: 1}},
	}}
}

func (f *convexPerimeterFeature) Measure(h *measuregeom.ConvexHull, outValues []float64) {
	outValues[0] = h.Perimeter()
}
