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
	feature.Register("PolygonArea", func(nDims int) feature.Base { return newPolygonAreaFeature() })
	feature.Register("PodczeckShapes", func(nDims int) feature.Base { return newPodczeckShapesFeature() })
}

type polygonAreaFeature struct{ feature.Info }

func newPolygonAreaFeature() *polygonAreaFeature {
	return &polygonAreaFeature{feature.Info{
		FeatureName: "PolygonArea", Desc: "unsigned polygon area via the shoelace formula",
		ValueInfoList: []feature.ValueInfo{{Name: "PolygonArea", UnitPower: 2}},
	}}
}

func (f *polygonAreaFeature) Measure(p *measuregeom.Polygon, outValues []float64) {
	outValues[0] = math.Abs(p.Area())
}

// podczeckShapesFeature reports Podczeck's shape factor, a roundness
// descriptor comparing the polygon's area to the area of the circle
// whose diameter is the polygon's maximum Feret diameter: a value of 1
// means the shape is that circle, lower values mean more elongated or
// irregular outlines.
type podczeckShapesFeature struct{ feature.Info }

func newPodczeckShapesFeature() *podczeckShapesFeature {
	return &podczeckShapesFeature{feature.Info{
		FeatureName: "PodczeckShapes", Desc: "roundness relative to the maximum-Feret-diameter circle",
		ValueInfoList: []feature.ValueInfo{{Name: "PodczeckShapes"}},
	}}
}

func (f *podczeckShapesFeature) Measure(p *measuregeom.Polygon, outValues []float64) {
	maxDiam, _ := p.MaxFeret()
	if maxDiam == 0 {
		outValues[0] = 0
		return
	}
	area := math.Abs(p.Area())
	circleArea := math.Pi * maxDiam * maxDiam / 4
	outValues[0] = area / circleArea
}
