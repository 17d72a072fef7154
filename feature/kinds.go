// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package feature declares the feature-base contract, the named feature
// registry, and the measurement table of spec.md §3.4/§4.10: a feature
// catalog keyed by name, with instances falling into one of six kinds that
// the measurement engine (package measure) drives during its pass over a
// labeled image.
package feature

import (
	"github.com/emer/ndimage/imgcore"
	"github.com/emer/ndimage/imgtype"
	"github.com/emer/ndimage/measuregeom"
)

// ValueInfo describes one scalar output column a feature contributes: its
// name (unique within the feature, used to build the measurement table's
// value header) and physical units, per spec.md's requirement that units
// attach to measurement values the same way they attach to pixel sizes.
// UnitPower is the feature's own metadata: the power of the image's
// calibrated spatial unit this value carries (0 for a dimensionless ratio,
// 1 for a length such as a perimeter, 2 for an area, and so on). Units is
// left at its zero value by a feature's ValueInfo and filled in by
// DeriveUnits once the source image's actual calibration is known.
type ValueInfo struct {
	Name      string
	UnitPower int8
	Units     imgtype.Units
}

// DeriveUnits returns a copy of values with each entry's Units computed as
// spatial (the measured image's calibrated spatial unit) raised to that
// entry's UnitPower, so a "pixel^2" area column reported against a
// micrometer-calibrated image ends up with genuine um^2 units instead of a
// meaningless display string.
func DeriveUnits(values []ValueInfo, spatial imgtype.Units) []ValueInfo {
	out := make([]ValueInfo, len(values))
	for i, v := range values {
		v.Units = spatial.Pow(v.UnitPower)
		out[i] = v
	}
	return out
}

// Base is embedded by every concrete feature and answers the
// kind-independent part of the contract (spec.md §4.10).
type Base interface {
	Name() string
	Description() string
	NeedsGreyValue() bool
	// ValueInfo returns this feature's value columns, in the order Finish/
	// Measure/Compose write them.
	ValueInfo() []ValueInfo
}

// LineBased features are scanned under the scan framework during a single
// pass over the labeled (and optional grey-value) image; ScanLine is called
// once per line, per requested feature, from at most one thread at a time
// per feature per tile.
type LineBased interface {
	Base
	// Initialize is called once before the pass with the number of
	// distinct objects, so the feature can pre-allocate per-object
	// accumulator storage indexed by row.
	Initialize(nObjects int) error
	// ScanLine processes one line of label (and, if NeedsGreyValue, grey)
	// samples; idIndex maps an object id encountered in labelLine to its
	// measurement-table row index. position is the line's starting
	// coordinate, dimension is the processing dimension.
	ScanLine(labelLine, greyLine []float64, position []int, dimension int, idIndex map[uint64]int)
	// Finish is called once per object after the pass, writing this
	// feature's value columns for that object's row.
	Finish(objectIndex int, outValues []float64)
	// Cleanup releases any per-object accumulator storage.
	Cleanup()
}

// ImageBased features run once over the full label (and optional grey)
// image, writing directly into their column group of the measurement
// table via the supplied writer. idIndex maps an object id to its
// measurement-table row index.
type ImageBased interface {
	Base
	Measure(images *ObjectImages, idIndex map[uint64]int, writer ColumnWriter) error
}

// ChainCodeBased features compute their values from one object's chain
// code.
type ChainCodeBased interface {
	Base
	Measure(cc *measuregeom.ChainCode, outValues []float64)
}

// PolygonBased features compute their values from one object's polygon.
type PolygonBased interface {
	Base
	Measure(p *measuregeom.Polygon, outValues []float64)
}

// ConvexHullBased features compute their values from one object's convex
// hull.
type ConvexHullBased interface {
	Base
	Measure(h *measuregeom.ConvexHull, outValues []float64)
}

// Composite features are computed from other features' already-computed
// values; the engine topologically orders composites after their
// dependencies (spec.md §9).
type Composite interface {
	Base
	Dependencies() []string
	Compose(dependencyValues map[string][]float64, outValues []float64)
}

// ColumnWriter lets an ImageBased feature write into its column group of
// the measurement table without seeing the rest of the table.
type ColumnWriter interface {
	Set(objectIndex int, valueOffset int, v float64)
}

// ObjectImages bundles the label image with an optional grey-value
// co-image, passed to ImageBased.Measure.
type ObjectImages struct {
	Label *imgcore.Image
	Grey  *imgcore.Image // nil if the feature set needs no grey values
}
