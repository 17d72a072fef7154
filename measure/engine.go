// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package measure implements the measurement engine of spec.md §4.11: it
// drives registered features of all six kinds over a labeled image,
// producing one forged feature.Table row per object.
package measure

import (
	"sort"

	"github.com/emer/ndimage/errs"
	"github.com/emer/ndimage/feature"
	"github.com/emer/ndimage/framework"
	"github.com/emer/ndimage/imgcore"
	"github.com/emer/ndimage/imgtype"
	"github.com/emer/ndimage/measuregeom"
)

// Options configures one Measure call.
type Options struct {
	// ObjectIDs restricts measurement to these object ids; if nil, every
	// distinct nonzero label value is measured.
	ObjectIDs []uint64
	// Connectivity is 4 or 8, used by the chain-code extraction pass;
	// ignored if no chain-code/polygon/convex-hull feature is requested.
	Connectivity int
}

// Measure runs the measurement engine procedure of spec.md §4.11 over
// label (a scalar unsigned-integer image) and an optional grey-value
// co-image, computing the named requested features (which may include
// composites, whose dependencies are pulled in automatically).
func Measure(label, grey *imgcore.Image, requested []string, opts Options) (*feature.Table, error) {
	const op = "measure.Measure"

	if err := validateInputs(label, grey, op); err != nil {
		return nil, err
	}

	objectIDs := opts.ObjectIDs
	if objectIDs == nil {
		objectIDs = distinctLabels(label)
	}
	connectivity := opts.Connectivity
	if connectivity == 0 {
		connectivity = 8
	}

	order, insts, err := resolveFeatures(requested, grey != nil, label.NumDims(), op)
	if err != nil {
		return nil, err
	}

	var lineBased []feature.LineBased
	var imageBased []feature.ImageBased
	var chainBased []feature.ChainCodeBased
	var polyBased []feature.PolygonBased
	var hullBased []feature.ConvexHullBased
	var composites []string

	spatialUnit := imgtype.Dimensionless()
	if len(label.PixelSizes) > 0 {
		spatialUnit = label.PixelSizes[0].Units
	}

	table := feature.NewTable()
	for _, id := range objectIDs {
		if err := table.AddObject(id); err != nil {
			return nil, err
		}
	}
	for _, name := range order {
		f := insts[name]
		if err := table.AddFeature(name, feature.DeriveUnits(f.ValueInfo(), spatialUnit)); err != nil {
			return nil, err
		}
		switch v := f.(type) {
		case feature.LineBased:
			lineBased = append(lineBased, v)
		case feature.ImageBased:
			imageBased = append(imageBased, v)
		case feature.ChainCodeBased:
			chainBased = append(chainBased, v)
		case feature.PolygonBased:
			polyBased = append(polyBased, v)
		case feature.ConvexHullBased:
			hullBased = append(hullBased, v)
		case feature.Composite:
			composites = append(composites, name)
		default:
			return nil, errs.New(errs.NotImplemented, "%s: feature %q implements no known kind", op, name).Push(op)
		}
	}
	if err := table.Forge(); err != nil {
		return nil, err
	}

	idIndex := make(map[uint64]int, len(objectIDs))
	for _, id := range objectIDs {
		row, _ := table.RowOf(id)
		idIndex[id] = row
	}

	if err := runLineBasedPass(label, grey, lineBased, idIndex, table); err != nil {
		return nil, err
	}
	if err := runImageBasedPass(label, grey, imageBased, idIndex, table); err != nil {
		return nil, err
	}
	if len(chainBased) > 0 || len(polyBased) > 0 || len(hullBased) > 0 {
		if err := runGeometryPass(label, objectIDs, connectivity, chainBased, polyBased, hullBased, table); err != nil {
			return nil, err
		}
	}
	if len(composites) > 0 {
		runCompositePass(composites, insts, table)
	}

	for _, lf := range lineBased {
		lf.Cleanup()
	}

	return table, nil
}

func validateInputs(label, grey *imgcore.Image, op string) error {
	if !label.IsForged() {
		return errs.New(errs.NotForged, "%s: label image is not forged", op).Push(op)
	}
	if label.TensorElements() != 1 {
		return errs.New(errs.NotScalar, "%s: label image must be scalar", op).Push(op)
	}
	if !label.Type.IsInteger() || !label.Type.IsUnsigned() {
		return errs.New(errs.WrongDataType, "%s: label image must be unsigned integer", op).Push(op)
	}
	if grey != nil {
		if !grey.Type.IsReal() {
			return errs.New(errs.WrongDataType, "%s: grey image must be real-valued", op).Push(op)
		}
		if !imgcore.EqualInts(grey.Sizes, label.Sizes) {
			return errs.New(errs.SizesDontMatch, "%s: grey image sizes %v != label sizes %v", op, grey.Sizes, label.Sizes).Push(op)
		}
	}
	return nil
}

// distinctLabels scans label for every distinct nonzero value, sorted
// ascending for a deterministic object order.
func distinctLabels(label *imgcore.Image) []uint64 {
	seen := make(map[uint64]bool)
	n := label.Shape.Len()
	for i := 0; i < n; i++ {
		c := label.Coord(i)
		v := uint64(label.At(c, 0))
		if v != 0 {
			seen[v] = true
		}
	}
	ids := make([]uint64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// resolveFeatures constructs an instance of every requested feature and
// transitively pulls in composite dependencies, returning a dependency-
// respecting order (dependencies appear before their dependents) that
// otherwise preserves request order, per spec.md §4.11 step 2.
func resolveFeatures(requested []string, hasGrey bool, nDims int, op string) ([]string, map[string]feature.Base, error) {
	insts := make(map[string]feature.Base)
	var order []string
	var visit func(name string, stack map[string]bool) error
	visit = func(name string, stack map[string]bool) error {
		if _, ok := insts[name]; ok {
			return nil
		}
		if stack[name] {
			return errs.New(errs.InvalidParameter, "%s: circular composite dependency at %q", op, name).Push(op)
		}
		f, err := feature.New(name, nDims)
		if err != nil {
			return err
		}
		if f.NeedsGreyValue() && !hasGrey {
			return errs.New(errs.InvalidParameter, "%s: feature %q needs a grey-value image, none given", op, name).Push(op)
		}
		if comp, ok := f.(feature.Composite); ok {
			stack[name] = true
			for _, dep := range comp.Dependencies() {
				if err := visit(dep, stack); err != nil {
					return err
				}
			}
			delete(stack, name)
		}
		insts[name] = f
		order = append(order, name)
		return nil
	}
	for _, name := range requested {
		if err := visit(name, map[string]bool{}); err != nil {
			return nil, nil, err
		}
	}
	return order, insts, nil
}

func runLineBasedPass(label, grey *imgcore.Image, lineBased []feature.LineBased, idIndex map[uint64]int, table *feature.Table) error {
	const op = "measure.runLineBasedPass"
	if len(lineBased) == 0 {
		return nil
	}
	for _, lf := range lineBased {
		if err := lf.Initialize(table.NumObjects()); err != nil {
			return err
		}
	}
	ins := []*imgcore.Image{label}
	if grey != nil {
		ins = append(ins, grey)
	}
	filter := &lineFilter{features: lineBased, idIndex: idIndex, hasGrey: grey != nil}
	if err := framework.Scan(ins, nil, filter, framework.ScanOptions{}); err != nil {
		return errs.Wrap(errs.NotImplemented, err, "%s", op).Push(op)
	}
	for _, lf := range lineBased {
		name := featureNameOf(lf)
		values := lf.ValueInfo()
		buf := make([]float64, len(values))
		for row := 0; row < table.NumObjects(); row++ {
			for i := range buf {
				buf[i] = 0
			}
			lf.Finish(row, buf)
			for v := range values {
				if err := table.Set(name, row, v, buf[v]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func runImageBasedPass(label, grey *imgcore.Image, imageBased []feature.ImageBased, idIndex map[uint64]int, table *feature.Table) error {
	if len(imageBased) == 0 {
		return nil
	}
	images := &feature.ObjectImages{Label: label, Grey: grey}
	for _, ifeat := range imageBased {
		name := featureNameOf(ifeat)
		w := &tableWriter{table: table, feature: name}
		if err := ifeat.Measure(images, idIndex, w); err != nil {
			return err
		}
	}
	return nil
}

func runGeometryPass(label *imgcore.Image, objectIDs []uint64, connectivity int,
	chainBased []feature.ChainCodeBased, polyBased []feature.PolygonBased, hullBased []feature.ConvexHullBased,
	table *feature.Table) error {
	codes, err := extractChainCodes(label, objectIDs, connectivity)
	if err != nil {
		return err
	}
	for _, id := range objectIDs {
		row, _ := table.RowOf(id)
		cc, ok := codes[id]
		if !ok {
			continue
		}
		var poly *measuregeom.Polygon
		var hull *measuregeom.ConvexHull
		if len(polyBased) > 0 || len(hullBased) > 0 {
			poly = cc.Polygon()
		}
		if len(hullBased) > 0 {
			hull = measuregeom.ConvexHullOf(poly.Vertices)
		}
		for _, cf := range chainBased {
			name := featureNameOf(cf)
			values := make([]float64, len(cf.ValueInfo()))
			cf.Measure(cc, values)
			for v := range values {
				if err := table.Set(name, row, v, values[v]); err != nil {
					return err
				}
			}
		}
		for _, pf := range polyBased {
			name := featureNameOf(pf)
			values := make([]float64, len(pf.ValueInfo()))
			pf.Measure(poly, values)
			for v := range values {
				if err := table.Set(name, row, v, values[v]); err != nil {
					return err
				}
			}
		}
		for _, hf := range hullBased {
			name := featureNameOf(hf)
			values := make([]float64, len(hf.ValueInfo()))
			hf.Measure(hull, values)
			for v := range values {
				if err := table.Set(name, row, v, values[v]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func runCompositePass(composites []string, insts map[string]feature.Base, table *feature.Table) {
	for row := 0; row < table.NumObjects(); row++ {
		for _, name := range composites {
			comp := insts[name].(feature.Composite)
			deps := make(map[string][]float64, len(comp.Dependencies()))
			for _, dep := range comp.Dependencies() {
				vn := table.ValueNames(dep)
				vals := make([]float64, len(vn))
				for v := range vn {
					vals[v], _ = table.At(dep, row, v)
				}
				deps[dep] = vals
			}
			out := make([]float64, len(comp.ValueInfo()))
			comp.Compose(deps, out)
			for v := range out {
				_ = table.Set(name, row, v, out[v])
			}
		}
	}
}

func featureNameOf(f feature.Base) string { return f.Name() }
