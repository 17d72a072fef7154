// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"math"

	"github.com/emer/ndimage/errs"
)

// column records where one feature's values live in the dense matrix.
type column struct {
	start  int
	values []ValueInfo
}

// Table is the measurement table of spec.md §3.4: one row per measured
// object, one column group per feature. Objects and feature columns are
// added before the table is forged; Forge allocates the single dense
// rows x columns matrix that Set/At then index into, mirroring
// etable.Table's ColNames/ColNameMap/Cols -- generalized here to a single
// backing matrix (spec.md calls for "one forging" rather than per-column
// tensors) because every value is the same float64 type.
type Table struct {
	objectIDs  []uint64
	objectRow  map[uint64]int
	features   []string
	featureCol map[string]column
	forged     bool
	numCols    int
	data       []float64 // row-major, row stride == numCols
}

// NewTable returns an empty, unforged measurement table.
func NewTable() *Table {
	return &Table{
		objectRow:  make(map[uint64]int),
		featureCol: make(map[string]column),
	}
}

// AddObject registers an object id as a row, in encounter order. It is an
// error to add the same id twice, or to add an object after Forge.
func (t *Table) AddObject(id uint64) error {
	const op = "feature.Table.AddObject"
	if t.forged {
		return errs.New(errs.MeasurementForged, "%s: table already forged", op).Push(op)
	}
	if _, ok := t.objectRow[id]; ok {
		return errs.New(errs.ObjectAlreadyPresent, "%s: object %d already present", op, id).Push(op)
	}
	t.objectRow[id] = len(t.objectIDs)
	t.objectIDs = append(t.objectIDs, id)
	return nil
}

// AddFeature registers a feature's value columns, in encounter order. It
// is an error to add the same feature name twice, or to add a feature
// after Forge.
func (t *Table) AddFeature(name string, values []ValueInfo) error {
	const op = "feature.Table.AddFeature"
	if t.forged {
		return errs.New(errs.MeasurementForged, "%s: table already forged", op).Push(op)
	}
	if _, ok := t.featureCol[name]; ok {
		return errs.New(errs.FeatureAlreadyPresent, "%s: feature %q already present", op, name).Push(op)
	}
	t.featureCol[name] = column{start: t.numCols, values: values}
	t.features = append(t.features, name)
	t.numCols += len(values)
	return nil
}

// Forge allocates the dense rows x columns backing matrix. No further
// objects or features can be added afterward.
func (t *Table) Forge() error {
	const op = "feature.Table.Forge"
	if t.forged {
		return errs.New(errs.MeasurementForged, "%s: table already forged", op).Push(op)
	}
	t.data = make([]float64, len(t.objectIDs)*t.numCols)
	t.forged = true
	return nil
}

// NumObjects returns the number of object rows.
func (t *Table) NumObjects() int { return len(t.objectIDs) }

// NumFeatures returns the number of feature column groups.
func (t *Table) NumFeatures() int { return len(t.features) }

// NumColumns returns the total number of scalar value columns.
func (t *Table) NumColumns() int { return t.numCols }

// ObjectID returns the id of the object at the given row index.
func (t *Table) ObjectID(row int) uint64 { return t.objectIDs[row] }

// RowOf returns the row index of the object with the given id.
func (t *Table) RowOf(id uint64) (int, bool) {
	row, ok := t.objectRow[id]
	return row, ok
}

// FeatureNames returns the names of the registered features, in the order
// they were added.
func (t *Table) FeatureNames() []string { return append([]string(nil), t.features...) }

// ValueNames returns the value-column infos for the given feature.
func (t *Table) ValueNames(feature string) []ValueInfo {
	return t.featureCol[feature].values
}

// Set writes one scalar value into the table. objectRow is an object's
// row index (see RowOf); valueOffset indexes within the named feature's
// value columns.
func (t *Table) Set(feature string, objectRow, valueOffset int, v float64) error {
	const op = "feature.Table.Set"
	if !t.forged {
		return errs.New(errs.MeasurementNotForged, "%s: table not yet forged", op).Push(op)
	}
	col, ok := t.featureCol[feature]
	if !ok {
		return errs.New(errs.FeatureNotPresent, "%s: feature %q not present", op, feature).Push(op)
	}
	if valueOffset < 0 || valueOffset >= len(col.values) {
		return errs.New(errs.IndexOutOfRange, "%s: value offset %d out of range for feature %q", op, valueOffset, feature).Push(op)
	}
	t.data[objectRow*t.numCols+col.start+valueOffset] = v
	return nil
}

// At reads one scalar value back.
func (t *Table) At(feature string, objectRow, valueOffset int) (float64, error) {
	const op = "feature.Table.At"
	if !t.forged {
		return 0, errs.New(errs.MeasurementNotForged, "%s: table not yet forged", op).Push(op)
	}
	col, ok := t.featureCol[feature]
	if !ok {
		return 0, errs.New(errs.FeatureNotPresent, "%s: feature %q not present", op, feature).Push(op)
	}
	if valueOffset < 0 || valueOffset >= len(col.values) {
		return 0, errs.New(errs.IndexOutOfRange, "%s: value offset %d out of range for feature %q", op, valueOffset, feature).Push(op)
	}
	return t.data[objectRow*t.numCols+col.start+valueOffset], nil
}

// Row returns the full values slice for one object, in column order; the
// slice aliases the table's backing storage and must not be retained
// across a Forge.
func (t *Table) Row(objectRow int) []float64 {
	return t.data[objectRow*t.numCols : (objectRow+1)*t.numCols]
}

// Union merges two forged tables into a new table carrying the union of
// their object rows and the union of their feature columns, per spec.md
// §3.4's "+" operator: rows present in only one table, or features present
// in only one table, get their missing cells filled with NaN rather than
// rejecting the union. A feature name present in both tables is merged into
// a single column group; the two tables' value counts for that name must
// agree (the values themselves need not -- a's value wins for rows a
// covers, falling back to b's value for rows only b covers).
func Union(a, b *Table) (*Table, error) {
	const op = "feature.Union"
	if !a.forged || !b.forged {
		return nil, errs.New(errs.MeasurementNotForged, "%s: both tables must be forged", op).Push(op)
	}

	ids := append([]uint64(nil), a.objectIDs...)
	for _, id := range b.objectIDs {
		if _, ok := a.objectRow[id]; !ok {
			ids = append(ids, id)
		}
	}

	names := append([]string(nil), a.features...)
	for _, name := range b.features {
		if _, ok := a.featureCol[name]; !ok {
			names = append(names, name)
		}
	}
	values := make(map[string][]ValueInfo, len(names))
	for _, name := range names {
		ca, inA := a.featureCol[name]
		cb, inB := b.featureCol[name]
		switch {
		case inA && inB:
			if len(ca.values) != len(cb.values) {
				return nil, errs.New(errs.SizesDontMatch, "%s: feature %q value count differs (%d vs %d)", op, name, len(ca.values), len(cb.values)).Push(op)
			}
			values[name] = ca.values
		case inA:
			values[name] = ca.values
		default:
			values[name] = cb.values
		}
	}

	u := NewTable()
	for _, id := range ids {
		if err := u.AddObject(id); err != nil {
			return nil, err
		}
	}
	for _, name := range names {
		if err := u.AddFeature(name, values[name]); err != nil {
			return nil, err
		}
	}
	if err := u.Forge(); err != nil {
		return nil, err
	}
	for i := range u.data {
		u.data[i] = math.NaN()
	}

	for _, name := range names {
		nv := len(values[name])
		for row, id := range ids {
			if aRow, ok := a.objectRow[id]; ok {
				if _, inA := a.featureCol[name]; inA {
					for v := 0; v < nv; v++ {
						val, _ := a.At(name, aRow, v)
						_ = u.Set(name, row, v, val)
					}
					continue
				}
			}
			if bRow, ok := b.objectRow[id]; ok {
				if _, inB := b.featureCol[name]; inB {
					for v := 0; v < nv; v++ {
						val, _ := b.At(name, bRow, v)
						_ = u.Set(name, row, v, val)
					}
				}
			}
		}
	}
	return u, nil
}
