// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package serialize writes a forged feature.Table out to a CSV file or a
// human-readable text report, per spec.md §6's external collaborator
// contract: this module never reads or writes files itself (no
// feature.Table constructor takes an io.Reader), it only gives a table's
// columns to whatever io.Writer the caller already has open. Grounded on
// etable/io.go's encoding/csv usage.
package serialize

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/emer/ndimage/feature"
)

// CSVOptions configures one WriteCSV call.
type CSVOptions struct {
	// Delim overrides the field separator when nonzero.
	Delim rune
	// Simple collapses the default three header rows (feature names, value
	// names, value units) into the single combined "Feature.Value" line
	// historically emitted by this writer.
	Simple bool
}

// WriteCSV writes t as comma-separated values, one row per measured object.
// By default it emits three header rows per spec.md: feature names, value
// names, and value units, each aligned under "ObjectID" plus one column per
// (feature, value) pair; opts.Simple instead emits a single combined
// "Feature.Value" header line with no units row.
func WriteCSV(w io.Writer, t *feature.Table, opts CSVOptions) error {
	cw := csv.NewWriter(w)
	if opts.Delim != 0 {
		cw.Comma = opts.Delim
	}
	headers := columnHeaders(t, opts.Simple)
	for _, header := range headers {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	rec := make([]string, len(headers[0]))
	for row := 0; row < t.NumObjects(); row++ {
		values := t.Row(row)
		rec[0] = strconv.FormatUint(t.ObjectID(row), 10)
		for i, v := range values {
			rec[i+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// columnHeaders returns the CSV header row(s): "ObjectID" followed by one
// entry per value column, in table column order. In simple mode that is a
// single "Feature.Value" row; otherwise it is three rows (feature names,
// value names, value units).
func columnHeaders(t *feature.Table, simple bool) [][]string {
	if simple {
		header := make([]string, 0, t.NumColumns()+1)
		header = append(header, "ObjectID")
		for _, name := range t.FeatureNames() {
			for _, vi := range t.ValueNames(name) {
				header = append(header, name+"."+vi.Name)
			}
		}
		return [][]string{header}
	}

	n := t.NumColumns() + 1
	featureRow := make([]string, 0, n)
	valueRow := make([]string, 0, n)
	unitsRow := make([]string, 0, n)
	featureRow = append(featureRow, "ObjectID")
	valueRow = append(valueRow, "")
	unitsRow = append(unitsRow, "")
	for _, name := range t.FeatureNames() {
		for _, vi := range t.ValueNames(name) {
			featureRow = append(featureRow, name)
			valueRow = append(valueRow, vi.Name)
			unitsRow = append(unitsRow, vi.Units.String())
		}
	}
	return [][]string{featureRow, valueRow, unitsRow}
}
