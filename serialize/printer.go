// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serialize

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/emer/ndimage/feature"
)

// Print writes t as a tab-aligned human-readable report, one line per
// object. text/tabwriter is stdlib: no pack dependency offers aligned
// text-table rendering, and encoding/csv (used for WriteCSV) only
// produces machine-readable output.
func Print(w io.Writer, t *feature.Table) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	header := columnHeaders(t, true)[0]
	if _, err := fmt.Fprintln(tw, tabJoin(header)); err != nil {
		return err
	}
	rec := make([]string, len(header))
	for row := 0; row < t.NumObjects(); row++ {
		values := t.Row(row)
		rec[0] = strconv.FormatUint(t.ObjectID(row), 10)
		for i, v := range values {
			rec[i+1] = strconv.FormatFloat(v, 'g', 4, 64)
		}
		if _, err := fmt.Fprintln(tw, tabJoin(rec)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func tabJoin(fields []string) string {
	out := fields[0]
	for _, f := range fields[1:] {
		out += "\t" + f
	}
	return out
}
