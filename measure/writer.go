// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import "github.com/emer/ndimage/feature"

// tableWriter adapts one feature's column group of a feature.Table to the
// feature.ColumnWriter contract image-based features write through.
type tableWriter struct {
	table   *feature.Table
	feature string
}

func (w *tableWriter) Set(objectIndex, valueOffset int, v float64) {
	_ = w.table.Set(w.feature, objectIndex, valueOffset, v)
}
