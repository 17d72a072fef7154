// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"github.com/emer/ndimage/feature"
	"github.com/emer/ndimage/framework"
)

// lineFilter drives the line-based pass (spec.md §4.11 step 4) as a
// framework.LineFilter: each call to Filter hands the label (and, if
// present, grey) line to every requested line-based feature's ScanLine.
// Grounded on framework/filter.go's Params contract -- this is the one
// concrete LineFilter implementation the measurement engine needs, the
// same way a concrete convolution kernel would implement it for pixel
// processing.
type lineFilter struct {
	features []feature.LineBased
	idIndex  map[uint64]int
	hasGrey  bool
}

func (f *lineFilter) SetThreadCount(n int) error { return nil }

func (f *lineFilter) Filter(p *framework.Params) error {
	labelLine := p.In[0]
	var greyLine []float64
	if f.hasGrey {
		greyLine = p.In[1]
	}
	for _, lf := range f.features {
		lf.ScanLine(labelLine, greyLine, p.Position, p.Dim, f.idIndex)
	}
	return nil
}
