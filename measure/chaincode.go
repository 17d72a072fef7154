// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"github.com/emer/ndimage/errs"
	"github.com/emer/ndimage/imgcore"
	"github.com/emer/ndimage/measuregeom"
)

// maxChainCodeSteps bounds a single boundary trace against a malformed or
// disconnected label (e.g. a labeled region with a hole whose trace would
// otherwise never return to the start pixel).
const maxChainCodeSteps = 1 << 20

// startPixels scans a 2-D label image in row-major order and returns, for
// each requested id, the first pixel encountered -- which is exactly the
// topmost, then leftmost, pixel of that object, the canonical chain-code
// start point.
func startPixels(label *imgcore.Image, ids []uint64) map[uint64][2]int {
	want := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	starts := make(map[uint64][2]int, len(ids))
	h, w := label.Sizes[0], label.Sizes[1]
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint64(label.At([]int{y, x}, 0))
			if v == 0 || !want[v] {
				continue
			}
			if _, ok := starts[v]; !ok {
				starts[v] = [2]int{x, y}
			}
		}
	}
	return starts
}

// traceChainCode performs Moore-neighbor boundary tracing (Jacob's
// stopping criterion, simplified to "return to the start pixel") around
// one connected component of label matching id, starting at (x0,y0),
// which must be the topmost-then-leftmost pixel of the object so the
// pixel immediately to its west is guaranteed background.
//
// connectivity is 4 or 8; 4-connected tracing restricts the neighbor
// search to the cardinal directions (E, N, W, S), producing a blockier
// boundary that never steps diagonally.
func traceChainCode(label *imgcore.Image, id uint64, x0, y0, connectivity int) *measuregeom.ChainCode {
	h, w := label.Sizes[0], label.Sizes[1]
	at := func(x, y int) bool {
		if x < 0 || x >= w || y < 0 || y >= h {
			return false
		}
		return uint64(label.At([]int{y, x}, 0)) == id
	}

	var searchOrder []measuregeom.Direction
	if connectivity == 4 {
		searchOrder = []measuregeom.Direction{0, 2, 4, 6}
	} else {
		searchOrder = []measuregeom.Direction{0, 1, 2, 3, 4, 5, 6, 7}
	}
	indexOf := func(d measuregeom.Direction) int {
		for i, s := range searchOrder {
			if s == d {
				return i
			}
		}
		return 0
	}
	n := len(searchOrder)

	cx, cy := x0, y0
	back := measuregeom.Direction(4) // W: guaranteed background at the start pixel
	var codes []measuregeom.Direction
	for step := 0; step < maxChainCodeSteps; step++ {
		start := (indexOf(back) + 1) % n
		found := false
		var nd measuregeom.Direction
		for i := 0; i < n; i++ {
			d := searchOrder[(start+i)%n]
			nx, ny := cx+d.Dx(), cy+d.Dy()
			if at(nx, ny) {
				nd = d
				found = true
				break
			}
		}
		if !found {
			break // isolated single pixel, no boundary to walk
		}
		codes = append(codes, nd)
		back = (nd + 4) % 8
		cx, cy = cx+nd.Dx(), cy+nd.Dy()
		if cx == x0 && cy == y0 {
			break
		}
	}
	return &measuregeom.ChainCode{StartX: x0, StartY: y0, Codes: codes, ObjectID: id}
}

// extractChainCodes extracts chain codes for every id in ids from a 2-D
// label image, per spec.md §4.11 step 6.
func extractChainCodes(label *imgcore.Image, ids []uint64, connectivity int) (map[uint64]*measuregeom.ChainCode, error) {
	const op = "measure.extractChainCodes"
	if label.NumDims() != 2 {
		return nil, errs.New(errs.DimensionalityNotSupported, "%s: chain codes require a 2-D label image, got %d-D", op, label.NumDims()).Push(op)
	}
	starts := startPixels(label, ids)
	out := make(map[uint64]*measuregeom.ChainCode, len(ids))
	for _, id := range ids {
		p, ok := starts[id]
		if !ok {
			continue // requested object id not present in the label image
		}
		out[id] = traceChainCode(label, id, p[0], p[1], connectivity)
	}
	return out, nil
}
