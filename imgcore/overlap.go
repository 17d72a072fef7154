// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgcore

// addrRange is a half-open byte address range used for the conservative
// overlap check frameworks use to decide whether an in-place pass over an
// image is hazardous (spec.md §4.1).
type addrRange struct{ start, end uintptr }

func (r addrRange) overlaps(o addrRange) bool {
	if r.start == r.end || o.start == o.end {
		return false
	}
	return r.start < o.end && o.start < r.end
}

func bufferAddr(b Buffer) (addrRange, bool) {
	start, end := b.AddrRange()
	if start == 0 && end == 0 {
		return addrRange{}, false
	}
	return addrRange{start, end}, true
}
