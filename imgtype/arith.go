// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgtype

import (
	"math"

	"github.com/chewxy/math32"
)

// Range returns the representable [min, max] of an integer SampleType as
// float64, used by saturating conversions. Float/complex types return
// +/-Inf (no saturation).
func (t SampleType) Range() (min, max float64) {
	switch t {
	case Bin:
		return 0, 1
	case UInt8:
		return 0, math.MaxUint8
	case SInt8:
		return math.MinInt8, math.MaxInt8
	case UInt16:
		return 0, math.MaxUint16
	case SInt16:
		return math.MinInt16, math.MaxInt16
	case UInt32:
		return 0, math.MaxUint32
	case SInt32:
		return math.MinInt32, math.MaxInt32
	}
	return math.Inf(-1), math.Inf(1)
}

// Clamp saturates v into t's representable range (a no-op for float/complex
// types). NaN is passed through unchanged since the caller's format decides
// how to render missing data.
func (t SampleType) Clamp(v float64) float64 {
	if math.IsNaN(v) || !t.IsInteger() {
		return v
	}
	lo, hi := t.Range()
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FromF64 converts a float64 value to this type's natural rounded/clamped
// representation, still returned as float64 (the caller writes it into the
// type-appropriate buffer slot). This is the "from_f64" half of the
// typeclass spec.md §9 calls for.
func (t SampleType) FromF64(v float64) float64 {
	if t.IsInteger() {
		return t.Clamp(math.Round(v))
	}
	if t == SFloat32 {
		return float64(math32.Float32(v))
	}
	return v
}

// ToF64 is the identity conversion used when reading a sample back out as
// float64 for generic numeric code (accumulators, composite features).
// Provided for symmetry with FromF64; integer/float samples are already
// stored as float64 in the generic Buffer.At path (imgcore), so this is a
// pass-through documented for discoverability.
func (t SampleType) ToF64(v float64) float64 { return v }

// WidenFloat32IsNaN reports whether v (an SFloat32 sample) is NaN using the float32 definition of NaN, matching the source library's
// float32 code paths exactly rather than promoting through float64 equality
// rules. Mirrors norm/stats.go's use of math32.IsNaN on the float32 path.
func WidenFloat32IsNaN(v float32) bool { return math32.IsNaN(v) }
