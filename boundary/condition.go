// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boundary implements the per-dimension boundary conditions of
// spec.md §3.3/§4.7: given border widths and conditions, extend an
// imgcore.Image so that the full framework and separable framework can read
// virtual samples outside the original domain.
package boundary

//go:generate core generate

// Condition selects how virtual samples outside an image's domain are
// synthesized.
type Condition int32 //enums:enum

const (
	// SymmetricMirror mirrors without repeating the edge sample:
	// out[-1] == in[0], out[-2] == in[1].
	SymmetricMirror Condition = iota
	// AsymmetricMirror mirrors the values about the edge sample (a point
	// reflection, suited to derivative-like filters):
	// out[-1] == 2*in[0] - in[1], out[-2] == 2*in[0] - in[2].
	AsymmetricMirror
	// Periodic wraps: out[-1] == in[S-1], out[S] == in[0].
	Periodic
	// AsymmetricPeriodic wraps with a sign/value inversion about the edge.
	AsymmetricPeriodic
	// Zero fills the border with zero.
	Zero
	// SaturateMax fills the border by repeating the last sample.
	SaturateMax
	// SaturateMin fills the border by repeating the first sample.
	SaturateMin
	// Poly0 through Poly3 extrapolate using a 0th-3rd order polynomial fit
	// to the samples nearest the edge.
	Poly0
	Poly1
	Poly2
	Poly3
	// AlreadyExpanded is a promise from the caller that the buffer is
	// already padded; the framework performs no extension.
	AlreadyExpanded
)
