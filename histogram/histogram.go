// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package histogram computes n-D, multi-channel histograms from an image
// (or a measurement column) per spec.md §4.9. Adapted from
// histogram/histogram.go's F64/F32 single-channel binning: the bin-count
// loop and out-of-range handling are the same idiom, generalized to
// multiple channels (one bin axis per tensor element, flattened row-major)
// and the four bound/size/count resolution modes.
package histogram

import (
	"sort"

	"github.com/emer/ndimage/errs"
	"github.com/emer/ndimage/imgcore"
	"github.com/emer/ndimage/imgtype"
)

//go:generate core generate

// Mode selects which one of a channel's {bin size, bin count, lower bound,
// upper bound} is derived from the other three, per spec.md §4.9.
type Mode int32 //enums:enum

const (
	ComputeBinSize Mode = iota
	ComputeBinCount
	ComputeLowerBound
	ComputeUpperBound
)

// ChannelConfig configures one channel (tensor element, or the sole
// channel for a scalar image) of a histogram.
type ChannelConfig struct {
	Mode               Mode
	BinSize            float64
	BinCount           int
	LowerBound         float64
	UpperBound         float64
	LowerIsPercentile  bool
	UpperIsPercentile  bool
	ExcludeOutOfBounds bool
}

// DefaultChannelConfig returns the default configuration for t per spec.md
// §4.9: 8-bit integer -> 256 bins covering the full type range; other
// integer -> up to 256 bins, power-of-two bin size spanning the data
// range; floating point -> 256 bins spanning the data range. data, if
// non-empty, is used to compute the data-spanning defaults.
func DefaultChannelConfig(t imgtype.SampleType, data []float64) ChannelConfig {
	if t == imgtype.UInt8 || t == imgtype.SInt8 {
		lo, hi := t.Range()
		return ChannelConfig{Mode: ComputeBinSize, BinCount: 256, LowerBound: lo, UpperBound: hi + 1}
	}
	lo, hi := dataRange(data)
	if t.IsFloat() || t.IsComplex() {
		return ChannelConfig{Mode: ComputeBinSize, BinCount: 256, LowerBound: lo, UpperBound: hi}
	}
	span := hi - lo
	binSize := 1.0
	for binSize*256 < span {
		binSize *= 2
	}
	count := int(span/binSize) + 1
	if count > 256 {
		count = 256
	}
	return ChannelConfig{Mode: ComputeBinCount, BinSize: binSize, LowerBound: lo, UpperBound: lo + binSize*float64(count)}
}

func dataRange(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 1
	}
	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}

// resolve fills in the field selected by cfg.Mode from the other three.
func resolve(cfg ChannelConfig, values []float64) (binSize float64, binCount int, lower, upper float64, err error) {
	const op = "histogram.resolve"
	lower, upper = cfg.LowerBound, cfg.UpperBound
	if cfg.LowerIsPercentile {
		lower = percentile(values, cfg.LowerBound)
	}
	if cfg.UpperIsPercentile {
		upper = percentile(values, cfg.UpperBound)
	}
	switch cfg.Mode {
	case ComputeBinSize:
		if cfg.BinCount <= 0 {
			return 0, 0, 0, 0, errs.New(errs.InvalidParameter, "%s: bin count must be positive", op).Push(op)
		}
		binCount = cfg.BinCount
		binSize = (upper - lower) / float64(binCount)
	case ComputeBinCount:
		if cfg.BinSize <= 0 {
			return 0, 0, 0, 0, errs.New(errs.InvalidParameter, "%s: bin size must be positive", op).Push(op)
		}
		binSize = cfg.BinSize
		binCount = int((upper-lower)/binSize + 0.5)
		if binCount < 1 {
			binCount = 1
		}
	case ComputeLowerBound:
		binSize, binCount = cfg.BinSize, cfg.BinCount
		lower = upper - binSize*float64(binCount)
	case ComputeUpperBound:
		binSize, binCount = cfg.BinSize, cfg.BinCount
		upper = lower + binSize*float64(binCount)
	default:
		return 0, 0, 0, 0, errs.New(errs.InvalidParameter, "%s: unknown mode", op).Push(op)
	}
	return binSize, binCount, lower, upper, nil
}

func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	idx := int(p / 100 * float64(len(sorted)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Histogram is the n-dimensional (one dimension per channel) result: Counts
// is a flat row-major array of length the product of BinCounts, Lower/
// BinSize describe each channel's binning.
type Histogram struct {
	Channels  int
	BinCounts []int
	Lower     []float64
	BinSize   []float64
	Counts    []float64
}

// index returns the flat bin index for the given per-channel bin
// coordinates, or -1 if any channel's bin is out of range.
func (h *Histogram) index(bins []int) int {
	idx := 0
	for c := 0; c < h.Channels; c++ {
		if bins[c] < 0 || bins[c] >= h.BinCounts[c] {
			return -1
		}
		idx = idx*h.BinCounts[c] + bins[c]
	}
	return idx
}

// FromImage computes a histogram of img (optionally restricted to samples
// where mask is nonzero), one channel per tensor element, using cfgs (one
// ChannelConfig per tensor element; if cfgs is nil, DefaultChannelConfig is
// used per channel from the image's sample type and observed data range).
func FromImage(img *imgcore.Image, mask *imgcore.Image, cfgs []ChannelConfig) (*Histogram, error) {
	const op = "histogram.FromImage"
	channels := img.TensorElements()
	if cfgs != nil && len(cfgs) != channels {
		return nil, errs.New(errs.ArrayParameterWrongLength, "%s: %d configs for %d channels", op, len(cfgs), channels).Push(op)
	}
	n := img.Shape.Len()
	perChannel := make([][]float64, channels)
	for c := range perChannel {
		perChannel[c] = make([]float64, 0, n)
	}
	for i := 0; i < n; i++ {
		c := img.Coord(i)
		if mask != nil && mask.At(c, 0) == 0 {
			continue
		}
		for k := 0; k < channels; k++ {
			perChannel[k] = append(perChannel[k], img.At(c, k))
		}
	}

	h := &Histogram{Channels: channels, BinCounts: make([]int, channels), Lower: make([]float64, channels), BinSize: make([]float64, channels)}
	resolved := make([]ChannelConfig, channels)
	for k := 0; k < channels; k++ {
		cfg := DefaultChannelConfig(img.Type, perChannel[k])
		if cfgs != nil {
			cfg = cfgs[k]
		}
		binSize, binCount, lower, _, err := resolve(cfg, perChannel[k])
		if err != nil {
			return nil, err
		}
		h.BinSize[k], h.BinCounts[k], h.Lower[k] = binSize, binCount, lower
		resolved[k] = cfg
	}
	total := 1
	for _, c := range h.BinCounts {
		total *= c
	}
	h.Counts = make([]float64, total)

	bins := make([]int, channels)
	for i := 0; i < n; i++ {
		c := img.Coord(i)
		if mask != nil && mask.At(c, 0) == 0 {
			continue
		}
		oob := false
		for k := 0; k < channels; k++ {
			v := img.At(c, k)
			bin := int((v - h.Lower[k]) / h.BinSize[k])
			if bin < 0 {
				bin = 0
				if resolved[k].ExcludeOutOfBounds {
					oob = true
				}
			}
			if bin >= h.BinCounts[k] {
				bin = h.BinCounts[k] - 1
				if resolved[k].ExcludeOutOfBounds {
					oob = true
				}
			}
			bins[k] = bin
		}
		if oob {
			continue
		}
		if idx := h.index(bins); idx >= 0 {
			h.Counts[idx]++
		}
	}
	return h, nil
}

// FromValues computes a 1-channel histogram from a plain value slice (e.g.
// one measurement column), per spec.md §4.9's "from one measurement
// column" source.
func FromValues(values []float64, cfg ChannelConfig) (*Histogram, error) {
	binSize, binCount, lower, _, err := resolve(cfg, values)
	if err != nil {
		return nil, err
	}
	h := &Histogram{Channels: 1, BinCounts: []int{binCount}, Lower: []float64{lower}, BinSize: []float64{binSize}, Counts: make([]float64, binCount)}
	for _, v := range values {
		bin := int((v - lower) / binSize)
		if bin < 0 {
			if cfg.ExcludeOutOfBounds {
				continue
			}
			bin = 0
		}
		if bin >= binCount {
			if cfg.ExcludeOutOfBounds {
				continue
			}
			bin = binCount - 1
		}
		h.Counts[bin]++
	}
	return h, nil
}
