// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

import (
	"sort"

	"github.com/emer/ndimage/errs"
	"github.com/emer/ndimage/imgcore"
)

// Joint coordinates N images of compatible shape, per spec.md §4.2. Once
// Optimize or OptimizeAndFlatten has been applied, coordinate values no
// longer correspond to the original images' coordinates -- callers that
// need original coordinates must keep the pre-optimization Joint around, or
// track ProcessDim (expressed in whichever coordinate space is current).
type Joint struct {
	Images     []*imgcore.Image
	ProcessDim int // -1 if none; index into Images[i].Sizes, same for all images
}

// NewJoint groups imgs (already checked by the caller to share the same
// Sizes) into a Joint with the given processing dimension (-1 for none).
func NewJoint(imgs []*imgcore.Image, processDim int) (*Joint, error) {
	const op = "iter.NewJoint"
	if len(imgs) == 0 {
		return nil, errs.New(errs.ArrayParameterEmpty, "%s: no images", op).Push(op)
	}
	nd := imgs[0].NumDims()
	for _, im := range imgs {
		if im.NumDims() != nd || !imgcore.EqualInts(im.Sizes, imgs[0].Sizes) {
			return nil, errs.New(errs.SizesDontMatch, "%s: joint images must share sizes", op).Push(op)
		}
	}
	if processDim >= nd {
		return nil, imgcore.ErrIllegalDimension(op, processDim, nd)
	}
	return &Joint{Images: imgs, ProcessDim: processDim}, nil
}

// anchorOrder returns the permutation (new dim j -> old dim anchorOrder[j])
// that sorts anchor's dimensions by ascending stride magnitude, tie-breaking
// larger size first then stable original order (spec.md §9 open question,
// applied uniformly to Optimize as well as OptimizeAndFlatten for a single
// consistent rule).
func anchorOrder(anchor *imgcore.Image) []int {
	nd := anchor.NumDims()
	order := make([]int, nd)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		da, db := order[a], order[b]
		sa, sb := abs(anchor.Strides[da]), abs(anchor.Strides[db])
		if sa != sb {
			return sa < sb
		}
		return anchor.Sizes[da] > anchor.Sizes[db]
	})
	return order
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Optimize reorders and flips dimensions, consistently across every image
// in j, to match the storage order of Images[anchorIdx]: dimensions are
// sorted by the anchor's ascending stride magnitude, and any dimension
// where the anchor's stride is negative is flipped in every image. Returns
// a new Joint (the originals are untouched) and the permutation applied
// (new dim i came from old dim perm[i]).
func (j *Joint) Optimize(anchorIdx int) (*Joint, []int, error) {
	const op = "iter.Joint.Optimize"
	if anchorIdx < 0 || anchorIdx >= len(j.Images) {
		return nil, nil, errs.New(errs.IndexOutOfRange, "%s: anchor index %d out of range", op, anchorIdx).Push(op)
	}
	anchor := j.Images[anchorIdx]
	order := anchorOrder(anchor)
	flipSign := make([]bool, len(order))
	for newI, oldI := range order {
		flipSign[newI] = anchor.Strides[oldI] < 0
	}

	out := make([]*imgcore.Image, len(j.Images))
	for i, im := range j.Images {
		permuted, err := im.Permute(order)
		if err != nil {
			return nil, nil, err
		}
		for d, flip := range flipSign {
			if !flip {
				continue
			}
			permuted, err = permuted.Flip(d)
			if err != nil {
				return nil, nil, err
			}
		}
		out[i] = permuted
	}

	newProcessDim := -1
	if j.ProcessDim >= 0 {
		for newI, oldI := range order {
			if oldI == j.ProcessDim {
				newProcessDim = newI
				break
			}
		}
	}
	return &Joint{Images: out, ProcessDim: newProcessDim}, order, nil
}

// OptimizeAndFlatten applies Optimize, then merges adjacent dimensions
// whose strides compose (σ[d]·S[d] == σ[d+1] in every image) except it
// never merges across j's ProcessDim, per spec.md §4.2.
func (j *Joint) OptimizeAndFlatten(anchorIdx int) (*Joint, []int, error) {
	opt, order, err := j.Optimize(anchorIdx)
	if err != nil {
		return nil, nil, err
	}
	for {
		merged, _, ok := tryMergeOnce(opt)
		if !ok {
			return opt, order, nil
		}
		opt = merged
	}
}

// tryMergeOnce scans for the first pair of adjacent dimensions (d, d+1)
// that compose consistently across every image and are not separated by
// ProcessDim, and merges them. Returns the merged Joint and the low index
// of the merged pair.
func tryMergeOnce(j *Joint) (*Joint, int, bool) {
	if len(j.Images) == 0 {
		return j, 0, false
	}
	nd := j.Images[0].NumDims()
	for d := 0; d < nd-1; d++ {
		if d == j.ProcessDim || d+1 == j.ProcessDim {
			continue
		}
		composes := true
		for _, im := range j.Images {
			if im.Strides[d]*im.Sizes[d] != im.Strides[d+1] {
				composes = false
				break
			}
		}
		if !composes {
			continue
		}
		out := make([]*imgcore.Image, len(j.Images))
		for i, im := range j.Images {
			out[i] = mergeDims(im, d)
		}
		newProcessDim := j.ProcessDim
		if newProcessDim > d {
			newProcessDim--
		}
		return &Joint{Images: out, ProcessDim: newProcessDim}, d, true
	}
	return j, 0, false
}

// mergeDims returns a view of im with dimensions d and d+1 merged into one
// dimension of size Sizes[d]*Sizes[d+1] and stride Strides[d] (valid only
// when the caller has verified Strides[d]*Sizes[d]==Strides[d+1]).
func mergeDims(im *imgcore.Image, d int) *imgcore.Image {
	out := im.CloneShapeOnly()
	sizes := make([]int, 0, im.NumDims()-1)
	strides := make([]int, 0, im.NumDims()-1)
	sizes = append(sizes, im.Sizes[:d]...)
	strides = append(strides, im.Strides[:d]...)
	sizes = append(sizes, im.Sizes[d]*im.Sizes[d+1])
	strides = append(strides, im.Strides[d])
	sizes = append(sizes, im.Sizes[d+2:]...)
	strides = append(strides, im.Strides[d+2:]...)
	out.Sizes, out.Strides = sizes, strides
	return out
}
