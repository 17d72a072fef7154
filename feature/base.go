// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

// Info is an embeddable implementation of Base, carrying the
// kind-independent metadata every concrete feature shares.
type Info struct {
	FeatureName   string
	Desc          string
	NeedsGrey     bool
	ValueInfoList []ValueInfo
}

func (i Info) Name() string           { return i.FeatureName }
func (i Info) Description() string    { return i.Desc }
func (i Info) NeedsGreyValue() bool   { return i.NeedsGrey }
func (i Info) ValueInfo() []ValueInfo { return i.ValueInfoList }
