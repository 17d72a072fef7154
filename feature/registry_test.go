// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dummyFeature struct {
	Info
	nDims int
}

func init() {
	Register("__test.Dummy", func(nDims int) Base { return &dummyFeature{Info: Info{FeatureName: "__test.Dummy"}, nDims: nDims} })
}

func TestRegistryNewUsesFactory(t *testing.T) {
	f, err := New("__test.Dummy", 3)
	require.NoError(t, err)
	assert.Equal(t, "__test.Dummy", f.Name())
	assert.Equal(t, 3, f.(*dummyFeature).nDims)
}

func TestRegistryNewUnknownName(t *testing.T) {
	_, err := New("__test.NoSuchFeature", 2)
	assert.Error(t, err)
}

func TestRegistryNamesIncludesRegistered(t *testing.T) {
	assert.Contains(t, Names(), "__test.Dummy")
}

func TestRegistryRegisterPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		Register("__test.Dummy", func(nDims int) Base { return nil })
	})
}
