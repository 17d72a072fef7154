// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetNumberOfThreadsOverridesDefault(t *testing.T) {
	SetNumberOfThreads(4)
	assert.Equal(t, 4, NumberOfThreads())
}

func TestSetNumberOfThreadsClampsBelowOne(t *testing.T) {
	SetNumberOfThreads(-5)
	assert.Equal(t, 1, NumberOfThreads())
}

func TestMinParallelWorkDefaultsTo70000(t *testing.T) {
	assert.Equal(t, int64(70000), MinParallelWork.Load())
}
