// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds process-scoped tuning knobs for the framework
// scheduler: the worker count and the minimal per-tile work below which
// parallelism is not worth its overhead.
package config

import (
	"os"
	"runtime"
	"strconv"
	"sync/atomic"
)

var numThreads atomic.Int64

// MinParallelWork is the number of basic operations below which a framework
// invocation is run single-threaded rather than paying worker-dispatch
// overhead. DIPlib's own tuning used ~70000; exposed here as a variable
// rather than hard-coded, per the open question in spec.md §9.
var MinParallelWork atomic.Int64

func init() {
	MinParallelWork.Store(70000)
}

// NumberOfThreads returns the configured worker count. If never set
// explicitly, it is lazily initialized from the NDIMAGE_NUM_THREADS
// environment variable, falling back to runtime.NumCPU().
// Safe to call from any thread; does not synchronize with in-flight
// framework calls that already read a prior value (documented).
func NumberOfThreads() int {
	n := numThreads.Load()
	if n != 0 {
		return int(n)
	}
	n = int64(defaultFromEnv())
	numThreads.Store(n)
	return int(n)
}

// SetNumberOfThreads overrides the worker count used by new framework
// invocations. n must be >= 1.
func SetNumberOfThreads(n int) {
	if n < 1 {
		n = 1
	}
	numThreads.Store(int64(n))
}

func defaultFromEnv() int {
	if s := os.Getenv("NDIMAGE_NUM_THREADS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
	}
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	return n
}
