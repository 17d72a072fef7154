// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package framework

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/emer/ndimage/config"
)

// tile is one disjoint chunk of "other"-coordinate positions a single
// worker processes to completion before asking for the next, per spec.md
// §5.
type tile struct {
	start, stop int // half-open range over a flattened "other" index space
}

// tiles divides [0,total) into n disjoint contiguous tiles of as-equal-as
// possible size.
func tiles(total, n int) []tile {
	if n <= 0 {
		n = 1
	}
	if n > total {
		n = total
	}
	if n == 0 {
		return nil
	}
	out := make([]tile, 0, n)
	base := total / n
	rem := total % n
	pos := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		out = append(out, tile{start: pos, stop: pos + size})
		pos += size
	}
	return out
}

// runTiled runs work(tile) across total positions, splitting into worker
// tiles as described in spec.md §5: a pool of worker goroutines bounded by
// config.NumberOfThreads(), disabled (run serially on the caller) when the
// estimated total cost falls below config.MinParallelWork. Grounded on the
// golang.org/x/sync/errgroup `g.SetLimit` + `g.Go` pattern used in
// parser/files.go (7blacky7-ollama-reverse) for bounded concurrent work,
// repurposed here for CPU-bound line tiling instead of concurrent I/O.
// runTiled's work callback receives, besides its tile, the index in
// [0,effectiveThreads) of the worker running it -- stable for the
// duration of that tile, so a LineFilter can use it to index per-thread
// scratch it allocated in SetThreadCount.
func runTiled(total int, opsPerPosition int64, effectiveThreads int, work func(t tile, threadIdx int) error) error {
	if total <= 0 {
		return nil
	}
	estimate := opsPerPosition * int64(total)
	threads := effectiveThreads
	if threads < 1 || estimate < config.MinParallelWork.Load() {
		return work(tile{start: 0, stop: total}, 0)
	}
	if threads > total {
		threads = total
	}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(threads)
	for i, t := range tiles(total, threads) {
		i, t := i, t
		g.Go(func() error {
			return work(t, i)
		})
	}
	return g.Wait()
}

// threadCount returns the worker count a framework entry point should
// request from a LineFilter and pass to runTiled, per spec.md §5.
func threadCount() int {
	n := config.NumberOfThreads()
	if n < 1 {
		n = 1
	}
	return n
}
