// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"sort"
	"sync"

	"github.com/emer/ndimage/errs"
)

// Factory constructs a fresh instance of a named feature, given the
// spatial dimensionality of the image being measured -- features whose
// column count depends on dimensionality (Center, CartesianBox, ...) need
// it before Initialize to answer ValueInfo correctly, since the
// measurement table's column layout is forged before any per-object pass
// runs. Features are stateful per measurement pass (LineBased ones in
// particular accumulate per-object data between Initialize and Finish),
// so the registry hands out a new value per Measure call rather than a
// shared singleton.
type Factory func(nDims int) Base

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a named feature factory to the global registry. It panics
// on a duplicate name, following the package-init-time registration
// pattern used for plugin-style registries in this module's dependencies:
// a name collision is a programming error caught at startup, not a
// runtime condition callers should need to handle.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[name]; ok {
		panic("feature: duplicate registration for " + name)
	}
	registry[name] = f
}

// New constructs a fresh instance of the named feature for an image of the
// given spatial dimensionality.
func New(name string, nDims int) (Base, error) {
	const op = "feature.New"
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, errs.New(errs.FeatureNotPresent, "%s: no feature registered as %q", op, name).Push(op)
	}
	return f(nDims), nil
}

// Names returns the names of all registered features, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
