// Copyright (c) 2026, Stagekit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"sync"

	"github.com/stagekit/dynprop/base/reflectx"
)

// SetupFunc is a declarative setup function, run with the first
// constructed instance of each concrete type it applies to.
type SetupFunc func(instance any) error

type setupHandler struct {
	marker reflect.Type
	fn     SetupFunc
}

var (
	// setupMu guards the handler list and the per-type done cache,
	// so that concurrent first construction of a type runs its
	// handlers exactly once.
	setupMu       sync.Mutex
	setupHandlers []setupHandler
	setupDone     = map[reflect.Type]error{}
)

// RegisterSetup associates the given marker interface type with a
// setup function. [Setup] runs fn once per concrete type implementing
// marker, passing the first constructed instance of that type.
// Registration is global, normally done from an init function,
// once per marker kind.
func RegisterSetup(marker reflect.Type, fn SetupFunc) {
	if marker == nil || marker.Kind() != reflect.Interface {
		panic("types.RegisterSetup: marker must be an interface type")
	}
	setupMu.Lock()
	defer setupMu.Unlock()
	setupHandlers = append(setupHandlers, setupHandler{marker, fn})
}

// Setup runs declarative setup for the given freshly constructed
// instance. The first time it is called for a concrete type, it runs
// every registered setup function whose marker the type implements,
// and caches the outcome, including any error. Subsequent calls for
// the same concrete type return the cached outcome without running
// any handlers. Types that embed a participating type are distinct
// concrete types and get their own first-time setup.
//
// Setup functions are run while holding the cache lock, so they must
// not themselves construct instances of participating types.
func Setup(instance any) error {
	key := reflectx.NonPointerType(reflect.TypeOf(instance))
	setupMu.Lock()
	defer setupMu.Unlock()
	if err, done := setupDone[key]; done {
		return err
	}
	var err error
	for _, h := range setupHandlers {
		if !implementsMarker(key, h.marker) {
			continue
		}
		if err = h.fn(instance); err != nil {
			break
		}
	}
	setupDone[key] = err
	return err
}

// implementsMarker returns whether the given type or a pointer to it
// implements the given marker interface.
func implementsMarker(typ, marker reflect.Type) bool {
	return typ.Implements(marker) || reflect.PointerTo(typ).Implements(marker)
}
