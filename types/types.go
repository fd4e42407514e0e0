// Copyright (c) 2026, Stagekit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/stagekit/dynprop/base/reflectx"
)

var (
	// Types records all registered types (i.e., a type registry).
	// The key is the long type name: package_url.Type,
	// e.g., github.com/stagekit/dynprop/props.Dynamic.
	Types = map[string]*Type{}

	// typeIDCounter is an atomically incremented uint64 used
	// for assigning new [Type.ID] numbers.
	typeIDCounter uint64

	// typesMu guards Types. Registration and lookup can happen from
	// any goroutine constructing participating objects.
	typesMu sync.RWMutex
)

// TypeByName returns a [Type] by name (package_url.Type), or nil
// if it is not found.
func TypeByName(name string) *Type {
	typesMu.RLock()
	defer typesMu.RUnlock()
	return Types[name]
}

// TypeByNameTry returns a [Type] by name (package_url.Type),
// or an error if it is not found.
func TypeByNameTry(name string) (*Type, error) {
	tp := TypeByName(name)
	if tp == nil {
		return nil, fmt.Errorf("type %q not found", name)
	}
	return tp, nil
}

// TypeByValue returns the [Type] of the given value, or nil
// if it is not registered.
func TypeByValue(v any) *Type {
	return TypeByName(TypeNameValue(v))
}

// AddType adds a constructed [Type] to the registry and returns it.
// This sets the ID. If the type was already registered, the existing
// registration is returned unchanged.
func AddType(tp *Type) *Type {
	typesMu.Lock()
	defer typesMu.Unlock()
	if et, has := Types[tp.Name]; has {
		slog.Debug("types.AddType: Type already exists", "Type.Name", tp.Name)
		return et
	}
	tp.ID = atomic.AddUint64(&typeIDCounter, 1)
	Types[tp.Name] = tp
	return tp
}

// TypeFor returns the [Type] for the given reflect type, registering
// it if it is not already registered.
func TypeFor(rt reflect.Type) *Type {
	rt = reflectx.NonPointerType(rt)
	name := TypeName(rt)
	if tp := TypeByName(name); tp != nil {
		return tp
	}
	return AddType(&Type{
		Name:     name,
		IDName:   strings.ToLower(rt.Name()),
		Instance: reflect.New(rt).Interface(),
	})
}

// TypeName returns the long, package-path-qualified name of the given
// reflect type. This is guaranteed to be unique and is used as the key
// for the [Types] registry.
func TypeName(typ reflect.Type) string {
	typ = reflectx.NonPointerType(typ)
	if typ == nil {
		return "nil"
	}
	if typ.PkgPath() == "" {
		return typ.Name()
	}
	return typ.PkgPath() + "." + typ.Name()
}

// TypeNameValue returns the long type name of the given value,
// using [TypeName].
func TypeNameValue(v any) string {
	return TypeName(reflect.TypeOf(v))
}
