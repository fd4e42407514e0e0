// Copyright (c) 2026, Stagekit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types provides a runtime registry of types participating in
// the dynamic property system, and a setup service that runs
// declarative per-type setup exactly once per concrete type.
package types

import (
	"reflect"
	"strings"

	"github.com/stagekit/dynprop/base/reflectx"
)

// Type represents a registered type.
type Type struct {
	// Name is the fully package-path-qualified name of the type
	// (eg: github.com/stagekit/dynprop/props.Dynamic).
	Name string

	// IDName is the short, package-unqualified, lowercase name of the
	// type that is suitable for use in an ID (eg: dynamic).
	IDName string

	// Instance is an optional instance of the type.
	Instance any

	// ID is the unique type ID number.
	ID uint64

	// Fields is the ordered list of fields selected by declarative
	// property setup for this type. It is populated once, the first
	// time an instance of the type is set up.
	Fields []Field
}

// Field represents a field selected for dynamic property exposure.
type Field struct {
	// Name is the name of the field (eg: Width).
	Name string
}

func (tp *Type) String() string {
	return tp.Name
}

// ShortName returns the short name of the type (package.Type).
func (tp *Type) ShortName() string {
	li := strings.LastIndex(tp.Name, "/")
	return tp.Name[li+1:]
}

// ReflectType returns the [reflect.Type] for this type, using the Instance.
func (tp *Type) ReflectType() reflect.Type {
	if tp.Instance == nil {
		return nil
	}
	return reflectx.NonPointerType(reflect.TypeOf(tp.Instance))
}
