// Copyright (c) 2026, Stagekit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package props implements dynamic properties for engine objects:
// per-instance property bags with a uniform get/set protocol, where
// some properties proxy to real underlying storage through bound
// accessor functions and others are free-floating values with no
// backing member at all. Types opt in declaratively by embedding
// [Dynamic] and tagging fields with `prop:"dyn"`; the scan of a type's
// markers runs only once per concrete type (see [Init]).
package props

// Property is a named unit of dynamic state in a [Bag]: either a
// plain value holder or a delegate-backed holder.
type Property interface {

	// Read returns the current value of the property.
	Read() (any, error)

	// Write sets the current value of the property.
	Write(v any) error
}

// value is a plain value holder, created by [Bag.Set] for names that
// have no existing property.
type value struct {
	val any
}

func (p *value) Read() (any, error) {
	return p.val, nil
}

func (p *value) Write(v any) error {
	p.val = v
	return nil
}

// Delegate is a delegate-backed property holder: reads and writes
// proxy to bound accessor functions rather than storing a value
// directly. Construct one and pass it to [Bag.Define]; the zero
// value of each field is meaningful as documented.
type Delegate struct {

	// Getter returns the current underlying value. If it is nil,
	// reads that need it fail with [NoGetterError].
	Getter func() any

	// Setter sets the underlying value. If it is nil, writes fail
	// with [NoSetterError].
	Setter func(v any)

	// UseInitial freezes the first observed value: the first Read
	// caches the getter's result and every subsequent Read returns
	// that cached value, even if the underlying source changes later.
	// This is distinct from always proxying to the live getter.
	UseInitial bool

	// Initial is the cached value used when UseInitial is set. A
	// non-nil Initial supplied at definition time counts as the first
	// observation, so the getter is never invoked.
	Initial any

	// name is set by [Bag.Define], for error messages.
	name string

	// cached is whether Initial holds an observed value.
	cached bool
}

func (d *Delegate) Read() (any, error) {
	if d.UseInitial && d.cached {
		return d.Initial, nil
	}
	if d.Getter == nil {
		return nil, &NoGetterError{Name: d.name}
	}
	v := d.Getter()
	if d.UseInitial {
		d.Initial = v
		d.cached = true
	}
	return v, nil
}

func (d *Delegate) Write(v any) error {
	if d.Setter == nil {
		return &NoSetterError{Name: d.name}
	}
	d.Setter(v)
	return nil
}
