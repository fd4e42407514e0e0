// Copyright (c) 2026, Stagekit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/jinzhu/copier"

	"github.com/stagekit/dynprop/base/errors"
	"github.com/stagekit/dynprop/base/reflectx"
	"github.com/stagekit/dynprop/types"
)

// Bag owns the dynamic properties of one object: a mapping from
// property name to [Property]. A bag is created alongside its owning
// object, populated first by declarative setup in [Init], and then
// mutated freely over the object's lifetime. The zero value is usable;
// the owner is needed only for static field fallback and error
// messages. Bags are not safe for concurrent use; they are single
// owner state like any other field of the owning object.
type Bag struct {
	owner any
	props map[string]Property
}

// NewBag returns a new [Bag] owned by the given object, for
// programmatic (non-declarative) use. Types embedding [Dynamic] get
// their bag automatically.
func NewBag(owner any) *Bag {
	return &Bag{owner: owner}
}

func (bg *Bag) init() {
	if bg.props == nil {
		bg.props = make(map[string]Property)
	}
}

// Owner returns the object this bag belongs to.
func (bg *Bag) Owner() any {
	return bg.owner
}

// Define inserts the given delegate-backed holder under the given
// name. It fails with [DuplicatePropertyError] if the name is already
// present, leaving the existing definition unaffected. A delegate
// with neither a Getter nor a Setter is accepted but permanently
// unreadable and unwritable, so it is logged as a likely mistake.
func (bg *Bag) Define(name string, d *Delegate) error {
	bg.init()
	if _, has := bg.props[name]; has {
		return &DuplicatePropertyError{Name: name}
	}
	d.name = name
	if d.UseInitial && d.Initial != nil {
		d.cached = true
	}
	if d.Getter == nil && d.Setter == nil {
		slog.Warn("props.Bag.Define: delegate has neither getter nor setter", "name", name, "type", types.TypeNameValue(bg.owner))
	}
	bg.props[name] = d
	return nil
}

// DefineInitial defines a delegate-backed property whose first
// observed value is the given initial value; see [Delegate.UseInitial].
func (bg *Bag) DefineInitial(name string, getter func() any, setter func(v any), initial any) error {
	return bg.Define(name, &Delegate{Getter: getter, Setter: setter, UseInitial: true, Initial: initial})
}

// Set writes the given value to the named property if it exists; the
// holder's own mutability contract applies, so writing a getter-only
// delegate fails with [NoSetterError]. If the name is unknown, Set
// creates a new plain value holder seeded with the value and never
// fails. This is deliberately asymmetric with [Bag.Define], which
// rejects names that already exist.
func (bg *Bag) Set(name string, v any) error {
	bg.init()
	if p, has := bg.props[name]; has {
		return p.Write(v)
	}
	bg.props[name] = &value{val: v}
	return nil
}

// Value returns the raw value of the named property, consulting only
// the bag. It fails with [PropertyNotFoundError] if the name is not
// present.
func (bg *Bag) Value(name string) (any, error) {
	if p, has := bg.props[name]; has {
		return p.Read()
	}
	return nil, bg.notFound(name)
}

// ValueStatic is like [Bag.Value], but when the bag has no entry for
// the name, it falls back to the owner's statically declared fields
// (including promoted fields of embedded structs), returning the
// field value directly without caching it in the bag. The bag always
// takes precedence over the static fallback.
func (bg *Bag) ValueStatic(name string) (any, error) {
	if p, has := bg.props[name]; has {
		return p.Read()
	}
	if fv, ok := reflectx.FieldValue(bg.owner, name); ok {
		return fv.Interface(), nil
	}
	return nil, bg.notFound(name)
}

// Has returns whether the named property is present in the bag.
func (bg *Bag) Has(name string) bool {
	_, has := bg.props[name]
	return has
}

// Delete removes the named property from the bag, if present.
func (bg *Bag) Delete(name string) {
	delete(bg.props, name)
}

// Names returns the sorted names of all properties in the bag.
func (bg *Bag) Names() []string {
	return slices.Sorted(maps.Keys(bg.props))
}

// Len returns the number of properties in the bag.
func (bg *Bag) Len() int {
	return len(bg.props)
}

// CopyFrom copies the properties of the given bag into this bag,
// overwriting any same-named entries. Plain values are deep copied
// using [copier]. Delegate-backed holders share their accessor
// closures with the source, since those are bound to the source
// owner's underlying storage.
func (bg *Bag) CopyFrom(src *Bag) {
	if src == nil || len(src.props) == 0 {
		return
	}
	bg.init()
	plains := map[string]any{}
	for name, p := range src.props {
		switch sp := p.(type) {
		case *value:
			plains[name] = sp.val
		case *Delegate:
			d := *sp
			bg.props[name] = &d
		default:
			bg.props[name] = p
		}
	}
	if len(plains) == 0 {
		return
	}
	copied := map[string]any{}
	err := copier.CopyWithOption(&copied, plains, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("props.Bag.CopyFrom", "err", err)
		copied = plains
	}
	for name, v := range copied {
		bg.props[name] = &value{val: v}
	}
}

func (bg *Bag) notFound(name string) error {
	return &PropertyNotFoundError{
		Type:  types.TypeNameValue(bg.owner),
		Owner: fmt.Sprintf("%v", bg.owner),
		Name:  name,
	}
}

// coerce converts a raw property value to the caller's expected type.
// A mismatch is a type coercion failure, distinct from
// [PropertyNotFoundError].
func coerce[T any](bg *Bag, name string, v any) (T, error) {
	t, err := reflectx.As[T](v)
	if err != nil {
		return t, fmt.Errorf("property %q on %s: %w", name, types.TypeNameValue(bg.owner), err)
	}
	return t, nil
}

// Get returns the value of the named property, coerced to type T.
// It consults only the bag and fails with [PropertyNotFoundError]
// if the name is not present.
func Get[T any](bg *Bag, name string) (T, error) {
	v, err := bg.Value(name)
	if err != nil {
		var z T
		return z, err
	}
	return coerce[T](bg, name, v)
}

// GetStatic is like [Get], but falls back to the owner's statically
// declared fields when the bag has no entry; see [Bag.ValueStatic].
func GetStatic[T any](bg *Bag, name string) (T, error) {
	v, err := bg.ValueStatic(name)
	if err != nil {
		var z T
		return z, err
	}
	return coerce[T](bg, name, v)
}

// GetOr is like [Get], but returns the given default instead of
// failing when the name is not present. Any other failure, including
// a type coercion failure, is still an error.
func GetOr[T any](bg *Bag, name string, def T) (T, error) {
	v, err := bg.Value(name)
	if err != nil {
		var nf *PropertyNotFoundError
		if errors.As(err, &nf) {
			return def, nil
		}
		return def, err
	}
	return coerce[T](bg, name, v)
}

// GetStaticOr resolves the named property with the full precedence
// chain: the bag first, then the owner's statically declared fields,
// then the given default. It only fails on a read or type coercion
// failure.
func GetStaticOr[T any](bg *Bag, name string, def T) (T, error) {
	v, err := bg.ValueStatic(name)
	if err != nil {
		var nf *PropertyNotFoundError
		if errors.As(err, &nf) {
			return def, nil
		}
		return def, err
	}
	return coerce[T](bg, name, v)
}
