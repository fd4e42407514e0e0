// Copyright (c) 2026, Stagekit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"reflect"

	"github.com/stagekit/dynprop/base/errors"
	"github.com/stagekit/dynprop/base/reflectx"
	"github.com/stagekit/dynprop/types"
)

// Tag is the struct tag key of the member-level dynamic property
// marker. A field opts in as `prop:"dyn"`.
const Tag = "prop"

// dynTag is the tag value marking a field as a dynamic property.
const dynTag = "dyn"

// Owner is the class-level marker of the dynamic property protocol.
// It is implemented by embedding [Dynamic]; embedding types must call
// [Init] at the end of their own construction.
type Owner interface {

	// AsDynamic returns the [Dynamic] base of this object.
	AsDynamic() *Dynamic
}

// Declarer is optionally implemented by [Owner] types to restrict
// dynamic property exposure to an explicit list of field names,
// instead of scanning for every tagged field. Every listed field must
// still carry the `prop:"dyn"` tag; a listed field that is missing,
// unexported, or untagged fails setup with
// [InvalidDynamicPropertyError].
type Declarer interface {
	DeclaredProperties() []string
}

// Dynamic gives the embedding type a dynamic property bag, populated
// from the type's `prop:"dyn"` tagged fields by [Init].
type Dynamic struct {
	bag Bag
}

// AsDynamic implements [Owner].
func (d *Dynamic) AsDynamic() *Dynamic {
	return d
}

// Properties returns the dynamic property bag of this object.
func (d *Dynamic) Properties() *Bag {
	return &d.bag
}

func init() {
	types.RegisterSetup(reflect.TypeFor[Owner](), setupDynamic)
}

// Init runs dynamic property setup for the given freshly constructed
// object, and must be called at the end of its construction, before
// any property access. The declarative markers of the object's
// concrete type are scanned only the first time that type is seen
// (see [types.Setup]); every call then populates this instance's bag
// with a delegate per selected field, wrapping accessors captured
// from this instance's own storage. A scan failure is sticky: it is
// returned for every instance of the type.
func Init(owner Owner) error {
	bg := owner.AsDynamic().Properties()
	bg.owner = owner
	if err := types.Setup(owner); err != nil {
		return err
	}
	tp := types.TypeByValue(owner)
	if tp == nil {
		return nil
	}
	for _, f := range tp.Fields {
		fv, ok := reflectx.FieldValue(owner, f.Name)
		if !ok {
			continue
		}
		err := bg.Define(f.Name, &Delegate{
			Getter: func() any { return fv.Interface() },
			Setter: func(v any) { errors.Log(reflectx.SetValue(fv, v)) },
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// setupDynamic is the setup handler for the [Owner] marker. It runs
// once per concrete type, scans the type's declared fields, and
// records the selected field plan on the registered [types.Type].
func setupDynamic(instance any) error {
	rt := reflectx.NonPointerType(reflect.TypeOf(instance))
	fields, err := scanFields(rt, instance)
	if err != nil {
		return err
	}
	tp := types.TypeFor(rt)
	tp.Fields = fields
	return nil
}

// scanFields selects the dynamic property fields of the given type:
// the explicitly declared list if the instance is a [Declarer],
// otherwise every exported field tagged `prop:"dyn"`, including
// promoted fields of embedded structs.
func scanFields(rt reflect.Type, instance any) ([]types.Field, error) {
	if rt.Kind() != reflect.Struct {
		return nil, nil
	}
	if dec, ok := instance.(Declarer); ok {
		var fields []types.Field
		for _, name := range dec.DeclaredProperties() {
			sf, has := rt.FieldByName(name)
			if !has || sf.PkgPath != "" || sf.Tag.Get(Tag) != dynTag {
				return nil, &InvalidDynamicPropertyError{Type: types.TypeName(rt), Member: name}
			}
			fields = append(fields, types.Field{Name: name})
		}
		return fields, nil
	}
	var fields []types.Field
	for _, sf := range reflect.VisibleFields(rt) {
		if sf.Anonymous || sf.PkgPath != "" {
			continue
		}
		if sf.Tag.Get(Tag) == dynTag {
			fields = append(fields, types.Field{Name: sf.Name})
		}
	}
	return fields, nil
}
