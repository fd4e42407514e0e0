// Copyright (c) 2026, Stagekit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
)

// FieldValue resolves the exported field with the given name on the
// underlying struct of the given object, including promoted fields of
// embedded structs. The second return value reports whether the field
// was found. obj should be a pointer to a struct for the returned
// value to be settable.
func FieldValue(obj any, name string) (reflect.Value, bool) {
	v := UnderlyingValue(reflect.ValueOf(obj))
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	f := v.FieldByName(name)
	if !f.IsValid() || !f.CanInterface() {
		return reflect.Value{}, false
	}
	return f, true
}

// SetValue assigns the given value to the given destination,
// converting it if the types differ but are convertible.
// It returns an error if the destination is not settable or the
// types are incompatible.
func SetValue(dst reflect.Value, v any) error {
	if !dst.CanSet() {
		return fmt.Errorf("reflectx.SetValue: destination of type %s is not settable", dst.Type())
	}
	if v == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	sv := reflect.ValueOf(v)
	if sv.Type().AssignableTo(dst.Type()) {
		dst.Set(sv)
		return nil
	}
	if sv.Type().ConvertibleTo(dst.Type()) {
		dst.Set(sv.Convert(dst.Type()))
		return nil
	}
	return fmt.Errorf("reflectx.SetValue: cannot assign value of type %T to destination of type %s", v, dst.Type())
}

// As asserts the given value to type T, converting it if the types
// differ but are convertible. The error reports the type mismatch;
// it is distinct from any not-found condition in the caller.
func As[T any](v any) (T, error) {
	var z T
	if v == nil {
		return z, nil
	}
	if t, ok := v.(T); ok {
		return t, nil
	}
	zt := reflect.TypeOf(&z).Elem()
	sv := reflect.ValueOf(v)
	if sv.Type().ConvertibleTo(zt) {
		return sv.Convert(zt).Interface().(T), nil
	}
	return z, fmt.Errorf("value has a different type than expected %T: is %T", z, v)
}
