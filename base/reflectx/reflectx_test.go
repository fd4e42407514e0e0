// Copyright (c) 2026, Stagekit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Label string
}

type outer struct {
	inner
	N int
	s string
}

func TestNonPointerType(t *testing.T) {
	assert.Nil(t, NonPointerType(nil))
	assert.Equal(t, reflect.TypeFor[outer](), NonPointerType(reflect.TypeFor[**outer]()))
}

func TestUnderlyingValue(t *testing.T) {
	o := &outer{N: 3}
	var a any = o
	v := UnderlyingValue(reflect.ValueOf(a))
	assert.Equal(t, reflect.Struct, v.Kind())
	assert.Equal(t, 3, v.FieldByName("N").Interface())

	var nilPtr *outer
	v = UnderlyingValue(reflect.ValueOf(nilPtr))
	assert.Equal(t, reflect.Pointer, v.Kind())
}

func TestFieldValue(t *testing.T) {
	o := &outer{N: 7}
	o.Label = "in"

	fv, ok := FieldValue(o, "N")
	require.True(t, ok)
	assert.Equal(t, 7, fv.Interface())

	// promoted field of an embedded struct
	fv, ok = FieldValue(o, "Label")
	require.True(t, ok)
	assert.Equal(t, "in", fv.Interface())

	_, ok = FieldValue(o, "Missing")
	assert.False(t, ok)

	_, ok = FieldValue(o, "s")
	assert.False(t, ok, "unexported fields are not resolvable")

	_, ok = FieldValue(42, "N")
	assert.False(t, ok)
}

func TestFieldValueSettable(t *testing.T) {
	o := &outer{}
	fv, ok := FieldValue(o, "N")
	require.True(t, ok)
	require.NoError(t, SetValue(fv, 9))
	assert.Equal(t, 9, o.N)
}

func TestSetValue(t *testing.T) {
	var f float32
	fv := reflect.ValueOf(&f).Elem()

	require.NoError(t, SetValue(fv, float32(1.5)))
	assert.Equal(t, float32(1.5), f)

	// convertible types are converted
	require.NoError(t, SetValue(fv, 2))
	assert.Equal(t, float32(2), f)

	require.Error(t, SetValue(fv, "nope"))
	assert.Equal(t, float32(2), f, "a failed assignment must not modify the destination")

	require.NoError(t, SetValue(fv, nil))
	assert.Equal(t, float32(0), f)

	require.Error(t, SetValue(reflect.ValueOf(3), 4))
}

func TestAs(t *testing.T) {
	v, err := As[int](5)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	f, err := As[float64](5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, f)

	_, err = As[int]("five")
	require.Error(t, err)

	z, err := As[int](nil)
	require.NoError(t, err)
	assert.Equal(t, 0, z)
}
