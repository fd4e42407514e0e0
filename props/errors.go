// Copyright (c) 2026, Stagekit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import "fmt"

// DuplicatePropertyError is returned by [Bag.Define] for a name that
// is already present in the bag. The existing definition is never
// silently overwritten.
type DuplicatePropertyError struct {
	Name string
}

func (e *DuplicatePropertyError) Error() string {
	return fmt.Sprintf("property %q is already defined", e.Name)
}

// NoGetterError is returned when reading a delegate-backed property
// that has no getter.
type NoGetterError struct {
	Name string
}

func (e *NoGetterError) Error() string {
	return fmt.Sprintf("property %q has no getter", e.Name)
}

// NoSetterError is returned when writing a delegate-backed property
// that has no setter.
type NoSetterError struct {
	Name string
}

func (e *NoSetterError) Error() string {
	return fmt.Sprintf("property %q has no setter", e.Name)
}

// PropertyNotFoundError is returned when a property lookup exhausts
// the bag, the static field fallback (if enabled), and the default
// value (if enabled).
type PropertyNotFoundError struct {

	// Type is the long type name of the owning object.
	Type string

	// Owner is the string representation of the owning object.
	Owner string

	// Name is the missing property name.
	Name string
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("property %q not found on %s (%s)", e.Name, e.Type, e.Owner)
}

// InvalidDynamicPropertyError is returned from setup when a declared
// property list names a member that is missing, unexported, or not
// tagged as a dynamic property.
type InvalidDynamicPropertyError struct {

	// Type is the long type name of the type being set up.
	Type string

	// Member is the offending member name.
	Member string
}

func (e *InvalidDynamicPropertyError) Error() string {
	return fmt.Sprintf("declared property list for %s names member %q that is not a dynamic property", e.Type, e.Member)
}
