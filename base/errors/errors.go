// Copyright (c) 2026, Stagekit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of helpers that reduce the boilerplate
// of error handling, built on top of the standard library errors package
// and [log/slog]. It should be imported in place of the standard library
// errors package.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// New returns an error that formats as the given text,
// using [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Errorf formats according to a format specifier and returns
// the string as a value that satisfies error, using [fmt.Errorf].
func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

// Is reports whether any error in err's tree matches target,
// using [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target,
// using [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Log logs the given error to [slog], with information about the caller,
// if it is non-nil. It returns the error unchanged, so it can be used
// in a line like: return errors.Log(err)
func Log(err error) error {
	if err == nil {
		return nil
	}
	slog.Error(err.Error() + " | " + caller())
	return err
}

// Log1 logs the given error to [slog] if it is non-nil and returns
// the first value, for cases where the error is not worth propagating.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + caller())
	}
	return v
}

// Must panics if the given error is non-nil. It should only be used
// for errors that can not happen absent a programming mistake, such
// as static registration at init time.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 panics if the given error is non-nil and returns the
// first value otherwise.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Ignore1 returns the first value, ignoring any error.
func Ignore1[T any](v T, err error) T {
	return v
}

// caller returns the file and line of the caller of the helper
// that called it.
func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown caller"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
