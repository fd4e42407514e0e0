// Copyright (c) 2026, Stagekit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("test error")
	assert.Equal(t, err, Log(err))
}

func TestLog1(t *testing.T) {
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 3, Log1(3, New("test error")))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("test error")) })

	assert.Equal(t, "v", Must1("v", nil))
	assert.Panics(t, func() { Must1(0, New("test error")) })
}

func TestIgnore1(t *testing.T) {
	assert.Equal(t, 1, Ignore1(1, New("ignored")))
}

func TestErrorf(t *testing.T) {
	base := New("base")
	err := Errorf("wrapped: %w", base)
	assert.True(t, Is(err, base))
}
