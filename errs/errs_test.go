// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFormatsMessage(t *testing.T) {
	e := New(IndexOutOfRange, "index %d out of range for size %d", 5, 3)
	assert.Equal(t, "index 5 out of range for size 3", e.Error())
	assert.Equal(t, IndexOutOfRange, e.Kind)
}

func TestPushAccumulatesStackInErrorMessage(t *testing.T) {
	e := New(NotForged, "not forged").Push("inner").Push("outer")
	assert.Equal(t, []string{"inner", "outer"}, e.Stack())
	assert.Contains(t, e.Error(), "[in inner]")
	assert.Contains(t, e.Error(), "[in outer]")
}

func TestWrapPreservesCauseAndUnwraps(t *testing.T) {
	cause := errors.New("underlying failure")
	e := Wrap(NotImplemented, cause, "wrapping %s", "context")
	assert.Contains(t, e.Error(), "underlying failure")
	assert.ErrorIs(t, e, cause)
}

func TestIsMatchesKind(t *testing.T) {
	e := New(SizesDontMatch, "boom")
	assert.True(t, Is(e, SizesDontMatch))
	assert.False(t, Is(e, NotForged))
	assert.False(t, Is(errors.New("plain"), SizesDontMatch))
}

func TestAsExtractsConcreteError(t *testing.T) {
	var target *Error
	e := New(InvalidParameter, "bad")
	assert.True(t, As(e, &target))
	assert.Equal(t, InvalidParameter, target.Kind)
}
