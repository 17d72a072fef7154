// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs provides the single error type used throughout ndimage.
// Every operation that can fail returns a *Error carrying a Kind and a
// stack of operation names accumulated as the error unwinds, mirroring the
// diagnostic trail the framework's C++ ancestor produces via nested
// exceptions.
package errs

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

//go:generate core generate

// Kind enumerates the error categories an ndimage operation can raise.
type Kind int32 //enums:enum

const (
	NotForged Kind = iota
	WrongDataType
	NotScalar
	NotBinary
	DimensionalityNotSupported
	ParameterOutOfRange
	ArrayParameterWrongLength
	ArrayParameterEmpty
	SizesDontMatch
	IndexOutOfRange
	InvalidParameter
	InvalidFlag
	IllegalDimension
	DataTypeNotSupported
	NotImplemented
	FeatureAlreadyPresent
	FeatureNotPresent
	ObjectAlreadyPresent
	ObjectNotPresent
	MeasurementNotForged
	MeasurementForged
)

// Error is the error type returned by every ndimage operation.
type Error struct {
	Kind  Kind
	Msg   string
	stack []string
	cause error
}

// New creates a new Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap annotates an existing error with a Kind, preserving the original
// as the cause (via github.com/pkg/errors, which supplies Cause/Unwrap).
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), cause: errors.WithStack(cause)}
}

// Push appends an operation name to the error's stack as it unwinds through
// framework wrapper code, reproducing the nested-call diagnostic trail.
func (e *Error) Push(op string) *Error {
	e.stack = append(e.stack, op)
	return e
}

// Stack returns the operation names pushed onto this error, innermost first.
func (e *Error) Stack() []string { return e.stack }

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Msg)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	for _, op := range e.stack {
		b.WriteString(" [in ")
		b.WriteString(op)
		b.WriteString("]")
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// As exposes errors.As for callers that want the concrete *Error.
func As(err error, target **Error) bool {
	return errors.As(err, target)
}
