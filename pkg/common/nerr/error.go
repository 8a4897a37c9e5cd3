// Copyright 2023 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nerr

import (
	"context"
	"fmt"
)

const (
	// Ok is not an error.
	Ok uint16 = 0

	// Group 1: internal errors
	ErrStart        uint16 = 20100
	ErrInternal     uint16 = 20101
	ErrNotSupported uint16 = 20102
	ErrBadConfig    uint16 = 20103

	// Group 2: classification and conversion
	ErrUnclassifiableValue   uint16 = 20200
	ErrConversionUnsupported uint16 = 20201

	// Group 3: dispatch
	ErrUnknownFunction     uint16 = 20300
	ErrNoMatchingSignature uint16 = 20301

	// Group 4: container structure
	ErrShapeMismatch    uint16 = 20400
	ErrMaxDepthExceeded uint16 = 20401

	// Group 5: units
	ErrIncompatibleUnitBase uint16 = 20500
	ErrUnknownUnit          uint16 = 20501

	// ErrEnd, the max value of the error code space
	ErrEnd uint16 = 65535
)

var errorMsgRefer = map[uint16]string{
	// Group 1: internal errors
	ErrStart:        "internal error: error code start",
	ErrInternal:     "internal error: %s",
	ErrNotSupported: "not supported: %s",
	ErrBadConfig:    "invalid configuration: %s",

	// Group 2: classification and conversion
	ErrUnclassifiableValue:   "cannot classify value of type %T",
	ErrConversionUnsupported: "no conversion from %s to %s",

	// Group 3: dispatch
	ErrUnknownFunction:     "unknown function '%s'",
	ErrNoMatchingSignature: "no matching signature of '%s' for argument types %s",

	// Group 4: container structure
	ErrShapeMismatch:    "shape mismatch: %s",
	ErrMaxDepthExceeded: "container nesting exceeds the maximum depth %d",

	// Group 5: units
	ErrIncompatibleUnitBase: "units %s and %s have no common base",
	ErrUnknownUnit:          "unknown unit '%s'",

	// Group End: max value of the error code space
	ErrEnd: "internal error: end of error code space",
}

// Error is the only error type produced by this module. Every public
// operation fails with an *Error carrying one of the codes above, so
// callers can tell expected conditions (shape mismatch, no matching
// signature) apart from programmer errors without string matching.
type Error struct {
	code    uint16
	message string
}

func newError(_ context.Context, code uint16, args ...any) *Error {
	format, has := errorMsgRefer[code]
	if !has {
		panic(fmt.Sprintf("not exist error code: %d", code))
	}
	if len(args) == 0 {
		return &Error{code: code, message: format}
	}
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

// IsNErrCode reports whether err is an *Error with the given code.
func IsNErrCode(err error, rc uint16) bool {
	if err == nil {
		return rc == Ok
	}
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.code == rc
}

func NewInternal(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrInternal, xmsg)
}

func NewNotSupported(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrNotSupported, xmsg)
}

func NewBadConfig(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrBadConfig, xmsg)
}

func NewUnclassifiableValue(ctx context.Context, v any) *Error {
	return newError(ctx, ErrUnclassifiableValue, v)
}

func NewConversionUnsupported(ctx context.Context, from, to string) *Error {
	return newError(ctx, ErrConversionUnsupported, from, to)
}

func NewUnknownFunction(ctx context.Context, name string) *Error {
	return newError(ctx, ErrUnknownFunction, name)
}

func NewNoMatchingSignature(ctx context.Context, name string, argTypes string) *Error {
	return newError(ctx, ErrNoMatchingSignature, name, argTypes)
}

func NewShapeMismatch(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrShapeMismatch, xmsg)
}

func NewMaxDepthExceeded(ctx context.Context, maxDepth int) *Error {
	return newError(ctx, ErrMaxDepthExceeded, maxDepth)
}

func NewIncompatibleUnitBase(ctx context.Context, u1, u2 string) *Error {
	return newError(ctx, ErrIncompatibleUnitBase, u1, u2)
}

func NewUnknownUnit(ctx context.Context, name string) *Error {
	return newError(ctx, ErrUnknownUnit, name)
}
