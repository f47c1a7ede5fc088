// Copyright (C) 2026 Kim HyeonSu.
// See LICENSE for copying information.

// Package result provides a generic container pairing a payload with a
// success flag and an optional message. It is a return-value convention
// for expected-failure paths, not a substitute for error returns.
package result

import "fmt"

// Result pairs a payload with a success flag and an optional message.
// It is a transient value object: no identity, nothing to release.
type Result[T any] struct {
	data    T
	ok      bool
	message string
}

// New returns an empty Result: zero data, flag false.
func New[T any]() *Result[T] {
	return &Result[T]{}
}

// NewData returns a Result holding data with the flag false.
func NewData[T any](data T) *Result[T] {
	return &Result[T]{data: data}
}

// NewResult returns a Result holding data with an explicit flag.
func NewResult[T any](data T, ok bool) *Result[T] {
	return &Result[T]{data: data, ok: ok}
}

// Success returns a Result with the flag set and data attached.
func Success[T any](data T) *Result[T] {
	return NewResult(data, true)
}

// Error returns a failed Result carrying message and no data.
func Error[T any](message string) *Result[T] {
	return New[T]().SetMessage(message)
}

// Data returns the payload.
func (r *Result[T]) Data() T {
	return r.data
}

// Message returns the success/failure message.
func (r *Result[T]) Message() string {
	return r.message
}

// Result returns the success flag.
func (r *Result[T]) Result() bool {
	return r.ok
}

// IsSuccess reports whether the flag is set.
func (r *Result[T]) IsSuccess() bool {
	return r.Result()
}

// IsError reports the negation of IsSuccess.
func (r *Result[T]) IsError() bool {
	return !r.Result()
}

// SetData replaces the payload and returns the receiver.
func (r *Result[T]) SetData(data T) *Result[T] {
	r.data = data
	return r
}

// SetMessage replaces the message and returns the receiver.
func (r *Result[T]) SetMessage(message string) *Result[T] {
	r.message = message
	return r
}

// SetResult replaces the flag and returns the previous value.
// Unlike SetData and SetMessage it does not return the receiver,
// so it cannot be chained.
func (r *Result[T]) SetResult(ok bool) bool {
	previous := r.ok
	r.ok = ok
	return previous
}

// String renders all three fields for diagnostics. It is not a wire format.
func (r *Result[T]) String() string {
	return fmt.Sprintf("Result [data=%v, result=%t, message=%s]", r.data, r.ok, r.message)
}
