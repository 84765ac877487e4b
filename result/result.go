// SPDX-License-Identifier: MIT

// Package result provides a two-state success/failure container for
// fallible constructors.
//
// A Result holds exactly one of a success value or a Failure. Inspecting it
// (IsOk, Value, Failure, Err) never faults. Unwrap is the unchecked path: on a
// failure it panics with *EscalationError carrying the original message, and
// is meant for call sites where a failure is a programming error.
//
//	r := plot.NewAppearanceOptions(colour.White, colour.Black)
//	if f, bad := r.Failure(); bad {
//		return f
//	}
//	opts := r.Unwrap()
package result

import (
	"errors"
	"fmt"
)

// ErrUnwrapFailure is matched (errors.Is) by every *EscalationError.
var ErrUnwrapFailure = errors.New("result: unwrap of a failure")

// Failure describes why an operation did not produce a value.
type Failure struct {
	msg string
}

// NewFailure returns a Failure with the given message.
func NewFailure(msg string) Failure { return Failure{msg: msg} }

// Message returns the message supplied at construction.
func (f Failure) Message() string { return f.msg }

// Error implements error; it returns the message unchanged.
func (f Failure) Error() string { return f.msg }

// EscalationError is the panic payload of Result.Unwrap on a failure.
// It is distinct from the Failure itself: the failure state is ordinary data,
// the escalation is the fault raised by unchecked access.
type EscalationError struct {
	Message string
}

// Error returns the original failure message.
func (e *EscalationError) Error() string { return e.Message }

// Unwrap lets errors.Is(err, ErrUnwrapFailure) identify escalations.
func (e *EscalationError) Unwrap() error { return ErrUnwrapFailure }

// Result is a success value of type T or a Failure.
// The zero Result is a failure with an empty message.
type Result[T any] struct {
	value   T
	failure Failure
	ok      bool
}

// Ok wraps a success value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail builds a failure with msg.
func Fail[T any](msg string) Result[T] {
	return Result[T]{failure: NewFailure(msg)}
}

// Failf builds a failure with a formatted message.
func Failf[T any](format string, args ...any) Result[T] {
	return Fail[T](fmt.Sprintf(format, args...))
}

// IsOk reports the success state.
func (r Result[T]) IsOk() bool { return r.ok }

// IsFailure reports the failure state.
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the held value and true, or the zero T and false.
func (r Result[T]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}

	return r.value, true
}

// Failure returns the held failure and true, or a zero Failure and false.
func (r Result[T]) Failure() (Failure, bool) {
	if r.ok {
		return Failure{}, false
	}

	return r.failure, true
}

// Err returns nil on success and the Failure as an error otherwise.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}

	return r.failure
}

// Unwrap returns the held value, or panics with *EscalationError whose
// Message equals the failure message.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(&EscalationError{Message: r.failure.msg})
	}

	return r.value
}

// UnwrapOr returns the held value, or def on failure.
func (r Result[T]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}

	return r.value
}

// String renders "Ok(v)" or "Failure(msg)" for diagnostics.
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}

	return fmt.Sprintf("Failure(%s)", r.failure.msg)
}

// Map applies f to a success value; a failure propagates unchanged.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.ok {
		return Result[U]{failure: r.failure}
	}

	return Ok(f(r.value))
}

// AndThen chains a fallible step; a failure propagates unchanged.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.ok {
		return Result[U]{failure: r.failure}
	}

	return f(r.value)
}
