// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

// outcomeState is the tri-state tag for Outcome.
type outcomeState uint8

const (
	outcomeEmpty outcomeState = iota
	outcomeValue
	outcomeException
)

// Outcome is the tri-state result of a continuation: either Empty (the
// chain aborted without surfacing anything), a Value carrying the
// successful result, or an Exception carrying an [Error] (including
// cancellation, when the Error is falsy).
//
// Every Outcome is in exactly one of these three states; assigning one
// of the constructors below replaces the whole state atomically (there
// is no way to construct a half-valid Outcome).
type Outcome[T any] struct {
	state outcomeState
	value T
	err   Error
}

// Ready constructs a Value outcome.
func Ready[T any](v T) Outcome[T] {
	return Outcome[T]{state: outcomeValue, value: v}
}

// Failed constructs an Exception outcome carrying a truthy failure.
func Failed[T any](err Error) Outcome[T] {
	return Outcome[T]{state: outcomeException, err: err}
}

// Cancelled constructs an Exception outcome carrying a falsy
// (cancellation) Error.
func Cancelled[T any]() Outcome[T] {
	return Outcome[T]{state: outcomeException, err: Error{}}
}

// EmptyOutcome constructs the Empty outcome: the chain aborted and
// nothing should be surfaced to either the value or error path.
func EmptyOutcome[T any]() Outcome[T] {
	return Outcome[T]{state: outcomeEmpty}
}

// IsEmpty reports whether o is the Empty outcome.
func (o Outcome[T]) IsEmpty() bool { return o.state == outcomeEmpty }

// IsValue reports whether o carries a successful value.
func (o Outcome[T]) IsValue() bool { return o.state == outcomeValue }

// IsException reports whether o carries a failure or cancellation.
func (o Outcome[T]) IsException() bool { return o.state == outcomeException }

// Value returns the carried value. It panics if o is not a Value
// outcome; callers should check [Outcome.IsValue] first, or use
// [Outcome.Get] for the paired form.
func (o Outcome[T]) Value() T {
	if o.state != outcomeValue {
		panic("contin: Value called on a non-value Outcome")
	}
	return o.value
}

// Exception returns the carried Error. It panics if o is not an
// Exception outcome.
func (o Outcome[T]) Exception() Error {
	if o.state != outcomeException {
		panic("contin: Exception called on a non-exception Outcome")
	}
	return o.err
}

// Get returns the value and a bool reporting whether o was a Value
// outcome, without panicking.
func (o Outcome[T]) Get() (T, bool) {
	if o.state != outcomeValue {
		var zero T
		return zero, false
	}
	return o.value, true
}
