// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

// Error is an opaque, moveable failure carrier. The zero value is
// contextually falsy and denotes cancellation; any Error wrapping a
// non-nil cause is truthy and denotes a real failure.
//
// Error is deliberately not the same thing as a panic: a panic means
// the API contract was violated (double-resume, invoking a released
// continuation); an Error flowing through [Fail] or the terminal
// dispatcher means the computation itself failed or was cancelled.
type Error struct {
	cause error
}

// NewError wraps cause as a truthy failure. NewError(nil) is
// indistinguishable from the zero Error (cancellation) — callers that
// need to report "failed for no particular reason" should use a
// sentinel error rather than nil.
func NewError(cause error) Error {
	return Error{cause: cause}
}

// Set reports whether e denotes a real failure (true) rather than
// cancellation (false). This is the boolean projection spec.md
// describes as "contextually convertible".
func (e Error) Set() bool {
	return e.cause != nil
}

// Cause returns the wrapped error, or nil for a cancellation Error.
func (e Error) Cause() error {
	return e.cause
}

// Error implements the error interface so an Error can be wrapped,
// logged, or compared with errors.Is/errors.As like any other error.
func (e Error) Error() string {
	if e.cause == nil {
		return "contin: cancelled"
	}
	return e.cause.Error()
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e Error) Unwrap() error {
	return e.cause
}
