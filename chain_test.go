// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// drive settles c synchronously and returns its Outcome, for tests
// exercising continuations that are not already [Continuation.IsReady].
func drive[T any](c Continuation[T]) Outcome[T] {
	var out Outcome[T]
	c.state.markConsumed()
	c.state.invoke(promiseFunc[T]{
		onValue: func(v T) { out = Ready(v) },
		onError: func(e Error) { out = Failed[T](e) },
		onAbort: func() { out = EmptyOutcome[T]() },
	})
	return out
}

func TestThen_MapsValuePath(t *testing.T) {
	c := Then(MakeReady(2), func(v int) int { return v * 10 })
	require.Equal(t, 20, drive(c).Value())
}

func TestThen_PassesErrorThrough(t *testing.T) {
	c := Then(MakeExceptional[int](NewError(errBoom)), func(v int) int { return v * 10 })
	require.True(t, drive(c).IsException())
}

func TestThenContinuation_Chains(t *testing.T) {
	c := ThenContinuation(MakeReady(2), func(v int) Continuation[string] {
		return MakeReady("got 2")
	})
	require.Equal(t, "got 2", drive(c).Value())
}

func TestFail_RecoversFromError(t *testing.T) {
	c := Fail(MakeExceptional[int](NewError(errBoom)), func(e Error) int { return -1 })
	require.Equal(t, -1, drive(c).Value())
}

func TestFail_PassesValueThrough(t *testing.T) {
	c := Fail(MakeReady(4), func(e Error) int { return -1 })
	require.Equal(t, 4, drive(c).Value())
}

func TestFailContinuation_RecoversIntoContinuation(t *testing.T) {
	c := FailContinuation(MakeExceptional[int](NewError(errBoom)), func(e Error) Continuation[int] {
		return MakeReady(99)
	})
	require.Equal(t, 99, drive(c).Value())
}

func TestNext_ObservesEveryPath(t *testing.T) {
	seen := Next(MakeReady(1), func(o Outcome[int]) bool { return o.IsValue() })
	require.True(t, drive(seen).Value())

	seenErr := Next(MakeExceptional[int](NewError(errBoom)), func(o Outcome[int]) bool { return o.IsException() })
	require.True(t, drive(seenErr).Value())

	seenAbort := Next(makeAborted[int](), func(o Outcome[int]) bool { return o.IsEmpty() })
	require.True(t, drive(seenAbort).Value())
}

func TestNextContinuation_ChainsRegardlessOfPath(t *testing.T) {
	c := NextContinuation(MakeExceptional[int](NewError(errBoom)), func(o Outcome[int]) Continuation[string] {
		if o.IsException() {
			return MakeReady("recovered")
		}
		return MakeReady("unreached")
	})
	require.Equal(t, "recovered", drive(c).Value())
}

type recordingScheduler struct {
	scheduled int
}

func (s *recordingScheduler) Schedule(w Work) {
	s.scheduled++
	w.SetValue()
}

func TestThen_WithSchedulerRunsStep(t *testing.T) {
	sched := &recordingScheduler{}
	c := Then(MakeReady(2), func(v int) int { return v + 1 }, WithScheduler(sched))
	require.Equal(t, 3, drive(c).Value())
	require.Equal(t, 1, sched.scheduled)
}
