// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

import "sync"

// Values is the type-erased product used internally by the dynamic
// (slice-arity) composition strategies. Application code never sees
// it directly: AllSlice/AnySlice/SeqSlice convert to and from it.
type Values = []any

// erasedInvoke type-erases a Continuation[T]'s invoke so the
// composition core can treat operands of different static types
// uniformly, recovering T only at the edges (All2/All3/AllSlice and
// friends) via a type assertion.
type erasedInvoke func(onValue func(any), onError func(Error), onAbort func())

func erase[T any](c Continuation[T]) erasedInvoke {
	c.state.markConsumed()
	return func(onValue func(any), onError func(Error), onAbort func()) {
		c.state.invoke(promiseFunc[T]{
			onValue: func(v T) { onValue(v) },
			onError: onError,
			onAbort: onAbort,
		})
	}
}

// freezeOperand freezes c (composition operators freeze every operand
// they capture, per [Continuation.Freeze]) and folds its ownership
// token into acc via [Ownership.Combine], the rule spec.md assigns to
// composed operands: the result continuation is acquired only if every
// operand still is, and frozen if any operand is.
func freezeOperand[T any](acc Ownership, c Continuation[T]) Ownership {
	c.state.ownership = c.state.ownership.Freeze()
	return acc.Combine(c.state.ownership)
}

type allKind uint8

const (
	allSuccess allKind = iota
	allFailure
	allAborted
)

type allResult struct {
	kind   allKind
	values Values
	err    Error
}

// allCoreRun is the shared submitter behind All2/All3/AllSlice: it
// completes once every operand has produced a value, or as soon as
// any operand fails or aborts — whichever happens first wins, guarded
// by a single registration onceGuard so a second late arrival is
// simply ignored rather than racing onDone.
func allCoreRun(ops []erasedInvoke, onDone func(res allResult)) {
	n := len(ops)
	if n == 0 {
		onDone(allResult{kind: allSuccess, values: Values{}})
		return
	}
	slots := acquireSlots(n)
	var mu sync.Mutex
	remaining := n
	var done onceGuard
	for i, op := range ops {
		i, op := i, op
		op(
			func(v any) {
				mu.Lock()
				slots[i] = v
				remaining--
				r := remaining
				mu.Unlock()
				if r == 0 && done.use() {
					onDone(allResult{kind: allSuccess, values: slots})
				}
			},
			func(e Error) {
				if done.use() {
					onDone(allResult{kind: allFailure, err: e})
				}
			},
			func() {
				if done.use() {
					onDone(allResult{kind: allAborted})
				}
			},
		)
	}
}

// AllSlice completes once every operand in conts has produced a
// value, yielding them in operand order. It fails or aborts as soon
// as any single operand does, matching the conservative reading of
// spec.md §9 open question 1: an aggregate cannot complete
// successfully once any operand has failed or aborted.
func AllSlice[T any](conts ...Continuation[T]) Continuation[[]T] {
	ops := make([]erasedInvoke, len(conts))
	owner := newOwnership()
	for i, c := range conts {
		owner = freezeOperand(owner, c)
		ops[i] = erase(c)
	}
	result := Make[[]T](func(p Promise[[]T]) {
		allCoreRun(ops, func(res allResult) {
			switch res.kind {
			case allSuccess:
				out := make([]T, len(res.values))
				for i, v := range res.values {
					out[i] = v.(T)
				}
				releaseSlots(res.values)
				p.SetValue(out)
			case allFailure:
				p.SetException(res.err)
			default:
				p.Abort()
			}
		})
	})
	result.state.ownership = owner
	return result
}

// All2 is the statically typed, heterogeneous-operand sugar for
// AllSlice over exactly two operands.
func All2[A, B any](ca Continuation[A], cb Continuation[B]) Continuation[Pair[A, B]] {
	owner := freezeOperand(freezeOperand(newOwnership(), ca), cb)
	ops := []erasedInvoke{erase(ca), erase(cb)}
	result := Make[Pair[A, B]](func(p Promise[Pair[A, B]]) {
		allCoreRun(ops, func(res allResult) {
			switch res.kind {
			case allSuccess:
				pair := Pair[A, B]{First: res.values[0].(A), Second: res.values[1].(B)}
				releaseSlots(res.values)
				p.SetValue(pair)
			case allFailure:
				p.SetException(res.err)
			default:
				p.Abort()
			}
		})
	})
	result.state.ownership = owner
	return result
}

// All3 is the three-operand counterpart of [All2].
func All3[A, B, C any](ca Continuation[A], cb Continuation[B], cc Continuation[C]) Continuation[Triple[A, B, C]] {
	owner := freezeOperand(freezeOperand(freezeOperand(newOwnership(), ca), cb), cc)
	ops := []erasedInvoke{erase(ca), erase(cb), erase(cc)}
	result := Make[Triple[A, B, C]](func(p Promise[Triple[A, B, C]]) {
		allCoreRun(ops, func(res allResult) {
			switch res.kind {
			case allSuccess:
				triple := Triple[A, B, C]{
					First:  res.values[0].(A),
					Second: res.values[1].(B),
					Third:  res.values[2].(C),
				}
				releaseSlots(res.values)
				p.SetValue(triple)
			case allFailure:
				p.SetException(res.err)
			default:
				p.Abort()
			}
		})
	})
	result.state.ownership = owner
	return result
}

type anyKind uint8

const (
	anySuccess anyKind = iota
	anyFailure
	anyAborted
)

type anyResult struct {
	kind  anyKind
	value any
	err   Error
}

// anyCoreRun completes as soon as the first operand settles, by
// whichever path; every later operand's outcome is discarded.
func anyCoreRun(ops []erasedInvoke, onDone func(res anyResult)) {
	if len(ops) == 0 {
		onDone(anyResult{kind: anyAborted})
		return
	}
	var done onceGuard
	for _, op := range ops {
		op(
			func(v any) {
				if done.use() {
					onDone(anyResult{kind: anySuccess, value: v})
				}
			},
			func(e Error) {
				if done.use() {
					onDone(anyResult{kind: anyFailure, err: e})
				}
			},
			func() {
				if done.use() {
					onDone(anyResult{kind: anyAborted})
				}
			},
		)
	}
}

// AnySlice completes with the first operand in conts to settle, by
// whichever path it settles.
func AnySlice[T any](conts ...Continuation[T]) Continuation[T] {
	ops := make([]erasedInvoke, len(conts))
	owner := newOwnership()
	for i, c := range conts {
		owner = freezeOperand(owner, c)
		ops[i] = erase(c)
	}
	result := Make[T](func(p Promise[T]) {
		anyCoreRun(ops, func(res anyResult) {
			switch res.kind {
			case anySuccess:
				p.SetValue(res.value.(T))
			case anyFailure:
				p.SetException(res.err)
			default:
				p.Abort()
			}
		})
	})
	result.state.ownership = owner
	return result
}

// Any2 is the two-operand sugar for AnySlice. Unlike All2/All3, "any"
// has no need for a heterogeneous TupleLike result: whichever operand
// wins, the result type is the common T.
func Any2[T any](ca, cb Continuation[T]) Continuation[T] {
	return AnySlice(ca, cb)
}

// SeqSlice runs conts strictly one after another — the next operand
// is not even invoked until the previous one has produced a value —
// stopping at the first failure or abort.
func SeqSlice[T any](conts ...Continuation[T]) Continuation[[]T] {
	owner := newOwnership()
	for _, c := range conts {
		owner = freezeOperand(owner, c)
		c.state.markConsumed()
	}
	result := Make[[]T](func(p Promise[[]T]) {
		out := make([]T, len(conts))
		var step func(i int)
		step = func(i int) {
			if i == len(conts) {
				p.SetValue(out)
				return
			}
			conts[i].state.invoke(promiseFunc[T]{
				onValue: func(v T) {
					out[i] = v
					step(i + 1)
				},
				onError: p.SetException,
				onAbort: p.Abort,
			})
		}
		step(0)
	})
	result.state.ownership = owner
	return result
}

// Seq2 is the statically typed, heterogeneous-operand sugar for
// sequential composition of exactly two operands: cb is not invoked
// until ca has produced a value.
func Seq2[A, B any](ca Continuation[A], cb Continuation[B]) Continuation[Pair[A, B]] {
	owner := freezeOperand(freezeOperand(newOwnership(), ca), cb)
	ca.state.markConsumed()
	cb.state.markConsumed()
	result := Make[Pair[A, B]](func(p Promise[Pair[A, B]]) {
		ca.state.invoke(promiseFunc[A]{
			onValue: func(av A) {
				cb.state.invoke(promiseFunc[B]{
					onValue: func(bv B) { p.SetValue(Pair[A, B]{First: av, Second: bv}) },
					onError: p.SetException,
					onAbort: p.Abort,
				})
			},
			onError: p.SetException,
			onAbort: p.Abort,
		})
	})
	result.state.ownership = owner
	return result
}

// Seq3 is the three-operand counterpart of [Seq2].
func Seq3[A, B, C any](ca Continuation[A], cb Continuation[B], cc Continuation[C]) Continuation[Triple[A, B, C]] {
	owner := freezeOperand(freezeOperand(freezeOperand(newOwnership(), ca), cb), cc)
	ca.state.markConsumed()
	cb.state.markConsumed()
	cc.state.markConsumed()
	result := Make[Triple[A, B, C]](func(p Promise[Triple[A, B, C]]) {
		ca.state.invoke(promiseFunc[A]{
			onValue: func(av A) {
				cb.state.invoke(promiseFunc[B]{
					onValue: func(bv B) {
						cc.state.invoke(promiseFunc[C]{
							onValue: func(cv C) {
								p.SetValue(Triple[A, B, C]{First: av, Second: bv, Third: cv})
							},
							onError: p.SetException,
							onAbort: p.Abort,
						})
					},
					onError: p.SetException,
					onAbort: p.Abort,
				})
			},
			onError: p.SetException,
			onAbort: p.Abort,
		})
	})
	result.state.ownership = owner
	return result
}

// Populate lifts a fixed slice of plain values into already-resolved
// continuations, the free-standing helper spec.md §4.5.5 describes
// for seeding a composition strategy from data that is not itself
// asynchronous.
func Populate[T any](values ...T) []Continuation[T] {
	out := make([]Continuation[T], len(values))
	for i, v := range values {
		out[i] = MakeReady(v)
	}
	return out
}

// And is sugar for AllSlice(c, other).
func (c Continuation[T]) And(other Continuation[T]) Continuation[[]T] {
	return AllSlice(c, other)
}

// Or is sugar for AnySlice(c, other).
func (c Continuation[T]) Or(other Continuation[T]) Continuation[T] {
	return AnySlice(c, other)
}

// Seq is sugar for SeqSlice(c, other).
func (c Continuation[T]) Seq(other Continuation[T]) Continuation[[]T] {
	return SeqSlice(c, other)
}
