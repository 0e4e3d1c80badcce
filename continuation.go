// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

// Promise is the object a continuation invokes to deliver its result.
// Exactly one of SetValue, SetException, SetCanceled, or Abort must be
// called, at most once, by whoever holds the Promise.
//
// SetCanceled is sugar for SetException(Error{}) — a falsy Error is
// what spec.md calls cancellation. Abort corresponds to the Empty
// outcome: the chain aborted and neither the value nor the error path
// should observe anything.
type Promise[T any] interface {
	SetValue(v T)
	SetException(err Error)
	SetCanceled()
	Abort()
}

// promiseFunc adapts three (or four) plain closures into a Promise.
// A nil field is a legal no-op, so call sites only need to populate
// the branches they care about.
type promiseFunc[T any] struct {
	onValue func(T)
	onError func(Error)
	onAbort func()
}

func (p promiseFunc[T]) SetValue(v T) {
	if p.onValue != nil {
		p.onValue(v)
	}
}

func (p promiseFunc[T]) SetException(err Error) {
	if p.onError != nil {
		p.onError(err)
	}
}

func (p promiseFunc[T]) SetCanceled() {
	p.SetException(Error{})
}

func (p promiseFunc[T]) Abort() {
	if p.onAbort != nil {
		p.onAbort()
	}
}

// dataKind tags which of the three shapes a continuation's state
// currently holds: a lazy producer, an already-resolved Outcome, or a
// composition tree awaiting a submitter. The composition operators in
// compose.go build kindCallable continuations directly, so no
// constructor in this package produces kindComposition.
type dataKind uint8

const (
	kindCallable dataKind = iota
	kindReady
	kindComposition
)

// contState is the shared, pointer-identified state behind a
// Continuation value. Continuation itself is a thin value wrapper so
// that "moving" a continuation (passing it to Then, Done, or a
// composition operator) is just copying the pointer — the move
// discipline is enforced by consumed, not by language-level linear
// types, since Go has none.
type contState[T any] struct {
	kind      dataKind
	produce   func(Promise[T])
	ready     Outcome[T]
	ownership Ownership
	consumed  onceGuard
}

// invoke dispatches to the producer regardless of whether the
// underlying state is a lazy callable or an already-resolved Outcome.
// Invoking a kindComposition state panics.
func (s *contState[T]) invoke(p Promise[T]) {
	switch s.kind {
	case kindReady:
		switch {
		case s.ready.IsValue():
			p.SetValue(s.ready.Value())
		case s.ready.IsException():
			p.SetException(s.ready.Exception())
		default:
			p.Abort()
		}
	case kindCallable:
		s.produce(p)
	default:
		panic("contin: composition continuation invoked before being finalised")
	}
}

// markConsumed enforces spec.md invariant 1: a continuation is
// invoked at most once. Every operation that consumes a Continuation
// by value (Then/Fail/Next, Done, Unpack, and every composition
// operator) calls this exactly once on its input(s).
func (s *contState[T]) markConsumed() {
	s.consumed.mustUse("contin: continuation used more than once")
}

func (s *contState[T]) assertAcquired() {
	if !s.ownership.acquired {
		panic("contin: operation on a released continuation")
	}
}

// Continuation is a move-discipline, single-shot handle to an
// asynchronous computation whose eventual completion carries a value
// of type T (T is frequently a tuple-like product type such as [Pair]
// or [Triple] when composing several continuations together).
//
// Continuation values are not safe for concurrent use: a single
// continuation must be owned by one writer at a time, consistent with
// spec.md §5. Ownership transfers by copying the value (its identity
// lives in the pointed-to contState, not the wrapper).
type Continuation[T any] struct {
	state *contState[T]
}

func newContinuation[T any](kind dataKind, produce func(Promise[T]), ready Outcome[T]) Continuation[T] {
	return Continuation[T]{state: &contState[T]{
		kind:      kind,
		produce:   produce,
		ready:     ready,
		ownership: newOwnership(),
	}}
}

// Make wraps a callback-accepting producer into a freshly acquired,
// unfrozen Continuation. produce is called at most once, whenever the
// continuation is eventually invoked.
func Make[T any](produce func(Promise[T])) Continuation[T] {
	return newContinuation[T](kindCallable, produce, Outcome[T]{})
}

// MakeReady constructs an already-resolved continuation carrying v.
func MakeReady[T any](v T) Continuation[T] {
	return newContinuation[T](kindReady, nil, Ready(v))
}

// MakeExceptional constructs an already-resolved continuation carrying
// a truthy failure.
func MakeExceptional[T any](err Error) Continuation[T] {
	return newContinuation[T](kindReady, nil, Failed[T](err))
}

// MakeCancelling constructs an already-resolved continuation carrying
// a falsy (cancellation) Error.
func MakeCancelling[T any]() Continuation[T] {
	return newContinuation[T](kindReady, nil, Cancelled[T]())
}

// makeAborted constructs an already-resolved continuation in the
// Empty state — used internally to propagate an abort decision
// through the chain transform without allocating a new producer.
func makeAborted[T any]() Continuation[T] {
	return newContinuation[T](kindReady, nil, EmptyOutcome[T]())
}

// IsReady reports whether c already holds a resolved [Outcome],
// allowing transport adapters to bypass a callback round-trip.
func (c Continuation[T]) IsReady() bool {
	return c.state.kind == kindReady
}

// Unpack consumes a ready continuation and returns its Outcome. It
// panics if c is not ready; callers should check [Continuation.IsReady]
// first.
func (c Continuation[T]) Unpack() Outcome[T] {
	if c.state.kind != kindReady {
		panic("contin: Unpack called on a continuation that is not ready")
	}
	c.state.markConsumed()
	return c.state.ready
}

// Done drives c to completion with a no-op success callback. On the
// error path it applies the terminal trap/swallow policy (§4.6,
// [TrapUnhandledErrors]): a truthy Error traps, a falsy one (plain
// cancellation) is silently discarded.
func (c Continuation[T]) Done() {
	c.state.assertAcquired()
	c.state.markConsumed()
	c.state.invoke(promiseFunc[T]{
		onValue: func(T) {},
		onError: func(e Error) { trapOrSwallow(e) },
		onAbort: func() {},
	})
}

// Freeze sets the frozen bit of c's [Ownership] token. Go has no
// destructors, so this package never dispatches a continuation that is
// dropped unused; the bit marks an operand captured by a composition
// and is not consulted by Done or the chain transforms. Composition
// operators set it on every operand they capture.
func (c Continuation[T]) Freeze() Continuation[T] {
	c.state.ownership = c.state.ownership.Freeze()
	return c
}

// Release clears the acquired bit without running terminal dispatch.
// Calling Release twice is a programmer error (spec.md invariant 8).
func (c Continuation[T]) Release() Continuation[T] {
	if !c.state.ownership.acquired {
		panic("contin: Release called on an already-released continuation")
	}
	c.state.ownership = c.state.ownership.Release()
	return c
}

// FutureSink is the minimal contract a blocking/awaitable transport
// adapter (out of scope for this package; see spec.md §1) exposes to
// receive a continuation's eventual result via [Continuation.Futurize].
type FutureSink[T any] interface {
	Resolve(v T)
	Reject(err Error)
}

// Futurize hands c off to an external blocking/awaitable collaborator,
// consuming c exactly once. The Empty outcome resolves neither
// Resolve nor Reject — a futurized continuation that aborts simply
// never settles the sink, matching "no further invocation on either
// path".
func (c Continuation[T]) Futurize(sink FutureSink[T]) {
	c.state.markConsumed()
	c.state.invoke(promiseFunc[T]{
		onValue: sink.Resolve,
		onError: sink.Reject,
		onAbort: func() {},
	})
}
