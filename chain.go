// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

// chainConfig holds the optional knobs a chain transform accepts.
type chainConfig struct {
	scheduler Scheduler
}

// Option configures a chain transform (Then/Fail/Next and their
// Outcome/Continuation-returning variants).
type Option func(*chainConfig)

// WithScheduler routes the continuation's downstream step through
// sched rather than running it inline on the invoking goroutine.
func WithScheduler(sched Scheduler) Option {
	return func(c *chainConfig) { c.scheduler = sched }
}

func applyOptions(opts []Option) chainConfig {
	var cfg chainConfig
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// deliverOutcome dispatches an already-computed Outcome into p,
// fanning out to the three Promise methods it corresponds to.
func deliverOutcome[U any](p Promise[U], o Outcome[U]) {
	switch {
	case o.IsValue():
		p.SetValue(o.Value())
	case o.IsException():
		p.SetException(o.Exception())
	default:
		p.Abort()
	}
}

// consumeFor acquires the bookkeeping every chain transform performs on
// its input continuation before building the replacement one.
func consumeFor[T any](c Continuation[T]) {
	c.state.assertAcquired()
	c.state.markConsumed()
}

// Then attaches f to the value path of c: when c resolves with a
// value, f runs (optionally via a [Scheduler]) and the returned
// continuation resolves with f's result. The error and abort paths
// pass through unchanged.
func Then[T, U any](c Continuation[T], f func(T) U, opts ...Option) Continuation[U] {
	cfg := applyOptions(opts)
	consumeFor(c)
	return Make[U](func(p Promise[U]) {
		c.state.invoke(promiseFunc[T]{
			onValue: func(v T) {
				runOnScheduler(cfg.scheduler, func() { p.SetValue(f(v)) }, p.SetException, p.SetCanceled)
			},
			onError: p.SetException,
			onAbort: p.Abort,
		})
	})
}

// ThenOutcome is [Then] for a function that
// decides its own outcome state instead of always succeeding.
func ThenOutcome[T, U any](c Continuation[T], f func(T) Outcome[U], opts ...Option) Continuation[U] {
	cfg := applyOptions(opts)
	consumeFor(c)
	return Make[U](func(p Promise[U]) {
		c.state.invoke(promiseFunc[T]{
			onValue: func(v T) {
				runOnScheduler(cfg.scheduler, func() { deliverOutcome(p, f(v)) }, p.SetException, p.SetCanceled)
			},
			onError: p.SetException,
			onAbort: p.Abort,
		})
	})
}

// ThenContinuation chains c into another asynchronous continuation:
// f's result continuation is invoked in turn, and its outcome becomes
// the outcome of the returned continuation. This is the package's
// monadic bind.
func ThenContinuation[T, U any](c Continuation[T], f func(T) Continuation[U], opts ...Option) Continuation[U] {
	cfg := applyOptions(opts)
	consumeFor(c)
	return Make[U](func(p Promise[U]) {
		c.state.invoke(promiseFunc[T]{
			onValue: func(v T) {
				runOnScheduler(cfg.scheduler, func() {
					next := f(v)
					next.state.markConsumed()
					next.state.invoke(p)
				}, p.SetException, p.SetCanceled)
			},
			onError: p.SetException,
			onAbort: p.Abort,
		})
	})
}

// Fail attaches a recovery function to the error path of c: a truthy
// or falsy Error is handed to f, whose result becomes the resolved
// value. The value and abort paths pass through unchanged.
func Fail[T any](c Continuation[T], f func(Error) T, opts ...Option) Continuation[T] {
	cfg := applyOptions(opts)
	consumeFor(c)
	return Make[T](func(p Promise[T]) {
		c.state.invoke(promiseFunc[T]{
			onValue: p.SetValue,
			onError: func(e Error) {
				runOnScheduler(cfg.scheduler, func() { p.SetValue(f(e)) }, p.SetException, p.SetCanceled)
			},
			onAbort: p.Abort,
		})
	})
}

// FailOutcome is [Fail] for a recovery function that decides its own
// outcome state instead of always recovering into a value.
func FailOutcome[T any](c Continuation[T], f func(Error) Outcome[T], opts ...Option) Continuation[T] {
	cfg := applyOptions(opts)
	consumeFor(c)
	return Make[T](func(p Promise[T]) {
		c.state.invoke(promiseFunc[T]{
			onValue: p.SetValue,
			onError: func(e Error) {
				runOnScheduler(cfg.scheduler, func() { deliverOutcome(p, f(e)) }, p.SetException, p.SetCanceled)
			},
			onAbort: p.Abort,
		})
	})
}

// FailContinuation recovers from an error by chaining into another
// continuation of the same result type.
func FailContinuation[T any](c Continuation[T], f func(Error) Continuation[T], opts ...Option) Continuation[T] {
	cfg := applyOptions(opts)
	consumeFor(c)
	return Make[T](func(p Promise[T]) {
		c.state.invoke(promiseFunc[T]{
			onValue: p.SetValue,
			onError: func(e Error) {
				runOnScheduler(cfg.scheduler, func() {
					next := f(e)
					next.state.markConsumed()
					next.state.invoke(p)
				}, p.SetException, p.SetCanceled)
			},
			onAbort: p.Abort,
		})
	})
}

// Next runs regardless of how c settled — value, exception, or
// abort — and maps the whole [Outcome] to a new value. This is the
// chain transform to reach for when cleanup or logging needs to
// observe every path uniformly, rather than wiring Then and Fail
// separately.
func Next[T, U any](c Continuation[T], f func(Outcome[T]) U, opts ...Option) Continuation[U] {
	cfg := applyOptions(opts)
	consumeFor(c)
	return Make[U](func(p Promise[U]) {
		c.state.invoke(promiseFunc[T]{
			onValue: func(v T) {
				runOnScheduler(cfg.scheduler, func() { p.SetValue(f(Ready(v))) }, p.SetException, p.SetCanceled)
			},
			onError: func(e Error) {
				runOnScheduler(cfg.scheduler, func() { p.SetValue(f(Failed[T](e))) }, p.SetException, p.SetCanceled)
			},
			onAbort: func() {
				runOnScheduler(cfg.scheduler, func() { p.SetValue(f(EmptyOutcome[T]())) }, p.SetException, p.SetCanceled)
			},
		})
	})
}

// NextOutcome is [Next] for a function that decides its own outcome
// state for the continuation it produces.
func NextOutcome[T, U any](c Continuation[T], f func(Outcome[T]) Outcome[U], opts ...Option) Continuation[U] {
	cfg := applyOptions(opts)
	consumeFor(c)
	return Make[U](func(p Promise[U]) {
		run := func(o Outcome[T]) {
			runOnScheduler(cfg.scheduler, func() { deliverOutcome(p, f(o)) }, p.SetException, p.SetCanceled)
		}
		c.state.invoke(promiseFunc[T]{
			onValue: func(v T) { run(Ready(v)) },
			onError: func(e Error) { run(Failed[T](e)) },
			onAbort: func() { run(EmptyOutcome[T]()) },
		})
	})
}

// NextContinuation is [Next] for a function that chains into another
// asynchronous continuation regardless of how c settled.
func NextContinuation[T, U any](c Continuation[T], f func(Outcome[T]) Continuation[U], opts ...Option) Continuation[U] {
	cfg := applyOptions(opts)
	consumeFor(c)
	return Make[U](func(p Promise[U]) {
		run := func(o Outcome[T]) {
			runOnScheduler(cfg.scheduler, func() {
				next := f(o)
				next.state.markConsumed()
				next.state.invoke(p)
			}, p.SetException, p.SetCanceled)
		}
		c.state.invoke(promiseFunc[T]{
			onValue: func(v T) { run(Ready(v)) },
			onError: func(e Error) { run(Failed[T](e)) },
			onAbort: func() { run(EmptyOutcome[T]()) },
		})
	})
}
