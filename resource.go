// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

// Bracket acquires a resource, runs use against it, and guarantees
// release runs afterward regardless of how use settled — value,
// exception, or abort — before propagating use's original outcome
// unchanged. A failure from release itself goes to the terminal
// trap/swallow policy ([TrapUnhandledErrors]) rather than overriding
// use's outcome, the same try/finally discipline the teacher library's
// resource safety helpers apply to algebraic effects. A panic from use
// or release is not recovered.
func Bracket[R, A any](acquire Continuation[R], use func(R) Continuation[A], release func(R) Continuation[struct{}]) Continuation[A] {
	acquire.state.markConsumed()
	return Make[A](func(p Promise[A]) {
		acquire.state.invoke(promiseFunc[R]{
			onValue: func(r R) {
				body := use(r)
				body.state.markConsumed()
				body.state.invoke(promiseFunc[A]{
					onValue: func(a A) {
						runRelease(release(r), func() { p.SetValue(a) })
					},
					onError: func(e Error) {
						runRelease(release(r), func() { p.SetException(e) })
					},
					onAbort: func() {
						runRelease(release(r), func() { p.Abort() })
					},
				})
			},
			onError: p.SetException,
			onAbort: p.Abort,
		})
	})
}

func runRelease(release Continuation[struct{}], then func()) {
	release.state.markConsumed()
	release.state.invoke(promiseFunc[struct{}]{
		onValue: func(struct{}) { then() },
		onError: func(e Error) {
			trapOrSwallow(e)
			then()
		},
		onAbort: then,
	})
}

// OnError runs cleanup when body fails, then rethrows body's original
// Error unchanged. The value and abort paths pass through untouched.
func OnError[A any](body Continuation[A], cleanup func(Error) Continuation[struct{}]) Continuation[A] {
	body.state.markConsumed()
	return Make[A](func(p Promise[A]) {
		body.state.invoke(promiseFunc[A]{
			onValue: p.SetValue,
			onError: func(e Error) {
				runRelease(cleanup(e), func() { p.SetException(e) })
			},
			onAbort: p.Abort,
		})
	})
}
