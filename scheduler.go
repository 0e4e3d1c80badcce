// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

// Work is a unit of scheduled completion handed to a [Scheduler] by the
// chain machinery behind [WithScheduler]. The Scheduler must call
// exactly one of its methods, once: SetValue runs the scheduled step,
// while SetException and SetCanceled skip the step and settle the
// chained continuation with that Error or with cancellation.
type Work interface {
	SetValue()
	SetException(err Error)
	SetCanceled()
}

// Scheduler is the external collaborator this package never implements
// concretely (see spec.md §6): it decides when and on which execution
// context a chained step actually runs. Core chain transforms
// (Then/Fail/Next and their variants) accept an optional Scheduler via
// [WithScheduler]; when none is given, the step runs inline on the
// invoking goroutine.
//
// A concrete Scheduler backed by golang.org/x/sync/errgroup lives in
// the schedulers subpackage.
type Scheduler interface {
	Schedule(w Work)
}

// genericWork adapts three plain closures into a Work.
type genericWork struct {
	run      func()
	onErr    func(Error)
	onCancel func()
}

func (w genericWork) SetValue() {
	if w.run != nil {
		w.run()
	}
}

func (w genericWork) SetException(err Error) {
	if w.onErr != nil {
		w.onErr(err)
	}
}

func (w genericWork) SetCanceled() {
	if w.onCancel != nil {
		w.onCancel()
	}
}

// runOnScheduler submits step to sched. A Scheduler is free to decide
// the step should not run at all and instead settle the Work via
// SetException or SetCanceled (spec.md §6); onFailed/onCanceled let
// the caller's Promise be resolved on those paths too, instead of
// hanging forever waiting for a step that is never going to run. When
// sched is nil, step runs inline and onFailed/onCanceled are never
// reached.
func runOnScheduler(sched Scheduler, step func(), onFailed func(Error), onCanceled func()) {
	if sched == nil {
		step()
		return
	}
	sched.Schedule(genericWork{run: step, onErr: onFailed, onCancel: onCanceled})
}
