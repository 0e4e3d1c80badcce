// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package schedulers provides concrete [contin.Scheduler]
// implementations. contin's core algebra never depends on this
// package; callers that want a real dispatch target for
// [contin.WithScheduler] import it explicitly.
package schedulers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sorahane-labs/contin"
)

// Pool is a [contin.Scheduler] backed by an errgroup.Group: every
// scheduled [contin.Work] runs on its own goroutine, up to an optional
// concurrency limit. Pool is safe for concurrent use by multiple
// continuations scheduling work at once.
type Pool struct {
	group *errgroup.Group
	ctx   context.Context
}

// NewPool constructs a Pool bound to ctx. If limit is positive,
// concurrency is capped at limit in-flight goroutines via
// errgroup.Group.SetLimit; zero or negative means unbounded.
func NewPool(ctx context.Context, limit int) *Pool {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	return &Pool{group: g, ctx: ctx}
}

// Schedule submits w to run on the pool. A Work's goroutine always
// returns nil to the group — contin.Work reports its own
// success/failure/cancellation to the continuation it belongs to — so
// Wait reports no error for scheduled Work. A Work whose goroutine
// starts after the pool's context is done is settled with SetCanceled
// instead of being run.
func (p *Pool) Schedule(w contin.Work) {
	p.group.Go(func() error {
		select {
		case <-p.ctx.Done():
			w.SetCanceled()
			return nil
		default:
		}
		w.SetValue()
		return nil
	})
}

// Wait blocks until every Work scheduled so far has returned, the same
// way errgroup.Group.Wait does. It is safe to keep scheduling more
// Work from other goroutines while one goroutine is in Wait, as long
// as the caller does not rely on Wait observing those later
// submissions.
func (p *Pool) Wait() error {
	return p.group.Wait()
}
