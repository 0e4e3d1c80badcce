// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package schedulers

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sorahane-labs/contin"
)

type countingWork struct {
	ran       atomic.Bool
	errored   atomic.Bool
	cancelled atomic.Bool
}

func (w *countingWork) SetValue()            { w.ran.Store(true) }
func (w *countingWork) SetException(contin.Error) { w.errored.Store(true) }
func (w *countingWork) SetCanceled()         { w.cancelled.Store(true) }

func TestPool_SchedulesWork(t *testing.T) {
	p := NewPool(context.Background(), 4)
	w := &countingWork{}
	p.Schedule(w)
	require.NoError(t, p.Wait())
	require.True(t, w.ran.Load())
}

func TestPool_CancelsOnContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPool(ctx, 1)
	w := &countingWork{}
	p.Schedule(w)
	require.NoError(t, p.Wait())
	require.True(t, w.cancelled.Load())
	require.False(t, w.ran.Load())
}

func TestPool_RunsContinuationThroughScheduler(t *testing.T) {
	p := NewPool(context.Background(), 2)
	c := contin.Then(contin.MakeReady(2), func(v int) int { return v * 21 }, contin.WithScheduler(p))
	sink := &blockingSink{done: make(chan struct{})}
	c.Futurize(sink)
	require.NoError(t, p.Wait())
	<-sink.done
	require.Equal(t, 42, sink.value)
}

type blockingSink struct {
	value int
	done  chan struct{}
}

func (s *blockingSink) Resolve(v int) {
	s.value = v
	close(s.done)
}

func (s *blockingSink) Reject(contin.Error) {
	close(s.done)
}
