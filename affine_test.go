// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOnceGuard_UseOnce(t *testing.T) {
	var g onceGuard
	require.True(t, g.use())
	require.False(t, g.use())
	require.True(t, g.spent())
}

func TestOnceGuard_MustUsePanicsOnReuse(t *testing.T) {
	var g onceGuard
	require.NotPanics(t, func() { g.mustUse("boom") })
	require.PanicsWithValue(t, "boom", func() { g.mustUse("boom") })
}

func TestOnceGuard_ConcurrentUseGrantsExactlyOneWinner(t *testing.T) {
	var g onceGuard
	var wg sync.WaitGroup
	wins := make(chan bool, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- g.use()
		}()
	}
	wg.Wait()
	close(wins)

	winCount := 0
	for w := range wins {
		if w {
			winCount++
		}
	}
	require.Equal(t, 1, winCount)
}
