// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOwnership_Lifecycle(t *testing.T) {
	o := newOwnership()
	require.True(t, o.Acquired())
	require.False(t, o.Frozen())

	o = o.Release()
	require.False(t, o.Acquired())
}

func TestOwnership_FreezeIsIdempotent(t *testing.T) {
	o := newOwnership()
	once := o.Freeze()
	twice := once.Freeze()
	require.Equal(t, once, twice)
}

func TestOwnership_Combine(t *testing.T) {
	a := newOwnership()
	b := newOwnership().Freeze()

	combined := a.Combine(b)
	require.True(t, combined.Acquired())
	require.True(t, combined.Frozen())

	released := b.Release()
	combined = a.Combine(released)
	require.False(t, combined.Acquired())
}
