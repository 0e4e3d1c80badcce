// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_ZeroValueIsCancellation(t *testing.T) {
	var e Error
	require.False(t, e.Set())
	require.Nil(t, e.Cause())
	require.Equal(t, "contin: cancelled", e.Error())
}

func TestError_NewErrorWraps(t *testing.T) {
	cause := errors.New("boom")
	e := NewError(cause)
	require.True(t, e.Set())
	require.Equal(t, cause, e.Cause())
	require.Equal(t, "boom", e.Error())
	require.ErrorIs(t, e, cause)
}
