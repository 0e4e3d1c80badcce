// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPair_LenAtRebuild(t *testing.T) {
	p := Pair[int, string]{First: 1, Second: "a"}
	require.Equal(t, 2, p.Len())
	require.Equal(t, 1, p.At(0))
	require.Equal(t, "a", p.At(1))

	rebuilt := p.Rebuild([]any{2, "b"})
	require.Equal(t, Pair[int, string]{First: 2, Second: "b"}, rebuilt)
}

func TestPair_AtOutOfRangePanics(t *testing.T) {
	p := Pair[int, string]{}
	require.Panics(t, func() { p.At(2) })
}

func TestTriple_LenAtRebuild(t *testing.T) {
	tr := Triple[int, string, bool]{First: 1, Second: "a", Third: true}
	require.Equal(t, 3, tr.Len())
	require.Equal(t, true, tr.At(2))

	rebuilt := tr.Rebuild([]any{2, "b", false})
	require.Equal(t, Triple[int, string, bool]{First: 2, Second: "b", Third: false}, rebuilt)
}

func TestSpreadOf_WrapsValues(t *testing.T) {
	s := SpreadOf(1, 2, 3)
	require.Equal(t, []any{1, 2, 3}, s.Values)
}
