// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllSlice_CollectsInOrder(t *testing.T) {
	c := AllSlice(MakeReady(1), MakeReady(2), MakeReady(3))
	out := drive(c)
	require.True(t, out.IsValue())
	require.Equal(t, []int{1, 2, 3}, out.Value())
}

func TestAllSlice_FailsOnFirstFailure(t *testing.T) {
	c := AllSlice(MakeReady(1), MakeExceptional[int](NewError(errBoom)), MakeReady(3))
	out := drive(c)
	require.True(t, out.IsException())
}

func TestAllSlice_Empty(t *testing.T) {
	c := AllSlice[int]()
	out := drive(c)
	require.True(t, out.IsValue())
	require.Empty(t, out.Value())
}

func TestAll2_BuildsPair(t *testing.T) {
	c := All2(MakeReady(1), MakeReady("two"))
	out := drive(c)
	require.Equal(t, Pair[int, string]{First: 1, Second: "two"}, out.Value())
}

func TestAll3_BuildsTriple(t *testing.T) {
	c := All3(MakeReady(1), MakeReady("two"), MakeReady(3.0))
	out := drive(c)
	require.Equal(t, Triple[int, string, float64]{First: 1, Second: "two", Third: 3.0}, out.Value())
}

func TestAnySlice_FirstWins(t *testing.T) {
	c := AnySlice(MakeReady(1), MakeReady(2))
	out := drive(c)
	require.Equal(t, 1, out.Value())
}

func TestAny2_IsAliasForAnySlice(t *testing.T) {
	c := Any2(MakeExceptional[int](NewError(errBoom)), MakeReady(2))
	out := drive(c)
	require.True(t, out.IsException())
}

func TestSeqSlice_RunsInOrderAndStopsOnFailure(t *testing.T) {
	var order []int
	mk := func(i int, fail bool) Continuation[int] {
		if fail {
			return Make[int](func(p Promise[int]) {
				order = append(order, i)
				p.SetException(NewError(errBoom))
			})
		}
		return Make[int](func(p Promise[int]) {
			order = append(order, i)
			p.SetValue(i)
		})
	}
	c := SeqSlice(mk(1, false), mk(2, true), mk(3, false))
	out := drive(c)
	require.True(t, out.IsException())
	require.Equal(t, []int{1, 2}, order)
}

func TestSeq2_OrdersOperands(t *testing.T) {
	c := Seq2(MakeReady(1), MakeReady("b"))
	out := drive(c)
	require.Equal(t, Pair[int, string]{First: 1, Second: "b"}, out.Value())
}

func TestSeq3_OrdersOperands(t *testing.T) {
	c := Seq3(MakeReady(1), MakeReady("b"), MakeReady(true))
	out := drive(c)
	require.Equal(t, Triple[int, string, bool]{First: 1, Second: "b", Third: true}, out.Value())
}

func TestPopulate_LiftsPlainValues(t *testing.T) {
	conts := Populate(1, 2, 3)
	require.Len(t, conts, 3)
	for i, c := range conts {
		require.True(t, c.IsReady())
		require.Equal(t, i+1, c.Unpack().Value())
	}
}

func TestAll2_FreezesAndCombinesOperandOwnership(t *testing.T) {
	a := MakeReady(1).Freeze()
	b := MakeReady("two")
	c := All2(a, b)
	require.True(t, a.state.ownership.Frozen())
	require.True(t, b.state.ownership.Frozen())
	require.True(t, c.state.ownership.Frozen())
}

func TestAllSlice_ReleasedOperandMakesResultNotAcquired(t *testing.T) {
	a := MakeReady(1).Release()
	c := AllSlice(a)
	require.False(t, c.state.ownership.Acquired())
}

func TestContinuation_AndOrSeqMethods(t *testing.T) {
	require.Equal(t, []int{1, 2}, drive(MakeReady(1).And(MakeReady(2))).Value())
	require.Equal(t, 1, drive(MakeReady(1).Or(MakeReady(2))).Value())
	require.Equal(t, []int{1, 2}, drive(MakeReady(1).Seq(MakeReady(2))).Value())
}
