// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

// TupleLike is the interface a product type implements to take part
// in [MapPack] and [TraverseAsync] as a flattenable node rather than a
// single leaf (spec.md §3's "TupleLike" category). [Pair] and [Triple]
// below are the built-in instances; application code can implement
// this interface on its own product types.
type TupleLike interface {
	// Len reports the number of elements.
	Len() int
	// At returns the i'th element, 0 <= i < Len().
	At(i int) any
	// Rebuild constructs a new TupleLike of the same shape from values,
	// which has exactly Len() elements in the same order as At.
	Rebuild(values []any) TupleLike
}

// Spread marks a slice of values as operands to flatten 1:N into the
// surrounding traversal, rather than treated as a single Container
// leaf (spec.md §3's Spread marker).
type Spread struct {
	Values []any
}

// SpreadOf wraps vs as a Spread marker.
func SpreadOf(vs ...any) Spread {
	return Spread{Values: vs}
}

// Pair is the built-in two-element TupleLike, used pervasively as the
// result type of [All2] and the pairwise composition sugar.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) Len() int { return 2 }

func (p Pair[A, B]) At(i int) any {
	switch i {
	case 0:
		return p.First
	case 1:
		return p.Second
	default:
		panic("contin: Pair index out of range")
	}
}

func (p Pair[A, B]) Rebuild(values []any) TupleLike {
	if len(values) != 2 {
		panic("contin: Pair.Rebuild requires exactly 2 values")
	}
	return Pair[A, B]{First: values[0].(A), Second: values[1].(B)}
}

// Triple is the built-in three-element TupleLike.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func (t Triple[A, B, C]) Len() int { return 3 }

func (t Triple[A, B, C]) At(i int) any {
	switch i {
	case 0:
		return t.First
	case 1:
		return t.Second
	case 2:
		return t.Third
	default:
		panic("contin: Triple index out of range")
	}
}

func (t Triple[A, B, C]) Rebuild(values []any) TupleLike {
	if len(values) != 3 {
		panic("contin: Triple.Rebuild requires exactly 3 values")
	}
	return Triple[A, B, C]{First: values[0].(A), Second: values[1].(B), Third: values[2].(C)}
}
