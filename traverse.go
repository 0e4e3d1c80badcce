// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

import "reflect"

// category classifies a single argument for the purposes of [MapPack]
// and [TraverseAsync]: a Spread flattens 1:N, a TupleLike or a
// slice/array Container descends into its elements, and anything else
// is a Leaf the mapper/visitor sees directly.
type category uint8

const (
	categoryLeaf category = iota
	categoryContainer
	categoryTupleLike
	categorySpread
)

func categorize(v any) category {
	if _, ok := v.(Spread); ok {
		return categorySpread
	}
	if _, ok := v.(TupleLike); ok {
		return categoryTupleLike
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() {
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			return categoryContainer
		}
	}
	return categoryLeaf
}

// MapPack applies mapper — a func(L) U for whatever leaf type(s) occur
// in args — to every leaf reachable from args, descending into
// Containers and TupleLikes and flattening Spreads, and returns the
// mapped arguments in traversal order: a Container comes back as a []any
// of its mapped elements, and a TupleLike as the result of its Rebuild.
//
// mapper is taken as any rather than a typed func because args is
// heterogeneous; reflect.Value.Call is this package's one concession
// to the fact Go has no variadic generics or SFINAE-style dispatch to
// express "apply this to whatever shows up". A leaf whose type mapper
// cannot be called with passes through unchanged, the stand-in for
// the SFINAE fallthrough the original C++ traversal gets for free from
// overload resolution. A mapper result that is itself a [Spread] is
// flattened 1:N into the position the mapped leaf occupied — inside a
// growable [Container] this grows the container; at the top level it
// grows the returned pack; a fixed-arity [TupleLike] cannot grow, so a
// Spread result from mapping one of its elements panics instead of
// silently producing a malformed tuple.
func MapPack(mapper any, args ...any) []any {
	mv := reflect.ValueOf(mapper)
	result := make([]any, 0, len(args))
	for _, a := range args {
		if s, ok := a.(Spread); ok {
			for _, sv := range s.Values {
				result = append(result, mapNode(mv, sv)...)
			}
			continue
		}
		result = append(result, mapNode(mv, a)...)
	}
	return result
}

// mapNode maps node and returns the flattened replacement(s) for the
// single position node occupied in its parent. It is always a slice
// because a leaf mapped to a Spread expands to more than one
// replacement value.
func mapNode(mv reflect.Value, node any) []any {
	switch categorize(node) {
	case categorySpread:
		var out []any
		for _, sv := range node.(Spread).Values {
			out = append(out, mapNode(mv, sv)...)
		}
		return out
	case categoryTupleLike:
		tl := node.(TupleLike)
		n := tl.Len()
		vals := make([]any, 0, n)
		for i := 0; i < n; i++ {
			sub := mapNode(mv, tl.At(i))
			if len(sub) != 1 {
				panic("contin: mapper returned a Spread for a fixed-arity TupleLike element")
			}
			vals = append(vals, sub[0])
		}
		return []any{tl.Rebuild(vals)}
	case categoryContainer:
		rv := reflect.ValueOf(node)
		n := rv.Len()
		out := make([]any, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, mapNode(mv, rv.Index(i).Interface())...)
		}
		return []any{out}
	default:
		return leafResult(mv, node)
	}
}

// leafResult calls mapper on leaf, unless mapper is not callable with
// leaf's type, in which case leaf passes through unchanged. A Spread
// result is flattened into its constituent values.
func leafResult(mv reflect.Value, leaf any) []any {
	if !callableWith(mv, leaf) {
		return []any{leaf}
	}
	out := mv.Call([]reflect.Value{reflect.ValueOf(leaf)})[0].Interface()
	if s, ok := out.(Spread); ok {
		return s.Values
	}
	return []any{out}
}

// callableWith reports whether mv is a single-argument function whose
// parameter type leaf's runtime type is assignable to.
func callableWith(mv reflect.Value, leaf any) bool {
	mt := mv.Type()
	if mt.Kind() != reflect.Func || mt.NumIn() != 1 {
		return false
	}
	lt := reflect.TypeOf(leaf)
	if lt == nil {
		return false
	}
	return lt.AssignableTo(mt.In(0))
}

// Visitor drives [TraverseAsync] over a flattened leaf sequence.
//
// Visit is called once per leaf, in order. Returning true means the
// leaf was handled synchronously and traversal should continue
// immediately with the next leaf. Returning false means the leaf
// needs to detach the traversal: TraverseAsync calls Detach instead,
// and the traversal does not resume until resume is invoked (from
// anywhere, at any later time). resume must be called exactly once, by
// a single caller: a second call is not detected and runs the rest of
// the traversal again.
//
// Complete is called exactly once, after every leaf has been visited,
// with the accumulated leaf values in traversal order.
type Visitor interface {
	Visit(leaf any) bool
	Detach(leaf any, resume func())
	Complete(pack []any)
}

// traverseState is the defunctionalized cursor this package uses
// instead of holding an async traversal's progress on the Go call
// stack: a detach suspends by simply returning, and resume picks the
// same state back up by index rather than by unwinding/rewinding
// stack frames.
type traverseState struct {
	visitor Visitor
	leaves  []any
	idx     int
	pack    []any
}

func (st *traverseState) advance() {
	for st.idx < len(st.leaves) {
		leaf := st.leaves[st.idx]
		if st.visitor.Visit(leaf) {
			st.pack[st.idx] = leaf
			st.idx++
			continue
		}
		i := st.idx
		st.visitor.Detach(leaf, func() {
			st.pack[i] = leaf
			st.idx = i + 1
			st.advance()
		})
		return
	}
	st.visitor.Complete(st.pack)
}

// TraverseAsync collects the same leaves, in the same order, that
// [MapPack] would map (descending into Containers/TupleLikes, flattening
// Spreads) into one flat sequence and drives visitor over them, one at
// a time, supporting asynchronous detach/resume at any leaf.
func TraverseAsync(visitor Visitor, args ...any) {
	st := &traverseState{visitor: visitor, leaves: flattenLeaves(args)}
	st.pack = make([]any, len(st.leaves))
	st.advance()
}

func flattenLeaves(args []any) []any {
	var out []any
	var walk func(any)
	walk = func(v any) {
		switch categorize(v) {
		case categorySpread:
			for _, sv := range v.(Spread).Values {
				walk(sv)
			}
		case categoryTupleLike:
			tl := v.(TupleLike)
			for i := 0; i < tl.Len(); i++ {
				walk(tl.At(i))
			}
		case categoryContainer:
			rv := reflect.ValueOf(v)
			for i := 0; i < rv.Len(); i++ {
				walk(rv.Index(i).Interface())
			}
		default:
			out = append(out, v)
		}
	}
	for _, a := range args {
		walk(a)
	}
	return out
}
