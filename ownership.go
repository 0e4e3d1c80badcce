// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

// Ownership is the two-bit token every [Continuation] carries.
//
//   - acquired is true on construction and flips to false exactly once,
//     via [Ownership.Release].
//   - frozen marks a continuation held inside a composition; it can
//     only be set, never cleared. No operation in this package reads it
//     to decide whether to dispatch.
//
// Combining two tokens with [Ownership.Combine] yields acquired = both
// acquired, frozen = either frozen — the rule spec.md assigns to the
// "|" operator on ownership tokens of composed operands.
type Ownership struct {
	acquired bool
	frozen   bool
}

func newOwnership() Ownership {
	return Ownership{acquired: true}
}

// Acquired reports whether the token has not yet been released.
func (o Ownership) Acquired() bool { return o.acquired }

// Frozen reports whether the frozen bit is set.
func (o Ownership) Frozen() bool { return o.frozen }

// Freeze returns a copy of o with frozen set. Freezing twice is a
// no-op, matching spec.md invariant 8 ("c.freeze(); c.freeze() equals
// c.freeze()").
func (o Ownership) Freeze() Ownership {
	return Ownership{acquired: o.acquired, frozen: true}
}

// Release returns a copy of o with acquired cleared. Calling Release
// on an already-released token is a programmer error; callers enforce
// this at the [Continuation.Release] boundary rather than here, since
// Ownership itself is a plain value with no identity to assert against.
func (o Ownership) Release() Ownership {
	return Ownership{acquired: false, frozen: o.frozen}
}

// Combine merges two operand tokens under composition: acquired only
// if both operands are still acquired, frozen if either operand is
// frozen.
func (o Ownership) Combine(other Ownership) Ownership {
	return Ownership{
		acquired: o.acquired && other.acquired,
		frozen:   o.frozen || other.frozen,
	}
}
