// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

import "sync/atomic"

// onceGuard is a small atomic single-use flag. It backs the
// at-most-once invocation points in this package: a [Continuation]'s
// consumed-guard and an all/any submitter's completion guard share this
// primitive rather than each rolling their own CAS loop.
//
// This mirrors the teacher library's Affine/Suspension atomic
// single-resume discipline: mustUse treats a second use as a
// programmer error and panics, while use simply reports false to every
// caller after the first.
type onceGuard struct {
	used atomic.Uint32
}

// use attempts to consume the guard. It returns true exactly once,
// for the first caller; every subsequent caller gets false.
func (g *onceGuard) use() bool {
	return g.used.CompareAndSwap(0, 1)
}

// mustUse consumes the guard or panics with msg if it was already
// used.
func (g *onceGuard) mustUse(msg string) {
	if !g.use() {
		panic(msg)
	}
}

// spent reports whether the guard has already been consumed, without
// consuming it.
func (g *onceGuard) spent() bool {
	return g.used.Load() != 0
}
