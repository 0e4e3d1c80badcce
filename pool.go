// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

import "sync"

// slotsPool reuses the backing arrays AllSlice/All2/All3 allocate to
// collect operand results, the same sync.Pool discipline the teacher
// library uses for its frame and marker types: zero the slice before
// it goes back in the pool, and never hand out a slice with stale
// values in it.
var slotsPool = sync.Pool{
	New: func() any { return make(Values, 0, 8) },
}

func acquireSlots(n int) Values {
	s := slotsPool.Get().(Values)
	if cap(s) < n {
		return make(Values, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = nil
	}
	return s
}

// releaseSlots returns s to the pool once its values have been copied
// out into a typed result. Oversized slices are dropped rather than
// pooled, so one giant AllSlice call doesn't pin a large backing array
// for the lifetime of the process.
func releaseSlots(s Values) {
	const maxPooled = 64
	if cap(s) == 0 || cap(s) > maxPooled {
		return
	}
	for i := range s {
		s[i] = nil
	}
	slotsPool.Put(s[:0])
}
