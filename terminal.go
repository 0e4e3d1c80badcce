// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contin

import (
	"fmt"
	"os"
)

// TrapUnhandledErrors controls what happens when a [Continuation]
// reaches the terminal dispatcher (via [Continuation.Done]) carrying a
// truthy Error that nothing downstream consumed. The default, true,
// matches spec.md §4.6: an unhandled exception is trapped rather than
// silently dropped. Cancellation (a falsy Error) is never trapped,
// with or without this flag.
//
// Together with [UnhandledErrorHandler], this is the package's only
// runtime configuration; there is no configuration object, matching
// the rest of this package's no-config design.
var TrapUnhandledErrors = true

// UnhandledErrorHandler, when non-nil, is invoked instead of the
// default trap behavior (printing to stderr and panicking). Tests that
// need to observe trapped errors without crashing the test binary
// should set this.
var UnhandledErrorHandler func(Error)

func trapOrSwallow(e Error) {
	if !e.Set() {
		return
	}
	if !TrapUnhandledErrors {
		return
	}
	if UnhandledErrorHandler != nil {
		UnhandledErrorHandler(e)
		return
	}
	fmt.Fprintf(os.Stderr, "contin: unhandled error reached terminal dispatcher: %v\n", e)
	panic(e)
}
