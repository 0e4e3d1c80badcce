// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package contin provides a continuation algebra for composing
// callback-based asynchronous computations in Go.
//
// A [Continuation] wraps any callback-accepting operation into a
// first-class, move-discipline value whose eventual completion carries
// a typed result. Continuations are chained with [Then] and its
// variants, combined with the [Continuation.And]/[Continuation.Or]/
// [Continuation.Seq] family (and their dynamic-arity counterparts
// [AllSlice]/[AnySlice]/[SeqSlice]), interrupted by typed failure via
// [Fail], and driven to completion with [Continuation.Done] or
// [Continuation.Unpack].
//
// # Design Philosophy
//
// contin provides:
//   - A minimal but complete continuation value with single-shot
//     invocation and an explicit ownership/freeze discipline
//   - A chain transform family whose variants take a handler returning
//     a plain value, an [Outcome], or a nested [Continuation] and turn
//     it into the next stage
//   - Three composition strategies (all / any / sequential); all and
//     any each share one submitter core between their fixed-arity and
//     slice forms, and sequential composition invokes operands one
//     after another
//   - A reflection-driven traversal engine ([MapPack], [TraverseAsync])
//     for remapping heterogeneous trees of containers and tuple-likes
//
// # Core Types
//
//   - [Continuation]: move-discipline single-shot handle to an
//     asynchronous computation
//   - [Outcome]: tri-state result (empty / value / exception)
//   - [Error]: opaque failure carrier; the zero value denotes
//     cancellation
//   - [Ownership]: acquired/frozen token; a released continuation can
//     no longer be chained with Then/Fail/Next or driven with Done
//
// # Construction
//
//   - [Make]: wrap a callback-accepting producer
//   - [MakeReady], [MakeExceptional], [MakeCancelling]: already-resolved
//     continuations
//
// # Chaining
//
//   - [Then], [ThenOutcome], [ThenContinuation]: success-path handlers,
//     classified by return shape (plain value / [Outcome] / nested
//     [Continuation])
//   - [Fail], [FailOutcome], [FailContinuation]: error-path handlers
//   - [Next], [NextOutcome], [NextContinuation]: combined handlers that
//     observe both paths
//
// # Composition
//
//   - [Continuation.And], [Continuation.Or], [Continuation.Seq]: pairwise
//     all/any/sequential composition
//   - [All2], [All3], [Any2], [Seq2], [Seq3]: statically typed N-ary
//     sugar
//   - [AllSlice], [AnySlice], [SeqSlice]: dynamic-arity composition over
//     homogeneous operand collections (the "ranges as operands" case)
//   - [Populate]: lift plain values into already-resolved continuations
//     for seeding a composition strategy
//
// # Traversal
//
//   - [MapPack]: synchronous heterogeneous-tree remap with 1:N [Spread]
//     flattening
//   - [TraverseAsync]: cooperative, suspendable leaf-by-leaf traversal
//     via the [Visitor] contract
//
// # Resource Safety
//
//   - [Bracket]: acquire-use-release with guaranteed cleanup
//   - [OnError]: cleanup that only runs on the error path
//
// # External Collaborators
//
// The core consumes a [Scheduler] capability (any value accepting
// [Work] units) for chain stages that should not run inline on the
// producing goroutine. It does not implement a scheduler itself — see
// the sibling schedulers package for a concrete, errgroup-backed
// implementation.
package contin
