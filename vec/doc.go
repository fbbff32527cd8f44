package vec

/*

# A growable sequence container with explicit element lifetimes

A Vector owns one block of cells obtained from package rawbuf. The first
Len cells are live elements; the rest are raw. Raw cells always hold the
zero value of their type, so growth can expose them as elements without
any construction step, and dropping a block never pins garbage through
stale cells. Every operation, including every failure path, maintains
that watermark discipline.

## Element capabilities

Ordinary value types need nothing: they are copied and discarded by
assignment. Types whose values own resources opt into lifecycle hooks
through three interfaces, probed once per vector on the pointer method
set:

  - Cloner: duplication does real work and may fail. Clone is the only
    element operation the container treats as fallible.
  - Mover: destructive transfer. Relocate returns the value and leaves
    the receiver hollow. It cannot report failure, and that is what lets
    the container gut source cells during a transfer: an operation
    allowed to fail halfway is never allowed to destroy its inputs.
  - Disposer: teardown when a value leaves the container. Dispose must
    treat hollow and zero values as no-ops, because the container
    retires vacated cells through the same path as live ones.

A type with Mover but not Cloner is move-only. Duplicating operations
(PushBack, Insert, Clone, CopyFrom) on such a type are a contract
violation, caught under the invariants build tag.

## What failure leaves behind

Operations that can fail return the element's clone error unwrapped.
Reserve, Resize, Clone, PushBack, PushBackMove, EmplaceBack, Insert,
InsertMove and Emplace leave the vector exactly as it was when they
fail. CopyFrom is the exception: when the source fits in the existing
block the elements are overwritten in place, and a clone failure partway
leaves the vector valid and disposable but holding a mixture of old and
new elements.

## Caller burden

Pointers obtained from At, Insert, Emplace and View address cells of the
current block and are invalidated by any reallocation. Positions are
bounds-checked against the live length, not the block. Contract
violations panic; building with the invariants tag adds structural
audits and clearer panic messages, and release builds rely on the
runtime's bounds checks alone.

*/
