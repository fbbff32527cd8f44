package rawbuf

/*

# Raw element storage for go-vec

This package provides the storage half of the container split: a Buffer owns
a block of cells for exactly Cap elements and nothing else. It hands out
cell addresses and windows, it transfers and swaps ownership of the block,
and it releases the block. It never constructs, duplicates, or disposes a
value, and it has no idea which cells its owner currently considers live.
That split is the whole design: capacity is storage business, liveness is
container business.

It mirrors the `vec` package style:

- small, composable operations
- explicit ownership transfer (move and swap, never sharing)
- index arithmetic on cell ranges
- a burden of knowledge on the caller for hot paths

## "Raw" in a collected language

Go zeroes every allocation and its collector must always be able to see
pointers, so there is no such thing as genuinely uninitialized typed memory
here, and hiding element pointers inside untyped bytes would be unsound.
A Buffer's block is therefore a typed block, and "raw" is a discipline the
owner upholds: cells the owner has not made live are meaningless and must
never be read as values. The owner is likewise responsible for returning
vacated cells to the zero value so the block never pins dead element
references against the collector.

## Addresses and windows

At(i) is defined for i in [0, Cap()). The classic one-past-end address
exists to express ranges, and ranges in Go are windows: Window(lo, hi) is
defined for 0 <= lo <= hi <= Cap(), including the empty window ending at
capacity. Windows are capacity-clamped views of the block itself, valid
until the block moves.

## Ownership

A Buffer owns its block exclusively. Move and Swap are the only transfer
mechanisms and both leave the source well-defined (empty, or holding the
counterpart block). Buffer values must not be copied; duplicating element
values is a container concern, not a storage concern, so a copied Buffer
would silently alias a block that believes it has one owner.

Release before dropping the last reference is not required for memory
safety (the collector reclaims the block regardless); it exists so owners
with teardown obligations have a deterministic point to meet them.

*/
