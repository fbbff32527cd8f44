package rawbuf

import (
	"fmt"

	"github.com/forestrie/go-vec/invariants"
)

// Buffer owns a block of cells for exactly Cap elements. The zero Buffer
// is the empty buffer: no block, capacity 0.
//
// Buffer is storage only. It never reads cells as values and never touches
// element lifecycle; which cells are live is the owner's knowledge. Do not
// copy a Buffer value; move or swap it.
type Buffer[T any] struct {
	// cells is nil iff the capacity is 0; otherwise len(cells) ==
	// cap(cells) == the fixed capacity.
	cells []T
}

// Allocate reserves a block for exactly n elements. n == 0 returns the
// empty buffer without allocating. Negative n is a contract violation.
//
// Heap exhaustion is a runtime fault and propagates; it is not recoverable
// here or anywhere above.
func Allocate[T any](n int) Buffer[T] {
	if invariants.Enabled && n < 0 {
		panic(fmt.Sprintf("rawbuf: Allocate(%d): negative capacity", n))
	}
	if n == 0 {
		return Buffer[T]{}
	}
	return Buffer[T]{cells: make([]T, n)}
}

// Cap returns the fixed element capacity of the block.
func (b *Buffer[T]) Cap() int { return len(b.cells) }

// At returns the address of cell i, defined for i in [0, Cap()).
func (b *Buffer[T]) At(i int) *T {
	if invariants.Enabled && (i < 0 || i >= len(b.cells)) {
		panic(fmt.Sprintf("rawbuf: At(%d): out of range [0,%d)", i, len(b.cells)))
	}
	return &b.cells[i]
}

// Window returns the cell range [lo, hi) as a capacity-clamped view of the
// block, defined for 0 <= lo <= hi <= Cap(). The empty window, including
// the one ending at capacity, is legal; whether any cell in the window may
// be read as a value is the owner's contract, not Window's.
//
// The clamped capacity means appending to a window copies out rather than
// writing into cells beyond hi.
func (b *Buffer[T]) Window(lo, hi int) []T {
	if invariants.Enabled && (lo < 0 || lo > hi || hi > len(b.cells)) {
		panic(fmt.Sprintf("rawbuf: Window(%d,%d): bad range for capacity %d", lo, hi, len(b.cells)))
	}
	return b.cells[lo:hi:hi]
}

// Swap exchanges blocks with other in constant time. No cell is touched.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.cells, other.cells = other.cells, b.cells
}

// MoveFrom transfers other's block to b, dropping b's previous block.
// other is left empty. Self-move is a no-op.
//
// Any live elements in b's previous block are the owner's obligation and
// must have been disposed already; MoveFrom cannot do it and will not know.
func (b *Buffer[T]) MoveFrom(other *Buffer[T]) {
	if b == other {
		return
	}
	b.cells = other.cells
	other.cells = nil
}

// Release drops the block, returning b to the empty buffer. No-op when
// already empty. Element teardown is the owner's obligation, completed
// before Release; the block is dropped wholesale.
func (b *Buffer[T]) Release() {
	b.cells = nil
}
