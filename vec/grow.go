package vec

import (
	"fmt"

	"github.com/forestrie/go-vec/invariants"
	"github.com/forestrie/go-vec/rawbuf"
)

// Reserve ensures capacity for at least n elements. Capacity never
// shrinks: n at or below the current capacity is a no-op, and a no-op
// reservation invalidates nothing. n must not be negative.
//
// On an element clone failure during the transfer the new block is
// discarded and v is left exactly as it was.
func (v *Vector[T]) Reserve(n int) error {
	if invariants.Enabled && n < 0 {
		panic(fmt.Sprintf("vec: Reserve(%d): negative capacity", n))
	}
	if n <= v.buf.Cap() {
		return nil
	}
	return v.regrow(n)
}

// regrow transfers the live elements into a fresh block of capacity n and
// installs it. n must exceed the current capacity.
func (v *Vector[T]) regrow(n int) error {
	tr := v.traits()
	next := rawbuf.Allocate[T](n)
	live := v.buf.Window(0, v.n)
	if err := tr.transferSpan(next.Window(0, v.n), live); err != nil {
		next.Release()
		return err
	}
	tr.retireSpan(live)
	v.buf.Swap(&next)
	next.Release()
	v.checkInvariants()
	return nil
}

// grownCap returns the capacity for one step of geometric growth: double
// the current capacity, or 1 from empty.
func (v *Vector[T]) grownCap() int {
	if c := v.buf.Cap(); c != 0 {
		return 2 * c
	}
	return 1
}

// Resize sets the length to n. Shrinking disposes the surplus elements.
// Growing reserves capacity if needed and exposes n-v.Len() zero values of
// T, which raw cells already hold. n must not be negative.
func (v *Vector[T]) Resize(n int) error {
	if invariants.Enabled && n < 0 {
		panic(fmt.Sprintf("vec: Resize(%d): negative length", n))
	}
	if n <= v.n {
		tr := v.traits()
		tr.disposeSpan(v.buf.Window(n, v.n))
		v.n = n
		v.checkInvariants()
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	v.n = n
	v.checkInvariants()
	return nil
}
