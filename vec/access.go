package vec

import (
	"fmt"
	"iter"

	"github.com/forestrie/go-vec/invariants"
)

// Get returns a copy of the element at position i. i must be in
// [0, Len()). For Cloner types the copy is shallow; use At and the Clone
// hook when an independent duplicate is wanted.
func (v *Vector[T]) Get(i int) T {
	if invariants.Enabled && (i < 0 || i >= v.n) {
		panic(fmt.Sprintf("vec: Get(%d): out of range [0,%d)", i, v.n))
	}
	return v.buf.Window(0, v.n)[i]
}

// At returns a pointer to the element at position i. i must be in
// [0, Len()); indexing the live window enforces that even when spare
// capacity would let a block index succeed. The pointer is valid until
// the next reallocation.
func (v *Vector[T]) At(i int) *T {
	if invariants.Enabled && (i < 0 || i >= v.n) {
		panic(fmt.Sprintf("vec: At(%d): out of range [0,%d)", i, v.n))
	}
	return &v.buf.Window(0, v.n)[i]
}

// Set replaces the element at position i with x, disposing the previous
// value. The vector takes ownership of x.
func (v *Vector[T]) Set(i int, x T) {
	if invariants.Enabled && (i < 0 || i >= v.n) {
		panic(fmt.Sprintf("vec: Set(%d): out of range [0,%d)", i, v.n))
	}
	p := v.At(i)
	v.traits().disposeAt(p)
	*p = x
}

// View returns the live elements as a slice sharing the vector's block.
// Mutations through the slice are visible to the vector and vice versa.
// The slice's capacity is clamped to its length, so append on it cannot
// scribble on raw cells. It is invalidated by any reallocation.
func (v *Vector[T]) View() []T {
	return v.buf.Window(0, v.n)
}

// All returns an iterator over index and element copies in position
// order. The vector must not be reallocated during the walk.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		w := v.buf.Window(0, v.n)
		for i := range w {
			if !yield(i, w[i]) {
				return
			}
		}
	}
}
