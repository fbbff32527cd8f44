package vec

import (
	"fmt"

	"github.com/forestrie/go-vec/invariants"
)

// Erase removes the element at position i, shifting the suffix left. i
// must be in [0, Len()). Erase cannot fail: the erased element is
// disposed, the shift is a chain of takeFrom transfers into just-vacated
// cells, and none of those steps report errors.
func (v *Vector[T]) Erase(i int) {
	if invariants.Enabled && (i < 0 || i >= v.n) {
		panic(fmt.Sprintf("vec: Erase(%d): out of range [0,%d)", i, v.n))
	}
	tr := v.traits()
	w := v.buf.Window(0, v.n)
	tr.disposeAt(&w[i])
	for j := i; j < v.n-1; j++ {
		w[j] = tr.takeFrom(&w[j+1])
	}
	if i < v.n-1 {
		// The chain of takes left the last cell hollow; return it to
		// raw before it crosses the watermark.
		tr.disposeAt(&w[v.n-1])
	}
	v.n--
	v.checkInvariants()
}

// PopBack removes the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	if invariants.Enabled && v.n == 0 {
		panic("vec: PopBack on an empty vector")
	}
	tr := v.traits()
	tr.disposeAt(v.buf.At(v.n - 1))
	v.n--
}
