package vec

import (
	"fmt"

	"github.com/forestrie/go-vec/invariants"
	"github.com/forestrie/go-vec/rawbuf"
)

// placeAt installs ready, a value the vector now owns, as the element at
// position i, shifting the suffix right. i must be in [0, Len()]. The
// returned pointer addresses the installed element and is valid until the
// next reallocation.
//
// With spare capacity the shift is a chain of takeFrom transfers, which
// cannot fail, so a full-capacity reallocation is the only fallible path.
// When that fails, ready and any clones already placed in the abandoned
// block are disposed, and v is left exactly as it was.
func (v *Vector[T]) placeAt(i int, ready T) (*T, error) {
	if v.n == v.buf.Cap() {
		return v.placeGrow(i, ready)
	}
	tr := v.traits()
	w := v.buf.Window(0, v.n+1)
	if i < v.n {
		// Shift right into the raw cell at the end. Each takeFrom
		// vacates its source, so the chain ends with cell i holding
		// only a hollow shell, safe to overwrite.
		w[v.n] = tr.takeFrom(&w[v.n-1])
		for j := v.n - 1; j > i; j-- {
			w[j] = tr.takeFrom(&w[j-1])
		}
	}
	w[i] = ready
	v.n++
	v.checkInvariants()
	return v.buf.At(i), nil
}

// placeGrow is placeAt for a full block: the element goes into its slot in
// a fresh block first, then the prefix and suffix of the old live range
// transfer around it. A transfer failure abandons the fresh block with
// everything it accumulated disposed, and the old block is never touched
// on a fallible path.
func (v *Vector[T]) placeGrow(i int, ready T) (*T, error) {
	tr := v.traits()
	next := rawbuf.Allocate[T](v.grownCap())
	dst := next.Window(0, v.n+1)
	dst[i] = ready
	live := v.buf.Window(0, v.n)
	if err := tr.transferSpan(dst[:i], live[:i]); err != nil {
		tr.disposeAt(&dst[i])
		next.Release()
		return nil, err
	}
	if err := tr.transferSpan(dst[i+1:], live[i:]); err != nil {
		tr.disposeSpan(dst[:i])
		tr.disposeAt(&dst[i])
		next.Release()
		return nil, err
	}
	tr.retireSpan(live)
	v.buf.Swap(&next)
	next.Release()
	v.n++
	v.checkInvariants()
	return v.buf.At(i), nil
}

// assertCopyable panics, under the invariants build, when a copying
// operation is applied to a move-only element type. A type that relocates
// but cannot clone has declared that duplication is meaningless for it,
// and a shallow copy would alias whatever it owns.
func (tr traits[T]) assertCopyable() {
	if invariants.Enabled && tr.move && !tr.clone {
		panic("vec: copying a move-only element type")
	}
}

// PushBack appends a duplicate of x. For Cloner types the duplicate comes
// from the Clone hook; a clone failure leaves v unchanged. Move-only
// element types must use PushBackMove or EmplaceBack instead.
func (v *Vector[T]) PushBack(x T) error {
	tr := v.traits()
	tr.assertCopyable()
	c, err := tr.cloneOf(&x)
	if err != nil {
		return err
	}
	_, err = v.placeAt(v.n, c)
	return err
}

// PushBackMove appends the value taken from x, leaving x hollow. The take
// happens first, so x is consumed even when a reallocation failure means
// the value ends up disposed rather than appended.
func (v *Vector[T]) PushBackMove(x *T) error {
	tr := v.traits()
	_, err := v.placeAt(v.n, tr.takeFrom(x))
	return err
}

// EmplaceBack appends a zero value of T and returns a pointer to it for
// the caller to construct in place. The pointer is valid until the next
// reallocation.
func (v *Vector[T]) EmplaceBack() (*T, error) {
	var zero T
	return v.placeAt(v.n, zero)
}

// Insert places a duplicate of x at position i, shifting the suffix
// right, and returns a pointer to the inserted element. i may be Len(),
// which appends. Move-only element types must use InsertMove or Emplace.
//
// The position is checked before x is cloned, so a refused position
// touches neither the vector nor the argument.
func (v *Vector[T]) Insert(i int, x T) (*T, error) {
	if invariants.Enabled && (i < 0 || i > v.n) {
		panic(fmt.Sprintf("vec: Insert(%d): out of range [0,%d]", i, v.n))
	}
	tr := v.traits()
	tr.assertCopyable()
	c, err := tr.cloneOf(&x)
	if err != nil {
		return nil, err
	}
	return v.placeAt(i, c)
}

// InsertMove places the value taken from x at position i, leaving x
// hollow. As with PushBackMove, x is consumed before the placement is
// attempted, though a position refused under the invariants build panics
// before the take.
func (v *Vector[T]) InsertMove(i int, x *T) (*T, error) {
	if invariants.Enabled && (i < 0 || i > v.n) {
		panic(fmt.Sprintf("vec: InsertMove(%d): out of range [0,%d]", i, v.n))
	}
	tr := v.traits()
	return v.placeAt(i, tr.takeFrom(x))
}

// Emplace opens a zero-valued slot at position i and returns a pointer to
// it for the caller to construct in place. i may be Len().
func (v *Vector[T]) Emplace(i int) (*T, error) {
	if invariants.Enabled && (i < 0 || i > v.n) {
		panic(fmt.Sprintf("vec: Emplace(%d): out of range [0,%d]", i, v.n))
	}
	var zero T
	return v.placeAt(i, zero)
}
