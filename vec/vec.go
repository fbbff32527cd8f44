package vec

import (
	"github.com/forestrie/go-vec/rawbuf"
)

// Vector is a growable sequence of T over a rawbuf block. The first n cells
// of the block are live; the rest are raw, and raw cells always hold the
// zero value of T. Methods keep that watermark invariant on every path,
// including the failure paths.
//
// The zero Vector is empty with no block and is ready to use.
type Vector[T any] struct {
	buf rawbuf.Buffer[T]
	n   int
	tr  traits[T]
}

// New returns an empty vector with no storage. Equivalent to new(Vector[T]).
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithLen returns a vector holding n zero values of T, with capacity
// exactly n. n must not be negative.
func WithLen[T any](n int) *Vector[T] {
	v := &Vector[T]{buf: rawbuf.Allocate[T](n), n: n}
	// A fresh block is zeroed, so all n cells are already valid values.
	return v
}

// Moved returns a new vector that has taken src's block and length,
// leaving src empty with no storage.
func Moved[T any](src *Vector[T]) *Vector[T] {
	v := New[T]()
	v.MoveFrom(src)
	return v
}

func (v *Vector[T]) traits() traits[T] {
	if !v.tr.probed {
		v.tr = traitsOf[T]()
	}
	return v.tr
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.n }

// Cap returns the capacity of the underlying block.
func (v *Vector[T]) Cap() int { return v.buf.Cap() }

// Swap exchanges the contents of v and other in O(1). No elements are
// cloned, relocated or disposed.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.n, other.n = other.n, v.n
	v.tr, other.tr = other.tr, v.tr
}

// Clone returns an independent duplicate of v. The duplicate's capacity is
// v.Len(), not v.Cap(): clone reproduces contents, not growth history. On
// an element clone failure the partial duplicate is torn down and the
// element's error is returned; v is untouched. Move-only element types
// cannot be duplicated; transfer whole vectors with MoveFrom instead.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	tr := v.traits()
	tr.assertCopyable()
	out := &Vector[T]{buf: rawbuf.Allocate[T](v.n), tr: tr}
	if err := tr.cloneSpan(out.buf.Window(0, v.n), v.buf.Window(0, v.n)); err != nil {
		out.buf.Release()
		return nil, err
	}
	out.n = v.n
	return out, nil
}

// CopyFrom replaces v's contents with clones of src's elements.
// Assigning a vector to itself is a no-op.
//
// When src does not fit in v's block, the clone is built in fresh storage
// and swapped in, so a failure leaves v exactly as it was. When src fits,
// the block is reused: the overlapping prefix is overwritten element by
// element and the tails reconciled, and a clone failure partway leaves v
// valid but with mixed contents. Move-only element types cannot be
// copy-assigned.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	tr := v.traits()
	tr.assertCopyable()
	if v == src {
		return nil
	}
	if src.n > v.buf.Cap() {
		tmp, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}

	dst := v.buf.Window(0, v.buf.Cap())
	sw := src.buf.Window(0, src.n)
	overlap := min(v.n, src.n)
	for i := 0; i < overlap; i++ {
		if err := tr.assignClone(&dst[i], &sw[i]); err != nil {
			return err
		}
	}
	if src.n > v.n {
		// src is longer: the extra elements land in raw cells.
		if err := tr.cloneSpan(dst[v.n:src.n], sw[v.n:]); err != nil {
			return err
		}
	} else {
		// src is shorter: retire our surplus back to raw.
		tr.disposeSpan(dst[src.n:v.n])
	}
	v.n = src.n
	v.checkInvariants()
	return nil
}

// assignClone replaces the live value in dst with a clone of src. The
// clone is taken first so a failure leaves dst untouched.
func (tr traits[T]) assignClone(dst, src *T) error {
	c, err := tr.cloneOf(src)
	if err != nil {
		return err
	}
	tr.disposeAt(dst)
	*dst = c
	return nil
}

// MoveFrom is move assignment: v takes src's contents and src receives
// v's previous contents, keeping them alive until src is itself released
// or reused. No elements are cloned, relocated or disposed. Moving a
// vector into itself is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Swap(src)
}

// Clear disposes all live elements and sets the length to zero. Capacity
// is retained.
func (v *Vector[T]) Clear() {
	tr := v.traits()
	tr.disposeSpan(v.buf.Window(0, v.n))
	v.n = 0
}

// Release disposes all live elements and drops the block, returning v to
// the zero state. The vector remains usable afterwards.
func (v *Vector[T]) Release() {
	v.Clear()
	v.buf.Release()
}
