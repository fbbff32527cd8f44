package vec

// The element capability interfaces. A type opts into lifecycle behavior by
// implementing them; a type implementing none of them is stored, copied and
// forgotten by plain assignment, which is the right treatment for ordinary
// value types.
//
// The probe inspects the *T method set, so value-receiver and
// pointer-receiver implementations are both discovered. Relocate and
// Dispose mutate the receiver and are useless on a value receiver.

// Cloner is implemented by element types whose duplication does real work:
// deep-copying owned resources, accounting, or refusing duplication
// outright. Clone returns the independent duplicate, or the error that
// prevented it; it is the only element operation the container treats as
// able to fail.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Mover is implemented by element types that support destructive transfer.
// Relocate returns the receiver's value and leaves the receiver hollow:
// owning nothing, safe to overwrite, and a no-op to dispose. Relocate has
// no way to report failure, and that is the point: the container trusts
// relocation across buffers precisely because it cannot fail partway.
type Mover[T any] interface {
	Relocate() T
}

// Disposer is implemented by element types that must release resources when
// they leave the container. Dispose must tolerate hollow and zero values as
// no-ops; the container disposes vacated shells as well as live values.
type Disposer interface {
	Dispose()
}

// traits records the capability probe for an element type: which transfer
// and teardown paths apply. The zero traits value means "not probed yet",
// distinguished by the probed flag so the zero Vector stays usable.
type traits[T any] struct {
	probed  bool
	clone   bool // *T is a Cloner[T]
	move    bool // *T is a Mover[T]
	dispose bool // *T is a Disposer
}

func traitsOf[T any]() traits[T] {
	var probe T
	tr := traits[T]{probed: true}
	_, tr.clone = any(&probe).(Cloner[T])
	_, tr.move = any(&probe).(Mover[T])
	_, tr.dispose = any(&probe).(Disposer)
	return tr
}

// cloneOf duplicates the value in src: the Clone hook when the type has
// one, plain assignment otherwise. src is never mutated.
func (tr traits[T]) cloneOf(src *T) (T, error) {
	if tr.clone {
		return any(src).(Cloner[T]).Clone()
	}
	return *src, nil
}

// takeFrom removes and returns the value in src. With a Mover the hook
// hollows the cell per its own contract; otherwise the cell is zeroed so
// the vacated slot never pins the value's referents.
func (tr traits[T]) takeFrom(src *T) T {
	if tr.move {
		return any(src).(Mover[T]).Relocate()
	}
	v := *src
	var zero T
	*src = zero
	return v
}

// disposeAt runs the element's teardown hook if it has one, then returns
// the cell to raw state (the zero value).
func (tr traits[T]) disposeAt(p *T) {
	if tr.dispose {
		any(p).(Disposer).Dispose()
	}
	var zero T
	*p = zero
}

// disposeSpan disposes every cell in w, left to right.
func (tr traits[T]) disposeSpan(w []T) {
	for i := range w {
		tr.disposeAt(&w[i])
	}
}

// cloneSpan copy-constructs src into dst cell for cell. On a clone failure
// it disposes the clones already placed in dst and returns the element's
// error; src is untouched either way. dst and src must not overlap and
// must be the same length.
func (tr traits[T]) cloneSpan(dst, src []T) error {
	if !tr.clone {
		copy(dst, src)
		return nil
	}
	for i := range src {
		v, err := any(&src[i]).(Cloner[T]).Clone()
		if err != nil {
			tr.disposeSpan(dst[:i])
			return err
		}
		dst[i] = v
	}
	return nil
}

// transferSpan moves the live values in src into dst for a reallocation,
// selecting the transfer the type can survive:
//
//   - a Mover relocates, which cannot fail, so the transfer cannot strand
//     the old block half-emptied;
//   - otherwise a Cloner duplicates, the one path that can fail, and
//     cloneSpan's rollback keeps src fully intact when it does;
//   - otherwise plain assignment, which cannot fail either.
//
// A failed transfer after source cells were gutted would be unrecoverable,
// so only operations that cannot fail are allowed to gut them.
func (tr traits[T]) transferSpan(dst, src []T) error {
	if tr.move {
		for i := range src {
			dst[i] = any(&src[i]).(Mover[T]).Relocate()
		}
		return nil
	}
	return tr.cloneSpan(dst, src)
}

// retireSpan completes a successful transfer out of src, the old block's
// live range. Clone transfers leave the originals live and owning their
// resources, so they get real teardown. Relocated cells are hollow shells,
// and plain-assignment transfers handed ownership to the shallow copies;
// in both cases the block is about to be dropped wholesale and there is
// nothing to dispose.
func (tr traits[T]) retireSpan(src []T) {
	if tr.clone && !tr.move {
		tr.disposeSpan(src)
	}
}
