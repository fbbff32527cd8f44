package vec

import (
	"fmt"
	"reflect"

	"github.com/forestrie/go-vec/invariants"
)

// checkInvariants audits the structure under the invariants build tag:
// the watermark lies within the block and every raw cell holds the zero
// value of T. Without the tag it returns immediately and costs a
// predictable branch on a constant.
func (v *Vector[T]) checkInvariants() {
	if !invariants.Enabled {
		return
	}
	if v.n < 0 || v.n > v.buf.Cap() {
		panic(fmt.Sprintf("vec: length %d outside block of capacity %d", v.n, v.buf.Cap()))
	}
	raw := v.buf.Window(v.n, v.buf.Cap())
	for i := range raw {
		if !reflect.ValueOf(&raw[i]).Elem().IsZero() {
			panic(fmt.Sprintf("vec: raw cell %d holds a non-zero value", v.n+i))
		}
	}
}
