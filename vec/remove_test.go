package vec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-vec/invariants"
	"github.com/forestrie/go-vec/vectesting"
)

func TestEraseAtEachPosition(t *testing.T) {
	type args struct {
		start []int
		i     int
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{"front", args{[]int{10, 20, 30, 40}, 0}, []int{20, 30, 40}},
		{"middle", args{[]int{10, 20, 30, 40}, 1}, []int{10, 30, 40}},
		{"last", args{[]int{10, 20, 30, 40}, 3}, []int{10, 20, 30}},
		{"only element", args{[]int{5}, 0}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New[int]()
			pushAll(t, v, tt.args.start...)
			capBefore := v.Cap()

			v.Erase(tt.args.i)
			require.Equal(t, capBefore, v.Cap())
			if diff := cmp.Diff(tt.want, contents(v)); diff != "" {
				t.Errorf("contents (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEraseRunsTeardown(t *testing.T) {
	g := vectesting.NewGen(30)
	v := New[vectesting.Probe]()
	require.NoError(t, v.Reserve(4))
	var payloads []string
	for i := 0; i < 4; i++ {
		p := g.Mint()
		payloads = append(payloads, p.Payload)
		require.NoError(t, v.PushBackMove(&p))
	}

	disposals, relocates := g.Led.Disposals, g.Led.Relocates
	v.Erase(1)

	// One teardown for the erased element, one relocation per shifted
	// successor.
	require.Equal(t, disposals+1, g.Led.Disposals)
	require.Equal(t, relocates+2, g.Led.Relocates)
	require.Equal(t, 3, g.Led.Live)

	got := collect(v, func(p vectesting.Probe) string { return p.Payload })
	want := []string{payloads[0], payloads[2], payloads[3]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("payloads (-want +got):\n%s", diff)
	}

	v.Release()
	g.Led.AssertBalanced(t)
}

func TestEraseToEmpty(t *testing.T) {
	g := vectesting.NewGen(31)
	v := New[vectesting.Probe]()
	for i := 0; i < 3; i++ {
		p := g.Mint()
		require.NoError(t, v.PushBackMove(&p))
	}

	for v.Len() > 0 {
		v.Erase(0)
	}
	require.Equal(t, 0, v.Len())
	g.Led.AssertBalanced(t)
}

func TestPopBack(t *testing.T) {
	v := New[int]()
	pushAll(t, v, 1, 2)
	capBefore := v.Cap()

	v.PopBack()
	require.Equal(t, 1, v.Len())
	v.PopBack()
	require.Equal(t, 0, v.Len())
	require.Equal(t, capBefore, v.Cap())

	require.Panics(t, func() { v.PopBack() })
}

func TestRemoveOutOfRangeLeavesVectorIntact(t *testing.T) {
	if !invariants.Enabled {
		t.Skip("invariants disabled")
	}
	v := New[int]()
	pushAll(t, v, 1, 2, 3)

	require.PanicsWithValue(t, "vec: Erase(-1): out of range [0,3)",
		func() { v.Erase(-1) })
	require.PanicsWithValue(t, "vec: Erase(3): out of range [0,3)",
		func() { v.Erase(3) })
	if diff := cmp.Diff([]int{1, 2, 3}, contents(v)); diff != "" {
		t.Errorf("contents (-want +got):\n%s", diff)
	}

	require.PanicsWithValue(t, "vec: PopBack on an empty vector",
		func() { New[int]().PopBack() })
}

func TestPopBackRunsTeardown(t *testing.T) {
	g := vectesting.NewGen(32)
	v := New[vectesting.Probe]()
	for i := 0; i < 2; i++ {
		p := g.Mint()
		require.NoError(t, v.PushBackMove(&p))
	}

	disposals := g.Led.Disposals
	v.PopBack()
	require.Equal(t, disposals+1, g.Led.Disposals)
	require.Equal(t, 1, g.Led.Live)

	v.Release()
	g.Led.AssertBalanced(t)
}
