package vec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-vec/invariants"
	"github.com/forestrie/go-vec/vectesting"
)

func TestCapacityDoublingSequence(t *testing.T) {
	v := New[int]()
	var caps []int
	for i := 0; i < 9; i++ {
		require.NoError(t, v.PushBack(i))
		caps = append(caps, v.Cap())
	}
	want := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}
	if diff := cmp.Diff(want, caps); diff != "" {
		t.Errorf("capacity per push (-want +got):\n%s", diff)
	}
}

func TestReserveIsExactAndNeverShrinks(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Reserve(10))
	require.Equal(t, 10, v.Cap())
	require.Equal(t, 0, v.Len())

	// At or below the current capacity: no-op.
	require.NoError(t, v.Reserve(5))
	require.Equal(t, 10, v.Cap())
	require.NoError(t, v.Reserve(10))
	require.Equal(t, 10, v.Cap())

	require.NoError(t, v.PushBack(0))
	home := v.At(0)
	for i := 1; i < 10; i++ {
		require.NoError(t, v.PushBack(i))
	}

	// Ten pushes fit the reservation, so nothing moved.
	require.True(t, home == v.At(0), "block was replaced within reservation")

	// The eleventh forces a doubling into a fresh block.
	require.NoError(t, v.PushBack(10))
	require.Equal(t, 20, v.Cap())
	require.False(t, home == v.At(0), "block survived the growth")
}

func TestReserveTransferPolicy(t *testing.T) {
	t.Run("relocates when the element can", func(t *testing.T) {
		g := vectesting.NewGen(10)
		v := New[vectesting.Probe]()
		require.NoError(t, v.Reserve(4))
		for i := 0; i < 3; i++ {
			p := g.Mint()
			require.NoError(t, v.PushBackMove(&p))
		}

		relocates, clones, disposals := g.Led.Relocates, g.Led.Clones, g.Led.Disposals
		require.NoError(t, v.Reserve(8))
		require.Equal(t, relocates+3, g.Led.Relocates)
		require.Equal(t, clones, g.Led.Clones)
		require.Equal(t, disposals, g.Led.Disposals)

		v.Release()
		g.Led.AssertBalanced(t)
	})

	t.Run("clones and retires otherwise", func(t *testing.T) {
		g := vectesting.NewGen(11)
		v := New[vectesting.CopyProbe]()
		require.NoError(t, v.Reserve(4))
		for i := 0; i < 3; i++ {
			p := g.MintCopy()
			require.NoError(t, v.PushBackMove(&p))
		}

		clones, disposals := g.Led.Clones, g.Led.Disposals
		require.NoError(t, v.Reserve(8))
		require.Equal(t, clones+3, g.Led.Clones)
		require.Equal(t, disposals+3, g.Led.Disposals)
		require.Equal(t, 0, g.Led.Relocates)
		require.Equal(t, 3, v.Len())

		v.Release()
		g.Led.AssertBalanced(t)
	})

	t.Run("move-only elements relocate", func(t *testing.T) {
		g := vectesting.NewGen(12)
		v := New[vectesting.MoveProbe]()
		require.NoError(t, v.Reserve(4))
		for i := 0; i < 3; i++ {
			p := g.MintMove()
			require.NoError(t, v.PushBackMove(&p))
		}

		relocates := g.Led.Relocates
		require.NoError(t, v.Reserve(8))
		require.Equal(t, relocates+3, g.Led.Relocates)
		require.Equal(t, 0, g.Led.Clones)

		v.Release()
		g.Led.AssertBalanced(t)
	})
}

func TestReserveFailureLeavesVectorIntact(t *testing.T) {
	g := vectesting.NewGen(13)
	v := New[vectesting.CopyProbe]()
	require.NoError(t, v.Reserve(4))
	for i := 0; i < 3; i++ {
		p := g.MintCopy()
		require.NoError(t, v.PushBackMove(&p))
	}
	home := v.At(0)
	before := collect(v, func(p vectesting.CopyProbe) string { return p.Payload })

	g.Led.FailCloneAt(2, errBoom)
	err := v.Reserve(100)
	require.ErrorIs(t, err, errBoom)

	require.Equal(t, 3, v.Len())
	require.Equal(t, 4, v.Cap())
	require.True(t, home == v.At(0), "block was replaced on a failed reserve")
	after := collect(v, func(p vectesting.CopyProbe) string { return p.Payload })
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("contents changed (-want +got):\n%s", diff)
	}

	// The one clone that succeeded was disposed with the abandoned block.
	require.Equal(t, 1, g.Led.Clones)
	require.Equal(t, 1, g.Led.Disposals)

	v.Release()
	g.Led.AssertBalanced(t)
}

func TestResize(t *testing.T) {
	v := New[int]()
	pushAll(t, v, 1, 2)

	// Growth exposes zero values.
	require.NoError(t, v.Resize(5))
	require.Equal(t, 5, v.Cap())
	if diff := cmp.Diff([]int{1, 2, 0, 0, 0}, contents(v)); diff != "" {
		t.Errorf("after grow (-want +got):\n%s", diff)
	}

	// Shrink disposes the surplus and keeps capacity.
	require.NoError(t, v.Resize(1))
	require.Equal(t, 1, v.Len())
	require.Equal(t, 5, v.Cap())
	if diff := cmp.Diff([]int{1}, contents(v)); diff != "" {
		t.Errorf("after shrink (-want +got):\n%s", diff)
	}

	// Same length: nothing happens.
	require.NoError(t, v.Resize(1))
	require.Equal(t, 1, v.Len())

	require.NoError(t, v.Resize(0))
	require.Equal(t, 0, v.Len())
}

func TestResizeShrinkDisposesSurplus(t *testing.T) {
	g := vectesting.NewGen(14)
	v := New[vectesting.Probe]()
	require.NoError(t, v.Reserve(4))
	for i := 0; i < 4; i++ {
		p := g.Mint()
		require.NoError(t, v.PushBackMove(&p))
	}

	disposals := g.Led.Disposals
	require.NoError(t, v.Resize(1))
	require.Equal(t, disposals+3, g.Led.Disposals)
	require.Equal(t, 1, g.Led.Live)

	v.Release()
	g.Led.AssertBalanced(t)
}

func TestNegativeSizesAreRefused(t *testing.T) {
	if !invariants.Enabled {
		t.Skip("invariants disabled")
	}
	v := New[int]()
	pushAll(t, v, 1)

	require.PanicsWithValue(t, "vec: Reserve(-1): negative capacity",
		func() { _ = v.Reserve(-1) })
	require.PanicsWithValue(t, "vec: Resize(-2): negative length",
		func() { _ = v.Resize(-2) })
	require.Equal(t, 1, v.Len())
	require.Equal(t, 1, v.Get(0))
}
