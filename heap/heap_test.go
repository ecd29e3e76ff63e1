package heap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcph4/enceladus/core"
	"github.com/jmcph4/enceladus/heap"
)

// TestMaxHeapOrder verifies 1..9 pops back in descending order.
func TestMaxHeapOrder(t *testing.T) {
	h := heap.New[int]()

	for i := 1; i < 10; i++ {
		require.NoError(t, h.Push(i))
	}
	for want := 9; want >= 1; want-- {
		v, err := h.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, 0, h.Length())
}

// TestMinHeapViaFunc verifies NewFunc with "less than" yields a min-heap.
func TestMinHeapViaFunc(t *testing.T) {
	h := heap.NewFunc[int](func(a, b int) bool { return a < b })

	for _, e := range []int{5, 1, 4, 2, 3} {
		require.NoError(t, h.Push(e))
	}
	for want := 1; want <= 5; want++ {
		v, err := h.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

// TestUnderflow verifies Pop and Peek on empty report ErrOutOfBounds.
func TestUnderflow(t *testing.T) {
	h := heap.New[int]()

	_, err := h.Pop()
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
	_, err = h.Peek()
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
}

// TestPeek verifies Peek returns the top without removal.
func TestPeek(t *testing.T) {
	h := heap.New[int]()
	require.NoError(t, h.Push(3))
	require.NoError(t, h.Push(7))
	require.NoError(t, h.Push(5))

	v, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 3, h.Length())
}

// TestFind verifies the linear membership scan.
func TestFind(t *testing.T) {
	h := heap.New[int]()
	require.NoError(t, h.Push(10))

	pos, ok := h.Find(10)
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	_, ok = h.Find(99)
	assert.False(t, ok)
}

// TestHeapProperty verifies random input pops in sorted order.
func TestHeapProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := heap.New[int]()

	in := make([]int, 100)
	for i := range in {
		in[i] = rng.Intn(1000)
		require.NoError(t, h.Push(in[i]))
	}

	var got []int
	for h.Length() > 0 {
		v, err := h.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}

	want := append([]int(nil), in...)
	sort.Sort(sort.Reverse(sort.IntSlice(want)))
	assert.Equal(t, want, got)
}

// TestClearEqual verifies Clear and internal-order equality.
func TestClearEqual(t *testing.T) {
	a := heap.New[int]()
	b := heap.New[int]()
	for _, e := range []int{1, 2, 3} {
		require.NoError(t, a.Push(e))
		require.NoError(t, b.Push(e))
	}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	a.Clear()
	assert.Equal(t, 0, a.Length())
	assert.False(t, a.Equal(b))
}
