package arraylist_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcph4/enceladus/arraylist"
	"github.com/jmcph4/enceladus/core"
)

// newList builds an ArrayList from elems in order.
func newList(t *testing.T, elems ...int) *arraylist.ArrayList[int] {
	t.Helper()
	l := arraylist.New[int]()
	for _, e := range elems {
		require.NoError(t, l.Append(e))
	}

	return l
}

// TestGetSet verifies positional access and overwrite behavior.
func TestGetSet(t *testing.T) {
	l := newList(t, 10, 20, 30)

	v, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	require.NoError(t, l.Set(1, 25))
	v, err = l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 25, v)
}

// TestBoundsErrors verifies that every positional method rejects invalid
// positions with core.ErrOutOfBounds.
func TestBoundsErrors(t *testing.T) {
	l := newList(t, 1, 2)

	cases := []struct {
		name string
		op   func() error
	}{
		{"GetNegative", func() error { _, err := l.Get(-1); return err }},
		{"GetPastEnd", func() error { _, err := l.Get(2); return err }},
		{"GetMutPastEnd", func() error { _, err := l.GetMut(2); return err }},
		{"SetPastEnd", func() error { return l.Set(2, 0) }},
		{"InsertPastEnd", func() error { return l.Insert(3, 0) }},
		{"InsertNegative", func() error { return l.Insert(-1, 0) }},
		{"RemovePastEnd", func() error { _, err := l.Remove(2); return err }},
		{"SwapPastEnd", func() error { return l.Swap(0, 2) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.op(); !errors.Is(err, core.ErrOutOfBounds) {
				t.Errorf("error = %v; want core.ErrOutOfBounds", err)
			}
		})
	}
}

// TestInsertRemove verifies shifting semantics.
func TestInsertRemove(t *testing.T) {
	l := newList(t, 1, 3)

	require.NoError(t, l.Insert(1, 2))
	assert.Equal(t, []int{1, 2, 3}, l.Elems())

	// Insert at Length() behaves like Append.
	require.NoError(t, l.Insert(3, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, l.Elems())

	v, err := l.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2, 3, 4}, l.Elems())
	assert.Equal(t, 3, l.Length())
}

// TestGetMut verifies in-place mutation through the returned pointer.
func TestGetMut(t *testing.T) {
	l := newList(t, 7)

	p, err := l.GetMut(0)
	require.NoError(t, err)
	*p = 42

	v, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

// TestSearch verifies Contains, Find, FindAll and Count on duplicates.
func TestSearch(t *testing.T) {
	l := newList(t, 5, 1, 5, 2, 5)

	assert.True(t, l.Contains(5))
	assert.False(t, l.Contains(9))

	pos, ok := l.Find(5)
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	_, ok = l.Find(9)
	assert.False(t, ok)

	assert.Equal(t, []int{0, 2, 4}, l.FindAll(5))
	assert.Nil(t, l.FindAll(9))
	assert.Equal(t, 3, l.Count(5))
	assert.Equal(t, 0, l.Count(9))
}

// TestSwapClear verifies Swap and Clear.
func TestSwapClear(t *testing.T) {
	l := newList(t, 1, 2, 3)

	require.NoError(t, l.Swap(0, 2))
	assert.Equal(t, []int{3, 2, 1}, l.Elems())

	l.Clear()
	assert.Equal(t, 0, l.Length())
	assert.False(t, l.Contains(1))
}

// TestEqual verifies element-wise equality.
func TestEqual(t *testing.T) {
	a := newList(t, 1, 2, 3)
	b := newList(t, 1, 2, 3)
	c := newList(t, 3, 2, 1)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(newList(t, 1, 2)))
	assert.False(t, a.Equal(nil))
}

// TestString verifies the rendered form.
func TestString(t *testing.T) {
	assert.Equal(t, "[]", arraylist.New[int]().String())
	assert.Equal(t, "[1, 2, 3]", newList(t, 1, 2, 3).String())
}
