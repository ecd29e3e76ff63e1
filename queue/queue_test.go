package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcph4/enceladus/core"
	"github.com/jmcph4/enceladus/queue"
)

// TestFIFO verifies push/pop ordering.
func TestFIFO(t *testing.T) {
	q := queue.New[int]()

	for i := 1; i <= 3; i++ {
		require.NoError(t, q.Push(i))
	}
	assert.Equal(t, 3, q.Length())

	for want := 1; want <= 3; want++ {
		v, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, 0, q.Length())
}

// TestUnderflow verifies Pop and Peek on empty report ErrOutOfBounds.
func TestUnderflow(t *testing.T) {
	q := queue.New[int]()

	_, err := q.Pop()
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
	_, err = q.Peek()
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
}

// TestPeek verifies Peek returns the front without removal.
func TestPeek(t *testing.T) {
	q := queue.New[string]()
	require.NoError(t, q.Push("front"))
	require.NoError(t, q.Push("back"))

	v, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "front", v)
	assert.Equal(t, 2, q.Length())
}

// TestClearEqual verifies Clear and Equal.
func TestClearEqual(t *testing.T) {
	a := queue.New[int]()
	b := queue.New[int]()
	require.NoError(t, a.Push(1))
	require.NoError(t, b.Push(1))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	a.Clear()
	assert.Equal(t, 0, a.Length())
	assert.False(t, a.Equal(b))
}
