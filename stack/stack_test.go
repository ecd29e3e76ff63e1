package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcph4/enceladus/core"
	"github.com/jmcph4/enceladus/stack"
)

// TestLIFO verifies push/pop ordering.
func TestLIFO(t *testing.T) {
	s := stack.New[int]()

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Push(i))
	}
	assert.Equal(t, 3, s.Depth())

	for want := 3; want >= 1; want-- {
		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, 0, s.Depth())
}

// TestUnderflow verifies Pop and Peek on empty report ErrOutOfBounds.
func TestUnderflow(t *testing.T) {
	s := stack.New[int]()

	_, err := s.Pop()
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
	_, err = s.Peek()
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
}

// TestPeek verifies Peek leaves the stack unchanged.
func TestPeek(t *testing.T) {
	s := stack.New[string]()
	require.NoError(t, s.Push("a"))
	require.NoError(t, s.Push("b"))

	v, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, 2, s.Depth())
}

// TestClearEqual verifies Clear and Equal.
func TestClearEqual(t *testing.T) {
	a := stack.New[int]()
	b := stack.New[int]()
	require.NoError(t, a.Push(1))
	require.NoError(t, b.Push(1))
	assert.True(t, a.Equal(b))

	require.NoError(t, a.Push(2))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	a.Clear()
	assert.Equal(t, 0, a.Depth())
}
