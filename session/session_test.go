package session

import (
	"testing"

	"github.com/amirrezaask/stackviz/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCapacity(t *testing.T) {
	c, err := ParseCapacity(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, 7, c)

	for _, in := range []string{"2", "11", "", "abc", "-3"} {
		_, err := ParseCapacity(in)
		assert.ErrorIs(t, err, ErrCapacityOutOfRange, in)
	}
}

func TestNewRejectsOutOfRange(t *testing.T) {
	_, err := New(2)
	assert.ErrorIs(t, err, ErrCapacityOutOfRange)
	_, err = New(11)
	assert.ErrorIs(t, err, ErrCapacityOutOfRange)
}

func TestPushStatus(t *testing.T) {
	s, err := New(3)
	require.NoError(t, err)

	require.NoError(t, s.Push("10"))
	assert.Equal(t, Status{Text: "Pushed: 10"}, s.Status)
	assert.Equal(t, 0, s.LastPushed)

	assert.ErrorIs(t, s.Push(""), ErrEmptyToken)
	assert.Equal(t, StatusWarning, s.Status.Kind)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Push("20"))
	require.NoError(t, s.Push("30"))
	assert.Equal(t, 2, s.LastPushed)

	err = s.Push("40")
	assert.ErrorIs(t, err, stack.ErrOverflow)
	assert.Equal(t, Status{Text: "Stack Overflow", Kind: StatusError}, s.Status)
	assert.Equal(t, []string{"10", "20", "30"}, s.Items())
}

func TestPopStatus(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)

	_, err = s.Pop()
	assert.ErrorIs(t, err, stack.ErrUnderflow)
	assert.Equal(t, Status{Text: "Stack Underflow", Kind: StatusError}, s.Status)

	require.NoError(t, s.Push("a"))
	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, "Popped: a", s.Status.Text)
	assert.Equal(t, -1, s.LastPushed)
}

func TestPeekStatus(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)

	_, ok := s.Peek()
	assert.False(t, ok)
	assert.Equal(t, "Stack is empty.", s.Status.Text)
	assert.Equal(t, StatusInfo, s.Status.Kind)

	require.NoError(t, s.Push("x"))
	v, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	assert.Equal(t, "Top: x", s.Status.Text)
}

func TestCells(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)
	require.NoError(t, s.Push("a"))
	require.NoError(t, s.Push("b"))

	cells := s.Cells(1000, 4)
	require.Len(t, cells, 4)
	assert.Equal(t, Cell{Index: 0, Address: 1000, Value: "a", Filled: true}, cells[0])
	assert.Equal(t, Cell{Index: 1, Address: 1004, Value: "b", Filled: true, Top: true, Highlight: true}, cells[1])
	assert.Equal(t, Cell{Index: 3, Address: 1012}, cells[3])

	_, err = s.Pop()
	require.NoError(t, err)
	cells = s.Cells(1000, 4)
	assert.True(t, cells[0].Top)
	assert.False(t, cells[0].Highlight)
	assert.False(t, cells[1].Filled)
}

func TestResize(t *testing.T) {
	s, err := New(3)
	require.NoError(t, err)
	require.NoError(t, s.Push("a"))

	assert.ErrorIs(t, s.Resize(1), ErrCapacityOutOfRange)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Resize(10))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 10, s.Capacity())
	assert.Equal(t, -1, s.LastPushed)
}
