package stack

import "errors"

var (
	ErrOverflow        = errors.New("stack overflow")
	ErrUnderflow       = errors.New("stack underflow")
	ErrInvalidCapacity = errors.New("stack capacity must be positive")
)

// Stack is an array backed LIFO with a fixed capacity.
// Top of the stack is the last element of data.
type Stack[T any] struct {
	data     []T
	capacity int
}

func New[T any](capacity int) (*Stack[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Stack[T]{data: make([]T, 0, capacity), capacity: capacity}, nil
}

func (s *Stack[T]) Push(e T) error {
	if len(s.data) >= s.capacity {
		return ErrOverflow
	}
	s.data = append(s.data, e)
	return nil
}

func (s *Stack[T]) Pop() (T, error) {
	if len(s.data) == 0 {
		return *new(T), ErrUnderflow
	}
	last := s.data[len(s.data)-1]
	s.data[len(s.data)-1] = *new(T)
	s.data = s.data[:len(s.data)-1]
	return last, nil
}

// Peek returns the top token. ok is false when the stack is empty.
func (s *Stack[T]) Peek() (top T, ok bool) {
	if len(s.data) == 0 {
		return *new(T), false
	}
	return s.data[len(s.data)-1], true
}

func (s *Stack[T]) IsEmpty() bool { return len(s.data) == 0 }

func (s *Stack[T]) Len() int { return len(s.data) }

func (s *Stack[T]) Cap() int { return s.capacity }

// Items returns a copy of the stack contents, bottom first.
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)
	return out
}
