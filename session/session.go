// Package session is the model behind the stack panel: a bounded stack of
// user entered tokens plus the status line the window shows after every
// command.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amirrezaask/stackviz/stack"
)

const (
	MinCapacity = 3
	MaxCapacity = 10
)

var (
	ErrEmptyToken         = errors.New("please enter a value to push")
	ErrCapacityOutOfRange = fmt.Errorf("stack size must be between %d and %d", MinCapacity, MaxCapacity)
)

type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusWarning
	StatusError
)

func (k StatusKind) String() string {
	switch k {
	case StatusInfo:
		return "info"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		return ""
	}
}

type Status struct {
	Text string
	Kind StatusKind
}

// Cell is one slot of the array backing the stack, as drawn on screen.
type Cell struct {
	Index   int
	Address int
	Value   string
	Filled  bool
	Top     bool
	// Highlight marks the slot written by the last successful push.
	Highlight bool
}

type Session struct {
	stack      *stack.Stack[string]
	LastPushed int
	Status     Status
}

func ParseCapacity(s string) (int, error) {
	c, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid stack size %q: %w", s, ErrCapacityOutOfRange)
	}
	if c < MinCapacity || c > MaxCapacity {
		return 0, ErrCapacityOutOfRange
	}
	return c, nil
}

func New(capacity int) (*Session, error) {
	s := &Session{}
	if err := s.Resize(capacity); err != nil {
		return nil, err
	}
	return s, nil
}

// Resize throws the current stack away and starts an empty one.
func (s *Session) Resize(capacity int) error {
	if capacity < MinCapacity || capacity > MaxCapacity {
		return ErrCapacityOutOfRange
	}
	st, err := stack.New[string](capacity)
	if err != nil {
		return err
	}
	s.stack = st
	s.LastPushed = -1
	s.Status = Status{}
	return nil
}

func (s *Session) Push(token string) error {
	if token == "" {
		s.Status = Status{Text: "Please enter a value to push.", Kind: StatusWarning}
		return ErrEmptyToken
	}
	if err := s.stack.Push(token); err != nil {
		s.Status = Status{Text: statusText(err), Kind: StatusError}
		return fmt.Errorf("push %q: %w", token, err)
	}
	s.LastPushed = s.stack.Len() - 1
	s.Status = Status{Text: "Pushed: " + token}
	return nil
}

func (s *Session) Pop() (string, error) {
	v, err := s.stack.Pop()
	if err != nil {
		s.Status = Status{Text: statusText(err), Kind: StatusError}
		return "", fmt.Errorf("pop: %w", err)
	}
	s.LastPushed = -1
	s.Status = Status{Text: "Popped: " + v}
	return v, nil
}

func (s *Session) Peek() (string, bool) {
	v, ok := s.stack.Peek()
	if !ok {
		s.Status = Status{Text: "Stack is empty."}
		return "", false
	}
	s.Status = Status{Text: "Top: " + v}
	return v, true
}

func (s *Session) Len() int { return s.stack.Len() }

func (s *Session) Capacity() int { return s.stack.Cap() }

func (s *Session) Items() []string { return s.stack.Items() }

// Cells returns one cell per slot, bottom first. Slot i lives at
// baseAddress + i*addressStep.
func (s *Session) Cells(baseAddress, addressStep int) []Cell {
	items := s.stack.Items()
	cells := make([]Cell, s.stack.Cap())
	for i := range cells {
		cells[i] = Cell{
			Index:     i,
			Address:   baseAddress + i*addressStep,
			Filled:    i < len(items),
			Top:       i == len(items)-1,
			Highlight: i == s.LastPushed,
		}
		if cells[i].Filled {
			cells[i].Value = items[i]
		}
	}
	return cells
}

func statusText(err error) string {
	switch {
	case errors.Is(err, stack.ErrOverflow):
		return "Stack Overflow"
	case errors.Is(err, stack.ErrUnderflow):
		return "Stack Underflow"
	default:
		return err.Error()
	}
}
