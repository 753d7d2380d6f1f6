// Package brackets records a balanced-bracket scan one character at a time,
// so a renderer can replay it.
package brackets

import (
	"fmt"
	"iter"
)

// Step is one processed character of a scan.
type Step struct {
	// Snapshot is the open-bracket stack after the step, bottom first.
	Snapshot []rune
	Action   string
	// Cursor is the index of the processed character in the expression,
	// counted in runes.
	Cursor int
}

type Result struct {
	Steps    []Step
	Balanced bool
}

var pairs = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
}

func IsOpener(c rune) bool {
	return c == '(' || c == '[' || c == '{'
}

func IsCloser(c rune) bool {
	_, ok := pairs[c]
	return ok
}

func closer(c rune) rune {
	for cl, op := range pairs {
		if op == c {
			return cl
		}
	}
	return 0
}

// scan walks expression left to right, one rune at a time, and hands every
// step to yield. It stops at the first mismatched closer or when yield
// returns false. balanced is only meaningful when the scan was not stopped
// by yield.
func scan(expression string, yield func(Step) bool) (balanced bool) {
	var open []rune
	emit := func(action string, i int) bool {
		snap := make([]rune, len(open))
		copy(snap, open)
		return yield(Step{Snapshot: snap, Action: action, Cursor: i})
	}

	i := 0
	for _, c := range expression {
		switch {
		case IsOpener(c):
			open = append(open, c)
			if !emit(fmt.Sprintf("push %c", c), i) {
				return false
			}
		case IsCloser(c):
			if len(open) == 0 || open[len(open)-1] != pairs[c] {
				emit(fmt.Sprintf("mismatch at '%c'", c), i)
				return false
			}
			open = open[:len(open)-1]
			if !emit(fmt.Sprintf("pop for %c", c), i) {
				return false
			}
		default:
			if !emit(fmt.Sprintf("ignore %c", c), i) {
				return false
			}
		}
		i++
	}

	return len(open) == 0
}

// Steps yields the steps of a scan lazily. Every range over the returned
// sequence starts a fresh scan.
func Steps(expression string) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		scan(expression, yield)
	}
}

// Run scans expression and returns every recorded step. A mismatched closer
// ends the scan right after its step is recorded; otherwise the expression is
// balanced when no opener is left.
func Run(expression string) Result {
	var r Result
	r.Balanced = scan(expression, func(s Step) bool {
		r.Steps = append(r.Steps, s)
		return true
	})
	return r
}

// FindMatchingClosedForward returns the index of the bracket that closes the
// opener at idx, or -1.
func FindMatchingClosedForward(rs []rune, idx int) int {
	if idx < 0 || idx >= len(rs) || !IsOpener(rs[idx]) {
		return -1
	}
	op, cl := rs[idx], closer(rs[idx])
	depth := 0
	for i := idx; i < len(rs); i++ {
		switch rs[i] {
		case op:
			depth++
		case cl:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// FindMatchingOpenBackward returns the index of the opener that the closer at
// idx closes, or -1.
func FindMatchingOpenBackward(rs []rune, idx int) int {
	if idx < 0 || idx >= len(rs) || !IsCloser(rs[idx]) {
		return -1
	}
	cl, op := rs[idx], pairs[rs[idx]]
	depth := 0
	for i := idx; i >= 0; i-- {
		switch rs[i] {
		case cl:
			depth++
		case op:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// FindMatching returns the partner index of the bracket at idx in either
// direction, or -1 when idx is not a bracket or has no partner. Indices are
// rune indices, the same as Step.Cursor.
func FindMatching(rs []rune, idx int) int {
	if idx < 0 || idx >= len(rs) {
		return -1
	}
	if IsOpener(rs[idx]) {
		return FindMatchingClosedForward(rs, idx)
	}
	return FindMatchingOpenBackward(rs, idx)
}
